package view

import (
	"context"
	"fmt"

	"github.com/appetiteclub/canteen/pkg/canteen"
	"github.com/appetiteclub/canteen/pkg/enums/orderstatus"
)

// StudentPage wires the ordering page controllers to their regions.
type StudentPage struct {
	Doc          *Document
	MenuBody     *TableBody
	Form         *Form
	OrderMessage *Message
	QueuePanel   *Panel
	StatsPanel   *Panel

	Menu  *MenuView
	Queue *QueueStatusView
	Stats *TodayStatsView
	Order *OrderSubmitter
}

// NewStudentPage binds every region the page needs and fails if one is
// absent from doc.
func NewStudentPage(doc *Document, api StudentAPI) (*StudentPage, error) {
	menuBody, err := BindTable(doc, MenuBody)
	if err != nil {
		return nil, fmt.Errorf("student page: %w", err)
	}
	form, err := BindForm(doc, OrderForm, FieldName, FieldRegID, FieldItemID, FieldQuantity)
	if err != nil {
		return nil, fmt.Errorf("student page: %w", err)
	}
	orderMsg, err := BindMessage(doc, OrderMessage)
	if err != nil {
		return nil, fmt.Errorf("student page: %w", err)
	}
	queuePanel, err := BindPanel(doc, QueueStatus)
	if err != nil {
		return nil, fmt.Errorf("student page: %w", err)
	}
	statsPanel, err := BindPanel(doc, TodayStats)
	if err != nil {
		return nil, fmt.Errorf("student page: %w", err)
	}

	p := &StudentPage{
		Doc:          doc,
		MenuBody:     menuBody,
		Form:         form,
		OrderMessage: orderMsg,
		QueuePanel:   queuePanel,
		StatsPanel:   statsPanel,
		Menu:         NewMenuView(api, menuBody),
		Queue:        NewQueueStatusView(api, queuePanel),
		Stats:        NewTodayStatsView(api, statsPanel),
	}
	p.Order = NewOrderSubmitter(api, doc, form, orderMsg, p.Queue, p.Stats)
	return p, nil
}

// Load schedules the initial fetch of every view on the page.
func (p *StudentPage) Load(ctx context.Context) {
	p.Doc.Go(func() error { return p.Menu.Load(ctx) })
	p.Doc.Go(func() error { return p.Queue.Load(ctx) })
	p.Doc.Go(func() error { return p.Stats.Load(ctx) })
}

// Submit fills the order form with values and submits it.
func (p *StudentPage) Submit(ctx context.Context, values map[string]string) (*canteen.OrderResult, error) {
	p.Form.Fill(values)
	return p.Order.Submit(ctx)
}

// KitchenPage wires the kitchen controllers to their regions.
type KitchenPage struct {
	Doc        *Document
	OrdersBody *TableBody
	Message    *Message
	Orders     *KitchenOrdersView
	Updater    *OrderStatusUpdater
}

func NewKitchenPage(doc *Document, api KitchenAPI) (*KitchenPage, error) {
	body, err := BindTable(doc, KitchenOrdersBody)
	if err != nil {
		return nil, fmt.Errorf("kitchen page: %w", err)
	}
	msg, err := BindMessage(doc, KitchenMessage)
	if err != nil {
		return nil, fmt.Errorf("kitchen page: %w", err)
	}

	orders := NewKitchenOrdersView(api, body, msg)
	updater := NewOrderStatusUpdater(api, doc, msg, orders)
	orders.OnSelect(updater.Update)

	return &KitchenPage{
		Doc:        doc,
		OrdersBody: body,
		Message:    msg,
		Orders:     orders,
		Updater:    updater,
	}, nil
}

func (p *KitchenPage) Load(ctx context.Context) {
	p.Doc.Go(func() error { return p.Orders.Load(ctx) })
}

// ChangeStatus delivers a selection for orderID through the row's selector.
// When the row is no longer rendered the selection goes straight to the
// updater so the backend still decides.
func (p *KitchenPage) ChangeStatus(ctx context.Context, orderID int64, value string) error {
	if sel, ok := p.Orders.Selector(orderID); ok {
		return sel.Select(ctx, value)
	}

	status, err := orderstatus.Parse(value)
	if err != nil {
		return err
	}
	return p.Updater.Update(ctx, orderID, status)
}
