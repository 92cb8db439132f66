package view

import (
	"context"
	"strconv"

	"github.com/appetiteclub/canteen/pkg/canteen"
	"github.com/appetiteclub/canteen/pkg/enums/orderstatus"
)

const (
	loadOrdersFallback  = "Error loading orders"
	updateOrderFallback = "Error updating order"
	NoPendingOrdersText = "No pending orders right now."
)

// KitchenOrdersView renders active orders, one selector per row.
type KitchenOrdersView struct {
	api      KitchenSource
	body     *TableBody
	message  *Message
	onSelect ChangeFunc
}

func NewKitchenOrdersView(api KitchenSource, body *TableBody, message *Message) *KitchenOrdersView {
	return &KitchenOrdersView{api: api, body: body, message: message}
}

// OnSelect sets the listener attached to every rendered row selector.
func (v *KitchenOrdersView) OnSelect(fn ChangeFunc) {
	v.onSelect = fn
}

func (v *KitchenOrdersView) Load(ctx context.Context) error {
	orders, err := v.api.ListKitchenOrders(ctx)
	if err != nil {
		v.message.Set(canteen.FailureMessage(err, loadOrdersFallback))
		v.body.Clear()
		return err
	}

	if len(orders) == 0 {
		v.body.Clear()
		v.message.Set(NoPendingOrdersText)
		return nil
	}

	v.message.Set("")

	rows := make([]Row, 0, len(orders))
	for _, o := range orders {
		sel := NewStatusSelector(o.OrderID)
		if v.onSelect != nil {
			sel.OnChange(v.onSelect)
		}
		rows = append(rows, Row{
			Cells: []string{
				strconv.FormatInt(o.OrderID, 10),
				o.StudentName.String(),
				o.RegID.String(),
				o.ItemName.String(),
				o.Quantity.String(),
				o.Status.Code(),
				o.OrderTime.String(),
			},
			Selector: sel,
		})
	}
	v.body.Replace(rows)
	return nil
}

// Selector returns the selector rendered for orderID, if any.
func (v *KitchenOrdersView) Selector(orderID int64) (*Selector, bool) {
	for _, row := range v.body.Rows() {
		if row.Selector != nil && row.Selector.OrderID == orderID {
			return row.Selector, true
		}
	}
	return nil, false
}

// OrderStatusUpdater sends one status change and reloads the kitchen table.
type OrderStatusUpdater struct {
	api     StatusSetter
	doc     *Document
	message *Message
	orders  Loader
}

func NewOrderStatusUpdater(api StatusSetter, doc *Document, message *Message, orders Loader) *OrderStatusUpdater {
	return &OrderStatusUpdater{api: api, doc: doc, message: message, orders: orders}
}

// Update is a no-op for the placeholder status. Transition legality is left
// to the backend.
func (u *OrderStatusUpdater) Update(ctx context.Context, orderID int64, status orderstatus.Status) error {
	if status.IsZero() {
		return nil
	}

	result, err := u.api.UpdateOrderStatus(ctx, canteen.StatusUpdateRequest{
		OrderID: orderID,
		Status:  status,
	})
	if err != nil {
		u.message.Set("❌ " + canteen.FailureMessage(err, updateOrderFallback))
		return err
	}

	u.message.Set("✅ " + result.Message)
	u.doc.Go(func() error { return u.orders.Load(ctx) })
	return nil
}
