package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/appetiteclub/canteen/pkg/view"
)

// Menu prints the menu table.
func Menu(ctx context.Context, api view.StudentAPI, out io.Writer) error {
	page, err := view.NewStudentPage(view.StudentLayout(), api)
	if err != nil {
		return err
	}

	if err := page.Menu.Load(ctx); err != nil {
		return fmt.Errorf("load menu: %w", err)
	}

	return renderTable(out, menuHeaders, page.MenuBody.Rows())
}

// Queue prints the current queue snapshot.
func Queue(ctx context.Context, api view.StudentAPI, out io.Writer) error {
	page, err := view.NewStudentPage(view.StudentLayout(), api)
	if err != nil {
		return err
	}

	if err := page.Queue.Load(ctx); err != nil {
		return fmt.Errorf("load queue status: %w", err)
	}

	renderPanel(out, "Queue Status", page.QueuePanel.Lines())
	return nil
}

// Stats prints today's order statistics.
func Stats(ctx context.Context, api view.StudentAPI, out io.Writer) error {
	page, err := view.NewStudentPage(view.StudentLayout(), api)
	if err != nil {
		return err
	}

	if err := page.Stats.Load(ctx); err != nil {
		return fmt.Errorf("load today stats: %w", err)
	}

	renderPanel(out, "Today's Stats", page.StatsPanel.Lines())
	return nil
}

// Order submits one order and prints the outcome followed by the refreshed
// queue and stats panels.
func Order(ctx context.Context, api view.StudentAPI, out io.Writer, values map[string]string) error {
	page, err := view.NewStudentPage(view.StudentLayout(), api)
	if err != nil {
		return err
	}

	_, submitErr := page.Submit(ctx, values)
	settleErr := page.Doc.Settle()

	renderMessage(out, page.OrderMessage.Text())
	if submitErr != nil {
		return fmt.Errorf("place order: %w", submitErr)
	}

	renderPanel(out, "Queue Status", page.QueuePanel.Lines())
	renderPanel(out, "Today's Stats", page.StatsPanel.Lines())
	return settleErr
}

// Orders prints the active kitchen orders, or the status message when there
// are none or the load failed.
func Orders(ctx context.Context, api view.KitchenAPI, out io.Writer) error {
	page, err := view.NewKitchenPage(view.KitchenLayout(), api)
	if err != nil {
		return err
	}

	loadErr := page.Orders.Load(ctx)
	renderMessage(out, page.Message.Text())
	if loadErr != nil {
		return fmt.Errorf("load kitchen orders: %w", loadErr)
	}
	if page.OrdersBody.Len() == 0 {
		return nil
	}

	return renderTable(out, kitchenHeaders, page.OrdersBody.Rows())
}

// Update changes the status of one order and prints the reloaded kitchen
// table. Every message the page shows along the way is printed, since the
// reload clears the confirmation.
func Update(ctx context.Context, api view.KitchenAPI, out io.Writer, orderID int64, status string) error {
	page, err := view.NewKitchenPage(view.KitchenLayout(), api)
	if err != nil {
		return err
	}

	page.Message.Watch(func(text string) {
		renderMessage(out, text)
	})

	changeErr := page.ChangeStatus(ctx, orderID, status)
	settleErr := page.Doc.Settle()
	if changeErr != nil {
		return fmt.Errorf("update order %d: %w", orderID, changeErr)
	}
	if settleErr != nil {
		return settleErr
	}
	if page.OrdersBody.Len() == 0 {
		return nil
	}

	return renderTable(out, kitchenHeaders, page.OrdersBody.Rows())
}
