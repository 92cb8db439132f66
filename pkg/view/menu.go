package view

import "context"

// MenuView renders the purchasable items into the menu table.
type MenuView struct {
	api  MenuSource
	body *TableBody
}

func NewMenuView(api MenuSource, body *TableBody) *MenuView {
	return &MenuView{api: api, body: body}
}

// Load has no error branch: a failed fetch leaves the rows as they were and
// the error goes back to the caller.
func (v *MenuView) Load(ctx context.Context) error {
	items, err := v.api.ListMenu(ctx)
	if err != nil {
		return err
	}

	rows := make([]Row, 0, len(items))
	for _, item := range items {
		rows = append(rows, Row{Cells: []string{
			item.ItemID.String(),
			item.ItemName.String(),
			item.Category.String(),
			item.Price.String(),
			item.AvgPrepTimeMinutes.String(),
		}})
	}
	v.body.Replace(rows)
	return nil
}
