package view

import (
	"context"

	"github.com/appetiteclub/canteen/pkg/enums/orderstatus"
)

const placeholderLabel = "Change..."

// Option is one choice of a selector. The placeholder has an empty value.
type Option struct {
	Value       string
	Label       string
	Placeholder bool
}

// ChangeFunc receives a row's order id and the chosen status.
type ChangeFunc func(ctx context.Context, orderID int64, status orderstatus.Status) error

// Selector is the per-row status control of the kitchen table.
type Selector struct {
	OrderID  int64
	Options  []Option
	onChange ChangeFunc
}

func NewStatusSelector(orderID int64) *Selector {
	opts := make([]Option, 0, len(orderstatus.All)+1)
	opts = append(opts, Option{Label: placeholderLabel, Placeholder: true})
	for _, s := range orderstatus.All {
		opts = append(opts, Option{Value: s.Code(), Label: s.Label()})
	}
	return &Selector{OrderID: orderID, Options: opts}
}

// OnChange attaches the single listener of the selector.
func (s *Selector) OnChange(fn ChangeFunc) {
	s.onChange = fn
}

// Select dispatches a chosen option value. The placeholder never reaches the
// listener; values outside the option set are rejected.
func (s *Selector) Select(ctx context.Context, value string) error {
	status, err := orderstatus.Parse(value)
	if err != nil {
		return err
	}
	if status.IsZero() || s.onChange == nil {
		return nil
	}
	return s.onChange(ctx, s.OrderID, status)
}
