package view

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/appetiteclub/canteen/pkg/canteen"
)

const orderFallback = "Something went wrong"

// OrderSubmitter turns the order form into a POST /order and refreshes the
// views that depend on the new order.
type OrderSubmitter struct {
	api     OrderPlacer
	doc     *Document
	form    *Form
	message *Message
	after   []Loader
}

func NewOrderSubmitter(api OrderPlacer, doc *Document, form *Form, message *Message, after ...Loader) *OrderSubmitter {
	return &OrderSubmitter{api: api, doc: doc, form: form, message: message, after: after}
}

// Submit sends the current form values. On success the form is reset and the
// dependent views are scheduled on the document without being awaited.
func (s *OrderSubmitter) Submit(ctx context.Context) (*canteen.OrderResult, error) {
	req := s.request()

	result, err := s.api.PlaceOrder(ctx, req)
	if err != nil {
		s.message.Set("❌ Error: " + canteen.FailureMessage(err, orderFallback))
		return nil, err
	}

	s.message.Set(fmt.Sprintf("✅ %s (Order ID: %d)", result.Message, result.OrderID))
	s.form.Reset()

	for _, l := range s.after {
		loader := l
		s.doc.Go(func() error { return loader.Load(ctx) })
	}

	return result, nil
}

// Request returns the payload the current form values would produce.
func (s *OrderSubmitter) Request() canteen.OrderRequest {
	return s.request()
}

func (s *OrderSubmitter) request() canteen.OrderRequest {
	itemID, _ := strconv.ParseInt(strings.TrimSpace(s.form.Value(FieldItemID)), 10, 64)

	quantity := 1
	if raw := strings.TrimSpace(s.form.Value(FieldQuantity)); raw != "" {
		if q, err := strconv.Atoi(raw); err == nil {
			quantity = q
		}
	}

	return canteen.OrderRequest{
		Name:     s.form.Value(FieldName),
		RegID:    s.form.Value(FieldRegID),
		ItemID:   itemID,
		Quantity: quantity,
	}
}
