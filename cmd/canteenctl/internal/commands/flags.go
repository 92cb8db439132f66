package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/appetiteclub/canteen/pkg/view"
)

var ErrMissingFlag = errors.New("missing required flag")

// ParseOrderArgs maps the order subcommand flags onto order form fields.
// Quantity may be omitted; the form treats a blank quantity as 1.
func ParseOrderArgs(args []string) (map[string]string, error) {
	fs := flag.NewFlagSet("order", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	name := fs.String("name", "", "student name")
	regID := fs.String("reg-id", "", "registration id")
	itemID := fs.String("item-id", "", "menu item id")
	quantity := fs.String("quantity", "", "quantity (default 1)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	required := []struct{ flag, value string }{
		{"name", *name},
		{"reg-id", *regID},
		{"item-id", *itemID},
	}
	for _, r := range required {
		if r.value == "" {
			return nil, fmt.Errorf("%w: --%s", ErrMissingFlag, r.flag)
		}
	}

	return map[string]string{
		view.FieldName:     *name,
		view.FieldRegID:    *regID,
		view.FieldItemID:   *itemID,
		view.FieldQuantity: *quantity,
	}, nil
}

// ParseUpdateArgs reads the order id and status of the update subcommand.
func ParseUpdateArgs(args []string) (int64, string, error) {
	fs := flag.NewFlagSet("update", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	orderID := fs.Int64("order-id", 0, "order id")
	status := fs.String("status", "", "PENDING, PREPARING, READY, DELIVERED or CANCELLED")

	if err := fs.Parse(args); err != nil {
		return 0, "", err
	}
	if *orderID <= 0 {
		return 0, "", fmt.Errorf("%w: --order-id", ErrMissingFlag)
	}
	if *status == "" {
		return 0, "", fmt.Errorf("%w: --status", ErrMissingFlag)
	}

	return *orderID, *status, nil
}
