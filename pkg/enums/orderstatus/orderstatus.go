package orderstatus

import (
	"errors"
	"strings"
)

var ErrUnknownStatus = errors.New("unknown order status")

// Status is one of the closed set of lifecycle states the canteen backend
// accepts for an order. The zero value is the selector placeholder.
type Status struct {
	Name string
}

func (s Status) Code() string {
	return s.Name
}

func (s Status) Label() string {
	if len(s.Name) == 0 {
		return ""
	}
	lower := strings.ToLower(s.Name)
	return strings.ToUpper(lower[:1]) + lower[1:]
}

// IsZero reports whether s is the placeholder (no status selected).
func (s Status) IsZero() bool {
	return s.Name == ""
}

func (s Status) String() string {
	return s.Name
}

type Enum struct {
	Pending   Status
	Preparing Status
	Ready     Status
	Delivered Status
	Cancelled Status
}

var Statuses = Enum{
	Pending:   Status{Name: "PENDING"},
	Preparing: Status{Name: "PREPARING"},
	Ready:     Status{Name: "READY"},
	Delivered: Status{Name: "DELIVERED"},
	Cancelled: Status{Name: "CANCELLED"},
}

// All lists the statuses in selector order.
var All = []Status{
	Statuses.Pending,
	Statuses.Preparing,
	Statuses.Ready,
	Statuses.Delivered,
	Statuses.Cancelled,
}

// ByName returns the status for a given name, or nil if not found
func ByName(name string) *Status {
	for _, s := range All {
		if s.Name == name {
			return &s
		}
	}
	return nil
}

// Parse maps a submitted value to a Status. An empty value yields the
// placeholder without error.
func Parse(value string) (Status, error) {
	if value == "" {
		return Status{}, nil
	}
	s := ByName(value)
	if s == nil {
		return Status{}, ErrUnknownStatus
	}
	return *s, nil
}

// MarshalText keeps the wire form identical to the backend enum.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.Name), nil
}

// UnmarshalText accepts any value the backend sends so that rendering never
// fails on an order whose status this client does not know yet.
func (s *Status) UnmarshalText(text []byte) error {
	s.Name = string(text)
	return nil
}
