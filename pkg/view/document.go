package view

import (
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"
)

// RegionID names a region of a page. The values are the element ids the
// markup carries.
type RegionID string

const (
	MenuBody          RegionID = "menu-body"
	OrderForm         RegionID = "order-form"
	OrderMessage      RegionID = "order-message"
	QueueStatus       RegionID = "queue-status"
	TodayStats        RegionID = "today-stats"
	KitchenOrdersBody RegionID = "kitchen-orders-body"
	KitchenMessage    RegionID = "kitchen-message"
)

// Order form field names.
const (
	FieldName     = "name"
	FieldRegID    = "reg_id"
	FieldItemID   = "item_id"
	FieldQuantity = "quantity"
)

var (
	ErrRegionMissing = errors.New("region missing")
	ErrRegionKind    = errors.New("region has unexpected kind")
	ErrFieldMissing  = errors.New("form field missing")
)

type Region interface {
	ID() RegionID
}

// Document is one rendered page: a fixed set of regions plus the work
// scheduled against them. It lives for one request or one command.
type Document struct {
	regions map[RegionID]Region

	mu    sync.Mutex
	group *errgroup.Group
}

func NewDocument(regions ...Region) *Document {
	d := &Document{regions: make(map[RegionID]Region, len(regions))}
	for _, r := range regions {
		d.regions[r.ID()] = r
	}
	return d
}

// StudentLayout builds the regions of the ordering page.
func StudentLayout() *Document {
	return NewDocument(
		NewTableBody(MenuBody),
		NewForm(OrderForm, FieldName, FieldRegID, FieldItemID, FieldQuantity),
		NewMessage(OrderMessage),
		NewPanel(QueueStatus),
		NewPanel(TodayStats),
	)
}

// KitchenLayout builds the regions of the kitchen page.
func KitchenLayout() *Document {
	return NewDocument(
		NewTableBody(KitchenOrdersBody),
		NewMessage(KitchenMessage),
	)
}

func (d *Document) Region(id RegionID) (Region, bool) {
	r, ok := d.regions[id]
	return r, ok
}

// Go schedules fn without waiting for it. Tasks may schedule further tasks.
func (d *Document) Go(fn func() error) {
	d.mu.Lock()
	if d.group == nil {
		d.group = new(errgroup.Group)
	}
	g := d.group
	d.mu.Unlock()

	g.Go(fn)
}

// Settle waits until every scheduled task, including tasks scheduled while
// waiting, has finished. It returns the joined task errors.
func (d *Document) Settle() error {
	var errs []error
	for {
		d.mu.Lock()
		g := d.group
		d.group = nil
		d.mu.Unlock()

		if g == nil {
			return errors.Join(errs...)
		}
		if err := g.Wait(); err != nil {
			errs = append(errs, err)
		}
	}
}

func bind[T Region](d *Document, id RegionID) (T, error) {
	var zero T
	if d == nil {
		return zero, fmt.Errorf("%s: %w", id, ErrRegionMissing)
	}
	r, ok := d.regions[id]
	if !ok {
		return zero, fmt.Errorf("%s: %w", id, ErrRegionMissing)
	}
	typed, ok := r.(T)
	if !ok {
		return zero, fmt.Errorf("%s: %w", id, ErrRegionKind)
	}
	return typed, nil
}

func BindTable(d *Document, id RegionID) (*TableBody, error) {
	return bind[*TableBody](d, id)
}

func BindMessage(d *Document, id RegionID) (*Message, error) {
	return bind[*Message](d, id)
}

func BindPanel(d *Document, id RegionID) (*Panel, error) {
	return bind[*Panel](d, id)
}

// BindForm also checks that the form declares every named field.
func BindForm(d *Document, id RegionID, fields ...string) (*Form, error) {
	f, err := bind[*Form](d, id)
	if err != nil {
		return nil, err
	}
	for _, name := range fields {
		if !f.Has(name) {
			return nil, fmt.Errorf("%s.%s: %w", id, name, ErrFieldMissing)
		}
	}
	return f, nil
}
