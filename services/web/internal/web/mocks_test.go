package web

import (
	"context"
	"errors"
	"html/template"
	"path/filepath"
	"sync"

	"github.com/appetiteclub/canteen/pkg/canteen"
)

// MockBackend implements Backend with per-call hooks.
type MockBackend struct {
	mu sync.Mutex

	ListMenuFunc          func(ctx context.Context) ([]canteen.MenuItem, error)
	PlaceOrderFunc        func(ctx context.Context, req canteen.OrderRequest) (*canteen.OrderResult, error)
	QueueStatusFunc       func(ctx context.Context) (*canteen.QueueSnapshot, error)
	TodayStatsFunc        func(ctx context.Context) (*canteen.DailyStats, error)
	ListKitchenOrdersFunc func(ctx context.Context) ([]canteen.KitchenOrder, error)
	UpdateOrderStatusFunc func(ctx context.Context, req canteen.StatusUpdateRequest) (*canteen.StatusUpdateResult, error)

	PlacedOrders   []canteen.OrderRequest
	StatusRequests []canteen.StatusUpdateRequest
	KitchenLoads   int
}

func (m *MockBackend) ListMenu(ctx context.Context) ([]canteen.MenuItem, error) {
	if m.ListMenuFunc != nil {
		return m.ListMenuFunc(ctx)
	}
	return nil, nil
}

func (m *MockBackend) PlaceOrder(ctx context.Context, req canteen.OrderRequest) (*canteen.OrderResult, error) {
	m.mu.Lock()
	m.PlacedOrders = append(m.PlacedOrders, req)
	m.mu.Unlock()
	if m.PlaceOrderFunc != nil {
		return m.PlaceOrderFunc(ctx, req)
	}
	return nil, errors.New("not implemented")
}

func (m *MockBackend) QueueStatus(ctx context.Context) (*canteen.QueueSnapshot, error) {
	if m.QueueStatusFunc != nil {
		return m.QueueStatusFunc(ctx)
	}
	return &canteen.QueueSnapshot{Message: canteen.NewScalar("No pending orders")}, nil
}

func (m *MockBackend) TodayStats(ctx context.Context) (*canteen.DailyStats, error) {
	if m.TodayStatsFunc != nil {
		return m.TodayStatsFunc(ctx)
	}
	return &canteen.DailyStats{Message: canteen.NewScalar("No orders today")}, nil
}

func (m *MockBackend) ListKitchenOrders(ctx context.Context) ([]canteen.KitchenOrder, error) {
	m.mu.Lock()
	m.KitchenLoads++
	m.mu.Unlock()
	if m.ListKitchenOrdersFunc != nil {
		return m.ListKitchenOrdersFunc(ctx)
	}
	return []canteen.KitchenOrder{}, nil
}

func (m *MockBackend) UpdateOrderStatus(ctx context.Context, req canteen.StatusUpdateRequest) (*canteen.StatusUpdateResult, error) {
	m.mu.Lock()
	m.StatusRequests = append(m.StatusRequests, req)
	m.mu.Unlock()
	if m.UpdateOrderStatusFunc != nil {
		return m.UpdateOrderStatusFunc(ctx, req)
	}
	return nil, errors.New("not implemented")
}

// fileTemplates parses the service's real page templates from disk.
type fileTemplates struct {
	dir string
}

func newFileTemplates() *fileTemplates {
	return &fileTemplates{dir: filepath.Join("..", "..", "assets", "templates")}
}

func (f *fileTemplates) Get(name string) (*template.Template, error) {
	return template.ParseFiles(filepath.Join(f.dir, "base.html"), filepath.Join(f.dir, name))
}

// MockTemplates fails every lookup.
type MockTemplates struct{}

func (MockTemplates) Get(name string) (*template.Template, error) {
	return nil, errors.New("template not found: " + name)
}
