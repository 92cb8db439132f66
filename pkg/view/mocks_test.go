package view

import (
	"context"
	"errors"
	"sync"

	"github.com/appetiteclub/canteen/pkg/canteen"
)

// MockBackend implements StudentAPI and KitchenAPI with per-call hooks and
// a call log. Calls can arrive from scheduled tasks, so access is locked.
type MockBackend struct {
	mu    sync.Mutex
	calls []string

	ListMenuFunc          func(ctx context.Context) ([]canteen.MenuItem, error)
	PlaceOrderFunc        func(ctx context.Context, req canteen.OrderRequest) (*canteen.OrderResult, error)
	QueueStatusFunc       func(ctx context.Context) (*canteen.QueueSnapshot, error)
	TodayStatsFunc        func(ctx context.Context) (*canteen.DailyStats, error)
	ListKitchenOrdersFunc func(ctx context.Context) ([]canteen.KitchenOrder, error)
	UpdateOrderStatusFunc func(ctx context.Context, req canteen.StatusUpdateRequest) (*canteen.StatusUpdateResult, error)

	PlacedOrders   []canteen.OrderRequest
	StatusRequests []canteen.StatusUpdateRequest
}

func NewMockBackend() *MockBackend {
	return &MockBackend{}
}

func (m *MockBackend) record(call string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, call)
}

func (m *MockBackend) Count(call string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, c := range m.calls {
		if c == call {
			n++
		}
	}
	return n
}

func (m *MockBackend) Total() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

func (m *MockBackend) ListMenu(ctx context.Context) ([]canteen.MenuItem, error) {
	m.record("GET /menu")
	if m.ListMenuFunc != nil {
		return m.ListMenuFunc(ctx)
	}
	return nil, nil
}

func (m *MockBackend) PlaceOrder(ctx context.Context, req canteen.OrderRequest) (*canteen.OrderResult, error) {
	m.record("POST /order")
	m.mu.Lock()
	m.PlacedOrders = append(m.PlacedOrders, req)
	m.mu.Unlock()
	if m.PlaceOrderFunc != nil {
		return m.PlaceOrderFunc(ctx, req)
	}
	return nil, errors.New("not implemented")
}

func (m *MockBackend) QueueStatus(ctx context.Context) (*canteen.QueueSnapshot, error) {
	m.record("GET /queue-status")
	if m.QueueStatusFunc != nil {
		return m.QueueStatusFunc(ctx)
	}
	return &canteen.QueueSnapshot{Message: canteen.NewScalar("No pending orders")}, nil
}

func (m *MockBackend) TodayStats(ctx context.Context) (*canteen.DailyStats, error) {
	m.record("GET /stats/today")
	if m.TodayStatsFunc != nil {
		return m.TodayStatsFunc(ctx)
	}
	return &canteen.DailyStats{Message: canteen.NewScalar("No orders placed today")}, nil
}

func (m *MockBackend) ListKitchenOrders(ctx context.Context) ([]canteen.KitchenOrder, error) {
	m.record("GET /kitchen/orders")
	if m.ListKitchenOrdersFunc != nil {
		return m.ListKitchenOrdersFunc(ctx)
	}
	return []canteen.KitchenOrder{}, nil
}

func (m *MockBackend) UpdateOrderStatus(ctx context.Context, req canteen.StatusUpdateRequest) (*canteen.StatusUpdateResult, error) {
	m.record("POST /kitchen/update")
	m.mu.Lock()
	m.StatusRequests = append(m.StatusRequests, req)
	m.mu.Unlock()
	if m.UpdateOrderStatusFunc != nil {
		return m.UpdateOrderStatusFunc(ctx, req)
	}
	return &canteen.StatusUpdateResult{Message: "Status updated"}, nil
}
