package view

import (
	"context"

	"github.com/appetiteclub/canteen/pkg/canteen"
)

type MenuSource interface {
	ListMenu(ctx context.Context) ([]canteen.MenuItem, error)
}

type OrderPlacer interface {
	PlaceOrder(ctx context.Context, req canteen.OrderRequest) (*canteen.OrderResult, error)
}

type QueueSource interface {
	QueueStatus(ctx context.Context) (*canteen.QueueSnapshot, error)
}

type StatsSource interface {
	TodayStats(ctx context.Context) (*canteen.DailyStats, error)
}

type KitchenSource interface {
	ListKitchenOrders(ctx context.Context) ([]canteen.KitchenOrder, error)
}

type StatusSetter interface {
	UpdateOrderStatus(ctx context.Context, req canteen.StatusUpdateRequest) (*canteen.StatusUpdateResult, error)
}

// StudentAPI is the backend surface used by the ordering page.
type StudentAPI interface {
	MenuSource
	OrderPlacer
	QueueSource
	StatsSource
}

// KitchenAPI is the backend surface used by the kitchen page.
type KitchenAPI interface {
	KitchenSource
	StatusSetter
}

// Loader is any view that can refresh itself from the backend.
type Loader interface {
	Load(ctx context.Context) error
}
