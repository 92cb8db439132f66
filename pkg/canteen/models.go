package canteen

import "github.com/appetiteclub/canteen/pkg/enums/orderstatus"

// MenuItem mirrors a row returned by GET /menu. Every column is display
// only, so none of them can fail the decode.
type MenuItem struct {
	ItemID             Scalar `json:"item_id"`
	ItemName           Scalar `json:"item_name"`
	Category           Scalar `json:"category"`
	Price              Scalar `json:"price"`
	AvgPrepTimeMinutes Scalar `json:"avg_prep_time_minutes"`
}

// OrderRequest is the payload accepted by POST /order.
type OrderRequest struct {
	Name     string `json:"name"`
	RegID    string `json:"reg_id"`
	ItemID   int64  `json:"item_id"`
	Quantity int    `json:"quantity"`
}

type OrderResult struct {
	Message string `json:"message"`
	OrderID int64  `json:"order_id"`
}

// QueueSnapshot is either a message (nothing to report) or the data fields.
type QueueSnapshot struct {
	Message            Scalar `json:"message"`
	SnapshotTime       Scalar `json:"snapshot_time"`
	PendingOrders      Scalar `json:"pending_orders"`
	AvgWaitTimeMinutes Scalar `json:"avg_wait_time_minutes"`
}

// HasMessage selects the message branch. An empty or null message falls
// through to the data fields.
func (q QueueSnapshot) HasMessage() bool {
	return q.Message.Truthy()
}

// DailyStats follows the same message-or-data convention as QueueSnapshot.
type DailyStats struct {
	Message     Scalar  `json:"message"`
	OrderDate   Scalar  `json:"order_date"`
	TotalOrders Scalar  `json:"total_orders"`
	AvgWaitTime Decimal `json:"avg_wait_time"`
}

func (d DailyStats) HasMessage() bool {
	return d.Message.Truthy()
}

// KitchenOrder mirrors one active order returned by GET /kitchen/orders.
// OrderID stays typed because the status selector posts it back.
type KitchenOrder struct {
	OrderID     int64              `json:"order_id"`
	StudentName Scalar             `json:"student_name"`
	RegID       Scalar             `json:"reg_id"`
	ItemName    Scalar             `json:"item_name"`
	Quantity    Scalar             `json:"quantity"`
	Status      orderstatus.Status `json:"status"`
	OrderTime   Scalar             `json:"order_time"`
}

type StatusUpdateRequest struct {
	OrderID int64              `json:"order_id"`
	Status  orderstatus.Status `json:"status"`
}

type StatusUpdateResult struct {
	Message string `json:"message"`
}
