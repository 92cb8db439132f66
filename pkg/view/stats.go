package view

import "context"

// QueueStatusView renders the current queue snapshot.
type QueueStatusView struct {
	api   QueueSource
	panel *Panel
}

func NewQueueStatusView(api QueueSource, panel *Panel) *QueueStatusView {
	return &QueueStatusView{api: api, panel: panel}
}

func (v *QueueStatusView) Load(ctx context.Context) error {
	snapshot, err := v.api.QueueStatus(ctx)
	if err != nil {
		return err
	}

	if snapshot.HasMessage() {
		v.panel.Set(Line{Value: snapshot.Message.String()})
		return nil
	}

	v.panel.Set(
		Line{Label: "Snapshot Time", Value: snapshot.SnapshotTime.String()},
		Line{Label: "Pending Orders", Value: snapshot.PendingOrders.String()},
		Line{Label: "Average Wait Time", Value: snapshot.AvgWaitTimeMinutes.String() + " minutes"},
	)
	return nil
}

// TodayStatsView renders today's totals. The average wait always carries two
// decimals.
type TodayStatsView struct {
	api   StatsSource
	panel *Panel
}

func NewTodayStatsView(api StatsSource, panel *Panel) *TodayStatsView {
	return &TodayStatsView{api: api, panel: panel}
}

func (v *TodayStatsView) Load(ctx context.Context) error {
	stats, err := v.api.TodayStats(ctx)
	if err != nil {
		return err
	}

	if stats.HasMessage() {
		v.panel.Set(Line{Value: stats.Message.String()})
		return nil
	}

	v.panel.Set(
		Line{Label: "Date", Value: stats.OrderDate.String()},
		Line{Label: "Total Orders", Value: stats.TotalOrders.String()},
		Line{Label: "Average Wait Time", Value: stats.AvgWaitTime.Fixed(2) + " minutes"},
	)
	return nil
}
