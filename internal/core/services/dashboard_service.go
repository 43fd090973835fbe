package services

import (
	"context"
	"time"

	"fitcenter/internal/core/domain"
	"fitcenter/internal/pkg/dateutil"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// DashboardService assembles the admin overview. It is a read-only
// outer collaborator: the aggregates it needs (counts, a revenue sum
// over a date range) go straight to the store rather than through the
// generic repository.
type DashboardService struct {
	db *gorm.DB
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{db: db}
}

// OverviewData represents the admin overview numbers
type OverviewData struct {
	TotalMembers      int64   `json:"total_members"`
	TotalTrainers     int64   `json:"total_trainers"`
	ActiveMemberships int64   `json:"active_memberships"`
	MonthlyRevenue    float64 `json:"monthly_revenue"`
}

// GetOverview returns the admin overview. The four reads touch
// disjoint slices of data, so they run concurrently and join before
// use.
func (s *DashboardService) GetOverview(ctx context.Context) (*OverviewData, error) {
	data := &OverviewData{}
	startOfMonth := dateutil.StartOfMonth(time.Now())

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return s.db.WithContext(gctx).Table("members").Count(&data.TotalMembers).Error
	})
	g.Go(func() error {
		return s.db.WithContext(gctx).Table("trainers").Count(&data.TotalTrainers).Error
	})
	g.Go(func() error {
		return s.db.WithContext(gctx).Table("memberships").
			Where("status = ?", domain.MembershipStatusActive).
			Count(&data.ActiveMemberships).Error
	})
	g.Go(func() error {
		return s.db.WithContext(gctx).Table("memberships").
			Where("payment_date >= ?", startOfMonth).
			Select("COALESCE(SUM(payment_amount), 0)").
			Scan(&data.MonthlyRevenue).Error
	})

	if err := g.Wait(); err != nil {
		return nil, domain.NewStoreError("overview", "dashboard", err)
	}
	return data, nil
}
