package services

import (
	"log"
	"time"

	"fitcenter/internal/core/domain"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// ReminderService runs a daily sweep over active memberships that are
// about to reach their end date and logs a reminder summary for the
// front desk. It is strictly read-only: status stays caller-set and is
// never transitioned here.
type ReminderService struct {
	db       *gorm.DB
	cron     *cron.Cron
	horizon  time.Duration
	schedule string
}

// ExpiryHorizon is how far ahead the sweep looks for ending memberships.
const ExpiryHorizon = 7 * 24 * time.Hour

// NewReminderService creates a new reminder service
func NewReminderService(db *gorm.DB) *ReminderService {
	return &ReminderService{
		db:       db,
		cron:     cron.New(),
		horizon:  ExpiryHorizon,
		schedule: "30 8 * * *", // daily at 08:30
	}
}

// Start schedules the daily sweep
func (s *ReminderService) Start() error {
	if _, err := s.cron.AddFunc(s.schedule, s.sweep); err != nil {
		return err
	}
	s.cron.Start()
	log.Println("🚀 ReminderService started (daily at 08:30)")
	return nil
}

// Stop stops the scheduler
func (s *ReminderService) Stop() {
	s.cron.Stop()
	log.Println("🛑 ReminderService stopped")
}

type expiringMembership struct {
	ID       string
	FullName string
	Email    string
	EndDate  time.Time
}

// sweep logs every active membership ending within the horizon
func (s *ReminderService) sweep() {
	now := time.Now()
	until := now.Add(s.horizon)

	var expiring []expiringMembership
	err := s.db.Table("memberships").
		Select("memberships.id, members.full_name, members.email, memberships.end_date").
		Joins("JOIN members ON members.id = memberships.member_id").
		Where("memberships.status = ? AND memberships.end_date BETWEEN ? AND ?",
			domain.MembershipStatusActive, now, until).
		Order("memberships.end_date ASC").
		Scan(&expiring).Error
	if err != nil {
		log.Printf("⚠️ Expiry sweep failed: %v", err)
		return
	}

	if len(expiring) == 0 {
		log.Println("✅ Expiry sweep: no memberships ending within 7 days")
		return
	}

	log.Printf("📋 Expiry sweep: %d membership(s) ending within 7 days", len(expiring))
	for _, m := range expiring {
		log.Printf("   - %s <%s> ends %s (membership %s)",
			m.FullName, m.Email, m.EndDate.Format("2006-01-02"), m.ID)
	}
}

// RunOnce triggers a single sweep outside the schedule.
func (s *ReminderService) RunOnce() {
	s.sweep()
}
