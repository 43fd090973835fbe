package services

import (
	"context"
	"testing"
	"time"

	"fitcenter/internal/adapters/persistence/models"
	"fitcenter/internal/adapters/persistence/repositories"
	"fitcenter/internal/core/domain"
	"fitcenter/internal/pkg/dateutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOverview(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	members := repositories.NewRepository[models.Member](db)
	trainers := repositories.NewRepository[models.Trainer](db)
	types := repositories.NewRepository[models.MembershipType](db)
	memberships := repositories.NewRepository[models.Membership](db)

	member, err := members.Insert(ctx, &models.Member{
		FullName: "Overview Member",
		Email:    "overview@gym.test",
		Phone:    "0810000006",
	})
	require.NoError(t, err)

	_, err = trainers.Insert(ctx, &models.Trainer{UserID: uuid.New()})
	require.NoError(t, err)

	mType, err := types.Insert(ctx, &models.MembershipType{Name: "Monthly", DurationMonths: 1, Price: 60})
	require.NoError(t, err)

	thisMonth := dateutil.StartOfMonth(time.Now()).AddDate(0, 0, 1)
	lastYear := thisMonth.AddDate(-1, 0, 0)

	mk := func(paid time.Time, amount float64, status string) *models.Membership {
		return &models.Membership{
			MemberID:         member[0].ID,
			MembershipTypeID: mType[0].ID,
			StartDate:        paid,
			EndDate:          dateutil.AddMonths(paid, 1),
			PaymentAmount:    amount,
			PaymentDate:      paid,
			Status:           status,
		}
	}
	_, err = memberships.Insert(ctx,
		mk(thisMonth, 60, domain.MembershipStatusActive),
		mk(thisMonth, 320, domain.MembershipStatusActive),
		mk(lastYear, 600, domain.MembershipStatusExpired),
	)
	require.NoError(t, err)

	overview, err := NewDashboardService(db).GetOverview(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(1), overview.TotalMembers)
	assert.Equal(t, int64(1), overview.TotalTrainers)
	assert.Equal(t, int64(2), overview.ActiveMemberships)
	assert.InDelta(t, 380.0, overview.MonthlyRevenue, 0.001, "only this month's payments count")
}
