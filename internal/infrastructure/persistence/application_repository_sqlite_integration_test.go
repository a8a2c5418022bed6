//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"

	"github.com/hillcrest-schools/school-portal/internal/domain/admissions"
	"github.com/hillcrest-schools/school-portal/internal/domain/payments"
	"github.com/hillcrest-schools/school-portal/internal/pkg/config"
	"github.com/hillcrest-schools/school-portal/internal/pkg/validators"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormApplicationRepository_CreateAndGet(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()

	app := CreateTestApplication(t)
	require.NoError(t, tc.ApplicationRepo.Create(ctx, app))

	got, err := tc.ApplicationRepo.GetByID(ctx, app.ID)
	require.NoError(t, err)
	assert.Equal(t, app.StudentFirstName, got.StudentFirstName)
	assert.Equal(t, payments.StatusPending, got.PaymentStatus)
	assert.True(t, app.Amount.Equal(got.Amount), "amount %s != %s", app.Amount, got.Amount)

	got, err = tc.ApplicationRepo.GetByMerchantReference(ctx, app.MerchantReference)
	require.NoError(t, err)
	assert.Equal(t, app.ID, got.ID)
}

func TestGormApplicationRepository_CreateInvalid(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)

	app := CreateTestApplication(t)
	app.ParentEmail = "nope"

	err := tc.ApplicationRepo.Create(context.Background(), app)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ParentEmail")
}

func TestGormApplicationRepository_NotFound(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()

	_, err := tc.ApplicationRepo.GetByID(ctx, "00000000-0000-4000-8000-000000000000")
	assert.ErrorIs(t, err, admissions.ErrNotFound)

	_, err = tc.ApplicationRepo.GetByOrderTrackingID(ctx, "")
	assert.ErrorIs(t, err, admissions.ErrNotFound)

	err = tc.ApplicationRepo.DeleteByID(ctx, "00000000-0000-4000-8000-000000000000")
	assert.ErrorIs(t, err, admissions.ErrNotFound)

	err = tc.ApplicationRepo.UpdatePayment(ctx, "00000000-0000-4000-8000-000000000000", payments.PaymentUpdate{Status: payments.StatusCompleted})
	assert.ErrorIs(t, err, admissions.ErrNotFound)
}

func TestGormApplicationRepository_ListFilters(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()

	first := CreateTestApplication(t)
	second := CreateTestApplication(t)
	second.Campus = "Karen"
	second.Status = admissions.StatusAccepted
	second.PaymentStatus = payments.StatusCompleted

	require.NoError(t, tc.ApplicationRepo.Create(ctx, first))
	require.NoError(t, tc.ApplicationRepo.Create(ctx, second))

	all, err := tc.ApplicationRepo.List(ctx, admissions.NewApplicationQuery())
	require.NoError(t, err)
	assert.Len(t, all, 2)

	query := admissions.NewApplicationQuery()
	query.Campus = "Karen"
	filtered, err := tc.ApplicationRepo.List(ctx, query)
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, second.ID, filtered[0].ID)

	query = admissions.NewApplicationQuery()
	query.PaymentStatus = payments.StatusPending
	filtered, err = tc.ApplicationRepo.List(ctx, query)
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, first.ID, filtered[0].ID)

	query = admissions.NewApplicationQuery()
	query.Limit = 1
	limited, err := tc.ApplicationRepo.List(ctx, query)
	require.NoError(t, err)
	assert.Len(t, limited, 1)

	query = admissions.NewApplicationQuery()
	query.SortBy = "password"
	_, err = tc.ApplicationRepo.List(ctx, query)
	assert.Error(t, err)
}

func TestGormApplicationRepository_UpdateStatus(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()

	app := CreateTestApplication(t)
	require.NoError(t, tc.ApplicationRepo.Create(ctx, app))

	// a status change read from a stale copy must not roll back a settled payment
	stale, err := tc.ApplicationRepo.GetByID(ctx, app.ID)
	require.NoError(t, err)
	require.NoError(t, tc.ApplicationRepo.UpdatePayment(ctx, app.ID, payments.PaymentUpdate{
		Status:           payments.StatusCompleted,
		ConfirmationCode: "IPN-77",
	}))
	require.NoError(t, tc.ApplicationRepo.UpdateStatus(ctx, stale.ID, admissions.StatusAccepted))

	got, err := tc.ApplicationRepo.GetByID(ctx, app.ID)
	require.NoError(t, err)
	assert.Equal(t, admissions.StatusAccepted, got.Status)
	assert.Equal(t, payments.StatusCompleted, got.PaymentStatus)
	assert.Equal(t, "IPN-77", got.ConfirmationCode)
	assert.False(t, got.UpdatedAt.Before(stale.UpdatedAt))

	err = tc.ApplicationRepo.UpdateStatus(ctx, app.ID, "expelled")
	assert.ErrorIs(t, err, validators.ErrValidation)

	err = tc.ApplicationRepo.UpdateStatus(ctx, "missing", admissions.StatusAccepted)
	assert.ErrorIs(t, err, admissions.ErrNotFound)
}

func TestGormApplicationRepository_UpdateAndPayment(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()

	app := CreateTestApplication(t)
	require.NoError(t, tc.ApplicationRepo.Create(ctx, app))

	require.NoError(t, tc.ApplicationRepo.UpdatePayment(ctx, app.ID, payments.PaymentUpdate{OrderTrackingID: "otid-123"}))
	require.NoError(t, tc.ApplicationRepo.UpdateStatus(ctx, app.ID, admissions.StatusUnderReview))

	got, err := tc.ApplicationRepo.GetByOrderTrackingID(ctx, "otid-123")
	require.NoError(t, err)
	assert.Equal(t, admissions.StatusUnderReview, got.Status)

	err = tc.ApplicationRepo.UpdatePayment(ctx, app.ID, payments.PaymentUpdate{
		Status:           payments.StatusCompleted,
		PaymentMethod:    "M-Pesa",
		ConfirmationCode: "QWE123",
	})
	require.NoError(t, err)

	got, err = tc.ApplicationRepo.GetByID(ctx, app.ID)
	require.NoError(t, err)
	assert.Equal(t, payments.StatusCompleted, got.PaymentStatus)
	assert.Equal(t, "M-Pesa", got.PaymentMethod)
	assert.Equal(t, "QWE123", got.ConfirmationCode)
	assert.Equal(t, "otid-123", got.OrderTrackingID, "empty update fields must not overwrite")
	assert.Equal(t, admissions.StatusUnderReview, got.Status)

	require.NoError(t, tc.ApplicationRepo.DeleteByID(ctx, app.ID))
	_, err = tc.ApplicationRepo.GetByID(ctx, app.ID)
	assert.ErrorIs(t, err, admissions.ErrNotFound)
}
