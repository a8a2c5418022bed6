//go:build unit
// +build unit

package app

import (
	"context"
	"errors"
	"testing"

	"github.com/hillcrest-schools/school-portal/internal/domain/admissions"
	"github.com/hillcrest-schools/school-portal/internal/domain/payments"
	"github.com/hillcrest-schools/school-portal/internal/pkg/testutil"
	"github.com/hillcrest-schools/school-portal/internal/pkg/validators"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newApplication() *admissions.Application {
	return &admissions.Application{
		StudentFirstName: "Amani",
		StudentLastName:  "Otieno",
		DateOfBirth:      "2016-05-14",
		GradeApplyingFor: "Grade 4",
		Campus:           "Westlands",
		ParentName:       "Grace Wanjiku Otieno",
		ParentEmail:      "grace@example.com",
		ParentPhone:      "+254712345678",
		Notes:            "<b>Allergic</b> to peanuts",
	}
}

func TestApplicationService_Submit_WithoutFee(t *testing.T) {
	repo := new(MockApplicationRepository)
	service, err := NewApplicationService(repo, nil, decimal.Zero, "KES", testutil.SetupTestLogger(t))
	require.NoError(t, err)
	ctx := context.Background()

	repo.On("Create", ctx, mock.AnythingOfType("*admissions.Application")).Return(nil)

	result, err := service.Submit(ctx, newApplication())
	require.NoError(t, err)

	assert.NotEmpty(t, result.Application.ID)
	assert.Equal(t, admissions.StatusSubmitted, result.Application.Status)
	assert.Equal(t, payments.StatusNotRequired, result.Application.PaymentStatus)
	assert.Empty(t, result.Application.MerchantReference)
	assert.Equal(t, "Allergic to peanuts", result.Application.Notes)
	assert.Empty(t, result.RedirectURL)
	repo.AssertExpectations(t)
}

func TestApplicationService_Submit_WithFee(t *testing.T) {
	repo := new(MockApplicationRepository)
	gateway := new(MockGateway)
	fee := decimal.RequireFromString("2500")
	service, err := NewApplicationService(repo, gateway, fee, "KES", testutil.SetupTestLogger(t))
	require.NoError(t, err)
	ctx := context.Background()

	repo.On("Create", ctx, mock.MatchedBy(func(a *admissions.Application) bool {
		return a.PaymentStatus == payments.StatusPending && a.Amount.Equal(fee) && a.Currency == "KES"
	})).Return(nil)
	gateway.On("SubmitOrder", ctx, mock.MatchedBy(func(o *payments.OrderRequest) bool {
		return o.Amount.Equal(fee) &&
			payments.TargetForReference(o.MerchantReference) == payments.TargetApplication &&
			o.Billing.FirstName == "Grace" && o.Billing.LastName == "Wanjiku Otieno"
	})).Return(&payments.OrderResponse{OrderTrackingID: "trk-1", RedirectURL: "https://pay.example.com/trk-1"}, nil)
	repo.On("UpdatePayment", ctx, mock.AnythingOfType("string"), payments.PaymentUpdate{OrderTrackingID: "trk-1"}).Return(nil)

	result, err := service.Submit(ctx, newApplication())
	require.NoError(t, err)

	assert.Equal(t, "https://pay.example.com/trk-1", result.RedirectURL)
	assert.Equal(t, "trk-1", result.OrderTrackingID)
	assert.Equal(t, "trk-1", result.Application.OrderTrackingID)
	repo.AssertExpectations(t)
	gateway.AssertExpectations(t)
}

func TestApplicationService_Submit_GatewayFailureKeepsRow(t *testing.T) {
	repo := new(MockApplicationRepository)
	gateway := new(MockGateway)
	service, err := NewApplicationService(repo, gateway, decimal.NewFromInt(100), "KES", testutil.SetupTestLogger(t))
	require.NoError(t, err)
	ctx := context.Background()

	repo.On("Create", ctx, mock.AnythingOfType("*admissions.Application")).Return(nil)
	gateway.On("SubmitOrder", ctx, mock.Anything).Return(nil, errors.New("gateway down"))

	_, err = service.Submit(ctx, newApplication())
	require.Error(t, err)
	assert.NotErrorIs(t, err, validators.ErrValidation)
	repo.AssertNotCalled(t, "DeleteByID", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "UpdatePayment", mock.Anything, mock.Anything, mock.Anything)
}

func TestApplicationService_Submit_Invalid(t *testing.T) {
	repo := new(MockApplicationRepository)
	service, err := NewApplicationService(repo, nil, decimal.Zero, "KES", testutil.SetupTestLogger(t))
	require.NoError(t, err)

	application := newApplication()
	application.ParentEmail = "not-an-email"

	_, err = service.Submit(context.Background(), application)
	require.ErrorIs(t, err, validators.ErrValidation)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestNewApplicationService_FeeNeedsGateway(t *testing.T) {
	_, err := NewApplicationService(new(MockApplicationRepository), nil, decimal.NewFromInt(1), "KES", testutil.SetupTestLogger(t))
	require.Error(t, err)
}

func TestApplicationService_UpdateStatus(t *testing.T) {
	repo := new(MockApplicationRepository)
	service, err := NewApplicationService(repo, nil, decimal.Zero, "KES", testutil.SetupTestLogger(t))
	require.NoError(t, err)
	ctx := context.Background()

	_, err = service.UpdateStatus(ctx, "app-1", "approved")
	require.ErrorIs(t, err, validators.ErrValidation)

	repo.On("UpdateStatus", ctx, "missing", admissions.StatusAccepted).Return(admissions.ErrNotFound).Once()
	_, err = service.UpdateStatus(ctx, "missing", admissions.StatusAccepted)
	require.ErrorIs(t, err, admissions.ErrNotFound)
	repo.AssertNotCalled(t, "GetByID", ctx, "missing")

	// the returned row is re-read, so a payment settled meanwhile shows up
	repo.On("UpdateStatus", ctx, "app-1", admissions.StatusAccepted).Return(nil).Once()
	repo.On("GetByID", ctx, "app-1").Return(&admissions.Application{
		ID:            "app-1",
		Status:        admissions.StatusAccepted,
		PaymentStatus: payments.StatusCompleted,
	}, nil).Once()
	updated, err := service.UpdateStatus(ctx, "app-1", admissions.StatusAccepted)
	require.NoError(t, err)
	assert.Equal(t, admissions.StatusAccepted, updated.Status)
	assert.Equal(t, payments.StatusCompleted, updated.PaymentStatus)

	repo.AssertExpectations(t)
}

func TestApplicationService_ListAndDelete(t *testing.T) {
	repo := new(MockApplicationRepository)
	service, err := NewApplicationService(repo, nil, decimal.Zero, "KES", testutil.SetupTestLogger(t))
	require.NoError(t, err)
	ctx := context.Background()

	repo.On("List", ctx, mock.AnythingOfType("*admissions.ApplicationQuery")).Return([]*admissions.Application{{ID: "app-1"}}, nil)
	list, err := service.List(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	query := admissions.NewApplicationQuery()
	query.SortBy = "parent_phone"
	_, err = service.List(ctx, query)
	require.ErrorIs(t, err, validators.ErrValidation)

	repo.On("DeleteByID", ctx, "missing").Return(admissions.ErrNotFound)
	err = service.DeleteByID(ctx, "missing")
	require.ErrorIs(t, err, admissions.ErrNotFound)
}
