//go:build integration
// +build integration

package persistence

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/hillcrest-schools/school-portal/internal/domain/admissions"
	"github.com/hillcrest-schools/school-portal/internal/domain/careers"
	"github.com/hillcrest-schools/school-portal/internal/domain/events"
	"github.com/hillcrest-schools/school-portal/internal/domain/media"
	"github.com/hillcrest-schools/school-portal/internal/domain/messages"
	"github.com/hillcrest-schools/school-portal/internal/domain/payments"
	"github.com/hillcrest-schools/school-portal/internal/pkg/config"
	"github.com/hillcrest-schools/school-portal/internal/pkg/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TestContext holds test database and repositories
type TestContext struct {
	DB                 *gorm.DB
	ApplicationRepo    admissions.ApplicationRepository
	JobApplicationRepo careers.JobApplicationRepository
	EventRepo          events.EventRepository
	TicketRepo         events.TicketRepository
	MessageRepo        messages.MessageRepository
	GalleryRepo        media.GalleryRepository
	ResourceRepo       media.ResourceRepository
}

// SetupTestDB initializes a migrated test database with automatic cleanup
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	var settings config.DatabaseSettings
	cleanupFunc := func() {}

	switch dbType {
	case config.SqliteDbType:
		settings = config.DatabaseSettings{
			Type: config.SqliteDbType,
			DSN:  ":memory:",
		}

	case config.PostgresDbType:
		uniqueDBName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		settings = config.DatabaseSettings{
			Type: config.PostgresDbType,
			DSN:  "user=postgres password=postgres host=localhost port=5432 sslmode=disable",
			Name: uniqueDBName,
		}
		cleanupFunc = func() {
			adminDSN := "user=postgres password=postgres host=localhost port=5432 dbname=postgres sslmode=disable"
			_ = DropDatabase(adminDSN, uniqueDBName)
		}

	default:
		t.Fatalf("Unsupported database type: %s", dbType)
	}

	db, err := NewDBConnection(settings)
	require.NoError(t, err, "Failed to create database connection")

	t.Cleanup(func() {
		_ = CloseDB(db)
		cleanupFunc()
	})

	require.NoError(t, Migrate(db), "Failed to migrate schema")

	logger := testutil.SetupTestLogger(t)

	applicationRepo, err := NewGormApplicationRepository(db, logger)
	require.NoError(t, err)
	jobApplicationRepo, err := NewGormJobApplicationRepository(db, logger)
	require.NoError(t, err)
	eventRepo, err := NewGormEventRepository(db, logger)
	require.NoError(t, err)
	ticketRepo, err := NewGormTicketRepository(db, logger)
	require.NoError(t, err)
	messageRepo, err := NewGormMessageRepository(db, logger)
	require.NoError(t, err)
	galleryRepo, err := NewGormGalleryRepository(db, logger)
	require.NoError(t, err)
	resourceRepo, err := NewGormResourceRepository(db, logger)
	require.NoError(t, err)

	return &TestContext{
		DB:                 db,
		ApplicationRepo:    applicationRepo,
		JobApplicationRepo: jobApplicationRepo,
		EventRepo:          eventRepo,
		TicketRepo:         ticketRepo,
		MessageRepo:        messageRepo,
		GalleryRepo:        galleryRepo,
		ResourceRepo:       resourceRepo,
	}
}

// CreateTestApplication returns a valid application awaiting payment
func CreateTestApplication(t *testing.T) *admissions.Application {
	t.Helper()

	return &admissions.Application{
		ID:                uuid.NewString(),
		StudentFirstName:  "Amani",
		StudentLastName:   "Otieno",
		DateOfBirth:       "2016-05-14",
		GradeApplyingFor:  "Grade 4",
		Campus:            "Westlands",
		ParentName:        "Grace Otieno",
		ParentEmail:       "grace@example.com",
		ParentPhone:       "+254712345678",
		Status:            admissions.StatusSubmitted,
		PaymentStatus:     payments.StatusPending,
		Amount:            decimal.NewFromInt(2500),
		Currency:          "KES",
		MerchantReference: payments.NewMerchantReference(payments.ApplicationReferencePrefix),
		CreatedAt:         time.Now().UTC(),
		UpdatedAt:         time.Now().UTC(),
	}
}

// CreateTestEvent returns a valid ticketed event starting at startsAt
func CreateTestEvent(t *testing.T, startsAt time.Time) *events.Event {
	t.Helper()

	return &events.Event{
		ID:          uuid.NewString(),
		Title:       "Founders Day Concert",
		Location:    "Main Hall",
		StartsAt:    startsAt.UTC(),
		IsTicketed:  true,
		TicketPrice: decimal.RequireFromString("750.50"),
		Currency:    "KES",
		Capacity:    100,
		CreatedAt:   time.Now().UTC(),
		UpdatedAt:   time.Now().UTC(),
	}
}

// CreateTestTicket returns a valid pending ticket for event
func CreateTestTicket(t *testing.T, event *events.Event, quantity int) *events.Ticket {
	t.Helper()

	return &events.Ticket{
		ID:                uuid.NewString(),
		EventID:           event.ID,
		BuyerName:         "Jane Njeri",
		BuyerEmail:        "jane@example.com",
		BuyerPhone:        "+254700000001",
		Quantity:          quantity,
		Amount:            event.TicketPrice.Mul(decimal.NewFromInt(int64(quantity))),
		Currency:          event.Currency,
		Status:            payments.StatusPending,
		MerchantReference: payments.NewMerchantReference(payments.TicketReferencePrefix),
		CreatedAt:         time.Now().UTC(),
		UpdatedAt:         time.Now().UTC(),
	}
}
