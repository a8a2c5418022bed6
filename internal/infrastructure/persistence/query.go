package persistence

import (
	"fmt"

	"github.com/hillcrest-schools/school-portal/internal/domain/listing"
	"github.com/hillcrest-schools/school-portal/internal/domain/payments"

	"gorm.io/gorm"
)

// applyPage adds ordering and pagination. sortBy must already be validated against the query's allow list.
func applyPage(db *gorm.DB, sortBy, defaultSortBy string, page listing.Page) *gorm.DB {
	if sortBy == "" {
		sortBy = defaultSortBy
	}
	db = db.Order(fmt.Sprintf("%s %s", sortBy, page.EffectiveSortOrder()))
	db = db.Limit(page.EffectiveLimit())
	if page.Offset > 0 {
		db = db.Offset(page.Offset)
	}
	return db
}

// paymentColumns returns the columns written for update, skipping empty values
func paymentColumns(statusColumn string, update payments.PaymentUpdate) map[string]interface{} {
	columns := map[string]interface{}{}
	if update.Status != "" {
		columns[statusColumn] = update.Status
	}
	if update.OrderTrackingID != "" {
		columns["order_tracking_id"] = update.OrderTrackingID
	}
	if update.PaymentMethod != "" {
		columns["payment_method"] = update.PaymentMethod
	}
	if update.ConfirmationCode != "" {
		columns["confirmation_code"] = update.ConfirmationCode
	}
	return columns
}
