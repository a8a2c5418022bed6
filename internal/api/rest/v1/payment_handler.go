package v1

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/hillcrest-schools/school-portal/internal/domain/payments"

	"github.com/gin-gonic/gin"
)

// PaymentResultPath is appended to the frontend URL when the gateway callback redirects the buyer
const PaymentResultPath = "/payment/result"

// callbackErrorStatus replaces the payment status in the redirect when reconciliation failed
const callbackErrorStatus = "error"

// PaymentHandler defines the interface for gateway notifications and status checks
type PaymentHandler interface {
	IPN(ctx *gin.Context)
	Status(ctx *gin.Context)
	Callback(ctx *gin.Context)
}

type paymentHandler struct {
	paymentService payments.PaymentService
	frontendURL    string
}

// NewPaymentHandler creates a new PaymentHandler redirecting buyers to frontendURL
func NewPaymentHandler(paymentService payments.PaymentService, frontendURL string) PaymentHandler {
	return &paymentHandler{
		paymentService: paymentService,
		frontendURL:    strings.TrimRight(frontendURL, "/"),
	}
}

// IPN handles the gateway's instant payment notification
// @Summary Receive a payment notification
// @Description Reconcile the order with the gateway and acknowledge the notification. Parameters come from the query string or the body.
// @Tags Payments
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param OrderTrackingId query string true "Order tracking id"
// @Param OrderMerchantReference query string false "Merchant reference"
// @Param OrderNotificationType query string false "Notification type"
// @Success 200 {object} payments.Acknowledgement
// @Failure 400 {object} payments.Acknowledgement
// @Failure 404 {object} payments.Acknowledgement
// @Failure 500 {object} payments.Acknowledgement
// @Router /payments/ipn [get]
// @Router /payments/ipn [post]
func (handler *paymentHandler) IPN(ctx *gin.Context) {
	var notification payments.Notification

	// an unreadable body still leaves the query string to fall back on
	_ = ctx.ShouldBind(&notification)
	if notification.OrderTrackingID == "" {
		notification.OrderTrackingID = ctx.Query("OrderTrackingId")
	}
	if notification.OrderMerchantReference == "" {
		notification.OrderMerchantReference = ctx.Query("OrderMerchantReference")
	}
	if notification.OrderNotificationType == "" {
		notification.OrderNotificationType = ctx.Query("OrderNotificationType")
	}

	if notification.OrderTrackingID == "" {
		ctx.JSON(http.StatusBadRequest, notification.Ack(http.StatusInternalServerError))
		return
	}

	_, err := handler.paymentService.Reconcile(ctx, notification.OrderTrackingID, notification.OrderMerchantReference)
	if err != nil {
		ctx.JSON(statusFor(err), notification.Ack(http.StatusInternalServerError))
		return
	}

	ctx.JSON(http.StatusOK, notification.Ack(http.StatusOK))
}

// Status handles the GET request reconciling one order on demand
// @Summary Check the payment status of an order
// @Tags Payments
// @Produce json
// @Param orderTrackingId query string true "Order tracking id"
// @Success 200 {object} payments.ReconcileResult
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /payments/status [get]
func (handler *paymentHandler) Status(ctx *gin.Context) {
	result, err := handler.paymentService.Reconcile(ctx, ctx.Query("orderTrackingId"), "")
	if err != nil {
		respondError(ctx, err, "checking payment status")
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// Callback handles the buyer returning from the hosted checkout
// @Summary Return from the gateway checkout
// @Description Reconcile the order and redirect to the frontend payment result page.
// @Tags Payments
// @Param OrderTrackingId query string true "Order tracking id"
// @Param OrderMerchantReference query string false "Merchant reference"
// @Success 302
// @Router /payments/callback [get]
func (handler *paymentHandler) Callback(ctx *gin.Context) {
	reference := ctx.Query("OrderMerchantReference")
	status := callbackErrorStatus

	result, err := handler.paymentService.Reconcile(ctx, ctx.Query("OrderTrackingId"), reference)
	if err == nil {
		status = result.Status
		reference = result.MerchantReference
	}

	query := url.Values{}
	query.Set("status", status)
	query.Set("reference", reference)
	ctx.Redirect(http.StatusFound, handler.frontendURL+PaymentResultPath+"?"+query.Encode())
}
