package connector

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hillcrest-schools/school-portal/internal/domain/payments"
	"github.com/hillcrest-schools/school-portal/internal/pkg/config"
	"github.com/hillcrest-schools/school-portal/internal/pkg/logger"
	"github.com/hillcrest-schools/school-portal/internal/pkg/metrics"

	"github.com/shopspring/decimal"
)

const (
	requestTokenPath        = "/api/Auth/RequestToken"
	registerIPNPath         = "/api/URLSetup/RegisterIPN"
	submitOrderPath         = "/api/Transactions/SubmitOrderRequest"
	transactionStatusPath   = "/api/Transactions/GetTransactionStatus"
	ipnNotificationTypeGET  = "GET"
	defaultGatewayTimeout   = 30 * time.Second
	fallbackTokenLifetime   = 5 * time.Minute
	maxGatewayErrorBodySize = 512
)

// errTokenRejected marks a 401 answer to a request carrying a bearer token
var errTokenRejected = errors.New("bearer token rejected")

type gatewayError struct {
	ErrorType string `json:"error_type"`
	Code      string `json:"code"`
	Message   string `json:"message"`
}

func (e *gatewayError) present() bool {
	return e != nil && (e.Code != "" || e.Message != "")
}

func (e *gatewayError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

type tokenRequest struct {
	ConsumerKey    string `json:"consumer_key"`
	ConsumerSecret string `json:"consumer_secret"`
}

type tokenResponse struct {
	Token      string        `json:"token"`
	ExpiryDate string        `json:"expiryDate"`
	Error      *gatewayError `json:"error"`
	Status     string        `json:"status"`
	Message    string        `json:"message"`
}

type registerIPNRequest struct {
	URL                 string `json:"url"`
	IPNNotificationType string `json:"ipn_notification_type"`
}

type registerIPNResponse struct {
	URL    string        `json:"url"`
	IPNID  string        `json:"ipn_id"`
	Error  *gatewayError `json:"error"`
	Status string        `json:"status"`
}

type billingAddress struct {
	EmailAddress string `json:"email_address,omitempty"`
	PhoneNumber  string `json:"phone_number,omitempty"`
	FirstName    string `json:"first_name,omitempty"`
	LastName     string `json:"last_name,omitempty"`
}

type submitOrderRequest struct {
	ID             string         `json:"id"`
	Currency       string         `json:"currency"`
	Amount         json.Number    `json:"amount"`
	Description    string         `json:"description"`
	CallbackURL    string         `json:"callback_url"`
	NotificationID string         `json:"notification_id,omitempty"`
	BillingAddress billingAddress `json:"billing_address"`
}

type submitOrderResponse struct {
	OrderTrackingID   string        `json:"order_tracking_id"`
	MerchantReference string        `json:"merchant_reference"`
	RedirectURL       string        `json:"redirect_url"`
	Error             *gatewayError `json:"error"`
	Status            string        `json:"status"`
}

type transactionStatusResponse struct {
	PaymentMethod            string        `json:"payment_method"`
	Amount                   json.Number   `json:"amount"`
	ConfirmationCode         string        `json:"confirmation_code"`
	PaymentStatusDescription string        `json:"payment_status_description"`
	Description              string        `json:"description"`
	Message                  string        `json:"message"`
	StatusCode               *int          `json:"status_code"`
	MerchantReference        string        `json:"merchant_reference"`
	Currency                 string        `json:"currency"`
	Error                    *gatewayError `json:"error"`
	Status                   string        `json:"status"`
}

type paymentGatewayClient struct {
	settings   *config.PaymentGatewaySettings
	baseURL    string
	httpClient *http.Client
	tokens     payments.TokenStore
	metrics    *metrics.Metrics
	logger     logger.Logger
}

// NewPaymentGatewayClient returns a payments.Gateway talking to the REST API at settings.BaseURL.
// Bearer tokens are cached in tokens until shortly before they expire.
func NewPaymentGatewayClient(settings *config.PaymentGatewaySettings, tokens payments.TokenStore, m *metrics.Metrics, logger logger.Logger) (payments.Gateway, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	if tokens == nil {
		tokens = NewMemoryTokenStore()
	}

	timeout := settings.Timeout
	if timeout <= 0 {
		timeout = defaultGatewayTimeout
	}

	return &paymentGatewayClient{
		settings:   settings,
		baseURL:    strings.TrimRight(settings.BaseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		tokens:     tokens,
		metrics:    m,
		logger:     logger,
	}, nil
}

// SubmitOrder creates an order and returns the hosted checkout redirect URL
func (c *paymentGatewayClient) SubmitOrder(ctx context.Context, order *payments.OrderRequest) (*payments.OrderResponse, error) {
	if order == nil || order.MerchantReference == "" {
		return nil, fmt.Errorf("order with a merchant reference is required")
	}
	if !order.Amount.IsPositive() {
		return nil, fmt.Errorf("order amount must be positive, got %s", order.Amount)
	}

	currency := order.Currency
	if currency == "" {
		currency = c.settings.Currency
	}

	req := submitOrderRequest{
		ID:             order.MerchantReference,
		Currency:       currency,
		Amount:         json.Number(order.Amount.StringFixed(2)),
		Description:    truncate(order.Description, 100),
		CallbackURL:    c.settings.CallbackURL,
		NotificationID: c.settings.IPNID,
		BillingAddress: billingAddress{
			EmailAddress: order.Billing.Email,
			PhoneNumber:  order.Billing.Phone,
			FirstName:    order.Billing.FirstName,
			LastName:     order.Billing.LastName,
		},
	}

	if req.NotificationID == "" {
		c.logger.Warn("Submitting order without an ipn id, status changes will not be pushed", "merchant_reference", order.MerchantReference)
	}

	var resp submitOrderResponse
	if err := c.authorizedCall(ctx, "submit_order", http.MethodPost, submitOrderPath, req, &resp); err != nil {
		return nil, err
	}
	if resp.Error.present() {
		c.observe("submit_order", "rejected")
		return nil, fmt.Errorf("gateway rejected order %s: %w", order.MerchantReference, resp.Error)
	}
	if resp.OrderTrackingID == "" || resp.RedirectURL == "" {
		c.observe("submit_order", "rejected")
		return nil, fmt.Errorf("gateway returned no tracking id or redirect url for order %s", order.MerchantReference)
	}

	c.observe("submit_order", "ok")
	c.logger.Info("Order submitted", "merchant_reference", order.MerchantReference, "order_tracking_id", resp.OrderTrackingID)

	merchantReference := resp.MerchantReference
	if merchantReference == "" {
		merchantReference = order.MerchantReference
	}
	return &payments.OrderResponse{
		OrderTrackingID:   resp.OrderTrackingID,
		MerchantReference: merchantReference,
		RedirectURL:       resp.RedirectURL,
	}, nil
}

// GetTransactionStatus returns the gateway's view of orderTrackingID
func (c *paymentGatewayClient) GetTransactionStatus(ctx context.Context, orderTrackingID string) (*payments.TransactionStatus, error) {
	if orderTrackingID == "" {
		return nil, payments.ErrMissingTrackingID
	}

	path := transactionStatusPath + "?orderTrackingId=" + url.QueryEscape(orderTrackingID)

	var resp transactionStatusResponse
	if err := c.authorizedCall(ctx, "transaction_status", http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	// failed payments carry an error object next to a status code
	if resp.StatusCode == nil && resp.PaymentStatusDescription == "" && resp.Error.present() {
		c.observe("transaction_status", "rejected")
		return nil, fmt.Errorf("gateway returned no status for %s: %w", orderTrackingID, resp.Error)
	}

	status := &payments.TransactionStatus{
		OrderTrackingID:   orderTrackingID,
		MerchantReference: resp.MerchantReference,
		StatusDescription: resp.PaymentStatusDescription,
		PaymentMethod:     resp.PaymentMethod,
		ConfirmationCode:  resp.ConfirmationCode,
		Currency:          resp.Currency,
		Message:           resp.Message,
	}
	if resp.StatusCode != nil {
		status.StatusCode = *resp.StatusCode
		status.HasStatusCode = true
	}
	if resp.Amount != "" {
		amount, err := decimal.NewFromString(resp.Amount.String())
		if err != nil {
			return nil, fmt.Errorf("gateway returned invalid amount %q: %w", resp.Amount, err)
		}
		status.Amount = amount
	}

	c.observe("transaction_status", "ok")
	return status, nil
}

// RegisterIPN registers ipnURL as a GET notification endpoint
func (c *paymentGatewayClient) RegisterIPN(ctx context.Context, ipnURL string) (string, error) {
	if _, err := url.ParseRequestURI(ipnURL); err != nil {
		return "", fmt.Errorf("invalid ipn url %q: %w", ipnURL, err)
	}

	req := registerIPNRequest{URL: ipnURL, IPNNotificationType: ipnNotificationTypeGET}

	var resp registerIPNResponse
	if err := c.authorizedCall(ctx, "register_ipn", http.MethodPost, registerIPNPath, req, &resp); err != nil {
		return "", err
	}
	if resp.Error.present() || resp.IPNID == "" {
		c.observe("register_ipn", "rejected")
		if resp.Error.present() {
			return "", fmt.Errorf("gateway rejected ipn url: %w", resp.Error)
		}
		return "", fmt.Errorf("gateway returned no ipn id")
	}

	c.observe("register_ipn", "ok")
	c.logger.Info("IPN url registered", "url", ipnURL, "ipn_id", resp.IPNID)
	return resp.IPNID, nil
}

func (c *paymentGatewayClient) token(ctx context.Context) (string, error) {
	token, ok, err := c.tokens.Get(ctx)
	if err != nil {
		c.logger.Warn("Gateway token cache unavailable, requesting a new token", "error", err)
	}
	if ok {
		return token, nil
	}

	req := tokenRequest{ConsumerKey: c.settings.ConsumerKey, ConsumerSecret: c.settings.ConsumerSecret}

	var resp tokenResponse
	if err := c.call(ctx, "request_token", http.MethodPost, requestTokenPath, "", req, &resp); err != nil {
		return "", err
	}
	if resp.Error.present() {
		c.observe("request_token", "rejected")
		return "", fmt.Errorf("gateway refused credentials: %w", resp.Error)
	}
	if resp.Token == "" {
		c.observe("request_token", "rejected")
		return "", fmt.Errorf("gateway returned an empty token")
	}

	expiresAt, err := time.Parse(time.RFC3339Nano, resp.ExpiryDate)
	if err != nil {
		c.logger.Warn("Unparseable token expiry, using fallback lifetime", "expiry_date", resp.ExpiryDate)
		expiresAt = time.Now().Add(fallbackTokenLifetime)
	}

	c.observe("request_token", "ok")
	if err := c.tokens.Set(ctx, resp.Token, expiresAt); err != nil {
		c.logger.Warn("Failed to cache gateway token", "error", err)
	}

	return resp.Token, nil
}

func (c *paymentGatewayClient) authorizedCall(ctx context.Context, operation, method, path string, body, out interface{}) error {
	token, err := c.token(ctx)
	if err != nil {
		return fmt.Errorf("failed to obtain gateway token: %w", err)
	}

	err = c.call(ctx, operation, method, path, token, body, out)
	if !errors.Is(err, errTokenRejected) {
		return err
	}

	// the cached token was revoked or expired early; retry once with a fresh one
	c.logger.Warn("Gateway rejected cached token, requesting a new one", "operation", operation)
	if clearErr := c.tokens.Clear(ctx); clearErr != nil {
		c.logger.Warn("Failed to drop cached gateway token", "error", clearErr)
	}
	token, err = c.token(ctx)
	if err != nil {
		return fmt.Errorf("failed to obtain gateway token: %w", err)
	}
	return c.call(ctx, operation, method, path, token, body, out)
}

func (c *paymentGatewayClient) call(ctx context.Context, operation, method, path, token string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal %s request: %w", operation, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create %s request: %w", operation, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.observe(operation, "error")
		return fmt.Errorf("%s request failed: %w", operation, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		c.observe(operation, "error")
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxGatewayErrorBodySize))
		if resp.StatusCode == http.StatusUnauthorized && token != "" {
			return fmt.Errorf("%s returned status %d: %w: %s", operation, resp.StatusCode, errTokenRejected, strings.TrimSpace(string(snippet)))
		}
		return fmt.Errorf("%s returned status %d: %s", operation, resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.observe(operation, "error")
		return fmt.Errorf("failed to decode %s response: %w", operation, err)
	}

	return nil
}

func (c *paymentGatewayClient) observe(operation, result string) {
	if c.metrics == nil {
		return
	}
	c.metrics.GatewayRequests.WithLabelValues(operation, result).Inc()
}

func truncate(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit])
}
