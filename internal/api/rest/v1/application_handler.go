package v1

import (
	"net/http"

	"github.com/hillcrest-schools/school-portal/internal/domain/admissions"

	"github.com/gin-gonic/gin"
)

// ApplicationHandler defines the interface for handling admission applications
type ApplicationHandler interface {
	Submit(ctx *gin.Context)
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	UpdateStatus(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

type applicationHandler struct {
	applicationService admissions.ApplicationService
}

// NewApplicationHandler creates a new ApplicationHandler
func NewApplicationHandler(applicationService admissions.ApplicationService) ApplicationHandler {
	return &applicationHandler{
		applicationService: applicationService,
	}
}

// Submit handles the public admission form
// @Summary Submit an admission application
// @Description Store an application. When an application fee is configured the response carries the checkout redirect URL.
// @Tags Applications
// @Accept json
// @Produce json
// @Param requestBody body ApplicationRequest true "Application form"
// @Success 201 {object} SubmitApplicationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /applications [post]
func (handler *applicationHandler) Submit(ctx *gin.Context) {
	var request ApplicationRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondBadRequest(ctx, "application data", err)
		return
	}

	if err := request.Validate(); err != nil {
		respondBadRequest(ctx, "application data", err)
		return
	}

	result, err := handler.applicationService.Submit(ctx, request.ToDomain())
	if err != nil {
		respondError(ctx, err, "submitting application")
		return
	}

	ctx.JSON(http.StatusCreated, SubmitApplicationResponse{
		Application:     NewApplicationResponse(result.Application),
		RedirectURL:     result.RedirectURL,
		OrderTrackingID: result.OrderTrackingID,
	})
}

// List handles the GET request listing applications
// @Summary List admission applications
// @Description Fetch applications filtered by status, payment status, campus and grade, with pagination and sorting options.
// @Tags Applications
// @Produce json
// @Param status query string false "Review status"
// @Param payment_status query string false "Payment status"
// @Param campus query string false "Campus"
// @Param grade query string false "Grade applied for"
// @Param limit query int false "Limit the number of results"
// @Param offset query int false "Offset the results"
// @Param sortBy query string false "Sort by a specific field"
// @Param sortOrder query string false "Sort order (asc/desc)"
// @Success 200 {array} ApplicationResponse
// @Failure 400 {object} ErrorResponse
// @Router /applications [get]
func (handler *applicationHandler) List(ctx *gin.Context) {
	page, err := pageFromQuery(ctx)
	if err != nil {
		respondError(ctx, err, "listing applications")
		return
	}

	query := admissions.NewApplicationQuery()
	query.Status = ctx.Query("status")
	query.PaymentStatus = ctx.Query("payment_status")
	query.Campus = ctx.Query("campus")
	query.Grade = ctx.Query("grade")
	query.SortBy = ctx.Query("sortBy")
	query.Page = page

	applications, err := handler.applicationService.List(ctx, query)
	if err != nil {
		respondError(ctx, err, "listing applications")
		return
	}

	response := make([]ApplicationResponse, 0, len(applications))
	for _, application := range applications {
		response = append(response, NewApplicationResponse(application))
	}
	ctx.JSON(http.StatusOK, response)
}

// GetByID handles the GET request for one application
// @Summary Retrieve an admission application by ID
// @Tags Applications
// @Produce json
// @Param id path string true "Application ID"
// @Success 200 {object} ApplicationResponse
// @Failure 404 {object} ErrorResponse
// @Router /applications/{id} [get]
func (handler *applicationHandler) GetByID(ctx *gin.Context) {
	application, err := handler.applicationService.GetByID(ctx, ctx.Param("id"))
	if err != nil {
		respondError(ctx, err, "getting application")
		return
	}
	ctx.JSON(http.StatusOK, NewApplicationResponse(application))
}

// UpdateStatus handles the PATCH request changing the review status
// @Summary Change the review status of an admission application
// @Tags Applications
// @Accept json
// @Produce json
// @Param id path string true "Application ID"
// @Param requestBody body StatusUpdateRequest true "New status"
// @Success 200 {object} ApplicationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /applications/{id}/status [patch]
func (handler *applicationHandler) UpdateStatus(ctx *gin.Context) {
	var request StatusUpdateRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondBadRequest(ctx, "status data", err)
		return
	}

	if err := request.Validate(); err != nil {
		respondBadRequest(ctx, "status data", err)
		return
	}

	application, err := handler.applicationService.UpdateStatus(ctx, ctx.Param("id"), request.Status)
	if err != nil {
		respondError(ctx, err, "updating application status")
		return
	}
	ctx.JSON(http.StatusOK, NewApplicationResponse(application))
}

// DeleteByID handles the DELETE request for one application
// @Summary Delete an admission application by ID
// @Tags Applications
// @Param id path string true "Application ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /applications/{id} [delete]
func (handler *applicationHandler) DeleteByID(ctx *gin.Context) {
	if err := handler.applicationService.DeleteByID(ctx, ctx.Param("id")); err != nil {
		respondError(ctx, err, "deleting application")
		return
	}
	ctx.Status(http.StatusNoContent)
}
