package v1

import (
	"net/http"

	"github.com/hillcrest-schools/school-portal/internal/domain/careers"

	"github.com/gin-gonic/gin"
)

// CareerHandler defines the interface for handling job applications
type CareerHandler interface {
	Submit(ctx *gin.Context)
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	UpdateStatus(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

type careerHandler struct {
	jobApplicationService careers.JobApplicationService
}

// NewCareerHandler creates a new CareerHandler
func NewCareerHandler(jobApplicationService careers.JobApplicationService) CareerHandler {
	return &careerHandler{
		jobApplicationService: jobApplicationService,
	}
}

// Submit handles the multipart careers form
// @Summary Apply for a position
// @Description Upload a CV (pdf, doc or docx up to 10MB) together with the applicant details.
// @Tags Careers
// @Accept multipart/form-data
// @Produce json
// @Param full_name formData string true "Full name"
// @Param email formData string true "Email"
// @Param phone formData string true "Phone"
// @Param position formData string true "Position"
// @Param cover_letter formData string false "Cover letter"
// @Param cv formData file true "Curriculum vitae"
// @Success 201 {object} JobApplicationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /careers/applications [post]
func (handler *careerHandler) Submit(ctx *gin.Context) {
	form, err := multipartForm(ctx)
	if err != nil {
		respondBadRequest(ctx, "form data", err)
		return
	}

	application, err := handler.jobApplicationService.Submit(ctx, form)
	if err != nil {
		respondError(ctx, err, "submitting job application")
		return
	}

	ctx.JSON(http.StatusCreated, NewJobApplicationResponse(application))
}

// List handles the GET request listing job applications
// @Summary List job applications
// @Tags Careers
// @Produce json
// @Param position query string false "Position"
// @Param status query string false "Status"
// @Param limit query int false "Limit the number of results"
// @Param offset query int false "Offset the results"
// @Param sortBy query string false "Sort by a specific field"
// @Param sortOrder query string false "Sort order (asc/desc)"
// @Success 200 {array} JobApplicationResponse
// @Failure 400 {object} ErrorResponse
// @Router /careers/applications [get]
func (handler *careerHandler) List(ctx *gin.Context) {
	page, err := pageFromQuery(ctx)
	if err != nil {
		respondError(ctx, err, "listing job applications")
		return
	}

	query := careers.NewJobApplicationQuery()
	query.Position = ctx.Query("position")
	query.Status = ctx.Query("status")
	query.SortBy = ctx.Query("sortBy")
	query.Page = page

	applications, err := handler.jobApplicationService.List(ctx, query)
	if err != nil {
		respondError(ctx, err, "listing job applications")
		return
	}

	response := make([]JobApplicationResponse, 0, len(applications))
	for _, application := range applications {
		response = append(response, NewJobApplicationResponse(application))
	}
	ctx.JSON(http.StatusOK, response)
}

// GetByID handles the GET request for one job application
// @Summary Retrieve a job application by ID
// @Tags Careers
// @Produce json
// @Param id path string true "Job application ID"
// @Success 200 {object} JobApplicationResponse
// @Failure 404 {object} ErrorResponse
// @Router /careers/applications/{id} [get]
func (handler *careerHandler) GetByID(ctx *gin.Context) {
	application, err := handler.jobApplicationService.GetByID(ctx, ctx.Param("id"))
	if err != nil {
		respondError(ctx, err, "getting job application")
		return
	}
	ctx.JSON(http.StatusOK, NewJobApplicationResponse(application))
}

// UpdateStatus handles the PATCH request changing a job application status
// @Summary Change the status of a job application
// @Tags Careers
// @Accept json
// @Produce json
// @Param id path string true "Job application ID"
// @Param requestBody body StatusUpdateRequest true "New status"
// @Success 200 {object} JobApplicationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /careers/applications/{id}/status [patch]
func (handler *careerHandler) UpdateStatus(ctx *gin.Context) {
	var request StatusUpdateRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondBadRequest(ctx, "status data", err)
		return
	}

	if err := request.Validate(); err != nil {
		respondBadRequest(ctx, "status data", err)
		return
	}

	application, err := handler.jobApplicationService.UpdateStatus(ctx, ctx.Param("id"), request.Status)
	if err != nil {
		respondError(ctx, err, "updating job application status")
		return
	}
	ctx.JSON(http.StatusOK, NewJobApplicationResponse(application))
}

// DeleteByID handles the DELETE request removing a job application and its CV
// @Summary Delete a job application by ID
// @Tags Careers
// @Param id path string true "Job application ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /careers/applications/{id} [delete]
func (handler *careerHandler) DeleteByID(ctx *gin.Context) {
	if err := handler.jobApplicationService.DeleteByID(ctx, ctx.Param("id")); err != nil {
		respondError(ctx, err, "deleting job application")
		return
	}
	ctx.Status(http.StatusNoContent)
}
