package v1

import (
	"net/http"

	"github.com/hillcrest-schools/school-portal/internal/domain/events"

	"github.com/gin-gonic/gin"
)

// EventHandler defines the interface for handling events
type EventHandler interface {
	Create(ctx *gin.Context)
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	Update(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

type eventHandler struct {
	eventService events.EventService
}

// NewEventHandler creates a new EventHandler
func NewEventHandler(eventService events.EventService) EventHandler {
	return &eventHandler{
		eventService: eventService,
	}
}

// Create handles the POST request creating an event
// @Summary Create an event
// @Description A ticketed event needs a ticket_price greater than zero and a currency.
// @Tags Events
// @Accept json
// @Produce json
// @Param requestBody body EventRequest true "Event"
// @Success 201 {object} EventResponse
// @Failure 400 {object} ErrorResponse
// @Router /events [post]
func (handler *eventHandler) Create(ctx *gin.Context) {
	request, ok := bindEvent(ctx)
	if !ok {
		return
	}

	event, err := handler.eventService.Create(ctx, request.ToDomain(""))
	if err != nil {
		respondError(ctx, err, "creating event")
		return
	}
	ctx.JSON(http.StatusCreated, NewEventResponse(event))
}

// List handles the GET request listing events
// @Summary List events
// @Tags Events
// @Produce json
// @Param upcoming query bool false "Only events that have not ended"
// @Param is_ticketed query bool false "Ticketed or free events"
// @Param limit query int false "Limit the number of results"
// @Param offset query int false "Offset the results"
// @Param sortBy query string false "Sort by a specific field"
// @Param sortOrder query string false "Sort order (asc/desc)"
// @Success 200 {array} EventResponse
// @Failure 400 {object} ErrorResponse
// @Router /events [get]
func (handler *eventHandler) List(ctx *gin.Context) {
	page, err := pageFromQuery(ctx)
	if err != nil {
		respondError(ctx, err, "listing events")
		return
	}

	upcoming, err := boolQuery(ctx, "upcoming")
	if err != nil {
		respondError(ctx, err, "listing events")
		return
	}

	isTicketed, err := boolQuery(ctx, "is_ticketed")
	if err != nil {
		respondError(ctx, err, "listing events")
		return
	}

	query := events.NewEventQuery()
	query.Upcoming = upcoming != nil && *upcoming
	query.IsTicketed = isTicketed
	query.SortBy = ctx.Query("sortBy")
	query.Page = page

	list, err := handler.eventService.List(ctx, query)
	if err != nil {
		respondError(ctx, err, "listing events")
		return
	}

	response := make([]EventResponse, 0, len(list))
	for _, event := range list {
		response = append(response, NewEventResponse(event))
	}
	ctx.JSON(http.StatusOK, response)
}

// GetByID handles the GET request for one event
// @Summary Retrieve an event by ID
// @Tags Events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} EventResponse
// @Failure 404 {object} ErrorResponse
// @Router /events/{id} [get]
func (handler *eventHandler) GetByID(ctx *gin.Context) {
	event, err := handler.eventService.GetByID(ctx, ctx.Param("id"))
	if err != nil {
		respondError(ctx, err, "getting event")
		return
	}
	ctx.JSON(http.StatusOK, NewEventResponse(event))
}

// Update handles the PUT request replacing an event
// @Summary Replace an event
// @Tags Events
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param requestBody body EventRequest true "Event"
// @Success 200 {object} EventResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /events/{id} [put]
func (handler *eventHandler) Update(ctx *gin.Context) {
	request, ok := bindEvent(ctx)
	if !ok {
		return
	}

	event, err := handler.eventService.Update(ctx, request.ToDomain(ctx.Param("id")))
	if err != nil {
		respondError(ctx, err, "updating event")
		return
	}
	ctx.JSON(http.StatusOK, NewEventResponse(event))
}

// DeleteByID handles the DELETE request for one event
// @Summary Delete an event by ID
// @Tags Events
// @Param id path string true "Event ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /events/{id} [delete]
func (handler *eventHandler) DeleteByID(ctx *gin.Context) {
	if err := handler.eventService.DeleteByID(ctx, ctx.Param("id")); err != nil {
		respondError(ctx, err, "deleting event")
		return
	}
	ctx.Status(http.StatusNoContent)
}

// bindEvent binds and validates an EventRequest, writing the 400 itself
func bindEvent(ctx *gin.Context) (*EventRequest, bool) {
	var request EventRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondBadRequest(ctx, "event data", err)
		return nil, false
	}

	if err := request.Validate(); err != nil {
		respondBadRequest(ctx, "event data", err)
		return nil, false
	}
	return &request, true
}
