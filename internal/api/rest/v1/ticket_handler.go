package v1

import (
	"net/http"

	"github.com/hillcrest-schools/school-portal/internal/domain/events"

	"github.com/gin-gonic/gin"
)

// TicketHandler defines the interface for handling ticket sales
type TicketHandler interface {
	Purchase(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	List(ctx *gin.Context)
}

type ticketHandler struct {
	ticketService events.TicketService
}

// NewTicketHandler creates a new TicketHandler
func NewTicketHandler(ticketService events.TicketService) TicketHandler {
	return &ticketHandler{
		ticketService: ticketService,
	}
}

// Purchase handles the POST request buying tickets
// @Summary Buy tickets for an event
// @Description Create a pending ticket order and return the gateway checkout redirect URL.
// @Tags Tickets
// @Accept json
// @Produce json
// @Param requestBody body TicketRequest true "Ticket order"
// @Success 201 {object} PurchaseResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /tickets [post]
func (handler *ticketHandler) Purchase(ctx *gin.Context) {
	var request TicketRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondBadRequest(ctx, "ticket data", err)
		return
	}

	if err := request.Validate(); err != nil {
		respondBadRequest(ctx, "ticket data", err)
		return
	}

	result, err := handler.ticketService.Purchase(ctx, request.ToDomain())
	if err != nil {
		respondError(ctx, err, "purchasing tickets")
		return
	}

	ctx.JSON(http.StatusCreated, PurchaseResponse{
		Ticket:          NewTicketResponse(result.Ticket),
		RedirectURL:     result.RedirectURL,
		OrderTrackingID: result.OrderTrackingID,
	})
}

// GetByID handles the GET request for one ticket
// @Summary Retrieve a ticket by ID
// @Tags Tickets
// @Produce json
// @Param id path string true "Ticket ID"
// @Success 200 {object} TicketResponse
// @Failure 404 {object} ErrorResponse
// @Router /tickets/{id} [get]
func (handler *ticketHandler) GetByID(ctx *gin.Context) {
	ticket, err := handler.ticketService.GetByID(ctx, ctx.Param("id"))
	if err != nil {
		respondError(ctx, err, "getting ticket")
		return
	}
	ctx.JSON(http.StatusOK, NewTicketResponse(ticket))
}

// List handles the GET request listing tickets
// @Summary List tickets
// @Tags Tickets
// @Produce json
// @Param event_id query string false "Event ID"
// @Param status query string false "Payment status"
// @Param buyer_email query string false "Buyer email"
// @Param limit query int false "Limit the number of results"
// @Param offset query int false "Offset the results"
// @Param sortBy query string false "Sort by a specific field"
// @Param sortOrder query string false "Sort order (asc/desc)"
// @Success 200 {array} TicketResponse
// @Failure 400 {object} ErrorResponse
// @Router /tickets [get]
func (handler *ticketHandler) List(ctx *gin.Context) {
	page, err := pageFromQuery(ctx)
	if err != nil {
		respondError(ctx, err, "listing tickets")
		return
	}

	query := events.NewTicketQuery()
	query.EventID = ctx.Query("event_id")
	query.Status = ctx.Query("status")
	query.BuyerEmail = ctx.Query("buyer_email")
	query.SortBy = ctx.Query("sortBy")
	query.Page = page

	tickets, err := handler.ticketService.List(ctx, query)
	if err != nil {
		respondError(ctx, err, "listing tickets")
		return
	}

	response := make([]TicketResponse, 0, len(tickets))
	for _, ticket := range tickets {
		response = append(response, NewTicketResponse(ticket))
	}
	ctx.JSON(http.StatusOK, response)
}
