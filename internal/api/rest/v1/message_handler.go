package v1

import (
	"net/http"

	"github.com/hillcrest-schools/school-portal/internal/domain/messages"

	"github.com/gin-gonic/gin"
)

// MessageHandler defines the interface for handling contact messages
type MessageHandler interface {
	Create(ctx *gin.Context)
	List(ctx *gin.Context)
	UpdateStatus(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

type messageHandler struct {
	messageService messages.MessageService
}

// NewMessageHandler creates a new MessageHandler
func NewMessageHandler(messageService messages.MessageService) MessageHandler {
	return &messageHandler{
		messageService: messageService,
	}
}

// Create handles the public contact form
// @Summary Send a contact message
// @Tags Messages
// @Accept json
// @Produce json
// @Param requestBody body MessageRequest true "Contact message"
// @Success 201 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Router /messages [post]
func (handler *messageHandler) Create(ctx *gin.Context) {
	var request MessageRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondBadRequest(ctx, "message data", err)
		return
	}

	if err := request.Validate(); err != nil {
		respondBadRequest(ctx, "message data", err)
		return
	}

	message, err := handler.messageService.Create(ctx, request.ToDomain())
	if err != nil {
		respondError(ctx, err, "sending message")
		return
	}
	ctx.JSON(http.StatusCreated, NewMessageResponse(message))
}

// List handles the GET request listing the inbox
// @Summary List contact messages
// @Tags Messages
// @Produce json
// @Param status query string false "unread, read or archived"
// @Param limit query int false "Limit the number of results"
// @Param offset query int false "Offset the results"
// @Param sortBy query string false "Sort by a specific field"
// @Param sortOrder query string false "Sort order (asc/desc)"
// @Success 200 {array} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Router /messages [get]
func (handler *messageHandler) List(ctx *gin.Context) {
	page, err := pageFromQuery(ctx)
	if err != nil {
		respondError(ctx, err, "listing messages")
		return
	}

	query := messages.NewMessageQuery()
	query.Status = ctx.Query("status")
	query.SortBy = ctx.Query("sortBy")
	query.Page = page

	list, err := handler.messageService.List(ctx, query)
	if err != nil {
		respondError(ctx, err, "listing messages")
		return
	}

	response := make([]MessageResponse, 0, len(list))
	for _, message := range list {
		response = append(response, NewMessageResponse(message))
	}
	ctx.JSON(http.StatusOK, response)
}

// UpdateStatus handles the PATCH request marking a message
// @Summary Change the status of a contact message
// @Tags Messages
// @Accept json
// @Produce json
// @Param id path string true "Message ID"
// @Param requestBody body StatusUpdateRequest true "New status"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /messages/{id}/status [patch]
func (handler *messageHandler) UpdateStatus(ctx *gin.Context) {
	var request StatusUpdateRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondBadRequest(ctx, "status data", err)
		return
	}

	if err := request.Validate(); err != nil {
		respondBadRequest(ctx, "status data", err)
		return
	}

	message, err := handler.messageService.UpdateStatus(ctx, ctx.Param("id"), request.Status)
	if err != nil {
		respondError(ctx, err, "updating message status")
		return
	}
	ctx.JSON(http.StatusOK, NewMessageResponse(message))
}

// DeleteByID handles the DELETE request for one message
// @Summary Delete a contact message by ID
// @Tags Messages
// @Param id path string true "Message ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /messages/{id} [delete]
func (handler *messageHandler) DeleteByID(ctx *gin.Context) {
	if err := handler.messageService.DeleteByID(ctx, ctx.Param("id")); err != nil {
		respondError(ctx, err, "deleting message")
		return
	}
	ctx.Status(http.StatusNoContent)
}
