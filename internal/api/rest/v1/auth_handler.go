package v1

import (
	"net/http"

	"github.com/hillcrest-schools/school-portal/internal/domain/auth"

	"github.com/gin-gonic/gin"
)

// AuthHandler defines the interface for admin authentication
type AuthHandler interface {
	Login(ctx *gin.Context)
}

type authHandler struct {
	authService auth.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService auth.AuthService) AuthHandler {
	return &authHandler{
		authService: authService,
	}
}

// Login handles the POST request exchanging admin credentials for a token
// @Summary Log in as administrator
// @Description Check the admin credentials and issue a bearer token for the admin routes.
// @Tags Auth
// @Accept json
// @Produce json
// @Param requestBody body LoginRequest true "Admin credentials"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/login [post]
func (handler *authHandler) Login(ctx *gin.Context) {
	var request LoginRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondBadRequest(ctx, "login data", err)
		return
	}

	if err := request.Validate(); err != nil {
		respondBadRequest(ctx, "login data", err)
		return
	}

	token, err := handler.authService.Login(ctx, request.credentials())
	if err != nil {
		respondError(ctx, err, "logging in")
		return
	}

	ctx.JSON(http.StatusOK, LoginResponse{
		Token:     token.Value,
		ExpiresAt: token.ExpiresAt,
	})
}
