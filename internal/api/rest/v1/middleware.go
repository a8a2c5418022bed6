package v1

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/hillcrest-schools/school-portal/internal/domain/auth"
	"github.com/hillcrest-schools/school-portal/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// PrincipalKey is the gin context key holding the verified *auth.Principal
const PrincipalKey = "principal"

// RequireAdmin rejects requests without a valid admin bearer token
func RequireAdmin(authService auth.AuthService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || strings.TrimSpace(token) == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Message: "missing bearer token"})
			return
		}

		principal, err := authService.Verify(strings.TrimSpace(token))
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Message: auth.ErrInvalidToken.Error()})
			return
		}

		ctx.Set(PrincipalKey, principal)
		ctx.Next()
	}
}

// MetricsMiddleware records request counts and latencies per route template
func MetricsMiddleware(m *metrics.Metrics) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		route := ctx.FullPath()
		if route == "" {
			route = "unmatched"
		}
		method := ctx.Request.Method
		m.HTTPRequestsTotal.WithLabelValues(route, method, strconv.Itoa(ctx.Writer.Status())).Inc()
		m.HTTPRequestDuration.WithLabelValues(route, method).Observe(time.Since(start).Seconds())
	}
}
