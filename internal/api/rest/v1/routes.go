package v1

import (
	"net/http"

	"github.com/hillcrest-schools/school-portal/internal/domain/admissions"
	"github.com/hillcrest-schools/school-portal/internal/domain/auth"
	"github.com/hillcrest-schools/school-portal/internal/domain/careers"
	"github.com/hillcrest-schools/school-portal/internal/domain/events"
	"github.com/hillcrest-schools/school-portal/internal/domain/media"
	"github.com/hillcrest-schools/school-portal/internal/domain/messages"
	"github.com/hillcrest-schools/school-portal/internal/domain/payments"
	"github.com/hillcrest-schools/school-portal/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// Services bundles the application services served by the REST API
type Services struct {
	Auth            auth.AuthService
	Applications    admissions.ApplicationService
	JobApplications careers.JobApplicationService
	Events          events.EventService
	Tickets         events.TicketService
	Messages        messages.MessageService
	Gallery         media.GalleryService
	Resources       media.ResourceService
	Payments        payments.PaymentService
}

// SetupRoutes sets up all the API routes for version 1.
func SetupRoutes(r *gin.Engine, services *Services, frontendURL string, m *metrics.Metrics) {
	if m != nil {
		r.Use(MetricsMiddleware(m))
		r.GET("/metrics", gin.WrapH(m.Handler()))
	}

	r.GET("/health", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "OK")
	})

	v1 := r.Group(BasePath) // lookup in version file
	admin := v1.Group("", RequireAdmin(services.Auth))

	// Auth Routes
	authHandler := NewAuthHandler(services.Auth)
	v1.POST("/auth/login", authHandler.Login)

	// Applications Routes
	applicationHandler := NewApplicationHandler(services.Applications)
	v1.POST("/applications", applicationHandler.Submit)
	admin.GET("/applications", applicationHandler.List)
	admin.GET("/applications/:id", applicationHandler.GetByID)
	admin.PATCH("/applications/:id/status", applicationHandler.UpdateStatus)
	admin.DELETE("/applications/:id", applicationHandler.DeleteByID)

	// Careers Routes
	careerHandler := NewCareerHandler(services.JobApplications)
	v1.POST("/careers/applications", careerHandler.Submit)
	admin.GET("/careers/applications", careerHandler.List)
	admin.GET("/careers/applications/:id", careerHandler.GetByID)
	admin.PATCH("/careers/applications/:id/status", careerHandler.UpdateStatus)
	admin.DELETE("/careers/applications/:id", careerHandler.DeleteByID)

	// Events Routes
	eventHandler := NewEventHandler(services.Events)
	v1.GET("/events", eventHandler.List)
	v1.GET("/events/:id", eventHandler.GetByID)
	admin.POST("/events", eventHandler.Create)
	admin.PUT("/events/:id", eventHandler.Update)
	admin.DELETE("/events/:id", eventHandler.DeleteByID)

	// Tickets Routes
	ticketHandler := NewTicketHandler(services.Tickets)
	v1.POST("/tickets", ticketHandler.Purchase)
	v1.GET("/tickets/:id", ticketHandler.GetByID)
	admin.GET("/tickets", ticketHandler.List)

	// Messages Routes
	messageHandler := NewMessageHandler(services.Messages)
	v1.POST("/messages", messageHandler.Create)
	admin.GET("/messages", messageHandler.List)
	admin.PATCH("/messages/:id/status", messageHandler.UpdateStatus)
	admin.DELETE("/messages/:id", messageHandler.DeleteByID)

	// Gallery and Resources Routes
	mediaHandler := NewMediaHandler(services.Gallery, services.Resources)
	v1.GET("/gallery", mediaHandler.ListImages)
	admin.POST("/gallery", mediaHandler.UploadImage)
	admin.DELETE("/gallery/:id", mediaHandler.DeleteImageByID)
	v1.GET("/resources", mediaHandler.ListResources)
	admin.POST("/resources", mediaHandler.UploadResource)
	admin.DELETE("/resources/:id", mediaHandler.DeleteResourceByID)

	// Payments Routes
	paymentHandler := NewPaymentHandler(services.Payments, frontendURL)
	v1.GET("/payments/ipn", paymentHandler.IPN)
	v1.POST("/payments/ipn", paymentHandler.IPN)
	v1.GET("/payments/status", paymentHandler.Status)
	v1.GET("/payments/callback", paymentHandler.Callback)
}
