package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/wavehouse/studio-booking/internal/app"
	"github.com/wavehouse/studio-booking/internal/handlers"
	"github.com/wavehouse/studio-booking/internal/identity"
	"github.com/wavehouse/studio-booking/internal/middleware"
	"github.com/wavehouse/studio-booking/internal/monitoring"
)

func RegisterRoutes(r *gin.Engine, a *app.App) {

	// ======================================================
	// GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(
		middleware.RequestLogger(a.Log),
		middleware.SentryMiddleware(),
		middleware.ErrorReporter(a.Log),
		middleware.PrometheusMiddleware(),
		middleware.CORSMiddleware(a.Config.Server.CORSOrigins),
		middleware.Timeout(a.Config.OperationTimeout),
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	verificationHandler := handlers.NewVerificationHandler(
		a.CheckClient,
		a.CreateSession,
		a.CompleteVerify,
		a.GetStatus,
		a.SendInstructions,
	)

	bookingHandler := handlers.NewBookingHandler(
		a.SubmitBooking,
		a.ConfirmBooking,
		a.CancelBooking,
		a.ListBookings,
	)

	contactHandler := handlers.NewContactHandler(a.SubmitContact)
	authHandler := handlers.NewAuthHandler(a.Config.Admin)
	clientHandler := handlers.NewClientHandler(a.Store.Clients())
	auditLogsHandler := handlers.NewAuditLogsHandler(a.AuditLog)
	healthHandler := handlers.NewHealthHandler(a.DB)

	// ======================================================
	// OPS
	// ======================================================
	r.GET("/", healthHandler.Check)
	r.GET("/health", healthHandler.Check)
	r.GET("/metrics", gin.WrapH(monitoring.Handler()))

	// Legacy path still posted to by the public booking form.
	r.POST("/submit-booking", bookingHandler.Submit)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		api.POST("/submit-booking", bookingHandler.Submit)
		api.POST("/contact", contactHandler.Submit)

		// ------------------------------
		// VERIFICATION
		// ------------------------------
		verification := api.Group("/verification")
		{
			verification.POST("/check-client", verificationHandler.CheckClient)
			verification.POST("/create-session", verificationHandler.CreateSession)
			verification.POST("/send-email", verificationHandler.SendEmail)
			verification.GET("/status/:email", verificationHandler.Status)

			if a.Provider.Name() == identity.ProviderMock {
				verification.POST("/complete-mock", verificationHandler.CompleteMock)
			}

			verification.POST(
				"/mark-verified",
				middleware.AdminAuth(a.Config.Admin.JWTSecret),
				verificationHandler.MarkVerified,
			)
		}

		// ------------------------------
		// ADMIN
		// ------------------------------
		api.POST("/admin/login", authHandler.Login)

		admin := api.Group("/admin")
		admin.Use(middleware.AdminAuth(a.Config.Admin.JWTSecret))
		{
			admin.GET("/bookings", bookingHandler.List)
			admin.PATCH("/bookings/:id/confirm", bookingHandler.Confirm)
			admin.PATCH("/bookings/:id/cancel", bookingHandler.Cancel)

			admin.GET("/clients", clientHandler.List)
			admin.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
