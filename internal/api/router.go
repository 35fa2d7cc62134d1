package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/notarium/notary-api/docs"
	"github.com/notarium/notary-api/internal/api/handler"
	"github.com/notarium/notary-api/internal/api/middleware"
	"github.com/notarium/notary-api/internal/core/domain"
	"github.com/notarium/notary-api/internal/core/ports"
	"github.com/notarium/notary-api/internal/core/service"
	"github.com/notarium/notary-api/internal/infrastructure/config"
	mongodb "github.com/notarium/notary-api/internal/infrastructure/db/mongo"
	redisdb "github.com/notarium/notary-api/internal/infrastructure/db/redis"
	"github.com/notarium/notary-api/internal/infrastructure/gateway/stripe"
	"github.com/notarium/notary-api/internal/infrastructure/templates"
)

// NewRouter builds the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("notary"))

	// --- Repositories ---
	clientRepo := mongodb.NewClientRepository(db)
	caseRepo := mongodb.NewCaseRepository(db)
	appointmentRepo := mongodb.NewAppointmentRepository(db)
	auditRepo := mongodb.NewAuditRepository(db)
	documentRepo := mongodb.NewDocumentRepository(db)
	paymentRepo := mongodb.NewPaymentRepository(db)
	authRepo := mongodb.NewAuthRepository(db)
	templateRepo := templates.NewRepository(templates.Default())

	// --- Services ---
	auditService := service.NewAuditService(auditRepo, log)
	clientService := service.NewClientService(clientRepo, auditService, log)
	caseService := service.NewCaseService(caseRepo, clientRepo, auditService, log)
	calendarLock := redisdb.NewCalendarLock(rdb)
	appointmentService := service.NewAppointmentService(appointmentRepo, auditService, calendarLock, log)
	documentService := service.NewDocumentService(documentRepo, auditService, log)
	templateService := service.NewTemplateService(templateRepo, caseRepo, clientRepo, documentRepo, auditService, log)
	dashboardService := service.NewDashboardService(appointmentRepo, caseRepo, auditRepo, log)
	authService := service.NewAuthService(authRepo, cfg.JWTSecret, 24*time.Hour)

	// Stripe is optional; checkout returns 503 until a key is configured.
	var gateway ports.PaymentGateway
	if cfg.Stripe.SecretKey != "" {
		gateway = stripe.NewCheckoutClient(cfg.Stripe.SecretKey)
	}
	paymentService := service.NewPaymentService(gateway, paymentRepo, auditService, service.CheckoutURLs{
		Success: cfg.Stripe.SuccessURL,
		Cancel:  cfg.Stripe.CancelURL,
	}, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	clientHandler := handler.NewClientHandler(clientService)
	caseHandler := handler.NewCaseHandler(caseService)
	appointmentHandler := handler.NewAppointmentHandler(appointmentService)
	documentHandler := handler.NewDocumentHandler(documentService)
	templateHandler := handler.NewTemplateHandler(templateService)
	paymentHandler := handler.NewPaymentHandler(paymentService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)

	auth := middleware.Auth(cfg.JWTSecret)
	authOptional := middleware.AuthOptional(cfg.JWTSecret)
	staffOnly := middleware.RBAC(domain.RoleNotary, domain.RoleAssistant)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Public routes (anonymous callers act as clients) ---
	e.POST("/v1/appointments", appointmentHandler.Book, authOptional)
	e.GET("/v1/templates", templateHandler.List)
	e.POST("/v1/payments/checkout", paymentHandler.CreateCheckout, authOptional)

	// --- Staff routes ---
	v1 := e.Group("/v1", auth, staffOnly)
	v1.POST("/clients", clientHandler.Create)
	v1.GET("/clients", clientHandler.List)
	v1.POST("/cases", caseHandler.Create)
	v1.GET("/cases", caseHandler.List)
	v1.PATCH("/cases/:id/status", caseHandler.UpdateStatus)
	v1.GET("/appointments", appointmentHandler.List)
	v1.PATCH("/appointments/:id/status", appointmentHandler.UpdateStatus)
	v1.POST("/documents", documentHandler.Create)
	v1.GET("/documents", documentHandler.List)
	v1.POST("/templates/:key/render", templateHandler.Render)
	v1.GET("/dashboard", dashboardHandler.Summary)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Observability and docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
