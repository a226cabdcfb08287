package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Leonardo2020-col/Hotel-management-demo-V2-sub002/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Reports     ReportService
	DB          Pinger // opcional
	ServiceName string
	JWTSecret   string
	JWTIssuer   string
	Logger      *logger.Logger
}

// Router registra middlewares y rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Logger
	if log == nil {
		log = logger.Nop()
	}
	app.Use(RequestID(), RequestLogger(log.Named("http")))

	// Health (público)
	app.Get("/health", HealthHandler(deps.ServiceName, deps.DB))

	api := app.Group("/api")

	// Reportes (protegido, acotado a la sucursal del token)
	reportsGroup := api.Group("/reports", AuthMiddleware(deps.JWTSecret, deps.JWTIssuer), RequireBranch())
	reportHandler := NewReportHandler(deps.Reports)
	reportsGroup.Get("/:type", reportHandler.Get)
}
