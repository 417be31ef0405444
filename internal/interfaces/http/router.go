package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/saftpt-validator/internal/application/audit"
	"github.com/jhoicas/saftpt-validator/pkg/jwt"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ValidationUC *audit.ValidationUseCase
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Rutas protegidas (requieren Bearer Token y rol admin o auditor)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret), RequireRole(jwt.RoleAdmin, jwt.RoleAuditor))

	validations := protected.Group("/validations")
	h := NewValidationHandler(deps.ValidationUC)
	validations.Post("/", h.Create)
	validations.Get("/", h.List)
	validations.Get("/:id", h.GetByID)
	validations.Get("/:id/pdf", h.PDF)
}
