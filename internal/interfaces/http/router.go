package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/ganaderia-aureo/pupilaje-api/internal/application/analytics"
	"github.com/ganaderia-aureo/pupilaje-api/internal/application/billing"
	"github.com/ganaderia-aureo/pupilaje-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ClientUC     *usecase.ClientUseCase
	AnimalUC     *usecase.AnimalUseCase
	SettingsUC   *usecase.SettingsUseCase
	DraftUC      *billing.DraftUseCase
	DiscountUC   *billing.DiscountUseCase
	IssueUC      *billing.IssueUseCase
	InvoiceQuery *billing.QueryUseCase
	DashboardUC  *analytics.DashboardUseCase
	JWTSecret    string
	JWTIssuer    string
	// AllowedRoles vacío = cualquier token válido accede a /api.
	AllowedRoles []string
	// Now reloj del dashboard; nil = time.Now.
	Now func() time.Time
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Rutas protegidas (requieren Bearer Token)
	handlers := []fiber.Handler{AuthMiddleware(deps.JWTSecret, deps.JWTIssuer)}
	if len(deps.AllowedRoles) > 0 {
		handlers = append(handlers, RequireRole(deps.AllowedRoles...))
	}
	api := app.Group("/api", handlers...)

	// Invoices
	invoices := api.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.DraftUC, deps.DiscountUC, deps.IssueUC, deps.InvoiceQuery)
	invoices.Post("/drafts", invoiceHandler.GenerateDrafts)
	invoices.Get("/", invoiceHandler.List)
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Put("/:id/discount", invoiceHandler.EditDiscount)
	invoices.Post("/:id/issue", invoiceHandler.Issue)
	invoices.Get("/:id/pdf", invoiceHandler.PDF)

	// Clients (initials antes de /:id)
	clients := api.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Get("/initials", clientHandler.Initials)
	clients.Post("/", clientHandler.Create)
	clients.Get("/", clientHandler.List)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Put("/:id", clientHandler.Update)
	clients.Delete("/:id", clientHandler.Delete)

	// Animals
	animals := api.Group("/animals")
	animalHandler := NewAnimalHandler(deps.AnimalUC)
	animals.Get("/export", animalHandler.Export)
	animals.Post("/", animalHandler.Create)
	animals.Get("/", animalHandler.List)
	animals.Get("/:id", animalHandler.GetByID)
	animals.Put("/:id", animalHandler.Update)
	animals.Delete("/:id", animalHandler.Delete)

	dashboardHandler := NewDashboardHandler(deps.DashboardUC, deps.Now)
	api.Get("/dashboard", dashboardHandler.GetSummary)

	settingsHandler := NewSettingsHandler(deps.SettingsUC)
	api.Get("/settings/issuer", settingsHandler.GetIssuer)
	api.Put("/settings/issuer", settingsHandler.SaveIssuer)
}
