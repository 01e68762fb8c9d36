package stubserver

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/ecogest/ecogest-go/internal/application/dto"
	"github.com/ecogest/ecogest-go/pkg/config"
	"github.com/ecogest/ecogest-go/pkg/logger"
)

// New monta o app fiber com todas as rotas sobre o dataset informado.
func New(d *Dataset, cfg config.StubConfig, log *logger.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "ecogest-stub",
		DisableStartupMessage: true,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			log.Error().Err(err).Int("status", code).Str("path", c.Path()).Msg("erro não tratado")
			return c.Status(code).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		},
	})
	app.Use(recover.New())

	// Público
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	app.Post("/login", loginHandler(d, cfg))

	// Protegido (Bearer)
	protected := app.Group("/", authMiddleware(cfg.JWTSecret))

	persons := protected.Group("/person")
	persons.Get("/", listPersons(d))
	persons.Post("/", createPerson(d))
	persons.Get("/:id", getPerson(d))
	persons.Put("/:id", updatePerson(d))
	persons.Delete("/:id", deletePerson(d))

	products := protected.Group("/product")
	products.Get("/", listProducts(d))
	products.Post("/", createProduct(d))
	products.Get("/:id", getProduct(d))
	products.Get("/:id/receipt", getProductReceipt(d))
	products.Put("/:id", updateProduct(d))
	products.Delete("/:id", deleteProduct(d))

	employees := protected.Group("/employee")
	employees.Get("/", listEmployees(d))
	employees.Post("/", createEmployee(d))
	employees.Get("/:id", getEmployee(d))
	employees.Put("/:id", updateEmployee(d))
	employees.Delete("/:id", deleteEmployee(d))

	entries := protected.Group("/entry")
	entries.Get("/", listEntries(d))
	entries.Post("/", createEntry(d))
	entries.Get("/:id", getEntry(d))
	entries.Put("/:id", updateEntry(d))
	entries.Delete("/:id", deleteEntry(d))

	sales := protected.Group("/sale")
	sales.Get("/", listSales(d))
	sales.Post("/", createSale(d))
	sales.Get("/:id", getSale(d))
	sales.Get("/:id/receipt", getSaleReceipt(d))
	sales.Put("/:id", updateSale(d))
	sales.Delete("/:id", deleteSale(d))

	purchases := protected.Group("/purchase")
	purchases.Get("/", listPurchases(d))
	purchases.Post("/", createPurchase(d))
	purchases.Get("/:id", getPurchase(d))
	purchases.Get("/:id/payment-slip", getPaymentSlip(d))
	purchases.Put("/:id", updatePurchase(d))
	purchases.Delete("/:id", deletePurchase(d))

	// Grafias históricas do contrato: /payble e /recive.
	paybles := protected.Group("/payble")
	paybles.Get("/", listPaybles(d))
	paybles.Get("/:id", getPayble(d))
	paybles.Patch("/:id/status", updatePaybleStatus(d))
	paybles.Patch("/:id/payment", payPayble(d))

	recives := protected.Group("/recive")
	recives.Get("/", listRecives(d))
	recives.Get("/:id", getRecive(d))
	recives.Patch("/:id/status", updateReciveStatus(d))
	recives.Patch("/:id/payment", payRecive(d))

	kpi := protected.Group("/kpi")
	kpi.Get("/cash-flow/monthly", cashFlowMonthly(d))
	kpi.Get("/cash-flow/daily", cashFlowDaily(d))
	kpi.Get("/balance", balance(d))
	kpi.Get("/payble-counts", paybleCounts(d))
	kpi.Get("/recive-counts", reciveCounts(d))

	return app
}
