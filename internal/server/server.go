package server

import (
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"gorm.io/gorm"

	"inventory-backend/internal/config"
	"inventory-backend/internal/inventory"
)

// New builds the fiber application with all routes registered.
func New(cfg *config.Config, db *gorm.DB) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			slog.Error("unexpected error", "method", c.Method(), "path", c.Path(), "error", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Internal server error",
			})
		},
	})

	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET,POST,PATCH,DELETE,OPTIONS",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Inventory Management API"})
	})

	store := inventory.NewStore(db, cfg.LowStockThreshold)

	api := app.Group("/api")
	inv := api.Group("/inventory")

	inv.Post("/", inventory.CreateProductHandler(store))
	inv.Get("/", inventory.ListProductsHandler(store))

	// Registered before the :id routes so "low-stock" is not read as an id.
	inv.Get("/low-stock", inventory.LowStockHandler(store))

	inv.Get("/:id", inventory.GetProductHandler(store))
	inv.Patch("/:id", inventory.UpdateProductHandler(store))
	inv.Patch("/:id/quantity", inventory.UpdateQuantityHandler(store))
	inv.Patch("/:id/sell", inventory.SellProductHandler(store))
	inv.Delete("/:id", inventory.DeleteProductHandler(store))

	return app
}
