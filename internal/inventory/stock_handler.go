package inventory

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"inventory-backend/internal/validation"
)

type UpdateQuantityRequest struct {
	Quantity *int64 `json:"quantity" validate:"required,gte=0"`
}

// SellRequest rejects zero and negative amounts up front; only a positive
// amount can reach the stock check.
type SellRequest struct {
	Quantity *int64 `json:"quantity" validate:"required,gt=0"`
}

// PATCH /api/inventory/:id/quantity
func UpdateQuantityHandler(store *Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseProductID(c)
		if err != nil {
			return err
		}

		var body UpdateQuantityRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusUnprocessableEntity, "Invalid request body")
		}
		if err := validation.Struct(body); err != nil {
			return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
		}

		p, err := store.UpdateQuantity(c.UserContext(), id, *body.Quantity)
		if err != nil {
			if errors.Is(err, ErrProductNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Product not found")
			}
			return err
		}
		return c.JSON(toProductResponse(p))
	}
}

// PATCH /api/inventory/:id/sell
func SellProductHandler(store *Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseProductID(c)
		if err != nil {
			return err
		}

		var body SellRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusUnprocessableEntity, "Invalid request body")
		}
		if err := validation.Struct(body); err != nil {
			return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
		}

		p, err := store.Sell(c.UserContext(), id, *body.Quantity)
		if err != nil {
			if errors.Is(err, ErrProductNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Product not found")
			}
			var insufficient *InsufficientStockError
			if errors.As(err, &insufficient) {
				return fiber.NewError(fiber.StatusBadRequest, insufficient.Error())
			}
			return err
		}
		return c.JSON(toProductResponse(p))
	}
}

// GET /api/inventory/low-stock?threshold=5
func LowStockHandler(store *Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var threshold *int64
		if raw := c.Query("threshold"); raw != "" {
			t, err := strconv.ParseInt(raw, 10, 64)
			if err != nil || t < 0 {
				return fiber.NewError(fiber.StatusBadRequest, "Invalid threshold")
			}
			threshold = &t
		}

		products, err := store.LowStock(c.UserContext(), threshold)
		if err != nil {
			return err
		}

		res := make([]ProductResponse, 0, len(products))
		for _, p := range products {
			res = append(res, toProductResponse(p))
		}
		return c.JSON(res)
	}
}
