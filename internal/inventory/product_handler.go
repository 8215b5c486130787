package inventory

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"inventory-backend/internal/models"
	"inventory-backend/internal/validation"
)

type ProductResponse struct {
	ProductID   uint    `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int64   `json:"quantity"`
	Price       float64 `json:"price"`
	IsDeleted   bool    `json:"is_deleted"`
}

// CreateProductRequest uses pointer fields for quantity and price so that an
// omitted field and an explicit zero stay distinguishable: quantity 0 is a
// valid submission, a missing quantity is not.
type CreateProductRequest struct {
	ProductName string   `json:"product_name" validate:"required,min=1,max=255"`
	Quantity    *int64   `json:"quantity" validate:"required,gte=0"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
}

type UpdateProductRequest struct {
	ProductName *string  `json:"product_name" validate:"omitempty,min=1,max=255"`
	Quantity    *int64   `json:"quantity" validate:"omitempty,gte=0"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
}

func toProductResponse(p models.Product) ProductResponse {
	return ProductResponse{
		ProductID:   p.ProductID,
		ProductName: p.ProductName,
		Quantity:    p.Quantity,
		Price:       p.Price,
		IsDeleted:   p.IsDeleted,
	}
}

func parseProductID(c *fiber.Ctx) (uint, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id < 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "Invalid product id")
	}
	return uint(id), nil
}

// POST /api/inventory/
func CreateProductHandler(store *Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateProductRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusUnprocessableEntity, "Invalid request body")
		}
		if err := validation.Struct(body); err != nil {
			return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
		}

		params := CreateProductParams{
			Name:     body.ProductName,
			Quantity: *body.Quantity,
		}
		if body.Price != nil {
			params.Price = *body.Price
		}

		p, err := store.Create(c.UserContext(), params)
		if err != nil {
			return err
		}
		return c.JSON(toProductResponse(p))
	}
}

// GET /api/inventory/?include_deleted=true
func ListProductsHandler(store *Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		includeDeleted := c.QueryBool("include_deleted")

		products, err := store.List(c.UserContext(), includeDeleted)
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

// GET /api/inventory/:id
func GetProductHandler(store *Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseProductID(c)
		if err != nil {
			return err
		}

		p, err := store.Get(c.UserContext(), id)
		if err != nil {
			if errors.Is(err, ErrProductNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Product not found")
			}
			return err
		}
		return c.JSON(toProductResponse(p))
	}
}

// PATCH /api/inventory/:id
func UpdateProductHandler(store *Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseProductID(c)
		if err != nil {
			return err
		}

		var body UpdateProductRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusUnprocessableEntity, "Invalid request body")
		}
		if err := validation.Struct(body); err != nil {
			return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
		}
		// omitempty skips an empty string after dereferencing, so a present
		// but blank name has to be rejected here.
		if body.ProductName != nil && *body.ProductName == "" {
			return fiber.NewError(fiber.StatusUnprocessableEntity, "product_name: must be at least 1 characters")
		}

		p, err := store.Update(c.UserContext(), id, UpdateProductParams{
			Name:     body.ProductName,
			Quantity: body.Quantity,
			Price:    body.Price,
		})
		if err != nil {
			if errors.Is(err, ErrProductNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Product not found")
			}
			return err
		}
		return c.JSON(toProductResponse(p))
	}
}

// DELETE /api/inventory/:id
func DeleteProductHandler(store *Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseProductID(c)
		if err != nil {
			return err
		}

		if err := store.Delete(c.UserContext(), id); err != nil {
			if errors.Is(err, ErrProductNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Product not found")
			}
			return err
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
