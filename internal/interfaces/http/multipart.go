package http

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/rasan-admin-api/internal/application/dto"
)

// formImage abre el archivo del campo field. Si el formulario no trae archivo devuelve nil.
// El llamador debe cerrar el io.Closer devuelto.
func formImage(c *fiber.Ctx, field string) (*dto.FileUpload, io.Closer, error) {
	fh, err := c.FormFile(field)
	if err != nil || fh == nil {
		return nil, nil, nil
	}
	f, err := fh.Open()
	if err != nil {
		return nil, nil, fmt.Errorf("abrir %s: %w", field, err)
	}
	return &dto.FileUpload{Filename: fh.Filename, Content: f}, f, nil
}

func closeQuietly(cl io.Closer) {
	if cl != nil {
		_ = cl.Close()
	}
}

// formDecimal lee un decimal del formulario; vacío = nil.
func formDecimal(c *fiber.Ctx, field string) (*decimal.Decimal, error) {
	raw := strings.TrimSpace(c.FormValue(field))
	if raw == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, fmt.Errorf("%s debe ser numérico", field)
	}
	return &d, nil
}

// parseProductForm arma el ProductRequest desde JSON o multipart.
// En multipart quantity_options viaja como texto JSON.
func parseProductForm(c *fiber.Ctx) (dto.ProductRequest, error) {
	var in dto.ProductRequest
	if c.Is("json") {
		if err := c.BodyParser(&in); err != nil {
			return in, fmt.Errorf("cuerpo inválido")
		}
		return in, nil
	}

	in.Name = c.FormValue("name")
	in.Description = c.FormValue("description")
	in.CategoryID = c.FormValue("category_id")

	var err error
	if in.Price, err = formDecimal(c, "price"); err != nil {
		return in, err
	}
	if in.Discount, err = formDecimal(c, "discount"); err != nil {
		return in, err
	}
	if raw := strings.TrimSpace(c.FormValue("stock_quantity")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return in, fmt.Errorf("stock_quantity debe ser entero")
		}
		in.StockQuantity = &n
	}
	if raw := strings.TrimSpace(c.FormValue("quantity_options")); raw != "" {
		if err := json.Unmarshal([]byte(raw), &in.QuantityOptions); err != nil {
			return in, fmt.Errorf("quantity_options debe ser un arreglo JSON")
		}
	}
	return in, nil
}

// parseCategoryForm arma el CategoryRequest desde JSON o multipart.
func parseCategoryForm(c *fiber.Ctx) (dto.CategoryRequest, error) {
	var in dto.CategoryRequest
	if c.Is("json") {
		if err := c.BodyParser(&in); err != nil {
			return in, fmt.Errorf("cuerpo inválido")
		}
		return in, nil
	}
	in.Name = c.FormValue("name")
	in.Description = c.FormValue("description")
	if raw := strings.TrimSpace(c.FormValue("is_active")); raw != "" {
		active, err := strconv.ParseBool(raw)
		if err != nil {
			return in, fmt.Errorf("is_active debe ser true o false")
		}
		in.IsActive = &active
	}
	return in, nil
}
