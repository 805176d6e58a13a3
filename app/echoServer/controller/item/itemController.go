package item

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/rakeshMoramreddy/Peer-to-Peer-Rental-Platform/model"
	itemsvc "github.com/rakeshMoramreddy/Peer-to-Peer-Rental-Platform/service/item"
)

type Controller struct {
	Svc itemsvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

// POST /api/items
func (h *Controller) Create(c echo.Context) error {
	var req CreateItemReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Missing required fields"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Missing required fields"})
	}

	it, err := h.Svc.Create(c.Request().Context(), req.Name, req.Description, *req.Price)
	if err != nil {
		switch itemsvc.Code(err) {
		case itemsvc.ErrBadInput:
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Missing required fields"})
		case itemsvc.ErrBadPrice:
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Price must be positive"})
		default:
			h.Log.Error("item create", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Something went wrong"})
		}
	}

	return c.JSON(http.StatusCreated, it)
}

// GET /api/items
func (h *Controller) List(c echo.Context) error {
	var f model.SearchFilters
	if v := c.QueryParam("search"); v != "" {
		f.Text = &v
	}
	min, err := priceParam(c, "minPrice")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid minPrice"})
	}
	f.MinPrice = min
	max, err := priceParam(c, "maxPrice")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid maxPrice"})
	}
	f.MaxPrice = max

	items, err := h.Svc.Search(c.Request().Context(), f)
	if err != nil {
		h.Log.Error("item search", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Search failed"})
	}
	return c.JSON(http.StatusOK, items)
}

// GET /api/items/:id
func (h *Controller) Detail(c echo.Context) error {
	it, err := h.Svc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		if itemsvc.Code(err) == itemsvc.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Item not found"})
		}
		h.Log.Error("item detail", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Something went wrong"})
	}
	return c.JSON(http.StatusOK, it)
}

func priceParam(c echo.Context, name string) (*float64, error) {
	v := c.QueryParam(name)
	if v == "" {
		return nil, nil
	}
	p, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
