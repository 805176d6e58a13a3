package rental

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	rs "github.com/rakeshMoramreddy/Peer-to-Peer-Rental-Platform/service/rental"
)

type Controller struct {
	Svc rs.Service
	V   *validator.Validate
	Log *slog.Logger
}

// POST /api/rentals
func (h *Controller) Open(c echo.Context) error {
	var req OpenRentalReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Missing rental details"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Missing rental details"})
	}

	start, err := rs.ParseDate(req.StartDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid dates"})
	}
	end, err := rs.ParseDate(req.EndDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid dates"})
	}

	rental, err := h.Svc.Open(c.Request().Context(), req.ItemID, start, end)
	if err != nil {
		switch rs.Code(err) {
		case rs.ErrItemNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Item not found"})
		case rs.ErrNotAvailable:
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Item is not available"})
		case rs.ErrInvalidDates:
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid dates"})
		case rs.ErrDateConflict:
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Item already booked for these dates"})
		default:
			h.Log.Error("rental open", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Rental failed"})
		}
	}

	return c.JSON(http.StatusCreated, rental)
}

// POST /api/rentals/:id/return
func (h *Controller) Return(c echo.Context) error {
	rental, err := h.Svc.Close(c.Request().Context(), c.Param("id"))
	if err != nil {
		switch rs.Code(err) {
		case rs.ErrNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Rental not found"})
		case rs.ErrAlreadyReturned:
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Item already returned"})
		default:
			h.Log.Error("rental return", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Return failed"})
		}
	}
	return c.JSON(http.StatusOK, rental)
}

// GET /api/items/:id/history
func (h *Controller) History(c echo.Context) error {
	rentals, err := h.Svc.History(c.Request().Context(), c.Param("id"))
	if err != nil {
		if rs.Code(err) == rs.ErrItemNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Item not found"})
		}
		h.Log.Error("rental history", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Could not get rental history"})
	}
	return c.JSON(http.StatusOK, rentals)
}
