package pharmacy

import (
	"github.com/labstack/echo/v4"

	"github.com/carebook/carebook/internal/platform/apperr"
	"github.com/carebook/carebook/internal/platform/auth"
	"github.com/carebook/carebook/pkg/respond"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/order-medicine", h.PlaceOrder)
	api.GET("/orders", h.List)
}

func (h *Handler) PlaceOrder(c echo.Context) error {
	var in OrderInput
	// Strict JSON decoding: a quantity or price that is not a number fails
	// here instead of being silently coerced to zero.
	if err := c.Bind(&in); err != nil {
		return respond.Error(c, apperr.New(apperr.Validation,
			"invalid request body: quantities and prices must be numbers"))
	}

	o, err := h.svc.PlaceOrder(c.Request().Context(), auth.FromContext(c.Request().Context()), in)
	if err != nil {
		return respond.Error(c, err)
	}

	return respond.Data(c, map[string]interface{}{
		"message":    "Order placed successfully.",
		"orderId":    o.ID,
		"totalPrice": o.TotalPrice,
	})
}

func (h *Handler) List(c echo.Context) error {
	orders, err := h.svc.ListFor(c.Request().Context(), auth.FromContext(c.Request().Context()))
	if err != nil {
		return respond.Error(c, err)
	}
	if orders == nil {
		orders = []*MedicineOrder{}
	}
	return respond.Data(c, map[string]interface{}{"orders": orders})
}
