package prescription

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
	api.POST("/prescriptions", h.Create)
	api.GET("/prescriptions", h.List)
}

func (h *Handler) Create(c echo.Context) error {
	var in CreateInput
	if err := c.Bind(&in); err != nil {
		return respond.Error(c, apperr.New(apperr.Validation, "invalid request body"))
	}

	p, err := h.svc.Create(c.Request().Context(), auth.FromContext(c.Request().Context()), in)
	if err != nil {
		return respond.Error(c, err)
	}

	return respond.Data(c, map[string]interface{}{
		"message":      "Prescription saved successfully.",
		"prescription": p,
	})
}

func (h *Handler) List(c echo.Context) error {
	items, err := h.svc.ListFor(c.Request().Context(), auth.FromContext(c.Request().Context()))
	if err != nil {
		return respond.Error(c, err)
	}
	if items == nil {
		items = []*Prescription{}
	}
	return respond.Data(c, map[string]interface{}{"prescriptions": items})
}
