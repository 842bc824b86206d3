package scheduling

import (
	"strconv"

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

// RegisterRoutes mounts the appointment endpoints. api must already carry the
// identity middleware; admin additionally carries the admin role gate.
func (h *Handler) RegisterRoutes(api *echo.Group, admin *echo.Group) {
	api.POST("/book-appointment", h.Book)
	api.GET("/appointments", h.List)
	api.PUT("/appointments/:id/status", h.UpdateStatus)

	admin.GET("/appointments", h.AdminList)
	admin.PUT("/appointments/:id/cancel", h.AdminCancel)
}

func (h *Handler) Book(c echo.Context) error {
	var in BookInput
	if err := c.Bind(&in); err != nil {
		return respond.Error(c, apperr.New(apperr.Validation, "invalid request body"))
	}

	appt, err := h.svc.Book(c.Request().Context(), auth.FromContext(c.Request().Context()), in)
	if err != nil {
		return respond.Error(c, err)
	}

	return respond.Data(c, map[string]interface{}{
		"message":     "Appointment booked successfully (pending approval).",
		"appointment": appt,
	})
}

func (h *Handler) List(c echo.Context) error {
	appts, err := h.svc.ListFor(c.Request().Context(), auth.FromContext(c.Request().Context()))
	if err != nil {
		return respond.Error(c, err)
	}
	if appts == nil {
		appts = []*Appointment{}
	}
	return respond.Data(c, map[string]interface{}{"appointments": appts})
}

func (h *Handler) UpdateStatus(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return respond.Error(c, err)
	}

	var in struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&in); err != nil {
		return respond.Error(c, apperr.New(apperr.Validation, "invalid request body"))
	}

	appt, err := h.svc.Decide(c.Request().Context(), auth.FromContext(c.Request().Context()), id, in.Status)
	if err != nil {
		return respond.Error(c, err)
	}

	return respond.Data(c, map[string]interface{}{
		"message":     "Appointment " + appt.Status + ".",
		"appointment": appt,
	})
}

func (h *Handler) AdminList(c echo.Context) error {
	appts, err := h.svc.ListAll(c.Request().Context(), auth.FromContext(c.Request().Context()))
	if err != nil {
		return respond.Error(c, err)
	}
	if appts == nil {
		appts = []*Appointment{}
	}
	return respond.Data(c, map[string]interface{}{"appointments": appts})
}

func (h *Handler) AdminCancel(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return respond.Error(c, err)
	}

	appt, err := h.svc.Cancel(c.Request().Context(), auth.FromContext(c.Request().Context()), id)
	if err != nil {
		return respond.Error(c, err)
	}

	return respond.Data(c, map[string]interface{}{
		"message":     "Appointment cancelled.",
		"appointment": appt,
	})
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperr.New(apperr.Validation, "invalid appointment id %q", raw)
	}
	return id, nil
}
