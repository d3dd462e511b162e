package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/miseboard/kitchen-api/internal/core/domain"
	"github.com/miseboard/kitchen-api/internal/core/ports"
)

// PrepLogHandler handles per-cook prep log routes.
type PrepLogHandler struct {
	service ports.PrepLogService
}

func NewPrepLogHandler(service ports.PrepLogService) *PrepLogHandler {
	return &PrepLogHandler{service: service}
}

type prepItemRequest struct {
	Name string  `json:"name" validate:"required"`
	Qty  float64 `json:"qty"  validate:"required,gt=0"`
	Note string  `json:"note,omitempty"`
}

type createPrepLogRequest struct {
	Date  *time.Time        `json:"date,omitempty"`
	Items []prepItemRequest `json:"items" validate:"required,min=1,dive"`
}

type prepLogResponse struct {
	Message string          `json:"message"`
	Log     *domain.PrepLog `json:"log"`
}

// Create handles POST /prep-logs. The log is always attributed to the
// authenticated caller; date defaults to now.
//
// @Summary      Record a prep log
// @Tags         prep-logs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createPrepLogRequest  true  "Prep log"
// @Success      201   {object}  prepLogResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /prep-logs [post]
func (h *PrepLogHandler) Create(c echo.Context) error {
	var req createPrepLogRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	items := make([]domain.PrepItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, domain.PrepItem{Name: it.Name, Qty: it.Qty, Note: it.Note})
	}

	date := time.Time{}
	if req.Date != nil {
		date = *req.Date
	}

	log, err := h.service.Record(c.Request().Context(), id.UserID, date, items)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, prepLogResponse{Message: "prep log recorded", Log: log})
}

// List handles GET /prep-logs: the caller's own logs, newest first.
//
// @Summary      List your prep logs
// @Tags         prep-logs
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.PrepLog
// @Failure      401  {object}  map[string]string
// @Router       /prep-logs [get]
func (h *PrepLogHandler) List(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	logs, err := h.service.ListByUser(c.Request().Context(), id.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, logs)
}
