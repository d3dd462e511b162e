package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/miseboard/kitchen-api/internal/core/domain"
	"github.com/miseboard/kitchen-api/internal/core/ports"
)

// CleaningHandler handles cleaning board routes.
type CleaningHandler struct {
	service ports.CleaningService
}

func NewCleaningHandler(service ports.CleaningService) *CleaningHandler {
	return &CleaningHandler{service: service}
}

type createCleaningRequest struct {
	Title       string `json:"title"       validate:"required"`
	Description string `json:"description" validate:"required"`
}

type cleaningResponse struct {
	Message string               `json:"message"`
	Task    *domain.CleaningTask `json:"task"`
}

// Create handles POST /cleaning.
//
// @Summary      Add a cleaning task
// @Tags         cleaning
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createCleaningRequest  true  "Task"
// @Success      201   {object}  cleaningResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /cleaning [post]
func (h *CleaningHandler) Create(c echo.Context) error {
	var req createCleaningRequest
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

	task, err := h.service.Create(c.Request().Context(), req.Title, req.Description, id.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, cleaningResponse{Message: "cleaning task saved", Task: task})
}

// List handles GET /cleaning, newest first.
//
// @Summary      List cleaning tasks
// @Tags         cleaning
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.CleaningTask
// @Failure      401  {object}  map[string]string
// @Router       /cleaning [get]
func (h *CleaningHandler) List(c echo.Context) error {
	tasks, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tasks)
}

// Delete handles DELETE /cleaning/:id (admin only).
//
// @Summary      Delete a cleaning task
// @Tags         cleaning
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Task ID"
// @Success      200  {object}  cleaningResponse
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /cleaning/{id} [delete]
func (h *CleaningHandler) Delete(c echo.Context) error {
	deleted, err := h.service.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cleaningResponse{Message: "cleaning task deleted", Task: deleted})
}
