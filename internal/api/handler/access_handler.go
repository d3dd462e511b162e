package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/miseboard/kitchen-api/internal/core/ports"
)

// AccessRequestHandler handles the public access-request intake and the
// admin review listing.
type AccessRequestHandler struct {
	service ports.AccessRequestService
}

func NewAccessRequestHandler(service ports.AccessRequestService) *AccessRequestHandler {
	return &AccessRequestHandler{service: service}
}

type accessRequestRequest struct {
	Name    string `json:"name"    validate:"required"`
	Email   string `json:"email"   validate:"required,email"`
	Message string `json:"message" validate:"max=1000"`
}

// Submit handles POST /access-requests. No auth: this is how outsiders ask
// for a registration key in the first place.
//
// @Summary      Request access to the kitchen board
// @Tags         access
// @Accept       json
// @Produce      json
// @Param        body  body      accessRequestRequest  true  "Request"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Router       /access-requests [post]
func (h *AccessRequestHandler) Submit(c echo.Context) error {
	var req accessRequestRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if _, err := h.service.Submit(c.Request().Context(), req.Name, req.Email, req.Message); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, map[string]string{"message": "access request received"})
}

// List handles GET /access-requests (admin only).
//
// @Summary      List access requests
// @Tags         access
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.AccessRequest
// @Failure      403  {object}  map[string]string
// @Router       /access-requests [get]
func (h *AccessRequestHandler) List(c echo.Context) error {
	reqs, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, reqs)
}
