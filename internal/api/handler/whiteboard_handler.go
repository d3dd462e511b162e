package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/miseboard/kitchen-api/internal/core/domain"
	"github.com/miseboard/kitchen-api/internal/core/ports"
)

// WhiteboardHandler handles the shared prep board routes.
type WhiteboardHandler struct {
	service ports.WhiteboardService
}

func NewWhiteboardHandler(service ports.WhiteboardService) *WhiteboardHandler {
	return &WhiteboardHandler{service: service}
}

// Pointer fields distinguish "absent" from "empty": blanking the board is a
// valid write, a missing field is not.
type saveWhiteboardRequest struct {
	TodayPrep    *string `json:"todayPrep"`
	TomorrowPrep *string `json:"tomorrowPrep"`
}

type whiteboardResponse struct {
	Message    string             `json:"message"`
	Whiteboard *domain.Whiteboard `json:"whiteboard"`
}

// Get handles GET /whiteboard. A never-written board reads as empty.
//
// @Summary      Read the prep whiteboard
// @Tags         whiteboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.Whiteboard
// @Failure      401  {object}  map[string]string
// @Router       /whiteboard [get]
func (h *WhiteboardHandler) Get(c echo.Context) error {
	board, err := h.service.Get(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, board)
}

// Save handles POST /whiteboard. Both fields are required so a partial
// update can never silently blank half the board; empty strings are valid.
//
// @Summary      Save the prep whiteboard
// @Tags         whiteboard
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      saveWhiteboardRequest  true  "Board contents"
// @Success      200   {object}  whiteboardResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /whiteboard [post]
func (h *WhiteboardHandler) Save(c echo.Context) error {
	var req saveWhiteboardRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if req.TodayPrep == nil || req.TomorrowPrep == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "todayPrep and tomorrowPrep must be strings")
	}

	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	board, err := h.service.Save(c.Request().Context(), id.UserID, *req.TodayPrep, *req.TomorrowPrep)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, whiteboardResponse{Message: "whiteboard saved", Whiteboard: board})
}
