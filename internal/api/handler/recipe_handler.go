package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/miseboard/kitchen-api/internal/core/domain"
	"github.com/miseboard/kitchen-api/internal/core/ports"
)

// RecipeHandler handles recipe card routes.
type RecipeHandler struct {
	service ports.RecipeService
}

func NewRecipeHandler(service ports.RecipeService) *RecipeHandler {
	return &RecipeHandler{service: service}
}

type createRecipeRequest struct {
	Name    string `json:"name"    validate:"required"`
	Steps   string `json:"steps"   validate:"required"`
	Station string `json:"station" validate:"required"`
}

type recipeResponse struct {
	Message string         `json:"message"`
	Recipe  *domain.Recipe `json:"recipe"`
}

// Create handles POST /recipes (admin only).
//
// @Summary      Create a recipe
// @Tags         recipes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createRecipeRequest  true  "Recipe"
// @Success      201   {object}  recipeResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /recipes [post]
func (h *RecipeHandler) Create(c echo.Context) error {
	var req createRecipeRequest
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

	recipe, err := h.service.Create(c.Request().Context(), req.Name, req.Steps, req.Station, id.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, recipeResponse{Message: "recipe saved", Recipe: recipe})
}

// List handles GET /recipes.
//
// @Summary      List recipes
// @Tags         recipes
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Recipe
// @Failure      401  {object}  map[string]string
// @Router       /recipes [get]
func (h *RecipeHandler) List(c echo.Context) error {
	recipes, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, recipes)
}

// Delete handles DELETE /recipes/:id (admin only).
//
// @Summary      Delete a recipe
// @Tags         recipes
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Recipe ID"
// @Success      200  {object}  recipeResponse
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /recipes/{id} [delete]
func (h *RecipeHandler) Delete(c echo.Context) error {
	deleted, err := h.service.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, recipeResponse{Message: "recipe deleted", Recipe: deleted})
}
