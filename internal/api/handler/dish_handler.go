package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/restaurant-platform/restaurant-api/internal/api/metrics"
	"github.com/restaurant-platform/restaurant-api/internal/core/domain"
	"github.com/restaurant-platform/restaurant-api/internal/core/ports"
)

// DishHandler handles HTTP requests for the menu. Reads are public; writes
// are gated to Admin/Manager at the routing layer.
type DishHandler struct {
	service ports.DishService
}

func NewDishHandler(service ports.DishService) *DishHandler {
	return &DishHandler{service: service}
}

func dishID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// Create handles POST /dishes.
//
// @Summary      Add a dish to the menu
// @Tags         dishes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createDishRequest  true  "Dish details"
// @Success      201   {object}  domain.Dish
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /dishes [post]
func (h *DishHandler) Create(c echo.Context) error {
	var req createDishRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	dish, err := h.service.Create(c.Request().Context(), ports.CreateDishInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
	})
	if err != nil {
		if errors.Is(err, domain.ErrNegativePrice) {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
	}

	metrics.RecordsMutatedTotal.WithLabelValues("dish", "create").Inc()
	return c.JSON(http.StatusCreated, dish)
}

// Get handles GET /dishes/:id. No auth required.
//
// @Summary      Get a dish
// @Tags         dishes
// @Produce      json
// @Param        id   path      int  true  "Dish id"
// @Success      200  {object}  domain.Dish
// @Failure      404  {object}  errorResponse
// @Router       /dishes/{id} [get]
func (h *DishHandler) Get(c echo.Context) error {
	id, err := dishID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, errorResponse{Error: "dish not found"})
	}

	dish, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrDishNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "dish not found"})
		}
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
	}

	return c.JSON(http.StatusOK, dish)
}

// List handles GET /dishes. No auth required.
//
// @Summary      List the menu
// @Tags         dishes
// @Produce      json
// @Success      200  {array}  domain.Dish
// @Router       /dishes [get]
func (h *DishHandler) List(c echo.Context) error {
	dishes, err := h.service.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, dishes)
}

// Update handles PUT /dishes/:id. Omitted fields keep their stored value.
//
// @Summary      Update a dish
// @Tags         dishes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                true  "Dish id"
// @Param        body  body      updateDishRequest  true  "Fields to change"
// @Success      200   {object}  domain.Dish
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /dishes/{id} [put]
func (h *DishHandler) Update(c echo.Context) error {
	id, err := dishID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, errorResponse{Error: "dish not found"})
	}

	var req updateDishRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	dish, err := h.service.Update(c.Request().Context(), id, ports.UpdateDishInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDishNotFound):
			return c.JSON(http.StatusNotFound, errorResponse{Error: "dish not found"})
		case errors.Is(err, domain.ErrNegativePrice):
			return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
	}

	metrics.RecordsMutatedTotal.WithLabelValues("dish", "update").Inc()
	return c.JSON(http.StatusOK, dish)
}

// Delete handles DELETE /dishes/:id.
//
// @Summary      Delete a dish
// @Tags         dishes
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Dish id"
// @Success      200  {object}  messageResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /dishes/{id} [delete]
func (h *DishHandler) Delete(c echo.Context) error {
	id, err := dishID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, errorResponse{Error: "dish not found"})
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, domain.ErrDishNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "dish not found"})
		}
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
	}

	metrics.RecordsMutatedTotal.WithLabelValues("dish", "delete").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "Dish deleted successfully"})
}
