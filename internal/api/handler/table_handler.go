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

// TableHandler handles HTTP requests for the table inventory. Reads are
// public; writes are gated to Admin/Manager at the routing layer.
type TableHandler struct {
	service ports.TableService
}

func NewTableHandler(service ports.TableService) *TableHandler {
	return &TableHandler{service: service}
}

func tableID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

func (h *TableHandler) tableError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrTableNotFound):
		return c.JSON(http.StatusNotFound, errorResponse{Error: "table not found"})
	case errors.Is(err, domain.ErrTableNumberTaken):
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrInvalidTableNumber), errors.Is(err, domain.ErrInvalidSeatCapacity):
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
}

// Create handles POST /tables.
//
// @Summary      Add a table
// @Tags         tables
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createTableRequest  true  "Table details; is_available defaults to true"
// @Success      201   {object}  domain.Table
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /tables [post]
func (h *TableHandler) Create(c echo.Context) error {
	var req createTableRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	table, err := h.service.Create(c.Request().Context(), ports.CreateTableInput{
		TableNumber:     *req.TableNumber,
		SeatingCapacity: *req.SeatingCapacity,
		IsAvailable:     req.IsAvailable,
	})
	if err != nil {
		return h.tableError(c, err)
	}

	metrics.RecordsMutatedTotal.WithLabelValues("table", "create").Inc()
	return c.JSON(http.StatusCreated, table)
}

// Get handles GET /tables/:id. No auth required.
//
// @Summary      Get a table
// @Tags         tables
// @Produce      json
// @Param        id   path      int  true  "Table id"
// @Success      200  {object}  domain.Table
// @Failure      404  {object}  errorResponse
// @Router       /tables/{id} [get]
func (h *TableHandler) Get(c echo.Context) error {
	id, err := tableID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, errorResponse{Error: "table not found"})
	}

	table, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return h.tableError(c, err)
	}

	return c.JSON(http.StatusOK, table)
}

// List handles GET /tables. No auth required.
//
// @Summary      List tables
// @Tags         tables
// @Produce      json
// @Success      200  {array}  domain.Table
// @Router       /tables [get]
func (h *TableHandler) List(c echo.Context) error {
	tables, err := h.service.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, tables)
}

// Update handles PUT /tables/:id. Omitted fields keep their stored value.
//
// @Summary      Update a table
// @Tags         tables
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                 true  "Table id"
// @Param        body  body      updateTableRequest  true  "Fields to change"
// @Success      200   {object}  domain.Table
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /tables/{id} [put]
func (h *TableHandler) Update(c echo.Context) error {
	id, err := tableID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, errorResponse{Error: "table not found"})
	}

	var req updateTableRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	table, err := h.service.Update(c.Request().Context(), id, ports.UpdateTableInput{
		TableNumber:     req.TableNumber,
		SeatingCapacity: req.SeatingCapacity,
		IsAvailable:     req.IsAvailable,
	})
	if err != nil {
		return h.tableError(c, err)
	}

	metrics.RecordsMutatedTotal.WithLabelValues("table", "update").Inc()
	return c.JSON(http.StatusOK, table)
}

// Delete handles DELETE /tables/:id.
//
// @Summary      Delete a table
// @Tags         tables
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Table id"
// @Success      200  {object}  messageResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /tables/{id} [delete]
func (h *TableHandler) Delete(c echo.Context) error {
	id, err := tableID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, errorResponse{Error: "table not found"})
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return h.tableError(c, err)
	}

	metrics.RecordsMutatedTotal.WithLabelValues("table", "delete").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "Table deleted successfully"})
}
