package controller

import (
	"strconv"

	"timegrid/core/controller"
	"timegrid/core/errors"
	"timegrid/modules/availability/dto"
	"timegrid/modules/availability/service"

	"github.com/labstack/echo/v4"
)

// AvailabilityController handles grid, availability and ranking requests.
type AvailabilityController struct {
	controller.BaseController
	AvailabilityService service.AvailabilityServiceInterface
}

func NewAvailabilityController(svc service.AvailabilityServiceInterface) *AvailabilityController {
	return &AvailabilityController{
		BaseController:      controller.NewBaseController(),
		AvailabilityService: svc,
	}
}

// GetGrid handles GET /events/:id/grid
// @Summary Get the availability grid
// @Description Returns the generated candidate dates and time slots for an event
// @Tags Availability
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} dto.GridResponse
// @Failure 404 {object} errors.AppError
// @Router /events/{id}/grid [get]
func (c *AvailabilityController) GetGrid(ctx echo.Context) error {
	result, appErr := c.AvailabilityService.GetGrid(ctx.Request().Context(), ctx.Param("id"))
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Success")
}

// Toggle handles POST /events/:id/availability/toggle
// @Summary Toggle one availability cell
// @Description Flips a participant's availability for one (date, slot) cell
// @Tags Availability
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param request body dto.ToggleRequest true "Cell to toggle"
// @Success 200 {object} dto.CellResponse
// @Failure 400 {object} errors.AppError
// @Failure 404 {object} errors.AppError
// @Router /events/{id}/availability/toggle [post]
func (c *AvailabilityController) Toggle(ctx echo.Context) error {
	var req dto.ToggleRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, err.Error())
	}

	result, appErr := c.AvailabilityService.Toggle(ctx.Request().Context(), ctx.Param("id"), &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Availability toggled")
}

// SetCell handles PUT /events/:id/availability
// @Summary Set one availability cell
// @Tags Availability
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param request body dto.SetCellRequest true "Cell to set"
// @Success 200 {object} dto.CellResponse
// @Failure 400 {object} errors.AppError
// @Failure 404 {object} errors.AppError
// @Router /events/{id}/availability [put]
func (c *AvailabilityController) SetCell(ctx echo.Context) error {
	var req dto.SetCellRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, err.Error())
	}

	result, appErr := c.AvailabilityService.SetCell(ctx.Request().Context(), ctx.Param("id"), &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Availability saved")
}

// ApplyBatch handles POST /events/:id/availability/batch
// @Summary Apply a batch of cell updates
// @Description Merges individual cell updates; never replaces the whole matrix
// @Tags Availability
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param request body dto.BatchRequest true "Cell updates"
// @Success 200 {object} controller.SuccessResponse
// @Failure 400 {object} errors.AppError
// @Failure 404 {object} errors.AppError
// @Router /events/{id}/availability/batch [post]
func (c *AvailabilityController) ApplyBatch(ctx echo.Context) error {
	var req dto.BatchRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, err.Error())
	}

	if appErr := c.AvailabilityService.ApplyBatch(ctx.Request().Context(), ctx.Param("id"), &req); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, nil, "Availability batch applied")
}

// Counts handles GET /events/:id/counts
// @Summary Get per-slot availability counts
// @Tags Availability
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} dto.CountsResponse
// @Failure 404 {object} errors.AppError
// @Router /events/{id}/counts [get]
func (c *AvailabilityController) Counts(ctx echo.Context) error {
	result, appErr := c.AvailabilityService.Counts(ctx.Request().Context(), ctx.Param("id"))
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Success")
}

// BestTimes handles GET /events/:id/best-times
// @Summary Get ranked best times
// @Description Slots ranked by participant overlap; zero-count slots excluded
// @Tags Availability
// @Produce json
// @Param id path string true "Event ID"
// @Param top_n query int false "Maximum entries to return" default(3)
// @Success 200 {object} dto.BestTimesResponse
// @Failure 404 {object} errors.AppError
// @Router /events/{id}/best-times [get]
func (c *AvailabilityController) BestTimes(ctx echo.Context) error {
	topN := 3
	if raw := ctx.QueryParam("top_n"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return c.BadRequest(errors.ErrInvalidInput, "top_n must be a positive integer")
		}
		topN = n
	}

	result, appErr := c.AvailabilityService.BestTimes(ctx.Request().Context(), ctx.Param("id"), topN)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Success")
}
