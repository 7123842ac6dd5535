package controller

import (
	"github.com/labstack/echo/v4"

	"timegrid/core/controller"
	"timegrid/core/errors"
	"timegrid/modules/event/dto"
	"timegrid/modules/event/service"
)

type EventController struct {
	controller.BaseController
	service service.EventServiceInterface
}

func NewEventController(base controller.BaseController, service service.EventServiceInterface) *EventController {
	return &EventController{BaseController: base, service: service}
}

// CreateEvent godoc
// @Summary Create a scheduling event
// @Description Creates an event with an immutable schedule config and returns its share id
// @Tags events
// @Accept json
// @Produce json
// @Param request body dto.CreateEventRequest true "Event definition"
// @Success 200 {object} controller.SuccessResponse{data=dto.EventResponse}
// @Failure 400 {object} controller.ErrorResponse
// @Router /events [post]
func (ec *EventController) CreateEvent(ctx echo.Context) error {
	var req dto.CreateEventRequest
	if err := ctx.Bind(&req); err != nil {
		return ec.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return ec.BadRequest(errors.ErrInvalidRequestData, err.Error())
	}

	resp, appErr := ec.service.Create(ctx.Request().Context(), &req)
	if appErr != nil {
		return ec.ErrorResponse(ctx, appErr)
	}
	return ec.SuccessResponse(ctx, resp, "Event created")
}

// GetEvent godoc
// @Summary Get an event
// @Tags events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} controller.SuccessResponse{data=dto.EventResponse}
// @Failure 404 {object} controller.ErrorResponse
// @Router /events/{id} [get]
func (ec *EventController) GetEvent(ctx echo.Context) error {
	resp, appErr := ec.service.GetByID(ctx.Request().Context(), ctx.Param("id"))
	if appErr != nil {
		return ec.ErrorResponse(ctx, appErr)
	}
	return ec.SuccessResponse(ctx, resp, "Success")
}

// DeleteEvent godoc
// @Summary Delete an event
// @Tags events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} controller.SuccessResponse
// @Failure 404 {object} controller.ErrorResponse
// @Router /events/{id} [delete]
func (ec *EventController) DeleteEvent(ctx echo.Context) error {
	if appErr := ec.service.Delete(ctx.Request().Context(), ctx.Param("id")); appErr != nil {
		return ec.ErrorResponse(ctx, appErr)
	}
	return ec.SuccessResponse(ctx, nil, "Event deleted")
}
