package controller

import (
	"github.com/labstack/echo/v4"

	"timegrid/core/controller"
	"timegrid/core/errors"
	"timegrid/modules/participant/dto"
	"timegrid/modules/participant/service"
)

type ParticipantController struct {
	controller.BaseController
	service service.ParticipantServiceInterface
}

func NewParticipantController(base controller.BaseController, service service.ParticipantServiceInterface) *ParticipantController {
	return &ParticipantController{BaseController: base, service: service}
}

// AddParticipant godoc
// @Summary Join an event
// @Description Registers a named participant on an event
// @Tags participants
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param request body dto.AddParticipantRequest true "Participant details"
// @Success 200 {object} controller.SuccessResponse{data=dto.ParticipantResponse}
// @Failure 400 {object} controller.ErrorResponse
// @Failure 404 {object} controller.ErrorResponse
// @Router /events/{id}/participants [post]
func (pc *ParticipantController) AddParticipant(ctx echo.Context) error {
	var req dto.AddParticipantRequest
	if err := ctx.Bind(&req); err != nil {
		return pc.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return pc.BadRequest(errors.ErrInvalidRequestData, err.Error())
	}

	resp, appErr := pc.service.Add(ctx.Request().Context(), ctx.Param("id"), &req)
	if appErr != nil {
		return pc.ErrorResponse(ctx, appErr)
	}
	return pc.SuccessResponse(ctx, resp, "Participant added")
}

// ListParticipants godoc
// @Summary List event participants
// @Tags participants
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} controller.SuccessResponse{data=dto.ParticipantListResponse}
// @Failure 404 {object} controller.ErrorResponse
// @Router /events/{id}/participants [get]
func (pc *ParticipantController) ListParticipants(ctx echo.Context) error {
	resp, appErr := pc.service.List(ctx.Request().Context(), ctx.Param("id"))
	if appErr != nil {
		return pc.ErrorResponse(ctx, appErr)
	}
	return pc.SuccessResponse(ctx, resp, "Success")
}

// RemoveParticipant godoc
// @Summary Remove a participant
// @Description Removes a participant and all of their availability from the event
// @Tags participants
// @Produce json
// @Param id path string true "Event ID"
// @Param participantId path string true "Participant ID"
// @Success 200 {object} controller.SuccessResponse
// @Failure 404 {object} controller.ErrorResponse
// @Router /events/{id}/participants/{participantId} [delete]
func (pc *ParticipantController) RemoveParticipant(ctx echo.Context) error {
	appErr := pc.service.Remove(ctx.Request().Context(), ctx.Param("id"), ctx.Param("participantId"))
	if appErr != nil {
		return pc.ErrorResponse(ctx, appErr)
	}
	return pc.SuccessResponse(ctx, nil, "Participant removed")
}
