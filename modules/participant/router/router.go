package router

import (
	"timegrid/modules/participant/controller"

	"github.com/labstack/echo/v4"
)

// ParticipantRouter handles participant routes.
type ParticipantRouter struct {
	ParticipantController *controller.ParticipantController
}

func NewParticipantRouter(participantController *controller.ParticipantController) *ParticipantRouter {
	return &ParticipantRouter{
		ParticipantController: participantController,
	}
}

// Setup registers participant routes.
func (r *ParticipantRouter) Setup(e *echo.Echo) {
	v1 := e.Group("/api/v1")
	eventRoutes := v1.Group("/events")

	eventRoutes.POST("/:id/participants", r.ParticipantController.AddParticipant)
	eventRoutes.GET("/:id/participants", r.ParticipantController.ListParticipants)
	eventRoutes.DELETE("/:id/participants/:participantId", r.ParticipantController.RemoveParticipant)
}
