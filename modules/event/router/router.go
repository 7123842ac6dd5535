package router

import (
	"timegrid/modules/event/controller"

	"github.com/labstack/echo/v4"
)

// EventRouter handles event lifecycle routes.
type EventRouter struct {
	EventController *controller.EventController
}

func NewEventRouter(eventController *controller.EventController) *EventRouter {
	return &EventRouter{
		EventController: eventController,
	}
}

// Setup registers event routes.
func (r *EventRouter) Setup(e *echo.Echo) {
	v1 := e.Group("/api/v1")
	eventRoutes := v1.Group("/events")

	eventRoutes.POST("", r.EventController.CreateEvent)
	eventRoutes.GET("/:id", r.EventController.GetEvent)
	eventRoutes.DELETE("/:id", r.EventController.DeleteEvent)
}
