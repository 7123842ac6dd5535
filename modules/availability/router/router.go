package router

import (
	"timegrid/modules/availability/controller"

	"github.com/labstack/echo/v4"
)

// AvailabilityRouter handles grid and availability routes.
type AvailabilityRouter struct {
	AvailabilityController *controller.AvailabilityController
}

func NewAvailabilityRouter(availabilityController *controller.AvailabilityController) *AvailabilityRouter {
	return &AvailabilityRouter{
		AvailabilityController: availabilityController,
	}
}

// Setup registers availability routes.
func (r *AvailabilityRouter) Setup(e *echo.Echo) {
	v1 := e.Group("/api/v1")
	eventRoutes := v1.Group("/events")

	eventRoutes.GET("/:id/grid", r.AvailabilityController.GetGrid)
	eventRoutes.GET("/:id/counts", r.AvailabilityController.Counts)
	eventRoutes.GET("/:id/best-times", r.AvailabilityController.BestTimes)

	eventRoutes.PUT("/:id/availability", r.AvailabilityController.SetCell)
	eventRoutes.POST("/:id/availability/toggle", r.AvailabilityController.Toggle)
	eventRoutes.POST("/:id/availability/batch", r.AvailabilityController.ApplyBatch)
}
