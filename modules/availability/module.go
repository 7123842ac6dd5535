package availability

import (
	"timegrid/core/cache"
	"timegrid/core/database"
	"timegrid/modules/availability/controller"
	"timegrid/modules/availability/repository"
	"timegrid/modules/availability/router"
	"timegrid/modules/availability/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the availability module and registers routes. The
// schedule and participant sources come from the event and participant
// modules; the returned service is handed to them for cascades.
func Init(
	e *echo.Echo,
	db database.IDatabase,
	c *cache.Cache,
	schedules service.ScheduleSource,
	participants service.ParticipantSource,
) *service.AvailabilityService {
	repo := repository.NewAvailabilityRepository(db)
	feed := repository.NewAvailabilityFeed(c)
	svc := service.NewAvailabilityService(repo, feed, schedules, participants)
	ctrl := controller.NewAvailabilityController(svc)
	rtr := router.NewAvailabilityRouter(ctrl)

	rtr.Setup(e)
	return svc
}
