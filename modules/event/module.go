package event

import (
	"timegrid/core/cache"
	corecontroller "timegrid/core/controller"
	"timegrid/modules/event/controller"
	"timegrid/modules/event/repository"
	"timegrid/modules/event/router"
	"timegrid/modules/event/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the event module and registers routes. The repository
// is built by the server so the availability module can share it as its
// schedule source; sessions is the availability service, used to drop
// live sessions of deleted events.
func Init(
	e *echo.Echo,
	repo repository.EventRepositoryInterface,
	c *cache.Cache,
	sessions service.SessionCloser,
) service.EventServiceInterface {
	svc := service.NewEventService(repo, c, sessions)
	ctrl := controller.NewEventController(corecontroller.NewBaseController(), svc)
	rtr := router.NewEventRouter(ctrl)

	rtr.Setup(e)
	return svc
}
