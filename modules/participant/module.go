package participant

import (
	corecontroller "timegrid/core/controller"
	"timegrid/modules/participant/controller"
	"timegrid/modules/participant/repository"
	"timegrid/modules/participant/router"
	"timegrid/modules/participant/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the participant module and registers routes. The
// repository is built by the server so the availability module can
// share it as its participant source; availability cascades removals.
func Init(
	e *echo.Echo,
	repo repository.ParticipantRepositoryInterface,
	events service.EventSource,
	availability service.AvailabilityCascade,
) service.ParticipantServiceInterface {
	svc := service.NewParticipantService(repo, events, availability)
	ctrl := controller.NewParticipantController(corecontroller.NewBaseController(), svc)
	rtr := router.NewParticipantRouter(ctrl)

	rtr.Setup(e)
	return svc
}
