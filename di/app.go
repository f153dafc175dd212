package di

import (
	"stayhub/config"
	"stayhub/infras/queue"
	bookingService "stayhub/internal/domains/booking/service"
	"stayhub/internal/jobs"
	"stayhub/transport/http"

	"github.com/rs/zerolog/log"
)

// Application bundles the long-running pieces of the service: the HTTP server, the
// maintenance schedule, and the delayed-task worker.
type Application struct {
	HTTP     *http.HTTP
	Runner   jobs.Runner
	Worker   *queue.Worker
	Bookings bookingService.Booking
	Config   *config.Config
}

// Start wires the background surfaces and then serves HTTP. Blocks until shutdown.
func (a *Application) Start() {
	if a.Config.Scheduler.Enable {
		if err := a.Runner.RegisterAll(); err != nil {
			log.Fatal().Err(err).Msg("Failed to register maintenance jobs")
		}
	} else {
		log.Info().Msg("Scheduler disabled, maintenance jobs run only on demand")
	}

	if a.Config.Queue.Enable {
		a.Worker.HandleExpiration(a.Bookings.ExpireIfUnpaid)

		if err := a.Worker.Start(); err != nil {
			log.Fatal().Err(err).Msg("Failed to start task worker")
		}

		defer a.Worker.Shutdown()
	}

	a.HTTP.Serve()
}
