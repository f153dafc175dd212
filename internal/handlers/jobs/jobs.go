package jobs

import (
	"net/http"
	"stayhub/infras/otel"
	"stayhub/internal/jobs"
	"stayhub/shared/constant"
	"stayhub/transport/http/middleware"
	"stayhub/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const requestParamJobName = "name"

type Handler struct {
	runner jobs.Runner
	auth   middleware.Auth
	otel   otel.Otel
}

func New(runner jobs.Runner, auth middleware.Auth, otel otel.Otel) Handler {
	return Handler{
		runner: runner,
		auth:   auth,
		otel:   otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/jobs", func(routerGroup chi.Router) {
		routerGroup.Use(handler.auth.APIKey)

		routerGroup.Get("/", handler.GetStatus)
		routerGroup.Post("/run", handler.RunAll)
		routerGroup.Post("/{name}/run", handler.Run)
		routerGroup.Post("/{name}/start", handler.Start)
		routerGroup.Post("/{name}/stop", handler.Stop)
	})
}

// GetStatus lists the registered maintenance jobs with their schedules and last runs.
// @Summary Get maintenance job status
// @Tags Jobs
// @Produce json
// @Success 200 {object} response.Data[[]cron.JobStatus] "Job statuses"
// @Router /v1/jobs [get]
// @Security ApiKeyAuth
func (handler *Handler) GetStatus(writer http.ResponseWriter, request *http.Request) {
	_, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetJobStatus")
	defer scope.End()

	response.WithJSON(writer, http.StatusOK, handler.runner.Status())
}

// RunAll fires every maintenance job concurrently and reports per-job outcomes.
// @Summary Run all maintenance jobs
// @Tags Jobs
// @Produce json
// @Success 200 {object} response.Data[[]jobs.RunResult] "Run results"
// @Router /v1/jobs/run [post]
// @Security ApiKeyAuth
func (handler *Handler) RunAll(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RunAllJobs")
	defer scope.End()

	results := handler.runner.RunAll(ctx)

	response.WithJSON(writer, http.StatusOK, results)
}

// Run executes a single maintenance job immediately.
// @Summary Run one maintenance job
// @Tags Jobs
// @Produce json
// @Param name path string true "Job name"
// @Success 200 {object} response.Data[service.JobReport] "Job report"
// @Failure 404 {object} response.Error
// @Router /v1/jobs/{name}/run [post]
// @Security ApiKeyAuth
func (handler *Handler) Run(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RunJob")
	defer scope.End()

	name := chi.URLParam(request, requestParamJobName)

	report, err := handler.runner.Run(ctx, name)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("job", name).Msg("failed to run maintenance job")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, report)
}

// Start resumes a stopped job's schedule.
// @Summary Start a maintenance job schedule
// @Tags Jobs
// @Produce json
// @Param name path string true "Job name"
// @Success 200 {object} response.Message "Job started"
// @Failure 404 {object} response.Error
// @Router /v1/jobs/{name}/start [post]
// @Security ApiKeyAuth
func (handler *Handler) Start(writer http.ResponseWriter, request *http.Request) {
	_, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".StartJob")
	defer scope.End()

	name := chi.URLParam(request, requestParamJobName)

	if err := handler.runner.Start(name); err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Job started")
}

// Stop pauses a job's schedule without unregistering it.
// @Summary Stop a maintenance job schedule
// @Tags Jobs
// @Produce json
// @Param name path string true "Job name"
// @Success 200 {object} response.Message "Job stopped"
// @Failure 404 {object} response.Error
// @Router /v1/jobs/{name}/stop [post]
// @Security ApiKeyAuth
func (handler *Handler) Stop(writer http.ResponseWriter, request *http.Request) {
	_, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".StopJob")
	defer scope.End()

	name := chi.URLParam(request, requestParamJobName)

	if err := handler.runner.Stop(name); err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Job stopped")
}
