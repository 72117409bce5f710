package signals

import (
	"fmt"

	signalssvc "github.com/amirasaad/bankdash/pkg/service/signals"
	"github.com/amirasaad/bankdash/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

// TriggerQuery is the query string of the job trigger endpoint.
type TriggerQuery struct {
	JobName string `query:"job_name" validate:"required,max=128"`
}

// TriggerResponse acknowledges a triggered job.
type TriggerResponse struct {
	Message string `json:"message"`
	JobID   string `json:"job_id"`
}

// Routes registers the simulated cloud and job endpoints under r.
func Routes(r fiber.Router, svc *signalssvc.Service) {
	r.Get("/cloud/status", CloudStatus(svc))
	r.Get("/spark/jobs", PollJobs(svc))
	r.Post("/spark/jobs/trigger", TriggerJob(svc))
}

// CloudStatus returns a Fiber handler for the simulated cloud health snapshot.
// @Summary Cloud status
// @Tags signals
// @Produce json
// @Success 200 {object} signals.CloudStatus
// @Router /api/cloud/status [get]
func CloudStatus(svc *signalssvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(svc.CloudStatus())
	}
}

// PollJobs returns the most recent jobs. Each call may start a new job.
// @Summary Recent jobs
// @Tags signals
// @Produce json
// @Success 200 {array} signals.Job
// @Router /api/spark/jobs [get]
func PollJobs(svc *signalssvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(svc.PollJobs())
	}
}

// TriggerJob starts a named job.
// @Summary Trigger a job
// @Tags signals
// @Produce json
// @Param job_name query string true "Job name"
// @Success 200 {object} TriggerResponse
// @Failure 400 {object} common.ProblemDetails
// @Failure 503 {object} common.ProblemDetails
// @Router /api/spark/jobs/trigger [post]
func TriggerJob(svc *signalssvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		q, err := common.BindQueryAndValidate[TriggerQuery](c)
		if q == nil {
			return err
		}
		job, err := svc.Trigger(c.UserContext(), q.JobName)
		if err != nil {
			log.Errorf("Failed to trigger job %q: %v", q.JobName, err)
			return common.ProblemDetailsJSON(c, "Failed to trigger job", err, fiber.StatusServiceUnavailable)
		}
		return c.JSON(TriggerResponse{
			Message: fmt.Sprintf("Spark job %q triggered successfully", job.Name),
			JobID:   job.ID,
		})
	}
}
