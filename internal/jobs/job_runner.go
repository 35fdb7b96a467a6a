package jobs

import (
	"booking-admin-console/internal/config"
	"booking-admin-console/internal/logger"
	"booking-admin-console/internal/notification"
	"booking-admin-console/internal/service"
)

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	services *Services
	config   *config.Config
}

// Services holds all service dependencies needed by jobs
type Services struct {
	AdminCodes service.AdminCodeService
	Notifier   notification.Sender
}

func NewJobRunner(services *Services, cfg *config.Config) *JobRunner {
	return &JobRunner{
		services: services,
		config:   cfg,
	}
}

func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}

// RunAll runs every job once, in schedule order.
func (jr *JobRunner) RunAll() {
	jr.ReconcileAdminCodes()
	jr.SendPendingRequestDigest()
}
