package jobs

import (
	"mietpark-backend/internal/config"
	"mietpark-backend/internal/logger"
	"mietpark-backend/internal/metrics"
	"mietpark-backend/internal/repository/postgres"
	"mietpark-backend/internal/service"
)

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	store    *postgres.Store
	services *Services
	config   *config.Config
	metrics  *metrics.Metrics
}

// Services holds all service dependencies needed by jobs
type Services struct {
	Reports service.ReportService
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(store *postgres.Store, services *Services, cfg *config.Config, m *metrics.Metrics) *JobRunner {
	return &JobRunner{
		store:    store,
		services: services,
		config:   cfg,
		metrics:  m,
	}
}

// Config exposes the configuration for scheduler registration
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func() error) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
			jr.metrics.IncJobRun(jobName, "panic")
		}
	}()

	logger.Info("Starting job", "job", jobName)
	if err := jobFunc(); err != nil {
		logger.Error("Job failed", "job", jobName, "error", err)
		jr.metrics.IncJobRun(jobName, "error")
		return
	}
	logger.Info("Job completed", "job", jobName)
	jr.metrics.IncJobRun(jobName, "success")
}

// RunAllNightlyJobs runs all nightly jobs (for manual execution)
func (jr *JobRunner) RunAllNightlyJobs() {
	jr.MarkOverdueRentals()
	jr.LogFleetUtilization()
}
