package background

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"

	"shopmetrics/internal/jobs"
)

// JobScheduler manages the background jobs of the analytics service
type JobScheduler struct {
	scheduler  gocron.Scheduler
	refreshSvc *jobs.SummaryRefreshService
	jobHandles map[string]gocron.Job
	mu         sync.RWMutex
}

// NewJobScheduler creates a scheduler with the summary refresh job
// registered at the given interval.
func NewJobScheduler(refreshSvc *jobs.SummaryRefreshService, refreshInterval time.Duration) (*JobScheduler, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	js := &JobScheduler{
		scheduler:  scheduler,
		refreshSvc: refreshSvc,
		jobHandles: make(map[string]gocron.Job),
	}

	js.registerJobs(refreshInterval)

	return js, nil
}

// Start starts the job scheduler
func (js *JobScheduler) Start() {
	log.Printf("Starting background job scheduler")
	js.scheduler.Start()
}

// Stop stops the job scheduler
func (js *JobScheduler) Stop() error {
	log.Printf("Stopping background job scheduler")
	return js.scheduler.Shutdown()
}

func (js *JobScheduler) registerJobs(refreshInterval time.Duration) {
	summaryJob, err := js.scheduler.NewJob(
		gocron.DurationJob(refreshInterval),
		gocron.NewTask(js.refreshSvc.RefreshSalesSummary, context.Background()),
		gocron.WithName("sales-summary-refresh"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		log.Printf("Failed to create sales summary refresh job: %v", err)
	} else {
		js.jobHandles["sales-summary-refresh"] = summaryJob
	}

	log.Printf("Registered %d background jobs", len(js.jobHandles))
}

// AddJob adds a custom job to the scheduler
func (js *JobScheduler) AddJob(name string, interval time.Duration, taskFn interface{}, params ...interface{}) error {
	js.mu.Lock()
	defer js.mu.Unlock()

	job, err := js.scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(taskFn, params...),
		gocron.WithName(name),
	)
	if err != nil {
		return err
	}

	js.jobHandles[name] = job
	return nil
}

// RemoveJob removes a job from the scheduler
func (js *JobScheduler) RemoveJob(name string) error {
	js.mu.Lock()
	defer js.mu.Unlock()

	if job, exists := js.jobHandles[name]; exists {
		err := js.scheduler.RemoveJob(job.ID())
		delete(js.jobHandles, name)
		return err
	}

	return nil
}
