package service

import (
	"context"
	"fmt"
	"sync"

	"golang-market-predictor/internal/entity"
	"golang-market-predictor/pkg/logger"

	"github.com/robfig/cron/v3"
)

// SchedulerService triggers the configured jobs on their cron schedules.
type SchedulerService interface {
	Start(ctx context.Context) error
	Stop() context.Context
	RunNow(ctx context.Context, name, trigger string) (*entity.JobExecution, error)
}

// NewSchedulerService creates a new scheduler service for jobs.
func NewSchedulerService(executor ExecutorService, jobs []entity.Job, log *logger.Logger) SchedulerService {
	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
	return &schedulerService{
		executor:   executor,
		jobs:       jobs,
		logger:     log,
		cronParser: parser,
		cron: cron.New(
			cron.WithParser(parser),
			cron.WithLogger(cronLogger{log}),
			cron.WithChain(cron.Recover(cronLogger{log})),
		),
		running: make(map[string]bool),
	}
}

type schedulerService struct {
	executor   ExecutorService
	jobs       []entity.Job
	logger     *logger.Logger
	cronParser cron.Parser
	cron       *cron.Cron

	mu      sync.Mutex
	running map[string]bool
}

// Start validates and registers every job, then starts the cron loop. Jobs without a
// cron expression can only be run with RunNow.
func (s *schedulerService) Start(ctx context.Context) error {
	for _, job := range s.jobs {
		if !s.executor.Supports(job.Type) {
			return fmt.Errorf("job %q: unsupported job type %q", job.Name, job.Type)
		}
		if job.Cron == "" {
			continue
		}
		if _, err := s.cronParser.Parse(job.Cron); err != nil {
			return fmt.Errorf("job %q: invalid cron expression %q: %w", job.Name, job.Cron, err)
		}
		if _, err := s.cron.AddFunc(job.Cron, func() {
			_, _ = s.trigger(ctx, job, entity.TriggerSchedule)
		}); err != nil {
			return fmt.Errorf("job %q: failed to schedule: %w", job.Name, err)
		}
	}

	s.cron.Start()
	for _, entry := range s.cron.Entries() {
		s.logger.Info("Scheduled job", logger.IntField("entry_id", int(entry.ID)), logger.Field("next", entry.Next))
	}
	s.logger.Info("Scheduler started", logger.IntField("jobs", len(s.cron.Entries())))
	return nil
}

// Stop stops scheduling and returns a context that is done once running jobs finish.
func (s *schedulerService) Stop() context.Context {
	s.logger.Info("Scheduler service stopping")
	return s.cron.Stop()
}

// RunNow runs the named job immediately, outside its schedule.
func (s *schedulerService) RunNow(ctx context.Context, name, trigger string) (*entity.JobExecution, error) {
	for _, job := range s.jobs {
		if job.Name == name {
			return s.trigger(ctx, job, trigger)
		}
	}
	return nil, fmt.Errorf("unknown job %q", name)
}

// trigger runs the job unless a previous run of it is still in progress.
func (s *schedulerService) trigger(ctx context.Context, job entity.Job, trigger string) (*entity.JobExecution, error) {
	s.mu.Lock()
	if s.running[job.Name] {
		s.mu.Unlock()
		return s.executor.Skip(ctx, job, trigger, "previous run still in progress")
	}
	s.running[job.Name] = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		delete(s.running, job.Name)
		s.mu.Unlock()
	}()

	return s.executor.Run(ctx, job, trigger)
}

// cronLogger adapts the zap logger to cron.Logger.
type cronLogger struct {
	log *logger.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Sugar().Debugw(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log.Sugar().Errorw(msg, append(keysAndValues, "error", err)...)
}
