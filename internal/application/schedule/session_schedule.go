package schedule

import (
	"time"

	"github.com/robfig/cron/v3"

	"weather-hunt/internal/domain/usecase/session"
	"weather-hunt/pkg/log"
	"weather-hunt/pkg/msg"
)

type SessionScheduler struct {
	cron    *cron.Cron
	spec    string
	useCase session.UseCase
	now     func() time.Time
}

// NewSessionScheduler builds the idle-session sweeper. spec is a robfig/cron expression such as "@every 1m".
func NewSessionScheduler(useCase session.UseCase, spec string) *SessionScheduler {
	return &SessionScheduler{cron: cron.New(), spec: spec, useCase: useCase, now: time.Now}
}

// InitSessionScheduleTasks initializes session schedule tasks
func (scheduler *SessionScheduler) InitSessionScheduleTasks() error {
	if _, err := scheduler.cron.AddFunc(scheduler.spec, scheduler.SweepIdleSessions); err != nil {
		return err
	}

	scheduler.cron.Start()
	return nil
}

// Stop stops the scheduler and waits for a running sweep to finish
func (scheduler *SessionScheduler) Stop() {
	<-scheduler.cron.Stop().Done()
}

func (scheduler *SessionScheduler) SweepIdleSessions() {
	log.Debug(msg.GetMessage("session.cron.start"))

	swept := scheduler.useCase.Sweep(scheduler.now())

	log.Info(msg.GetMessage("session.cron.end", swept, scheduler.useCase.Count()))
}
