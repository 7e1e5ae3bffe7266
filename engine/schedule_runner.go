package engine

import (
	"os"
	"sync"

	"github.com/robfig/cron"
)

//go:generate counterfeiter . Scheduler

type Scheduler interface {
	ScheduleWork(string, func()) error
}

type ScheduleRunner struct {
	cron    *cron.Cron
	cronMut *sync.Mutex

	jobWg *sync.WaitGroup
}

func NewScheduleRunner() *ScheduleRunner {
	return &ScheduleRunner{
		cron:    cron.New(),
		cronMut: &sync.Mutex{},
		jobWg:   &sync.WaitGroup{},
	}
}

func (s *ScheduleRunner) Run(signals <-chan os.Signal, ready chan<- struct{}) error {
	s.cron.Start()

	close(ready)

	<-signals
	s.cron.Stop()
	s.jobWg.Wait()

	return nil
}

func (s *ScheduleRunner) ScheduleWork(spec string, work func()) error {
	s.cronMut.Lock()
	defer s.cronMut.Unlock()

	return s.cron.AddFunc(spec, func() {
		s.jobWg.Add(1)
		defer s.jobWg.Done()

		work()
	})
}
