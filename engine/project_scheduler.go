package engine

import (
	"errors"
	"fmt"
	"os"

	"code.cloudfoundry.org/lager"
	"github.com/cespare/xxhash/v2"

	"github.com/pivotal-cf/cred-audit/db"
	"github.com/pivotal-cf/cred-audit/models"
)

// ProjectScheduler schedules a daily scan of every registered project.
type ProjectScheduler struct {
	logger    lager.Logger
	projects  db.ProjectRepository
	scheduler Scheduler
	engine    Engine
}

func NewProjectScheduler(logger lager.Logger, projects db.ProjectRepository, scheduler Scheduler, engine Engine) *ProjectScheduler {
	return &ProjectScheduler{
		logger:    logger.Session("project-scheduler"),
		projects:  projects,
		scheduler: scheduler,
		engine:    engine,
	}
}

func (s *ProjectScheduler) Run(signals <-chan os.Signal, ready chan<- struct{}) error {
	close(ready)

	if err := s.ScheduleProjects(s.logger); err != nil {
		return err
	}

	<-signals

	return nil
}

func (s *ProjectScheduler) ScheduleProject(logger lager.Logger, project db.Project) error {
	logger = logger.Session("schedule-project", lager.Data{"project": project.ID})

	err := s.scheduler.ScheduleWork(scheduleForProject(project), func() {
		s.scan(project)
	})
	if err != nil {
		logger.Error("failed-to-schedule", err)
		return err
	}

	logger.Debug("finished-scheduling")
	return nil
}

func (s *ProjectScheduler) ScheduleProjects(logger lager.Logger) error {
	logger = logger.Session("schedule-projects")

	projects, err := s.projects.All(logger)
	if err != nil {
		logger.Error("failed-to-fetch-projects", err)
		return err
	}

	for _, project := range projects {
		if err := s.ScheduleProject(logger, project); err != nil {
			return err
		}
	}

	logger.Info("finished-scheduling-all-projects", lager.Data{
		"count": len(projects),
	})

	return nil
}

func (s *ProjectScheduler) scan(project db.Project) {
	logger := s.logger.Session("scheduled-scan", lager.Data{"project": project.ID})

	_, err := s.engine.RunScan(logger, project.ID, models.ScanTypeScheduled, nil)
	switch {
	case err == nil:
	case errors.Is(err, models.ErrScanInProgress):
		logger.Info("skipped-scan-in-progress")
	case errors.Is(err, models.ErrScanExecutionFailure):
		logger.Info("scan-failed")
	default:
		logger.Error("failed-to-run-scan", err)
	}
}

const buckets = 1440

func scheduleForProject(project db.Project) string {
	bucket := xxhash.Sum64String(project.ID) % buckets

	hour := bucket / 60
	minute := bucket % 60

	return fmt.Sprintf("0 %d %d * * *", minute, hour)
}
