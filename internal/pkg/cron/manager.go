package cron

import (
	"Lumen/internal/job"
	log "log/slog"

	"github.com/robfig/cron/v3"
)

type Manager struct {
	engine          *cron.Cron
	postCounterJob  *job.PostCounterJob
	userInterestJob *job.UserInterestJob
}

func NewCronManager(postCounterJob *job.PostCounterJob, userInterestJob *job.UserInterestJob) *Manager {
	return &Manager{
		engine:          cron.New(cron.WithSeconds()),
		postCounterJob:  postCounterJob,
		userInterestJob: userInterestJob,
	}
}

// RegisterJobs 注册定时任务
func (s *Manager) RegisterJobs() error {
	if _, err := s.engine.AddJob("@every 1m", s.postCounterJob); err != nil {
		return err
	}
	if _, err := s.engine.AddJob("@hourly", s.userInterestJob); err != nil {
		return err
	}
	return nil
}

func (s *Manager) Start() {
	log.Info("Cron 定时任务引擎启动")
	s.engine.Start()
}

func (s *Manager) Stop() {
	log.Info("Cron 定时任务引擎停止")
	s.engine.Stop()
}
