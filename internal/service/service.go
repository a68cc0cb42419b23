package service

import (
	"io"
	"time"

	"mtv_cron/internal/models"
	"mtv_cron/internal/random"
)

// Generator draws a schedule and renders it as crontab lines.
type Generator interface {
	Generate() (models.Schedule, error)
	Entries(s models.Schedule) []models.Entry
	Lines(s models.Schedule) []string
	Write(w io.Writer, s models.Schedule) error
}

// Planner validates entries and previews upcoming runs.
type Planner interface {
	Validate(entries []models.Entry) error
	NextRuns(entries []models.Entry, from time.Time, n int) ([]models.Run, error)
}

// Service aggregates all sub-services.
type Service struct {
	Generator
	Planner
}

// NewService wires the random source and command set into concrete services.
func NewService(src random.Source, cmds models.Commands) *Service {
	return &Service{
		Generator: NewGeneratorService(src, cmds),
		Planner:   NewPlannerService(),
	}
}
