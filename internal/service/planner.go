package service

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"mtv_cron/internal/models"

	"github.com/robfig/cron/v3"
)

// MaxNextRuns caps the preview at a year of daily runs per entry.
const MaxNextRuns = 366

var (
	ErrInvalidEntry = errors.New("invalid cron entry")
	errInvalidCount = fmt.Errorf("invalid count: n must be in [0, %d]", MaxNextRuns)
)

// PlannerService checks entries against the standard five-field cron syntax
// and previews when they will fire.
type PlannerService struct {
	parser cron.Parser
}

func NewPlannerService() *PlannerService {
	return &PlannerService{
		parser: cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow),
	}
}

// Validate parses every entry, disabled ones included, so that uncommenting a
// line never yields a broken crontab.
func (p *PlannerService) Validate(entries []models.Entry) error {
	for i, e := range entries {
		if e.Command == "" {
			return fmt.Errorf("%w: entry %d has no command", ErrInvalidEntry, i+1)
		}
		if _, err := p.parser.Parse(e.Spec); err != nil {
			return fmt.Errorf("%w: entry %d %q: %v", ErrInvalidEntry, i+1, e.Spec, err)
		}
	}
	return nil
}

// NextRuns returns the next n executions after from for each enabled entry,
// ordered by time.
func (p *PlannerService) NextRuns(entries []models.Entry, from time.Time, n int) ([]models.Run, error) {
	if n < 0 || n > MaxNextRuns {
		return nil, errInvalidCount
	}
	var runs []models.Run
	for i, e := range entries {
		if e.Disabled {
			continue
		}
		sched, err := p.parser.Parse(e.Spec)
		if err != nil {
			return nil, fmt.Errorf("%w: entry %d %q: %v", ErrInvalidEntry, i+1, e.Spec, err)
		}
		at := from
		for k := 0; k < n; k++ {
			at = sched.Next(at)
			if at.IsZero() {
				break
			}
			runs = append(runs, models.Run{Command: e.Command, At: at})
		}
	}
	sort.SliceStable(runs, func(i, j int) bool { return runs[i].At.Before(runs[j].At) })
	return runs, nil
}
