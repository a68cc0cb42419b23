package service

import (
	"fmt"
	"io"
	"strconv"

	"mtv_cron/internal/models"
	"mtv_cron/internal/random"
)

// ----------- Schedule constants -----------
const (
	MinUpdateHour   = 2  // inclusive
	MaxUpdateHour   = 5  // exclusive
	MaxUpdateMinute = 59 // exclusive
	SendInfoMinute  = 30
)

// GeneratorService draws schedules from an injected random source.
type GeneratorService struct {
	src  random.Source
	cmds models.Commands
}

// NewGeneratorService returns a generator printing the given commands.
func NewGeneratorService(src random.Source, cmds models.Commands) *GeneratorService {
	return &GeneratorService{src: src, cmds: cmds}
}

// Generate draws the update hour, then the update minute, and derives the
// download slot one hour later. The hour is never wrapped.
func (g *GeneratorService) Generate() (models.Schedule, error) {
	off, err := g.src.IntN(MaxUpdateHour - MinUpdateHour)
	if err != nil {
		return models.Schedule{}, fmt.Errorf("draw update hour: %w", err)
	}
	hour := MinUpdateHour + off

	minute, err := g.src.IntN(MaxUpdateMinute)
	if err != nil {
		return models.Schedule{}, fmt.Errorf("draw update minute: %w", err)
	}

	return models.Schedule{
		MinuteForUpdate:   minute,
		HourForUpdate:     hour,
		MinuteForDownload: minute,
		HourForDownload:   hour + 1,
	}, nil
}

// Entries returns the three crontab rules for s in output order.
func (g *GeneratorService) Entries(s models.Schedule) []models.Entry {
	return []models.Entry{
		{Spec: timeSpec(s.MinuteForUpdate, s.HourForUpdate), Command: g.cmds.Update},
		{Spec: timeSpec(SendInfoMinute, s.HourForUpdate), Command: g.cmds.SendInfo, Disabled: true},
		{Spec: timeSpec(s.MinuteForDownload, s.HourForDownload), Command: g.cmds.Download},
	}
}

// Lines renders s in crontab syntax. Spacing matches what operators already
// have installed, so it is not normalized.
func (g *GeneratorService) Lines(s models.Schedule) []string {
	return []string{
		fmt.Sprintf("%d %d   * * * %s", s.MinuteForUpdate, s.HourForUpdate, g.cmds.Update),
		fmt.Sprintf("#%d %d   * * *  %s", SendInfoMinute, s.HourForUpdate, g.cmds.SendInfo),
		fmt.Sprintf("%d %d   * * *  %s", s.MinuteForDownload, s.HourForDownload, g.cmds.Download),
	}
}

// Write prints the rendered lines of s to w, one per line.
func (g *GeneratorService) Write(w io.Writer, s models.Schedule) error {
	for _, line := range g.Lines(s) {
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return fmt.Errorf("write schedule: %w", err)
		}
	}
	return nil
}

func timeSpec(minute, hour int) string {
	return strconv.Itoa(minute) + " " + strconv.Itoa(hour) + " * * *"
}
