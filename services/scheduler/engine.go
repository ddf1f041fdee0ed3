package scheduler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"smartmeet/config"
	availabilityRepo "smartmeet/database/repository/availability"
	"smartmeet/models"
)

// ErrNoAvailability signals that the search horizon contained no slot where
// every participant is free. It is terminal for the current horizon; the
// caller has to relax constraints or pick a different date.
var ErrNoAvailability = errors.New("no availability found within horizon")

// Config drives the slot search. Day bounds are minutes from midnight; a
// candidate slot must fit entirely inside one day's window.
type Config struct {
	WorkDayStartMin          int
	WorkDayEndMin            int
	BucketMinutes            int
	UnknownCountsAsAvailable bool
}

// ConfigFromApp copies the scheduling knobs out of the loaded app config.
func ConfigFromApp() Config {
	return Config{
		WorkDayStartMin:          config.AppConfig.WorkDayStartMin,
		WorkDayEndMin:            config.AppConfig.WorkDayEndMin,
		BucketMinutes:            config.AppConfig.SlotBucketMinutes,
		UnknownCountsAsAvailable: config.AppConfig.UnknownCountsAsAvailable,
	}
}

// Engine checks candidate windows for conflicts and searches for slots
// where all participants are simultaneously free. Availability lookups go
// straight to the provider and are never retried here.
type Engine struct {
	Availability availabilityRepo.Repository
	Cfg          Config

	now func() time.Time
}

// NewEngine creates an Engine using the wall clock.
func NewEngine(repo availabilityRepo.Repository, cfg Config) *Engine {
	return &Engine{Availability: repo, Cfg: cfg, now: time.Now}
}

// NewEngineWithClock creates an Engine with an injectable clock.
func NewEngineWithClock(repo availabilityRepo.Repository, cfg Config, now func() time.Time) *Engine {
	return &Engine{Availability: repo, Cfg: cfg, now: now}
}

// CheckWindow returns the emails busy during [startMin, startMin+duration)
// on date. An empty result means the window can be accepted as-is.
func (e *Engine) CheckWindow(ctx context.Context, participants []models.Participant, date string, startMin, durationMin int) ([]string, error) {
	emails := participantEmails(participants)
	statuses, err := e.Availability.GetAvailability(ctx, emails, date, startMin, startMin+durationMin)
	if err != nil {
		return nil, fmt.Errorf("availability check failed: %w", err)
	}

	var busy []string
	for _, email := range emails {
		if !e.isFree(statuses[email]) {
			busy = append(busy, email)
		}
	}
	return busy, nil
}

// FindSlots sweeps the working-hours buckets of [fromDate, fromDate+days)
// and returns every window of durationMin where all participants are free,
// ordered by date then start time. Slots in the past are never emitted.
func (e *Engine) FindSlots(ctx context.Context, participants []models.Participant, fromDate string, days, durationMin int) ([]models.TimeSlotCandidate, error) {
	if durationMin <= 0 {
		return nil, fmt.Errorf("invalid slot duration %d", durationMin)
	}

	start, err := time.ParseInLocation("2006-01-02", fromDate, e.now().Location())
	if err != nil {
		return nil, fmt.Errorf("invalid search start date %q: %w", fromDate, err)
	}

	emails := participantEmails(participants)
	var slots []models.TimeSlotCandidate

	for d := 0; d < days; d++ {
		day := start.AddDate(0, 0, d)
		date := day.Format("2006-01-02")

		for bucket := e.Cfg.WorkDayStartMin; bucket+durationMin <= e.Cfg.WorkDayEndMin; bucket += e.Cfg.BucketMinutes {
			if e.inPast(day, bucket) {
				continue
			}

			statuses, err := e.Availability.GetAvailability(ctx, emails, date, bucket, bucket+durationMin)
			if err != nil {
				return nil, fmt.Errorf("availability check failed: %w", err)
			}
			if !e.allFree(emails, statuses) {
				continue
			}

			slots = append(slots, models.TimeSlotCandidate{
				Date:         date,
				Start:        bucket,
				End:          bucket + durationMin,
				Participants: emails,
			})
		}
	}
	return slots, nil
}

// Alternatives searches the days after afterDate for free slots, up to the
// given horizon. ErrNoAvailability is returned when the horizon is empty.
func (e *Engine) Alternatives(ctx context.Context, participants []models.Participant, afterDate string, days, durationMin int) ([]models.TimeSlotCandidate, error) {
	day, err := time.ParseInLocation("2006-01-02", afterDate, e.now().Location())
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", afterDate, err)
	}

	slots, err := e.FindSlots(ctx, participants, day.AddDate(0, 0, 1).Format("2006-01-02"), days, durationMin)
	if err != nil {
		return nil, err
	}
	if len(slots) == 0 {
		return nil, ErrNoAvailability
	}
	return slots, nil
}

// isFree applies the acceptance rule: available always passes, unknown only
// when configured as available-but-unconfirmed rather than a soft conflict.
func (e *Engine) isFree(status models.AvailabilityStatus) bool {
	switch status {
	case models.StatusAvailable:
		return true
	case models.StatusUnknown:
		return e.Cfg.UnknownCountsAsAvailable
	default:
		return false
	}
}

func (e *Engine) allFree(emails []string, statuses map[string]models.AvailabilityStatus) bool {
	for _, email := range emails {
		status, ok := statuses[email]
		if !ok {
			status = models.StatusUnknown
		}
		if !e.isFree(status) {
			return false
		}
	}
	return true
}

// inPast reports whether the bucket on day already started.
func (e *Engine) inPast(day time.Time, bucket int) bool {
	slotStart := day.Add(time.Duration(bucket) * time.Minute)
	return !slotStart.After(e.now())
}

func participantEmails(participants []models.Participant) []string {
	emails := make([]string, 0, len(participants))
	for _, p := range participants {
		emails = append(emails, p.Email)
	}
	return emails
}
