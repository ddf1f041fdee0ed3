package availabilityRepo

import "time"

// SeedDemoCalendars tracks the given emails and lays deterministic busy
// windows over the first few of them, relative to start. Used by the memory
// backend so conflict and alternative-slot paths are exercisable without a
// calendar provider.
func SeedDemoCalendars(repo *MemoryAvailabilityRepo, emails []string, start time.Time) {
	for _, email := range emails {
		repo.Track(email)
	}

	// Busy blocks rotate across the week so each day looks different but
	// reseeding with the same start reproduces the same calendars.
	blocks := [][2]int{
		{600, 660}, // 10:00-11:00
		{840, 900}, // 2:00-3:00
		{540, 600}, // 9:00-10:00
		{900, 990}, // 3:00-4:30
		{660, 720}, // 11:00-12:00
		{780, 870}, // 1:00-2:30
	}

	for i, email := range emails {
		for day := 0; day < 7; day++ {
			block := blocks[(i+day)%len(blocks)]
			date := start.AddDate(0, 0, day).Format("2006-01-02")
			repo.AddBusy(email, date, block[0], block[1])
		}
	}
}
