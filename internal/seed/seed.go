package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"gorm.io/gorm"

	"github.com/daypulse/daypulse/internal/domain"
)

const seededDays = 40

// Run seeds the database with a synthetic wellness history. Safe to call
// multiple times; existing dates are left untouched.
func Run(db *gorm.DB) error {
	if err := db.AutoMigrate(&domain.WellnessSample{}, &domain.DailyReport{}); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	now := time.Now().UTC()

	for i := 0; i < seededDays; i++ {
		day := now.AddDate(0, 0, -i)
		date := day.Format("2006-01-02")

		sleepHours := 6.0 + rng.Float64()*3.0 // 6.0 - 9.0h
		bedtime := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC).
			Add(-time.Duration((1+rng.Intn(2))*60+rng.Intn(60)) * time.Minute)
		wake := bedtime.Add(time.Duration(sleepHours * float64(time.Hour)))

		quality := 2 + rng.Intn(4)            // 2 - 5
		hrv := 55.0 + rng.Float64()*15.0      // 55 - 70 ms
		rhr := 50.0 + rng.Float64()*6.0       // 50 - 56 bpm

		sample := domain.WellnessSample{
			Date:         date,
			SleepHours:   round1(sleepHours),
			SleepStart:   &bedtime,
			SleepEnd:     &wake,
			SleepQuality: &quality,
			HRVRMSSD:     &hrv,
			RestingHR:    &rhr,
			Source:       domain.SourceIntervals,
		}

		// Leave occasional gaps so the renormalization paths get real data.
		if rng.Float32() < 0.1 {
			sample.HRVRMSSD = nil
		}
		if rng.Float32() < 0.1 {
			sample.RestingHR = nil
		}

		if err := db.Where("date = ?", date).FirstOrCreate(&sample).Error; err != nil {
			return fmt.Errorf("failed to seed sample for %s: %w", date, err)
		}
	}

	log.Println("Seed completed")
	return nil
}

func round1(v float64) float64 {
	return float64(int(v*10+0.5)) / 10
}
