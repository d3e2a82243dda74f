package collector

import (
	"sort"

	"github.com/daypulse/daypulse/internal/domain"
)

// Resolve merges samples reported by multiple sources into one sample per
// date. The highest-priority source wins the row; metrics it left empty are
// backfilled from lower-priority sources so a wearable gap does not discard
// a manual entry's sleep rating. Output is ascending by date.
func Resolve(samples []domain.WellnessSample) []domain.WellnessSample {
	byDate := make(map[string][]domain.WellnessSample)
	for _, s := range samples {
		byDate[s.Date] = append(byDate[s.Date], s)
	}

	resolved := make([]domain.WellnessSample, 0, len(byDate))
	for _, group := range byDate {
		resolved = append(resolved, mergeGroup(group))
	}
	sort.Slice(resolved, func(i, j int) bool { return resolved[i].Date < resolved[j].Date })
	return resolved
}

func mergeGroup(group []domain.WellnessSample) domain.WellnessSample {
	// Stable sort keeps first-seen order among same-priority duplicates.
	sort.SliceStable(group, func(i, j int) bool {
		return domain.SourcePriority(group[i].Source) > domain.SourcePriority(group[j].Source)
	})

	merged := group[0]
	for _, s := range group[1:] {
		if !merged.HasSleep() && s.HasSleep() {
			merged.SleepHours = s.SleepHours
			merged.SleepStart = s.SleepStart
			merged.SleepEnd = s.SleepEnd
		}
		if merged.SleepStart == nil && s.SleepStart != nil {
			merged.SleepStart = s.SleepStart
		}
		if merged.SleepEnd == nil && s.SleepEnd != nil {
			merged.SleepEnd = s.SleepEnd
		}
		if merged.SleepQuality == nil && s.SleepQuality != nil {
			merged.SleepQuality = s.SleepQuality
		}
		if !merged.HasHRV() && s.HasHRV() {
			merged.HRVRMSSD = s.HRVRMSSD
		}
		if !merged.HasRestingHR() && s.HasRestingHR() {
			merged.RestingHR = s.RestingHR
		}
	}
	return merged
}
