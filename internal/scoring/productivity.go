package scoring

import (
	"math"
	"sort"

	"github.com/daypulse/daypulse/internal/domain"
)

// ProductivityCalculator combines per-hour circadian alertness with the day's
// recovery score into 24 final productivity scores and their derived lists.
type ProductivityCalculator struct {
	circadian *CircadianModel
	params    Params
}

// NewProductivityCalculator creates a productivity calculator sharing the
// given circadian model.
func NewProductivityCalculator(circadian *CircadianModel, params Params) *ProductivityCalculator {
	return &ProductivityCalculator{circadian: circadian, params: params}
}

// HourlyScores computes the 24 HourlyScore records for a day. For each clock
// hour, the circadian component is the alertness at that hour's elapsed
// wakefulness and the recovery component is constant; the combined score is
// round(100 * (c*Wc + r*Wr)) clamped to [0,100].
func (c *ProductivityCalculator) HourlyScores(wakeHour, sleepHours, recoveryScore float64) []domain.HourlyScore {
	recoveryScore = clamp01(recoveryScore)
	scores := make([]domain.HourlyScore, 24)

	for hour := 0; hour < 24; hour++ {
		sinceWake := HoursSinceWake(float64(hour), wakeHour)
		circ := c.circadian.Alertness(wakeHour, sinceWake, sleepHours)

		combined := circ*c.params.CircadianWeight + recoveryScore*c.params.RecoveryWeight
		score := int(math.Round(clamp(combined*100, 0, 100)))

		scores[hour] = domain.HourlyScore{
			Hour:               hour,
			CircadianComponent: circ,
			RecoveryComponent:  recoveryScore,
			Score:              score,
		}
	}
	return scores
}

// PeakHours returns the top-N hours by score, descending, ties broken by
// earlier hour.
func (c *ProductivityCalculator) PeakHours(scores []domain.HourlyScore) []domain.HourlyScore {
	sorted := make([]domain.HourlyScore, len(scores))
	copy(sorted, scores)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Score != sorted[j].Score {
			return sorted[i].Score > sorted[j].Score
		}
		return sorted[i].Hour < sorted[j].Hour
	})
	return truncate(sorted, c.params.PeakHoursCount)
}

// LowHours returns the bottom-N hours by score, ascending, ties broken by
// earlier hour.
func (c *ProductivityCalculator) LowHours(scores []domain.HourlyScore) []domain.HourlyScore {
	sorted := make([]domain.HourlyScore, len(scores))
	copy(sorted, scores)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Score != sorted[j].Score {
			return sorted[i].Score < sorted[j].Score
		}
		return sorted[i].Hour < sorted[j].Hour
	})
	return truncate(sorted, c.params.LowHoursCount)
}

// FocusBlocks returns the maximal contiguous runs of at least
// MinFocusBlockHours consecutive hours scoring at or above the focus
// threshold, in clock order. Adjacent qualifying hours always extend the
// current run, so overlapping runs cannot occur.
func (c *ProductivityCalculator) FocusBlocks(scores []domain.HourlyScore) []domain.FocusBlock {
	var blocks []domain.FocusBlock
	runStart := -1
	runSum := 0

	flush := func(end int) {
		if runStart < 0 {
			return
		}
		length := end - runStart
		if length >= c.params.MinFocusBlockHours {
			blocks = append(blocks, domain.FocusBlock{
				StartHour:   runStart,
				EndHour:     end,
				LengthHours: length,
				AvgScore:    round1(float64(runSum) / float64(length)),
			})
		}
		runStart = -1
		runSum = 0
	}

	for _, hs := range scores {
		if hs.Score >= c.params.FocusThreshold {
			if runStart < 0 {
				runStart = hs.Hour
			}
			runSum += hs.Score
			continue
		}
		flush(hs.Hour)
	}
	flush(24)

	return blocks
}

// AverageScore returns the day's mean score, rounded to one decimal.
func AverageScore(scores []domain.HourlyScore) float64 {
	if len(scores) == 0 {
		return 0
	}
	sum := 0
	for _, s := range scores {
		sum += s.Score
	}
	return round1(float64(sum) / float64(len(scores)))
}

func truncate(scores []domain.HourlyScore, n int) []domain.HourlyScore {
	if n > len(scores) {
		n = len(scores)
	}
	return scores[:n]
}
