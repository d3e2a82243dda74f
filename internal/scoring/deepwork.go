package scoring

import (
	"log"
	"math"
	"sort"

	"github.com/daypulse/daypulse/internal/domain"
)

// DeepWorkSelector ranks focus blocks into primary/secondary/avoid
// categories. The contiguous-run-above-threshold logic is authoritative for
// which hours qualify; an external advisory preference may reorder blocks of
// equal average score but never introduces a block the threshold did not
// support.
type DeepWorkSelector struct {
	params Params
}

// NewDeepWorkSelector creates a selector with the given configuration.
func NewDeepWorkSelector(params Params) *DeepWorkSelector {
	return &DeepWorkSelector{params: params}
}

// Select builds the deep-work plan for a day. preference is an optional
// ranked list of focus-block start hours (best first), applied only as a
// tie-break. Low-energy windows that overlap a qualifying focus block are
// flagged inconsistent and logged, never fatal.
func (s *DeepWorkSelector) Select(
	blocks []domain.FocusBlock,
	flow domain.EnergyFlowPrediction,
	wakeHour float64,
	preference []int,
) domain.DeepWorkPlan {
	plan := domain.DeepWorkPlan{Avoid: []domain.AvoidWindow{}}

	ranked := make([]domain.FocusBlock, len(blocks))
	copy(ranked, blocks)
	rank := preferenceRank(preference)
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].AvgScore != ranked[j].AvgScore {
			return ranked[i].AvgScore > ranked[j].AvgScore
		}
		ri, rj := rank(ranked[i].StartHour), rank(ranked[j].StartHour)
		if ri != rj {
			return ri < rj
		}
		return ranked[i].StartHour < ranked[j].StartHour
	})

	if len(ranked) > 0 {
		primary := ranked[0]
		plan.Primary = &primary
		for _, b := range ranked[1:] {
			if !b.Overlaps(primary) {
				secondary := b
				plan.Secondary = &secondary
				break
			}
		}
	}

	for _, w := range flow.Windows {
		if w.Category != domain.EnergyLow {
			continue
		}
		conflicts := false
		for _, b := range blocks {
			if windowOverlapsBlock(w, wakeHour, b) {
				conflicts = true
				log.Printf("deep-work plan: low-energy window %q (%s-%s) overlaps focus block %02d:00-%02d:00",
					w.Name, w.Start, w.End, b.StartHour, b.EndHour)
				break
			}
		}
		plan.Avoid = append(plan.Avoid, domain.AvoidWindow{Window: w, ConflictsWithFocus: conflicts})
	}

	return plan
}

// preferenceRank maps a start hour to its advisory rank; hours the advisory
// did not mention sort after all mentioned ones.
func preferenceRank(preference []int) func(int) int {
	index := make(map[int]int, len(preference))
	for i, h := range preference {
		if _, seen := index[h]; !seen {
			index[h] = i
		}
	}
	return func(startHour int) int {
		if r, ok := index[startHour]; ok {
			return r
		}
		return len(preference) + 1
	}
}

// windowOverlapsBlock converts a wake-relative window to clock hours and
// tests intersection with a focus block, handling wrap past midnight by
// checking each covered clock hour.
func windowOverlapsBlock(w domain.EnergyWindow, wakeHour float64, b domain.FocusBlock) bool {
	start := wakeHour + w.StartOffsetHours
	end := wakeHour + w.EndOffsetHours

	for h := math.Floor(start); h < end; h++ {
		clock := int(math.Mod(h, 24))
		if clock < 0 {
			clock += 24
		}
		if clock >= b.StartHour && clock < b.EndHour {
			return true
		}
	}
	return false
}
