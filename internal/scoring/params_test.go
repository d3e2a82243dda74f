package scoring

import (
	"errors"
	"testing"

	"github.com/daypulse/daypulse/internal/domain"
)

func TestParamsValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Params)
		wantErr bool
	}{
		{"defaults are valid", func(p *Params) {}, false},
		{"negative recovery weight", func(p *Params) { p.HRVWeight = -0.1 }, true},
		{"recovery weights not summing to one", func(p *Params) { p.SleepWeight = 0.5 }, true},
		{"productivity weights not summing to one", func(p *Params) { p.CircadianWeight = 0.6 }, true},
		{"focus threshold above 100", func(p *Params) { p.FocusThreshold = 120 }, true},
		{"zero min block length", func(p *Params) { p.MinFocusBlockHours = 0 }, true},
		{"zero peak list size", func(p *Params) { p.PeakHoursCount = 0 }, true},
		{"non-positive saturation", func(p *Params) { p.PressureSaturationHours = 0 }, true},
		{"damping above 1", func(p *Params) { p.PressureDamping = 1.2 }, true},
		{"zero default sleep", func(p *Params) { p.DefaultSleepHours = 0 }, true},
		{"malformed wake time", func(p *Params) { p.DefaultWakeTime = "7am" }, true},
		{
			"alternate valid weights",
			func(p *Params) { p.HRVWeight, p.RHRWeight, p.SleepWeight = 0.4, 0.4, 0.2 },
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultParams()
			tt.mutate(&p)
			err := p.Validate()
			if tt.wantErr {
				if !errors.Is(err, domain.ErrConfiguration) {
					t.Errorf("Validate() error = %v, want wrapped ErrConfiguration", err)
				}
				return
			}
			if err != nil {
				t.Errorf("Validate() unexpected error: %v", err)
			}
		})
	}
}
