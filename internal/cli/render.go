package cli

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/daypulse/daypulse/internal/domain"
)

const scoreBarWidth = 25

// renderPlan formats a day plan for terminal output. Hours at or above
// the focus threshold are drawn green, the bottom band red.
func renderPlan(plan *domain.DayPlanResponse, focusThreshold int) string {
	var b strings.Builder

	bold := color.New(color.Bold)
	dim := color.New(color.FgHiBlack)
	green := color.New(color.FgGreen)
	yellow := color.New(color.FgYellow)
	red := color.New(color.FgRed)
	cyan := color.New(color.FgCyan)

	b.WriteString("\n")
	b.WriteString(bold.Sprintf("  DayPulse plan for %s", plan.Date))
	b.WriteString(dim.Sprintf("  (wake %s, %.1fh sleep)\n", plan.WakeTime, plan.SleepHours))
	b.WriteString(strings.Repeat("─", 60) + "\n")

	// Recovery
	statusColor := recoveryColor(plan.Recovery.Status)
	b.WriteString(fmt.Sprintf("  Recovery   %s %s",
		bold.Sprintf("%3d", int(plan.Recovery.Score*100)),
		statusColor.Sprintf("(%s)", plan.Recovery.Status)))
	b.WriteString(dim.Sprintf("  %d/3 metrics, %s baseline\n",
		plan.Recovery.AvailableMetrics, plan.Baseline.Confidence))
	if plan.SleepDebt != nil && plan.SleepDebt.Hours > 0 {
		b.WriteString(dim.Sprintf("  Sleep debt %.1fh (%s)\n",
			plan.SleepDebt.Hours, plan.SleepDebt.Category))
	}
	b.WriteString("\n")

	// Hourly scores
	for _, h := range plan.HourlyScores {
		bar := strings.Repeat("█", h.Score*scoreBarWidth/100)
		var c *color.Color
		switch {
		case h.Score >= focusThreshold:
			c = green
		case h.Score >= 50:
			c = yellow
		default:
			c = red
		}
		b.WriteString(fmt.Sprintf("  %02d:00 %s %s\n",
			h.Hour, c.Sprintf("%-*s", scoreBarWidth, bar), dim.Sprintf("%d", h.Score)))
	}
	b.WriteString("\n")

	// Deep work
	if plan.DeepWork.Primary != nil {
		p := plan.DeepWork.Primary
		b.WriteString(fmt.Sprintf("  %s %02d:00-%02d:00 (avg %.1f)\n",
			green.Sprint("Primary deep work:  "), p.StartHour, p.EndHour, p.AvgScore))
	} else {
		b.WriteString(red.Sprint("  No deep-work block qualified today.\n"))
	}
	if plan.DeepWork.Secondary != nil {
		s := plan.DeepWork.Secondary
		b.WriteString(fmt.Sprintf("  %s %02d:00-%02d:00 (avg %.1f)\n",
			cyan.Sprint("Secondary deep work:"), s.StartHour, s.EndHour, s.AvgScore))
	}
	for _, av := range plan.DeepWork.Avoid {
		marker := ""
		if av.ConflictsWithFocus {
			marker = yellow.Sprint(" (overlaps a focus block)")
		}
		b.WriteString(dim.Sprintf("  Avoid: %s %s-%s%s\n",
			av.Window.Name, av.Window.Start, av.Window.End, marker))
	}

	// Energy windows
	b.WriteString("\n")
	for _, w := range plan.EnergyFlow.Windows {
		b.WriteString(fmt.Sprintf("  %s  %s  %s\n",
			dim.Sprintf("%s-%s", w.Start, w.End),
			energyColor(w.Category).Sprintf("%-14s", w.Name),
			dim.Sprint(w.BestFor)))
	}

	if plan.Commentary != "" {
		b.WriteString("\n  " + plan.Commentary + "\n")
	}
	for _, caution := range plan.Cautions {
		b.WriteString(yellow.Sprintf("  ! %s\n", caution))
	}
	b.WriteString("\n")

	return b.String()
}

func recoveryColor(s domain.RecoveryStatus) *color.Color {
	switch s {
	case domain.RecoveryExcellent, domain.RecoveryGood:
		return color.New(color.FgGreen)
	case domain.RecoveryModerate:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgRed)
	}
}

func energyColor(c domain.EnergyCategory) *color.Color {
	switch c {
	case domain.EnergyHigh:
		return color.New(color.FgGreen)
	case domain.EnergyRising:
		return color.New(color.FgCyan)
	default:
		return color.New(color.FgHiBlack)
	}
}
