package pricing

import (
	"fmt"
	"math"
	"strings"
)

// Selections maps a zero-based step position to the option identifiers
// chosen for that step. Unknown positions and unknown identifiers are
// normal inputs and contribute nothing; duplicates count once per
// occurrence. A stale client may submit ids for options that no longer
// exist, so none of the operations treat bad input as an error.
type Selections map[int][]string

// SelectedOption is one chosen option as shown in a breakdown.
type SelectedOption struct {
	Name        string `json:"name"`
	Price       int    `json:"price"`
	Description string `json:"description"`
}

// StepBreakdown groups the recognized selections of a single step with
// their nominal subtotal. The timeline multiplier is not reflected
// here, only in Total.
type StepBreakdown struct {
	StepTitle string           `json:"stepTitle"`
	Options   []SelectedOption `json:"options"`
	Total     int              `json:"total"`
}

// StepTotal sums the base prices of the recognized options selected at
// stepIndex. An out-of-range index or an empty selection returns 0.
func (c Catalog) StepTotal(stepIndex int, selections Selections) int {
	if stepIndex < 0 || stepIndex >= len(c.Steps) {
		return 0
	}

	step := c.Steps[stepIndex]
	total := 0
	for _, selectionID := range selections[stepIndex] {
		if option, ok := findOption(step, selectionID); ok {
			total += option.BasePrice
		}
	}
	return total
}

// Total computes the estimate across all steps: additive base prices
// for every non-timeline step, then the timeline multiplier, rounded
// half away from zero to a whole currency unit.
func (c Catalog) Total(selections Selections) int {
	total := 0
	multiplier := StandardMultiplier

	for stepIndex, step := range c.Steps {
		for _, selectionID := range selections[stepIndex] {
			option, ok := findOption(step, selectionID)
			if !ok {
				continue
			}
			if step.ID == c.TimelineStepID {
				switch option.ID {
				case timelineRush:
					multiplier = RushMultiplier
				case timelineFlexible:
					multiplier = FlexibleMultiplier
				}
			} else {
				total += option.BasePrice
			}
		}
	}

	return int(math.Round(float64(total) * multiplier))
}

// BreakdownByStep returns one entry per step with at least one
// recognized selection, in catalog order.
func (c Catalog) BreakdownByStep(selections Selections) []StepBreakdown {
	breakdown := make([]StepBreakdown, 0, len(c.Steps))

	for stepIndex, step := range c.Steps {
		var selected []SelectedOption
		total := 0
		for _, selectionID := range selections[stepIndex] {
			option, ok := findOption(step, selectionID)
			if !ok {
				continue
			}
			selected = append(selected, SelectedOption{
				Name:        option.Name,
				Price:       option.BasePrice,
				Description: option.Description,
			})
			total += option.BasePrice
		}
		if len(selected) == 0 {
			continue
		}
		breakdown = append(breakdown, StepBreakdown{
			StepTitle: step.Title,
			Options:   selected,
			Total:     total,
		})
	}

	return breakdown
}

// FormatSummary renders the breakdown as plain text, one block per
// step, suitable for the persisted estimate summary:
//
//	Project Type:
//	  - Landing Page
//
//	Core Features:
//	  - User Authentication
func (c Catalog) FormatSummary(selections Selections) string {
	sections := make([]string, 0)
	for _, step := range c.BreakdownByStep(selections) {
		lines := make([]string, 0, len(step.Options))
		for _, option := range step.Options {
			lines = append(lines, fmt.Sprintf("  - %s", option.Name))
		}
		sections = append(sections, step.StepTitle+":\n"+strings.Join(lines, "\n"))
	}
	return strings.Join(sections, "\n\n")
}

func findOption(step Step, optionID string) (Option, bool) {
	for _, option := range step.Options {
		if option.ID == optionID {
			return option, true
		}
	}
	return Option{}, false
}
