package selector

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/fimdpgo/cmdp"
)

// SelectionRule is a partial function ℕ → cmdp.Action, represented as the
// breakpoints of a step function. Selecting for energy e returns the action
// registered at the largest breakpoint not exceeding e (spec §4.7).
type SelectionRule struct {
	breakpoints map[int]cmdp.Action
}

// NewSelectionRule returns an empty rule.
func NewSelectionRule() *SelectionRule {
	return &SelectionRule{breakpoints: make(map[int]cmdp.Action)}
}

// Set registers action as the choice for every energy level >= lowerBound,
// until the next higher breakpoint (if any) takes over.
func (r *SelectionRule) Set(lowerBound int, action cmdp.Action) {
	r.breakpoints[lowerBound] = action
}

// SelectAction returns the action registered at the largest breakpoint not
// exceeding energy, or ErrNoFeasibleAction if energy is below every
// breakpoint (including when the rule is empty).
func (r *SelectionRule) SelectAction(energy int) (cmdp.Action, error) {
	bestBound := -1
	var best cmdp.Action
	found := false
	for lb, a := range r.breakpoints {
		if energy >= lb && lb > bestBound {
			bestBound, best, found = lb, a, true
		}
	}
	if !found {
		return cmdp.Action{}, fmt.Errorf("selector: energy level %d: %w", energy, ErrNoFeasibleAction)
	}
	return best, nil
}

// Breakpoints returns the rule's lower bounds in ascending order.
func (r *SelectionRule) Breakpoints() []int {
	bounds := make([]int, 0, len(r.breakpoints))
	for lb := range r.breakpoints {
		bounds = append(bounds, lb)
	}
	sort.Ints(bounds)
	return bounds
}

// String renders the rule as intervals mapped to action labels, one per
// line, e.g. "{\n  0 - 4: wait,\n  5+: go\n}".
func (r *SelectionRule) String() string {
	bounds := r.Breakpoints()
	if len(bounds) == 0 {
		return "{}"
	}
	records := make([]string, 0, len(bounds))
	for i, lb := range bounds {
		label := r.breakpoints[lb].Label
		if i < len(bounds)-1 {
			records = append(records, fmt.Sprintf("%d - %d: %s", lb, bounds[i+1]-1, label))
		} else {
			records = append(records, fmt.Sprintf("%d+: %s", lb, label))
		}
	}
	return "{\n  " + strings.Join(records, ",\n  ") + "\n}"
}
