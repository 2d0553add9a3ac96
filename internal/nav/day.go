package nav

import "strings"

// NoDay means no day is selected.
const NoDay = 0

// DayPolicy controls how the selected day behaves across tab changes.
type DayPolicy int

const (
	// DayPolicyPersistent keeps a selected day at all times. The session
	// starts on the first day and tab changes leave the day alone.
	DayPolicyPersistent DayPolicy = iota
	// DayPolicyReset starts with no day and clears it on every tab change,
	// so the itinerary tab reopens on the day list.
	DayPolicyReset
)

func (p DayPolicy) String() string {
	if p == DayPolicyReset {
		return "reset"
	}
	return "persistent"
}

// ParseDayPolicy maps a config value to a policy. Unknown values return
// DayPolicyPersistent and false.
func ParseDayPolicy(s string) (DayPolicy, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "persistent":
		return DayPolicyPersistent, true
	case "reset":
		return DayPolicyReset, true
	default:
		return DayPolicyPersistent, false
	}
}

// Content is the slice of reference data navigation needs.
type Content interface {
	HasDay(n int) bool
	DayNumbers() []int
	HasPage(name string) bool
}

// DaySelector tracks the itinerary day on screen.
type DaySelector struct {
	policy DayPolicy
	day    int
}

// NewDaySelector starts on firstDay under the persistent policy and on NoDay
// under the reset policy.
func NewDaySelector(policy DayPolicy, firstDay int) DaySelector {
	d := DaySelector{policy: policy}
	if policy == DayPolicyPersistent {
		d.day = firstDay
	}
	return d
}

// Select stores n without validation; read sites resolve it against Content.
func (d *DaySelector) Select(n int) {
	d.day = n
}

// Day returns the stored day number.
func (d DaySelector) Day() int { return d.day }

// Policy returns the selection policy.
func (d DaySelector) Policy() DayPolicy { return d.policy }

func (d *DaySelector) tabChanged() {
	if d.policy == DayPolicyReset {
		d.day = NoDay
	}
}

// ResolveDay reports whether n refers to a day in content.
func ResolveDay(content Content, n int) (int, bool) {
	if n == NoDay || content == nil || !content.HasDay(n) {
		return NoDay, false
	}
	return n, true
}

// Step returns the day delta positions away from current in catalogue order,
// clamped to the first and last day. An unmatched current day steps from the
// start of the list.
func Step(content Content, current, delta int) int {
	if content == nil {
		return current
	}
	days := content.DayNumbers()
	if len(days) == 0 {
		return current
	}
	idx := -1
	for i, n := range days {
		if n == current {
			idx = i
			break
		}
	}
	if idx < 0 {
		return days[0]
	}
	idx += delta
	if idx < 0 {
		idx = 0
	}
	if idx >= len(days) {
		idx = len(days) - 1
	}
	return days[idx]
}
