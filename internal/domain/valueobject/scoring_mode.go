package valueobject

import (
	"fmt"
	"strings"
)

// ScoringMode selects which variant of the scorer runs.
type ScoringMode struct {
	value string
}

var (
	// ModeQuick draws the verdict straight from the tier distribution.
	ModeQuick = ScoringMode{value: "QUICK"}
	// ModeTwoStage runs classical screening and, when it is not confident
	// enough, a secondary deep-analysis stage.
	ModeTwoStage = ScoringMode{value: "TWO_STAGE"}
)

// ScoringModeFromString accepts "quick", "two-stage", "two_stage" in any case.
func ScoringModeFromString(s string) (ScoringMode, error) {
	normalized := strings.ReplaceAll(strings.ToUpper(strings.TrimSpace(s)), "-", "_")
	switch normalized {
	case "QUICK":
		return ModeQuick, nil
	case "TWO_STAGE", "TWOSTAGE":
		return ModeTwoStage, nil
	default:
		return ScoringMode{}, fmt.Errorf("invalid scoring mode: %q", s)
	}
}

// String returns the canonical upper-case representation.
func (m ScoringMode) String() string {
	return m.value
}

// Label returns the lower-case, dash separated form used in URLs, flags and
// metric attributes.
func (m ScoringMode) Label() string {
	return strings.ReplaceAll(strings.ToLower(m.value), "_", "-")
}

// IsZero returns true if the mode has not been set.
func (m ScoringMode) IsZero() bool {
	return m.value == ""
}

// Equal checks equality with another ScoringMode.
func (m ScoringMode) Equal(other ScoringMode) bool {
	return m.value == other.value
}
