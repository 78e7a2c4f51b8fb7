package engine

import (
	"fmt"
	"strings"
)

type Cadence string

const (
	CadenceDaily   Cadence = "daily"
	CadenceWeekly  Cadence = "weekly"
	CadenceMonthly Cadence = "monthly"
	CadenceOneTime Cadence = "one_time"
)

// Cadences lists every cadence in display order.
var Cadences = []Cadence{CadenceDaily, CadenceWeekly, CadenceMonthly, CadenceOneTime}

func (c Cadence) IsValid() bool {
	switch c {
	case CadenceDaily, CadenceWeekly, CadenceMonthly, CadenceOneTime:
		return true
	default:
		return false
	}
}

// Recurring reports whether the cadence has a repeating period.
func (c Cadence) Recurring() bool {
	return c != CadenceOneTime
}

func ParseCadence(input string) (Cadence, error) {
	s := strings.TrimSpace(strings.ToLower(input))
	s = strings.ReplaceAll(s, "-", "_")
	c := Cadence(s)
	if !c.IsValid() {
		return "", fmt.Errorf("invalid cadence: %q", input)
	}
	return c, nil
}
