package domain

import (
	"fmt"
	"strings"
)

// Urgency is the triage classification shared by conditions and analysis results.
type Urgency string

const (
	NonUrgent Urgency = "non_urgent"
	Urgent    Urgency = "urgent"
	Emergency Urgency = "emergency"
)

// ParseUrgency accepts the three canonical labels, case-insensitively.
func ParseUrgency(s string) (Urgency, error) {
	switch u := Urgency(strings.ToLower(strings.TrimSpace(s))); u {
	case NonUrgent, Urgent, Emergency:
		return u, nil
	default:
		return "", fmt.Errorf("unknown urgency %q", s)
	}
}

// Rank orders urgencies from least (0) to most (2) severe.
func (u Urgency) Rank() int {
	switch u {
	case Emergency:
		return 2
	case Urgent:
		return 1
	default:
		return 0
	}
}

func (u Urgency) String() string {
	return string(u)
}
