package subject

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownSubject is returned when parsing a subject outside the fixed set.
var ErrUnknownSubject = errors.New("unknown subject")

// ErrUnknownAgeGroup is returned when parsing an age group outside the fixed set.
var ErrUnknownAgeGroup = errors.New("unknown age group")

// Subject is a top-level learning domain.
type Subject string

const (
	Math    Subject = "math"
	Reading Subject = "reading"
	Science Subject = "science"
	Art     Subject = "art"
)

// All returns all subjects in display order.
func All() []Subject {
	return []Subject{Math, Reading, Science, Art}
}

// DisplayName returns a human-readable name for a subject.
func (s Subject) DisplayName() string {
	switch s {
	case Math:
		return "Math"
	case Reading:
		return "Reading"
	case Science:
		return "Science"
	case Art:
		return "Art"
	default:
		return string(s)
	}
}

// Valid reports whether s is one of the known subjects.
func (s Subject) Valid() bool {
	switch s {
	case Math, Reading, Science, Art:
		return true
	}
	return false
}

// Parse converts a string to a Subject, case-insensitively.
func Parse(s string) (Subject, error) {
	sub := Subject(strings.ToLower(strings.TrimSpace(s)))
	if !sub.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownSubject, s)
	}
	return sub, nil
}

// AgeGroup is one of the three learner cohorts.
type AgeGroup string

const (
	AgeYoung  AgeGroup = "young"  // 4-6
	AgeMiddle AgeGroup = "middle" // 7-9
	AgeOlder  AgeGroup = "older"  // 10-12
)

// AllAgeGroups returns the age groups from youngest to oldest.
func AllAgeGroups() []AgeGroup {
	return []AgeGroup{AgeYoung, AgeMiddle, AgeOlder}
}

// LevelCap returns the highest difficulty level reachable by the age group.
func (a AgeGroup) LevelCap() int {
	switch a {
	case AgeYoung:
		return 3
	case AgeMiddle:
		return 4
	case AgeOlder:
		return 5
	default:
		return 3
	}
}

// IsYoungest reports whether a is the youngest band.
func (a AgeGroup) IsYoungest() bool {
	return a == AgeYoung
}

// DisplayName returns a human-readable label for the age group.
func (a AgeGroup) DisplayName() string {
	switch a {
	case AgeYoung:
		return "Ages 4-6"
	case AgeMiddle:
		return "Ages 7-9"
	case AgeOlder:
		return "Ages 10-12"
	default:
		return string(a)
	}
}

// Valid reports whether a is one of the known age groups.
func (a AgeGroup) Valid() bool {
	switch a {
	case AgeYoung, AgeMiddle, AgeOlder:
		return true
	}
	return false
}

// ParseAgeGroup converts a string to an AgeGroup. Both the band names and
// the numeric ranges ("4-6", "7-9", "10-12") are accepted.
func ParseAgeGroup(s string) (AgeGroup, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	switch v {
	case "young", "4-6":
		return AgeYoung, nil
	case "middle", "7-9":
		return AgeMiddle, nil
	case "older", "10-12":
		return AgeOlder, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAgeGroup, s)
}
