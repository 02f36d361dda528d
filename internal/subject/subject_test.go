package subject

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    Subject
		wantErr bool
	}{
		{"math", Math, false},
		{" Reading ", Reading, false},
		{"SCIENCE", Science, false},
		{"art", Art, false},
		{"music", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrUnknownSubject) {
				t.Errorf("Parse(%q) error = %v, want ErrUnknownSubject", tt.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("Parse(%q) unexpected error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLevelCap(t *testing.T) {
	tests := []struct {
		age  AgeGroup
		want int
	}{
		{AgeYoung, 3},
		{AgeMiddle, 4},
		{AgeOlder, 5},
	}
	for _, tt := range tests {
		if got := tt.age.LevelCap(); got != tt.want {
			t.Errorf("%s.LevelCap() = %d, want %d", tt.age, got, tt.want)
		}
	}
}

func TestParseAgeGroup(t *testing.T) {
	for in, want := range map[string]AgeGroup{
		"young": AgeYoung, "4-6": AgeYoung,
		"Middle": AgeMiddle, "7-9": AgeMiddle,
		"older": AgeOlder, "10-12": AgeOlder,
	} {
		got, err := ParseAgeGroup(in)
		if err != nil {
			t.Fatalf("ParseAgeGroup(%q): %v", in, err)
		}
		if got != want {
			t.Errorf("ParseAgeGroup(%q) = %q, want %q", in, got, want)
		}
	}

	if _, err := ParseAgeGroup("teen"); !errors.Is(err, ErrUnknownAgeGroup) {
		t.Errorf("expected ErrUnknownAgeGroup, got %v", err)
	}
}

func TestAllSubjectsValid(t *testing.T) {
	for _, s := range All() {
		if !s.Valid() {
			t.Errorf("%q should be valid", s)
		}
		if s.DisplayName() == string(s) {
			t.Errorf("%q has no display name", s)
		}
	}
}
