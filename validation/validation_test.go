package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestValidateTiming(t *testing.T) {
	tests := []struct {
		name         string
		timing       Timing
		emptyAllowed bool
		wantOK       bool
		wantField    string
	}{
		{
			name:         "duration only",
			timing:       Timing{Duration: intPtr(60)},
			emptyAllowed: false,
			wantOK:       true,
		},
		{
			name:         "start and end only",
			timing:       Timing{StartTime: strPtr("10:00"), EndTime: strPtr("12:00")},
			emptyAllowed: false,
			wantOK:       true,
		},
		{
			name:         "duration combined with start",
			timing:       Timing{Duration: intPtr(60), StartTime: strPtr("10:00")},
			emptyAllowed: false,
			wantOK:       false,
			wantField:    "duration",
		},
		{
			name:         "duration combined with end",
			timing:       Timing{Duration: intPtr(60), EndTime: strPtr("12:00")},
			emptyAllowed: true,
			wantOK:       false,
			wantField:    "duration",
		},
		{
			name:         "start without end",
			timing:       Timing{StartTime: strPtr("10:00")},
			emptyAllowed: false,
			wantOK:       false,
			wantField:    "start_time",
		},
		{
			name:         "end without start",
			timing:       Timing{EndTime: strPtr("12:00")},
			emptyAllowed: true,
			wantOK:       false,
			wantField:    "start_time",
		},
		{
			name:         "empty allowed",
			timing:       Timing{},
			emptyAllowed: true,
			wantOK:       true,
		},
		{
			name:         "empty not allowed",
			timing:       Timing{},
			emptyAllowed: false,
			wantOK:       false,
			wantField:    "duration",
		},
		{
			name:         "negative duration",
			timing:       Timing{Duration: intPtr(-5)},
			emptyAllowed: false,
			wantOK:       false,
			wantField:    "duration",
		},
		{
			name:         "zero duration is fine",
			timing:       Timing{Duration: intPtr(0)},
			emptyAllowed: false,
			wantOK:       true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ValidateTiming(tt.timing, tt.emptyAllowed)
			assert.Equal(t, tt.wantOK, res.OK())
			if !tt.wantOK {
				assert.NotEmpty(t, res.Errors)
				assert.Equal(t, tt.wantField, res.Errors[0].Field)
			}
		})
	}
}

func TestValidateName(t *testing.T) {
	rules := DefaultRules()

	tests := []struct {
		name     string
		input    string
		existing []string
		wantOK   bool
	}{
		{name: "simple name", input: "yoga", wantOK: true},
		{name: "name with spaces and apostrophe", input: "Mom's errands", wantOK: true},
		{name: "name with hyphen and digits", input: "10k-run", wantOK: true},
		{name: "reserved name exact", input: "sleep", wantOK: false},
		{name: "reserved name mixed case", input: "Sleep", wantOK: false},
		{name: "reserved name padded", input: "  Breakfast  ", wantOK: false},
		{name: "disallowed punctuation", input: "Yoga!", wantOK: false},
		{name: "too short", input: "a", wantOK: false},
		{name: "too short after trim", input: "  a  ", wantOK: false},
		{name: "too long", input: "this name is way too long to be accepted as an activity name", wantOK: false},
		{name: "already taken", input: "Yoga", existing: []string{"yoga"}, wantOK: false},
		{name: "not taken", input: "reading", existing: []string{"yoga", "coding"}, wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := rules.ValidateName(tt.input, tt.existing)
			assert.Equal(t, tt.wantOK, res.OK(), "errors: %v", res.Errors)
		})
	}
}

func TestValidateNameCustomRules(t *testing.T) {
	rules := Rules{ReservedNames: []string{"standup"}, MinNameLen: 2, MaxNameLen: 50}

	assert.False(t, rules.ValidateName("Standup", nil).OK())
	// Names reserved in production pass under a substituted rule set.
	assert.True(t, rules.ValidateName("sleep", nil).OK())
}

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "morning walk", NormalizeName("  Morning Walk "))
	assert.Equal(t, "yoga", NormalizeName("YOGA"))
}
