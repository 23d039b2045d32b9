// Package validation holds the pure rule checks run before any daily record is
// persisted: the duration-vs-start/end timing invariant and the custom
// activity naming rules. Nothing here touches the database; callers pass in
// whatever existing state the rules need.
package validation

import (
	"fmt"
	"regexp"
	"strings"
)

// FieldError pins a validation failure to the field that caused it.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Result is the outcome of a validation pass. A Result with no errors is ok.
type Result struct {
	Errors []FieldError `json:"errors,omitempty"`
}

// OK reports whether the validated value passed every rule.
func (r Result) OK() bool { return len(r.Errors) == 0 }

func (r *Result) add(field, message string) {
	r.Errors = append(r.Errors, FieldError{Field: field, Message: message})
}

// Timing is the subset of an activity record the timing rules care about.
type Timing struct {
	StartTime *string
	EndTime   *string
	Duration  *int
}

// ValidateTiming enforces the timing invariant: either an explicit duration,
// or both a start and an end time, never a mix. With emptyAllowed true an
// entry with none of the three is valid (a DayLog slot that hasn't been
// logged yet); with emptyAllowed false it is rejected.
func ValidateTiming(t Timing, emptyAllowed bool) Result {
	var res Result

	hasStart := t.StartTime != nil
	hasEnd := t.EndTime != nil
	hasDuration := t.Duration != nil

	if emptyAllowed && !hasStart && !hasEnd && !hasDuration {
		return res
	}

	if hasDuration && (hasStart || hasEnd) {
		res.add("duration", "cannot combine duration with start/end time")
		return res
	}
	if !hasDuration && hasStart != hasEnd {
		res.add("start_time", "must provide both start and end time together")
		return res
	}
	if !emptyAllowed && !hasStart && !hasEnd && !hasDuration {
		res.add("duration", "must provide a duration or a start/end time pair")
		return res
	}
	if hasDuration && *t.Duration < 0 {
		res.add("duration", "duration must not be negative")
	}
	return res
}

var nameCharset = regexp.MustCompile(`^[a-zA-Z0-9 '\-]+$`)

// Rules carries the naming configuration for custom activities and templates.
// It is built once in config and handed to whoever validates names, so tests
// can swap in their own reserved sets without touching process state.
type Rules struct {
	ReservedNames []string
	MinNameLen    int
	MaxNameLen    int
}

// DefaultRules returns the production rule set. The reserved list covers the
// built-in tracking categories a user-defined activity must not shadow.
func DefaultRules() Rules {
	return Rules{
		ReservedNames: []string{
			"sleep", "exercise", "meal",
			"breakfast", "lunch", "dinner", "snack",
			"water", "expense", "nutrition",
		},
		MinNameLen: 2,
		MaxNameLen: 50,
	}
}

// NormalizeName trims and lowercases a candidate activity name. All naming
// rules and uniqueness checks operate on the normalized form.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// ValidateName checks a candidate custom-activity name against the rule set.
// existing is the caller-fetched list of normalized names already taken in
// the same scope (user+date for instances, user for templates). The existing
// check is advisory only; the database unique index remains the authority
// under concurrent writes.
func (r Rules) ValidateName(name string, existing []string) Result {
	var res Result

	normalized := NormalizeName(name)
	if len(normalized) < r.MinNameLen || len(normalized) > r.MaxNameLen {
		res.add("name", fmt.Sprintf("name must be %d-%d characters", r.MinNameLen, r.MaxNameLen))
		return res
	}
	if !nameCharset.MatchString(normalized) {
		res.add("name", "name may only contain letters, digits, spaces, hyphens and apostrophes")
		return res
	}
	for _, reserved := range r.ReservedNames {
		if normalized == reserved {
			res.add("name", fmt.Sprintf("%q is a reserved activity name", normalized))
			return res
		}
	}
	for _, taken := range existing {
		if normalized == taken {
			res.add("name", fmt.Sprintf("%q already exists", normalized))
			return res
		}
	}
	return res
}
