// Package mentor is the scripted space mentor: an ordered keyword rule
// table and the conversation it answers in.
package mentor

import (
	"strings"
	"time"

	"github.com/papapumpkin/astronexus/internal/dataset"
)

// Rule answers any question containing one of its keywords.
type Rule struct {
	Name     string
	Keywords []string
	Response string
}

// matches reports whether any keyword is a substring of lower, which must
// already be lower case.
func (r Rule) matches(lower string) bool {
	for _, k := range r.Keywords {
		if k != "" && strings.Contains(lower, strings.ToLower(k)) {
			return true
		}
	}
	return false
}

// Responder evaluates rules in order and falls back when none match.
type Responder struct {
	rules    []Rule
	fallback string
}

// NewResponder builds a responder from an authored script.
func NewResponder(s dataset.Script) Responder {
	rules := make([]Rule, len(s.Rules))
	for i, sr := range s.Rules {
		rules[i] = Rule{Name: sr.Name, Keywords: sr.Keywords, Response: sr.Response}
	}
	return Responder{rules: rules, fallback: s.Fallback}
}

// Match returns the first rule that matches text, case-insensitively.
func (r Responder) Match(text string) (Rule, bool) {
	lower := strings.ToLower(text)
	for _, rule := range r.rules {
		if rule.matches(lower) {
			return rule, true
		}
	}
	return Rule{}, false
}

// Respond returns the answer to text: the first matching rule's response,
// or the fallback.
func (r Responder) Respond(text string) string {
	if rule, ok := r.Match(text); ok {
		return rule.Response
	}
	return r.fallback
}

// Rules returns the rule names in evaluation order.
func (r Responder) Rules() []string {
	names := make([]string, len(r.rules))
	for i, rule := range r.rules {
		names[i] = rule.Name
	}
	return names
}

// Source yields uniform floats in [0, 1).
type Source interface {
	Float64() float64
}

// DelayRange bounds the simulated thinking time before an answer.
type DelayRange struct {
	Min time.Duration
	Max time.Duration
}

// DefaultDelay is the thinking time used when none is configured.
var DefaultDelay = DelayRange{Min: time.Second, Max: 3 * time.Second}

// Pick draws a delay uniformly from the range. An inverted range yields
// Min.
func (d DelayRange) Pick(src Source) time.Duration {
	if d.Max <= d.Min {
		return d.Min
	}
	return d.Min + time.Duration(src.Float64()*float64(d.Max-d.Min))
}
