package sink

import (
	"strings"

	"github.com/overlog/overlog/core"
	"github.com/overlog/overlog/handler"
)

// MatchOp selects how a blacklist pattern is compared against a message
type MatchOp int

const (
	// MatchIs requires the message to equal the pattern exactly
	MatchIs MatchOp = iota
	// MatchHasPrefix requires the message to start with the pattern
	MatchHasPrefix
	// MatchHasSuffix requires the message to end with the pattern
	MatchHasSuffix
	// MatchContains requires the message to contain the pattern
	MatchContains
)

// String returns the string representation of the operation
func (op MatchOp) String() string {
	switch op {
	case MatchIs:
		return "Is"
	case MatchHasPrefix:
		return "HasPrefix"
	case MatchHasSuffix:
		return "HasSuffix"
	case MatchContains:
		return "Contains"
	default:
		return "Unknown"
	}
}

// ParseMatchOp converts a string to a MatchOp. Unknown strings map to
// MatchContains, the most permissive operation.
func ParseMatchOp(s string) MatchOp {
	switch strings.ToLower(s) {
	case "is":
		return MatchIs
	case "hasprefix", "startswith", "prefix":
		return MatchHasPrefix
	case "hassuffix", "endswith", "suffix":
		return MatchHasSuffix
	case "contains":
		return MatchContains
	default:
		return MatchContains
	}
}

// Rule is one blacklist predicate. A rule with an empty pattern is
// inert: it never matches anything, including the empty message.
type Rule struct {
	Op      MatchOp
	Pattern string
}

// Matches reports whether the message trips this rule. Comparison is
// case-sensitive.
func (r Rule) Matches(message string) bool {
	if r.Pattern == "" {
		return false
	}
	switch r.Op {
	case MatchIs:
		return message == r.Pattern
	case MatchHasPrefix:
		return strings.HasPrefix(message, r.Pattern)
	case MatchHasSuffix:
		return strings.HasSuffix(message, r.Pattern)
	case MatchContains:
		return strings.Contains(message, r.Pattern)
	default:
		return false
	}
}

// Blacklist suppresses entries whose message matches any rule.
// Rules are evaluated in order with short-circuiting, so tests can rely
// on deterministic evaluation, but since the rules combine as a logical
// OR the order never changes the outcome.
type Blacklist struct {
	inner Sink
	rules []Rule
}

// NewBlacklist wraps inner with the given suppression rules
func NewBlacklist(inner Sink, rules ...Rule) *Blacklist {
	return &Blacklist{inner: inner, rules: rules}
}

// Suppressed reports whether a message would be dropped
func (b *Blacklist) Suppressed(message string) bool {
	for _, r := range b.rules {
		if r.Matches(message) {
			return true
		}
	}
	return false
}

// Log drops suppressed entries and forwards the rest
func (b *Blacklist) Log(entry *core.Entry) error {
	if b.Suppressed(entry.Message) {
		return nil
	}
	return b.inner.Log(entry)
}

// LogError always forwards; suppression applies to messages, not errors
func (b *Blacklist) LogError(err error, fields ...core.Field) error {
	return b.inner.LogError(err, fields...)
}

// Handler returns the inner sink's handler
func (b *Blacklist) Handler() handler.Handler {
	return b.inner.Handler()
}

// SetHandler rewires the inner sink's handler
func (b *Blacklist) SetHandler(h handler.Handler) {
	b.inner.SetHandler(h)
}
