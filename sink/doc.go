// Package sink defines the Sink capability: a logging policy object
// that accepts entries and errors and delegates output to a Handler.
//
// Policies compose as decorators rather than through inheritance: a
// filtering sink wraps an inner sink and forwards what it does not
// suppress. Basic is the terminal pass-through; LevelGate, Blacklist,
// and Prompt each wrap any other sink, so a severity-gated,
// blacklist-filtered, sampled sink is just
//
//	sink.NewLevelGate(sink.NewBlacklist(sink.NewPrompt(base, 10, fn), rules...), core.WarnLevel)
//
// Handler and SetHandler traverse to the terminal sink, which is how
// the override core rewires a new sink onto the handler of the sink
// beneath it on the stack. SetHandler is not synchronized; the override
// manager only calls it while constructing a sink, before publishing it.
package sink
