// Package agentenv detects whether the current process is being driven
// by an autonomous coding agent (Claude Code, Copilot, Cursor, Codex,
// ...), and if so which one, at what confidence. Consumers use it to
// skip interactive prompts, disable animations, or emit structured
// errors when no human is typing.
//
// Detection reads environment variables and, for two tools that share an
// ambiguous terminal marker, the ancestor process chain. Nothing else is
// inspected. Every signal can be spoofed by whoever controls the
// environment; never use the answer for security decisions.
package agentenv

import (
	"os"

	"github.com/usetempo/agentenv/internal/ancestry"
)

// Option adjusts a single query.
type Option func(*queryOpts)

type queryOpts struct {
	fresh     bool
	cache     *Cache
	maxDepth  int
	env       lookupEnv
	ancestors lookupAncestors
}

// Fresh forces a full re-evaluation, bypassing any attached cache for
// the read (the computed result still replaces the cached one).
func Fresh() Option {
	return func(o *queryOpts) { o.fresh = true }
}

// WithCache attaches a caller-owned Cache to the query. Without it every
// query re-runs all detectors.
func WithCache(c *Cache) Option {
	return func(o *queryOpts) { o.cache = c }
}

// MaxAncestorDepth caps how far up the process tree the ancestor walk
// may go. Values outside [0, ancestry.MaxDepth] are clamped.
func MaxAncestorDepth(n int) Option {
	return func(o *queryOpts) { o.maxDepth = n }
}

func withEnv(fn lookupEnv) Option {
	return func(o *queryOpts) { o.env = fn }
}

func withAncestors(fn lookupAncestors) Option {
	return func(o *queryOpts) { o.ancestors = fn }
}

func newQueryOpts(opts []Option) queryOpts {
	o := queryOpts{
		maxDepth:  ancestry.MaxDepth,
		env:       os.LookupEnv,
		ancestors: ancestry.Lookup,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Detect resolves the current environment to a single best answer, or
// nil when no supported tool is detected. The result is a pure function
// of the process environment and ancestor chain at call time.
func Detect(opts ...Option) *Result {
	o := newQueryOpts(opts)
	if o.cache != nil && !o.fresh {
		if r, ok := o.cache.Get(); ok {
			return r
		}
	}
	ancestors := func(maxDepth int) []string {
		if maxDepth > o.maxDepth {
			maxDepth = o.maxDepth
		}
		return o.ancestors(maxDepth)
	}
	r := resolve(registry, o.env, ancestors)
	if o.cache != nil {
		o.cache.Set(r)
	}
	return r
}

// IsAgent reports whether any supported tool is driving this process.
func IsAgent(opts ...Option) bool {
	return Detect(opts...) != nil
}

// IsTool reports whether the detected tool is exactly tool.
func IsTool(tool Tool, opts ...Option) bool {
	r := Detect(opts...)
	return r != nil && r.Tool == tool
}
