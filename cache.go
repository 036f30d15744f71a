package agentenv

// Cache memoizes one resolution outcome, including the "nothing
// detected" outcome. It is an explicit object the caller constructs and
// invalidates; the package keeps no hidden state. Like the rest of the
// package it assumes single-threaded callers.
type Cache struct {
	result    *Result
	populated bool
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{}
}

// Get returns the memoized result. The second return is false until Set
// has been called; a stored nil result (no tool detected) returns
// (nil, true).
func (c *Cache) Get() (*Result, bool) {
	return c.result, c.populated
}

// Set stores r as the memoized outcome.
func (c *Cache) Set(r *Result) {
	c.result = r
	c.populated = true
}

// Clear empties the cache so the next query re-evaluates.
func (c *Cache) Clear() {
	c.result = nil
	c.populated = false
}
