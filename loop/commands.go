// Package loop drives frame-based updates: a Scheduler runs registered systems
// in order each tick and flushes the work they deferred once all have run.
package loop

// Commands buffers work that must run after the current frame's systems have
// finished, such as notifying observers of state changes. Deferred functions
// run in the order they were queued.
type Commands struct {
	defers []func()
}

// NewCommands returns an empty buffer.
func NewCommands() *Commands {
	return &Commands{}
}

// Defer queues fn.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Len returns the number of queued functions.
func (c *Commands) Len() int {
	return len(c.defers)
}

// Flush runs every queued function and resets the buffer. Functions queued
// while flushing run in the same flush.
func (c *Commands) Flush() {
	for i := 0; i < len(c.defers); i++ {
		c.defers[i]()
	}
	clear(c.defers)
	c.defers = c.defers[:0]
}
