package stream

import "github.com/driftcode/llmparse/internal/schema"

// Core is the shared state machine behind every collector: an append-only
// buffer, an absorbed-prefix offset, and the scan primitives that find
// complete top-level JSON values inside it. Collectors wrap Core
// with their own emission policy; Core itself only ever returns spans or
// reports that a limit has been permanently tripped.
type Core struct {
	buf      []byte
	absorbed int
	limits   Limits

	terminal    bool
	terminalErr *schema.ValidationError

	finished bool
	items    int64
}

func NewCore(limits Limits) *Core {
	return &Core{limits: limits}
}

// Append concatenates chunk to the buffer. Once a limit has been tripped,
// Append is a no-op: a limit violation transitions directly to a terminal
// error state, and subsequent append/poll calls return that same error.
func (c *Core) Append(chunk []byte) {
	if c.terminal {
		return
	}
	c.buf = append(c.buf, chunk...)
	if c.limits.MaxBufferBytes > 0 && int64(len(c.buf)) > c.limits.MaxBufferBytes {
		c.terminal = true
		c.terminalErr = schema.NewLimit(
			"$.stream.maxBufferBytes",
			schema.Limit{Kind: schema.LimitMaxBufferBytes, Current: int64(len(c.buf)), Max: c.limits.MaxBufferBytes},
			"stream buffer of %d bytes exceeds maxBufferBytes %d", len(c.buf), c.limits.MaxBufferBytes,
		)
	}
}

// Finish sets the sticky EOF flag. NextValueSpan does not consult it;
// collectors check Finished and HasUnfinishedStructure to report a value
// left incomplete at end of input.
func (c *Core) Finish() {
	c.finished = true
}

// Finished reports whether Finish has been called.
func (c *Core) Finished() bool { return c.finished }

// Reset returns Core to its initial state, reusable for a new stream.
func (c *Core) Reset() {
	limits := c.limits
	*c = Core{limits: limits}
}

// Terminal reports whether a limit violation has permanently ended the
// stream, and the sticky error if so.
func (c *Core) Terminal() (bool, *schema.ValidationError) {
	return c.terminal, c.terminalErr
}

// ItemCount returns the number of values successfully absorbed so far.
func (c *Core) ItemCount() int64 { return c.items }

// CheckItemLimit reports a maxItems violation for the item that would be
// the (current items + 1)'th, without mutating state — callers decide
// whether to commit the item or finalize with a limit error.
func (c *Core) CheckItemLimit() *schema.ValidationError {
	if c.limits.MaxItems > 0 && c.items+1 > c.limits.MaxItems {
		return schema.NewLimit(
			"$.stream.maxItems",
			schema.Limit{Kind: schema.LimitMaxItems, Current: c.items + 1, Max: c.limits.MaxItems},
			"stream item %d exceeds maxItems %d", c.items+1, c.limits.MaxItems,
		)
	}
	return nil
}

// CommitItem records that one more item has been absorbed.
func (c *Core) CommitItem() { c.items++ }

// NextValueSpan scans the unabsorbed tail of the buffer for the next
// complete top-level JSON value. It advances the absorbed cursor past the
// span on success. ok=false means "not enough data yet" — not an error.
func (c *Core) NextValueSpan() (span []byte, ok bool) {
	if c.terminal {
		return nil, false
	}
	tail := c.buf[c.absorbed:]
	proseLen, found := scanPastProse(tail)
	if !found {
		return nil, false
	}
	valueLen, complete := scanBalanced(tail[proseLen:])
	if !complete {
		return nil, false
	}
	span = tail[proseLen : proseLen+valueLen]
	c.absorbed += proseLen + valueLen
	return span, true
}

// HasUnfinishedStructure reports whether the unabsorbed tail contains a
// structural opener with no matching close yet — used by Finish-time
// incompleteness detection at Finish time.
func (c *Core) HasUnfinishedStructure() bool {
	tail := c.buf[c.absorbed:]
	proseLen, found := scanPastProse(tail)
	if !found {
		return false
	}
	_, complete := scanBalanced(tail[proseLen:])
	return !complete
}

// Location reports the scanner cursor's position within the unabsorbed
// buffer tail.
func (c *Core) Location() Location {
	tail := c.buf[c.absorbed:]
	line, col := locationOf(tail, 0)
	return Location{Offset: uint(c.absorbed), Line: line, Col: col}
}
