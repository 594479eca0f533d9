package notify

import (
	"fmt"
	"strings"
)

type Level int

const (
	LevelInfo Level = iota
	LevelWarn
)

// Sink receives non-fatal diagnostics. Delivery is fire-and-forget; callers
// never branch on a sink outcome.
type Sink interface {
	Notify(level Level, message string)
}

func Warnf(sink Sink, format string, args ...any) {
	if sink == nil {
		return
	}
	sink.Notify(LevelWarn, fmt.Sprintf(format, args...))
}

func Infof(sink Sink, format string, args ...any) {
	if sink == nil {
		return
	}
	sink.Notify(LevelInfo, fmt.Sprintf(format, args...))
}

// Collector retains messages in arrival order, dropping duplicates.
type Collector struct {
	seen     map[string]struct{}
	messages []string
	warns    []string
}

func (c *Collector) Notify(level Level, message string) {
	if c == nil {
		return
	}
	message = strings.TrimSpace(message)
	if message == "" {
		return
	}
	if c.seen == nil {
		c.seen = make(map[string]struct{})
	}
	if _, ok := c.seen[message]; ok {
		return
	}
	c.seen[message] = struct{}{}
	c.messages = append(c.messages, message)
	if level == LevelWarn {
		c.warns = append(c.warns, message)
	}
}

func (c *Collector) Messages() []string {
	if c == nil {
		return nil
	}
	return append([]string(nil), c.messages...)
}

func (c *Collector) Warnings() []string {
	if c == nil {
		return nil
	}
	return append([]string(nil), c.warns...)
}

// Discard drops everything; handy default when a caller has no sink.
var Discard Sink = discard{}

type discard struct{}

func (discard) Notify(Level, string) {}
