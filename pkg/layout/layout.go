// Package layout holds the layout direction shared by the whole process.
//
// Every renderer that is handed the same *Config observes a direction change
// made through ForceRTL, which is how a single switch flips the layout of the
// entire application rather than of one screen.
package layout

import (
	"strings"
	"sync"

	"golang.org/x/text/width"
)

type Direction uint8

const (
	LTR Direction = iota
	RTL
)

func (d Direction) String() string {
	if d == RTL {
		return "rtl"
	}
	return "ltr"
}

// Align pads s on the left so that it ends at column cols when d is RTL.
// LTR lines and lines wider than cols are returned unchanged.
func (d Direction) Align(s string, cols int) string {
	if d != RTL || cols <= 0 {
		return s
	}
	w := DisplayWidth(s)
	if w >= cols {
		return s
	}
	return strings.Repeat(" ", cols-w) + s
}

// DisplayWidth counts terminal columns, wide and fullwidth runes take two.
func DisplayWidth(s string) int {
	n := 0
	for _, r := range s {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			n += 2
		default:
			n++
		}
	}
	return n
}

type Config struct {
	mu   sync.RWMutex
	dir  Direction
	subs map[int]func(Direction)
	next int
}

func New(dir Direction) *Config {
	return &Config{
		dir:  dir,
		subs: make(map[int]func(Direction)),
	}
}

var shared = New(LTR)

// Shared returns the process-wide layout configuration.
func Shared() *Config {
	return shared
}

func (c *Config) Direction() Direction {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.dir
}

func (c *Config) IsRTL() bool {
	return c.Direction() == RTL
}

// ForceRTL switches the direction for every holder of c. Subscribers are
// notified only when the direction actually changes.
func (c *Config) ForceRTL(rtl bool) {
	dir := LTR
	if rtl {
		dir = RTL
	}

	c.mu.Lock()
	if c.dir == dir {
		c.mu.Unlock()
		return
	}
	c.dir = dir
	subs := make([]func(Direction), 0, len(c.subs))
	for _, fn := range c.subs {
		subs = append(subs, fn)
	}
	c.mu.Unlock()

	for _, fn := range subs {
		fn(dir)
	}
}

// Subscribe registers fn for direction changes. The returned func removes it.
func (c *Config) Subscribe(fn func(Direction)) (cancel func()) {
	c.mu.Lock()
	id := c.next
	c.next++
	c.subs[id] = fn
	c.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			c.mu.Lock()
			delete(c.subs, id)
			c.mu.Unlock()
		})
	}
}
