package model

import (
	"sync"
	"time"
)

// Clock accumulates the time a side spends thinking. It only counts up; it
// never limits a move.
type Clock struct {
	mu          sync.Mutex
	elapsed     time.Duration
	lastStarted time.Time
	isRunning   bool
	now         func() time.Time
}

func NewClock() *Clock {
	return &Clock{now: time.Now}
}

func (c *Clock) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.isRunning {
		c.lastStarted = c.now()
		c.isRunning = true
	}
}

func (c *Clock) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.isRunning {
		c.elapsed += c.now().Sub(c.lastStarted)
		c.isRunning = false
	}
}

func (c *Clock) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.elapsed = 0
	c.isRunning = false
}

func (c *Clock) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.isRunning
}

func (c *Clock) Elapsed() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.isRunning {
		return c.elapsed + c.now().Sub(c.lastStarted)
	}
	return c.elapsed
}

// Clocks holds one clock per side.
type Clocks struct {
	light *Clock
	dark  *Clock
}

func NewClocks() *Clocks {
	return &Clocks{light: NewClock(), dark: NewClock()}
}

func (c *Clocks) For(side Side) *Clock {
	if side == Light {
		return c.light
	}
	return c.dark
}

// Switch stops the clock of the side that just moved and starts the other.
func (c *Clocks) Switch(toMove Side) {
	c.For(toMove.Opponent()).Stop()
	c.For(toMove).Start()
}

func (c *Clocks) Reset() {
	c.light.Reset()
	c.dark.Reset()
}

// ClientClocks is the JSON view, in milliseconds.
type ClientClocks struct {
	Light int64 `json:"light"`
	Dark  int64 `json:"dark"`
}

func (c *Clocks) Client() ClientClocks {
	return ClientClocks{
		Light: c.light.Elapsed().Milliseconds(),
		Dark:  c.dark.Elapsed().Milliseconds(),
	}
}
