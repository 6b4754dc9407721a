package idgen

import (
	"errors"
	"sync"

	"github.com/anthanhphan/gosdk/logger"
)

// Layout of a 63-bit ID: 41 bits of milliseconds since Epoch, 10 bits of node,
// 12 bits of per-millisecond sequence.
const (
	nodeBits     = 10
	sequenceBits = 12

	MaxNodeID   = -1 ^ (-1 << nodeBits)
	maxSequence = -1 ^ (-1 << sequenceBits)

	nodeShift = sequenceBits
	timeShift = sequenceBits + nodeBits

	// Epoch is 2024-01-01 00:00:00 UTC in milliseconds.
	Epoch int64 = 1704067200000
)

var ErrNodeIDOutOfRange = errors.New("node ID out of range")

// Generator hands out unique, time-ordered, strictly positive IDs.
// The file host uses them to name real-time sessions in logs and in the hub.
type Generator struct {
	mu       sync.Mutex
	clock    Clock
	node     int64
	lastMS   int64
	sequence int64
}

// NewGenerator creates a generator for node. A nil clock means the system clock.
func NewGenerator(node int64, clock Clock) (*Generator, error) {
	if node < 0 || node > MaxNodeID {
		return nil, ErrNodeIDOutOfRange
	}
	if clock == nil {
		clock = SystemClock{}
	}
	return &Generator{clock: clock, node: node, lastMS: -1}, nil
}

// Next returns the next ID. It never fails on a clock step back: the generator
// stays on the last millisecond it issued and keeps counting from there.
func (g *Generator) Next() (int64, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.clock.Now()
	if now < g.lastMS {
		logger.Debugw("Clock behind last issued ID, reusing last millisecond", "clock_ms", now, "last_ms", g.lastMS)
		now = g.lastMS
	}

	if now == g.lastMS {
		g.sequence = (g.sequence + 1) & maxSequence
		if g.sequence == 0 {
			// Sequence exhausted: borrow the next millisecond.
			now++
		}
	} else {
		g.sequence = 0
	}
	g.lastMS = now

	return (now-Epoch)<<timeShift | g.node<<nodeShift | g.sequence, nil
}
