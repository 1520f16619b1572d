package app

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// FrameStats keeps the last duration of each named scope plus counters.
type FrameStats struct {
	Scopes     map[string]time.Duration
	StartTimes map[string]time.Time
	Counts     map[string]int
	Order      []string

	Frames     int
	FPS        float64
	windowFrom time.Time
	now        func() time.Time
}

func NewFrameStats() *FrameStats {
	return &FrameStats{
		Scopes:     make(map[string]time.Duration),
		StartTimes: make(map[string]time.Time),
		Counts:     make(map[string]int),
		Order:      make([]string, 0),
		now:        time.Now,
	}
}

func (p *FrameStats) BeginScope(name string) {
	p.StartTimes[name] = p.now()
	for _, n := range p.Order {
		if n == name {
			return
		}
	}
	p.Order = append(p.Order, name)
}

func (p *FrameStats) EndScope(name string) {
	if start, ok := p.StartTimes[name]; ok {
		p.Scopes[name] = p.now().Sub(start)
	}
}

func (p *FrameStats) SetCount(name string, count int) {
	p.Counts[name] = count
}

// EndFrame counts a presented frame. It reports true once per second, when
// FPS has been recomputed and the stats are worth logging.
func (p *FrameStats) EndFrame() bool {
	now := p.now()
	if p.windowFrom.IsZero() {
		p.windowFrom = now
	}
	p.Frames++
	elapsed := now.Sub(p.windowFrom)
	if elapsed < time.Second {
		return false
	}
	p.FPS = float64(p.Frames) / elapsed.Seconds()
	p.Frames = 0
	p.windowFrom = now
	return true
}

func (p *FrameStats) String() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("fps %.1f", p.FPS))
	for _, name := range p.Order {
		ms := float64(p.Scopes[name].Microseconds()) / 1000.0
		sb.WriteString(fmt.Sprintf(" %s=%.2fms", name, ms))
	}

	keys := make([]string, 0, len(p.Counts))
	for k := range p.Counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		sb.WriteString(fmt.Sprintf(" %s=%d", k, p.Counts[k]))
	}
	return sb.String()
}
