package profiler

import (
	"bytes"
	"log"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fakeClock) now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := log.Writer()
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(prev) })
	return &buf
}

func TestNopTracer(t *testing.T) {
	var tr Tracer = NopTracer{}
	end := tr.Section("anything")
	end()
}

func TestSectionAggregates(t *testing.T) {
	clk := &fakeClock{}
	p := NewProfiler(WithClock(clk.now))

	for range 3 {
		p.Section("screen_size")()
	}
	p.Section("quad")()

	assert.Equal(t, 3, p.SectionCount("screen_size"))
	assert.Equal(t, 1, p.SectionCount("quad"))
	assert.Equal(t, 0, p.SectionCount("missing"))
}

func TestSectionConcurrent(t *testing.T) {
	p := NewProfiler()
	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer p.Section("parallel")()
		}()
	}
	wg.Wait()
	assert.Equal(t, 16, p.SectionCount("parallel"))
}

func TestTickLogsAndResets(t *testing.T) {
	buf := captureLog(t)
	clk := &fakeClock{}
	p := NewProfiler(WithClock(clk.now), WithUpdateInterval(time.Second))

	end := p.Section("screen_size")
	clk.advance(2 * time.Millisecond)
	end()

	clk.advance(500 * time.Millisecond)
	assert.False(t, p.Tick())
	clk.advance(600 * time.Millisecond)
	assert.True(t, p.Tick())

	out := buf.String()
	assert.Contains(t, out, "[Profiler] FPS:")
	assert.Contains(t, out, "[Profiler] screen_size: 1 calls | avg: 2ms | max: 2ms")
	assert.Equal(t, 0, p.SectionCount("screen_size"))
}
