package profiler

import (
	"log"
	"runtime"
	"sort"
	"sync"
	"time"
)

// Tracer observes named sections of work. Section is called when a section
// starts and the returned function when it ends:
//
//	defer tracer.Section("screen_size")()
type Tracer interface {
	Section(name string) func()
}

// NopTracer is a Tracer that records nothing and does not allocate.
type NopTracer struct{}

var _ Tracer = NopTracer{}

func nopEnd() {}

func (NopTracer) Section(string) func() {
	return nopEnd
}

// sectionStats accumulates timings for one named section between ticks.
type sectionStats struct {
	count int
	total time.Duration
	max   time.Duration
}

// Profiler tracks frame rate, memory statistics and named section timings for performance monitoring.
// Outputs stats to the log at a configurable interval.
// Section may be called from any goroutine; Tick must be called from a single goroutine.
type Profiler struct {
	frameCount     int
	lastTime       time.Time
	updateInterval time.Duration
	memStats       runtime.MemStats
	lastGCCount    uint32
	lastTotalAlloc uint64

	mu       sync.Mutex
	sections map[string]*sectionStats
	now      func() time.Time
}

var _ Tracer = &Profiler{}

// NewProfiler creates a new Profiler with default settings.
// Update interval defaults to 1 second.
//
// Parameters:
//   - options: functional options to configure the profiler
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler(options ...ProfilerBuilderOption) *Profiler {
	p := &Profiler{
		updateInterval: time.Second,
		memStats:       runtime.MemStats{},
		sections:       make(map[string]*sectionStats),
		now:            time.Now,
	}
	for _, option := range options {
		option(p)
	}
	p.lastTime = p.now()
	return p
}

// Section starts timing the named section and returns the function that ends it.
//
// Parameters:
//   - name: the section name; timings with the same name are aggregated
//
// Returns:
//   - func(): ends the section and records its duration
func (p *Profiler) Section(name string) func() {
	start := p.now()
	return func() {
		elapsed := p.now().Sub(start)
		p.mu.Lock()
		defer p.mu.Unlock()
		s, ok := p.sections[name]
		if !ok {
			s = &sectionStats{}
			p.sections[name] = s
		}
		s.count++
		s.total += elapsed
		if elapsed > s.max {
			s.max = elapsed
		}
	}
}

// SectionCount returns how many times the named section has completed since the last logged tick.
//
// Parameters:
//   - name: the section name
//
// Returns:
//   - int: the completed section count
func (p *Profiler) SectionCount(name string) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	if s, ok := p.sections[name]; ok {
		return s.count
	}
	return 0
}

// Tick should be called once per frame to track frame timing.
// Logs performance statistics when the update interval has elapsed.
// Statistics include: FPS, heap usage, allocation rate, GC count/pause times, total memory,
// followed by one line per recorded section (count, average and max duration).
// Section statistics are reset after they are logged.
//
// Returns:
//   - bool: true if stats were logged this tick, false otherwise
func (p *Profiler) Tick() bool {
	p.frameCount++
	currentTime := p.now()
	elapsed := currentTime.Sub(p.lastTime)

	if elapsed < p.updateInterval {
		return false
	}

	fps := float64(p.frameCount) / elapsed.Seconds()

	runtime.ReadMemStats(&p.memStats)
	allocMB := float64(p.memStats.Alloc) / 1024 / 1024
	sysMB := float64(p.memStats.Sys) / 1024 / 1024

	allocDelta := p.memStats.TotalAlloc - p.lastTotalAlloc
	allocRateMB := float64(allocDelta) / 1024 / 1024 / elapsed.Seconds()

	// PauseNs is a circular buffer of the last 256 GC pauses
	gcCount := p.memStats.NumGC
	var lastPauseUs, maxPauseUs uint64
	if gcCount > 0 {
		lastPauseUs = p.memStats.PauseNs[(gcCount-1)%256] / 1000

		startIdx := p.lastGCCount
		if gcCount-startIdx > 256 {
			startIdx = gcCount - 256
		}
		for i := startIdx; i < gcCount; i++ {
			pause := p.memStats.PauseNs[i%256] / 1000
			if pause > maxPauseUs {
				maxPauseUs = pause
			}
		}
	}

	log.Printf("[Profiler] FPS: %.2f | Heap: %.2f MB | Alloc Rate: %.2f MB/s | GC: %d (last: %d µs, max: %d µs) | Sys: %.2f MB",
		fps, allocMB, allocRateMB, gcCount, lastPauseUs, maxPauseUs, sysMB)
	p.logSections()

	p.frameCount = 0
	p.lastTime = currentTime
	p.lastGCCount = gcCount
	p.lastTotalAlloc = p.memStats.TotalAlloc
	return true
}

// logSections writes one line per section in name order and resets the section table.
func (p *Profiler) logSections() {
	p.mu.Lock()
	defer p.mu.Unlock()

	names := make([]string, 0, len(p.sections))
	for name := range p.sections {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		s := p.sections[name]
		avg := s.total / time.Duration(s.count)
		log.Printf("[Profiler] %s: %d calls | avg: %s | max: %s", name, s.count, avg, s.max)
	}
	clear(p.sections)
}
