package graph

import "sync"

// progressTracker is the mutex-protected total/processed/status counter
// spec.md §4.2.1 requires: writer-heavy, no readers in the critical path
// (spec.md §5), so a plain sync.Mutex is enough — no need for an RWMutex.
type progressTracker struct {
	mu        sync.Mutex
	status    Status
	total     int
	processed int
}

func newProgressTracker(total int) *progressTracker {
	return &progressTracker{status: StatusIdle, total: total}
}

func (p *progressTracker) setStatus(s Status) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.status = s
}

// increment bumps the processed counter by one, called once per completed
// atom regardless of its classification outcome.
func (p *progressTracker) increment() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.processed++
}

// Snapshot returns the current (status, total, processed, percent).
func (p *progressTracker) Snapshot() Progress {
	p.mu.Lock()
	defer p.mu.Unlock()

	percent := 0.0
	if p.total > 0 {
		percent = float64(p.processed) / float64(p.total) * 100
	}
	return Progress{
		Status:    p.status,
		Total:     p.total,
		Processed: p.processed,
		Percent:   percent,
	}
}
