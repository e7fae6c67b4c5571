package observability

import "sync"

// Inmem keeps a bounded ring of recent observations plus running totals.
// Good enough for the /stats endpoint and tests; a real metrics backend
// can replace it behind the Metrics interface.
type Inmem struct {
	mu     sync.Mutex
	last   []any
	max    int
	totals struct {
		cacheHits, cacheMiss int
		duplicates           int
		parseMisses          int
		accepted             int
	}
}

func NewInmem(max int) *Inmem {
	return &Inmem{
		max: max,
	}
}

func (m *Inmem) push(v any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.last = append(m.last, v)
	if len(m.last) > m.max {
		m.last = m.last[1:]
	}
}

func (m *Inmem) ObserveLookup(source string, cacheMs, dbMs float64) {
	m.push(struct {
		Kind          string
		Source        string
		CacheMs, DbMs float64
	}{"lookup", source, cacheMs, dbMs})
}

func (m *Inmem) ObserveInsert(dbWriteMs float64) {
	m.push(struct {
		Kind      string
		DbWriteMs float64
	}{"insert", dbWriteMs})
}

func (m *Inmem) ObserveHTTP(method, route string, status int, durMs float64) {
	m.push(struct {
		Kind          string
		Method, Route string
		Status        int
		Dur           float64
	}{"http", method, route, status, durMs})
}

func (m *Inmem) ObserveNotification(outcome string, processMs float64) {
	m.push(struct {
		Kind    string
		Outcome string
		Dur     float64
	}{"notification", outcome, processMs})
}

func (m *Inmem) IncCacheHit() {
	m.mu.Lock()
	m.totals.cacheHits++
	m.mu.Unlock()
}

func (m *Inmem) IncCacheMiss() {
	m.mu.Lock()
	m.totals.cacheMiss++
	m.mu.Unlock()
}

func (m *Inmem) IncDuplicate() {
	m.mu.Lock()
	m.totals.duplicates++
	m.mu.Unlock()
}

func (m *Inmem) IncParseMiss() {
	m.mu.Lock()
	m.totals.parseMisses++
	m.mu.Unlock()
}

func (m *Inmem) IncAccepted() {
	m.mu.Lock()
	m.totals.accepted++
	m.mu.Unlock()
}

// Totals returns a snapshot of the running counters.
func (m *Inmem) Totals() (cacheHits, cacheMiss, duplicates, parseMisses, accepted int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.totals.cacheHits, m.totals.cacheMiss, m.totals.duplicates, m.totals.parseMisses, m.totals.accepted
}
