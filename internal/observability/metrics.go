package observability

type Metrics interface {
	ObserveLookup(source string, cacheMs, dbMs float64)
	ObserveInsert(dbWriteMs float64)
	ObserveHTTP(method, route string, status int, durMs float64)
	ObserveNotification(outcome string, processMs float64)
	IncCacheHit()
	IncCacheMiss()
	IncDuplicate()
	IncParseMiss()
	IncAccepted()
}

// Notification processing outcomes reported to ObserveNotification.
const (
	OutcomeAccepted  = "accepted"
	OutcomeRecorded  = "recorded"
	OutcomeSkipped   = "skipped"
	OutcomeDuplicate = "duplicate"
	OutcomeError     = "error"
)

type Noop struct{}

func NewNoop() Noop { return Noop{} }

func (Noop) ObserveLookup(string, float64, float64)   {}
func (Noop) ObserveInsert(float64)                    {}
func (Noop) ObserveHTTP(string, string, int, float64) {}
func (Noop) ObserveNotification(string, float64)      {}
func (Noop) IncCacheHit()                             {}
func (Noop) IncCacheMiss()                            {}
func (Noop) IncDuplicate()                            {}
func (Noop) IncParseMiss()                            {}
func (Noop) IncAccepted()                             {}
