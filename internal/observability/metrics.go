package observability

type Metrics interface {
	ObserveLookup(source string, cacheMs, apiMs float64)
	ObserveHTTP(method, route string, status int, durMs float64)
	ObserveStatusUpdate(processMs float64, ok bool)
	IncCacheHit()
	IncCacheMiss()
	IncCacheExpired()
}

type Noop struct{}

func NewNoop() Noop { return Noop{} }

func (Noop) ObserveLookup(string, float64, float64)   {}
func (Noop) ObserveHTTP(string, string, int, float64) {}
func (Noop) ObserveStatusUpdate(float64, bool)        {}
func (Noop) IncCacheHit()                             {}
func (Noop) IncCacheMiss()                            {}
func (Noop) IncCacheExpired()                         {}
