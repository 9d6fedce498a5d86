package filter

// Monitor provides hooks to observe the filter cascade.
// Implement this interface to track per-stage pool sizes and fallback
// decisions during filtering.
type Monitor interface {
	Start(poolSize int)
	StageApplied(stage string, before, after int)
	StageSkipped(stage string, poolSize int)
	LenientMatch(stage string, matched int)
	Finish(finalSize int)
}

// noopMonitor is a no-op implementation of Monitor
type noopMonitor struct{}

var _ Monitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ int)                  {}
func (n *noopMonitor) StageApplied(_ string, _, _ int) {}
func (n *noopMonitor) StageSkipped(_ string, _ int) {}
func (n *noopMonitor) LenientMatch(_ string, _ int) {}
func (n *noopMonitor) Finish(_ int)                 {}
