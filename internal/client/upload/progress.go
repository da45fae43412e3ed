package upload

// ProgressFunc receives upload progress as an integer percent in [0,100].
type ProgressFunc func(percent int)

// progressReporter guarantees the reported sequence is monotonically
// non-decreasing and clamped to [0,100], whatever the phases feed it.
type progressReporter struct {
	fn   ProgressFunc
	last int
}

func (r *progressReporter) report(p int) {
	if r.fn == nil {
		return
	}
	if p < r.last {
		return
	}
	if p > 100 {
		p = 100
	}
	r.last = p
	r.fn(p)
}

// Phase boundaries: the local read advances 0→readPhaseCeil, the network
// transfer sendPhaseFloor→100. The gap between 30 and 35 is spent
// encoding and building the request.
const (
	readPhaseCeil  = 30
	sendPhaseFloor = 35
)
