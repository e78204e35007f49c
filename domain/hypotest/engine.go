package hypotest

// Engine computes classical hypothesis tests over numeric samples.
// Every operation is a stateless pure function of its inputs; the engine only
// carries the distribution provider and is safe for concurrent use.
type Engine struct {
	dist Distributions
}

// NewEngine creates a hypothesis-testing engine backed by the given
// distribution provider
func NewEngine(dist Distributions) *Engine {
	return &Engine{dist: dist}
}

// twoTailedNormal returns 2*(1 - Phi(|z|))
func (e *Engine) twoTailedNormal(z float64) float64 {
	if z < 0 {
		z = -z
	}
	return clampP(2 * (1 - e.dist.NormalCDF(z)))
}

// twoTailedStudentT returns 2*(1 - T_cdf(|t|, df))
func (e *Engine) twoTailedStudentT(t, df float64) float64 {
	if t < 0 {
		t = -t
	}
	return clampP(2 * (1 - e.dist.StudentTCDF(t, df)))
}
