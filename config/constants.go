package config

const (
	DEFAULT_DIMENSION  = 3_000
	DEFAULT_ITERATIONS = 1
	DEFAULT_BACKEND    = "native"

	// Entries of generated vectors and matrices are drawn from [VALUE_MIN, VALUE_MAX].
	VALUE_MIN = -1.0
	VALUE_MAX = 1.0

	SAMPLE_PATH = "./dotbench.json"
)

// Case names a timed kernel call.
type Case string

const (
	CaseXDotX     Case = "xdotx"
	CaseMatVec    Case = "matvec"
	CaseSquare    Case = "square"
	CaseQuadratic Case = "quadratic"
)

// Cases lists every known case in run order.
func Cases() []Case {
	return []Case{CaseXDotX, CaseMatVec, CaseSquare, CaseQuadratic}
}

// DefaultCases are the cases timed when none are configured.
func DefaultCases() []Case {
	return []Case{CaseXDotX, CaseMatVec}
}

func (c Case) Valid() bool {
	for _, known := range Cases() {
		if c == known {
			return true
		}
	}
	return false
}
