package arbiter

import "github.com/Noor-Digital-LLC/minaret/internal/timeutil"

// The post-Jamat dua screen shows from one to five minutes after each
// congregation, inclusive.
const (
	duaDelay = 1
	duaEnd   = 5
)

// EvalDua reports whether now sits in any Jamat's dua window. While the
// Taraweeh overlay is showing the dua channel must not trigger, so the
// suppression flag is an explicit input rather than shared state.
func EvalDua(jamats []int, now int, taraweehShowing bool) bool {
	if taraweehShowing {
		return false
	}
	for _, j := range jamats {
		if timeutil.InWindowInclusive(now, j+duaDelay, j+duaEnd) {
			return true
		}
	}
	return false
}
