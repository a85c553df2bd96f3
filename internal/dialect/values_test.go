package dialect

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/AndreyAkinshin/casegen/internal/canonical"
)

var sampleStrings = []string{
	"", "a", "hello world", `quote " inside`, `back\slash`, "tab\tnew\nline",
	"crème brûlée", "日本語", "emoji 🎉", "nul\x00byte", "bell\a", "\xff\xfe",
}

// randomValue builds a canonical value of bounded depth from r. Map keys are
// unique, as they are after parsing.
func randomValue(r *rand.Rand, depth int) canonical.Value {
	kinds := 6
	if depth > 0 {
		kinds = 8
	}
	switch r.Intn(kinds) {
	case 0:
		return canonical.Null{}
	case 1:
		return canonical.Bool(r.Intn(2) == 0)
	case 2:
		return canonical.Int(r.Int63() - r.Int63())
	case 3:
		if r.Intn(4) == 0 {
			return canonical.Uint(uint64(math.MaxInt64) + 1 + uint64(r.Int63n(math.MaxInt64)))
		}
		return canonical.Int(r.Int63n(1000))
	case 4:
		switch r.Intn(5) {
		case 0:
			return canonical.Float(r.NormFloat64() * 1e-9)
		case 4:
			return canonical.Float(math.Copysign(0, -1))
		case 1:
			return canonical.Float(r.NormFloat64() * 1e25)
		default:
			return canonical.Float(r.NormFloat64() * 100)
		}
	case 5:
		return canonical.String(sampleStrings[r.Intn(len(sampleStrings))])
	case 6:
		n := r.Intn(4)
		seq := make(canonical.Seq, n)
		for i := range seq {
			seq[i] = randomValue(r, depth-1)
		}
		return seq
	default:
		n := r.Intn(4)
		m := make(canonical.Map, n)
		for i := range m {
			m[i] = canonical.Entry{
				Key:   fmt.Sprintf("%s%d", sampleStrings[r.Intn(len(sampleStrings))], i),
				Value: randomValue(r, depth-1),
			}
		}
		return m
	}
}
