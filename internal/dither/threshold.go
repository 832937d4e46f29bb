package dither

import "math/rand/v2"

// thresholder yields a per-cell threshold in [0, 256). 0x80 is neutral.
type thresholder interface {
	next(x, y int) int
}

type flat struct{}

func (flat) next(int, int) int { return 0x80 }

// ordered is a Bayer matrix scaled to [0, 256).
type ordered struct {
	n     int
	table []int
}

func (o *ordered) next(x, y int) int {
	return o.table[(y%o.n)*o.n+x%o.n]
}

// bayer builds the n x n index matrix by recursive doubling of the 2x2
// pattern {0 2; 3 1}.
func bayer(n int) *ordered {
	m := []int{0}
	for size := 1; size < n; size *= 2 {
		next := make([]int, 4*size*size)
		for y := 0; y < size; y++ {
			for x := 0; x < size; x++ {
				v := 4 * m[y*size+x]
				next[y*2*size+x] = v
				next[y*2*size+x+size] = v + 2
				next[(y+size)*2*size+x] = v + 3
				next[(y+size)*2*size+x+size] = v + 1
			}
		}
		m = next
	}
	scale := 256 / (n * n)
	for i := range m {
		m[i] *= scale
	}
	return &ordered{n: n, table: m}
}

var (
	ordered2 = bayer(2)
	ordered4 = bayer(4)
	ordered8 = bayer(8)
)

type random struct {
	rng *rand.Rand
}

func (r random) next(int, int) int { return r.rng.IntN(256) }

// newThresholder returns the thresholder for algo. Random thresholds are
// reseeded on every call so identical inputs dither identically.
func newThresholder(algo Algorithm, seed uint64) thresholder {
	switch algo {
	case AlgorithmOrdered2:
		return ordered2
	case AlgorithmOrdered4:
		return ordered4
	case AlgorithmOrdered8:
		return ordered8
	case AlgorithmRandom:
		return random{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
	}
	return flat{}
}
