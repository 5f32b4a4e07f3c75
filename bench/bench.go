// Package bench measures the cost of keeping a fixed-size rolling
// window of recent integers with different container strategies:
// a growable slice, a doubly-linked list, a fixed-capacity circular
// buffer, and eapache/queue as an interface-boxed baseline.
//
// Each strategy is warmed up with Size increasing integers outside
// the timed region; one benchmark op then slides the window
// Size×Factor times. The resulting ns/op, B/op and allocs/op are
// what the comparison table reports.
package bench

import (
	"fmt"
	"testing"

	"github.com/eapache/queue"
	"github.com/samber/lo"

	"github.com/vasily-kirichenko/blog/list"
	"github.com/vasily-kirichenko/blog/ring"
	"github.com/vasily-kirichenko/blog/window"
)

// Default run parameters.
const (
	DefaultSize   = 1000
	DefaultFactor = 10
)

// A Step slides a warm rolling window forward by one value.
type Step func(x int)

// A Routine names one rolling-window strategy. Setup builds the
// container pre-filled with size increasing integers and returns
// the step that slides it.
type Routine struct {
	Name  string
	Setup func(size int) Step
}

// Routines returns the strategies under comparison, in table order.
func Routines() []Routine {
	return []Routine{{
		Name: "slice",
		Setup: func(size int) Step {
			w := window.New(ints(size))
			return func(x int) { w.Slide(x) }
		},
	}, {
		Name: "list",
		Setup: func(size int) Step {
			l := list.New[int]()
			for _, x := range ints(size) {
				l.PushBack(x)
			}
			return func(x int) {
				l.PopFront()
				l.PushBack(x)
			}
		},
	}, {
		Name: "ring",
		Setup: func(size int) Step {
			r := ring.New[int](size)
			for _, x := range ints(size) {
				r.Push(x)
			}
			return r.Push
		},
	}, {
		Name: "queue",
		Setup: func(size int) Step {
			// Boxes every int into an interface value, so
			// it allocates on each Add despite the ring
			// backing.
			q := queue.New()
			for _, x := range ints(size) {
				q.Add(x)
			}
			return func(x int) {
				q.Remove()
				q.Add(x)
			}
		},
	}}
}

// Spec describes one comparison run.
type Spec struct {
	// Size is the number of values kept in the window.
	// Zero means DefaultSize.
	Size int

	// Factor scales the timed loop: one benchmark op slides the
	// window Size×Factor times. Zero means DefaultFactor.
	Factor int

	// Names selects which routines to run, in order.
	// Empty means all of them.
	Names []string
}

// Result holds the measured cost of one routine. NsPerOp,
// BytesPerOp and AllocsPerOp are per benchmark op, i.e. per
// Size×Factor slides of the window.
type Result struct {
	Name        string
	N           int
	NsPerOp     int64
	BytesPerOp  int64
	AllocsPerOp int64
}

// Run measures each requested routine in isolation and returns
// the results in the requested order. It reports an error if a
// requested routine does not exist.
func Run(spec Spec) ([]Result, error) {
	size := spec.Size
	if size <= 0 {
		size = DefaultSize
	}
	factor := spec.Factor
	if factor <= 0 {
		factor = DefaultFactor
	}
	all := Routines()
	names := spec.Names
	if len(names) == 0 {
		names = lo.Map(all, func(r Routine, _ int) string { return r.Name })
	}
	results := make([]Result, 0, len(names))
	for _, name := range names {
		r, ok := lo.Find(all, func(r Routine) bool { return r.Name == name })
		if !ok {
			return nil, fmt.Errorf("unknown routine %q", name)
		}
		results = append(results, measure(r, size, size*factor))
	}
	return results, nil
}

func measure(r Routine, size, iters int) Result {
	br := testing.Benchmark(func(b *testing.B) {
		step := r.Setup(size)
		b.ReportAllocs()
		// The setup above is excluded from the measurement:
		// the timer starts at the first call to b.Loop.
		for b.Loop() {
			for i := range iters {
				step(size + i)
			}
		}
	})
	return Result{
		Name:        r.Name,
		N:           br.N,
		NsPerOp:     br.NsPerOp(),
		BytesPerOp:  br.AllocedBytesPerOp(),
		AllocsPerOp: br.AllocsPerOp(),
	}
}

// ints returns 0..n-1, the warm-up contents of every window.
func ints(n int) []int {
	xs := make([]int, n)
	for i := range xs {
		xs[i] = i
	}
	return xs
}
