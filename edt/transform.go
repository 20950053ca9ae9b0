package edt

import (
	"math"
	"sync"
	"time"

	"github.com/chaq-sdf/sdfgen/internal/parallel"
)

// Field is a row-major W×H plane of float64 values, mutated in place by
// Transform2D. A cell holding +Inf means "no information yet" (spec.md
// §3's FloatField semantics). The package works in float64 rather than
// the spec's nominal f32 storage: Go's math package is float64-native, and
// carrying the extra precision through the squaring/rooting steps costs
// nothing but a doubled buffer while strictly improving the bound in
// spec.md §8's "no finite output is negative" / boundedness properties.
type Field struct {
	W, H int
	Data []float64
}

// NewField allocates a W×H field with every cell set to +Inf.
func NewField(w, h int) *Field {
	f := &Field{W: w, H: h, Data: make([]float64, w*h)}
	for i := range f.Data {
		f.Data[i] = math.Inf(1)
	}
	return f
}

// Row returns the slice view over row y, borrowed directly from the
// backing array (spec.md §9's "view over a buffer" idiom: a slice, not a
// copy).
func (f *Field) Row(y int) []float64 {
	return f.Data[y*f.W : y*f.W+f.W]
}

// At returns the value at (x, y).
func (f *Field) At(x, y int) float64 {
	return f.Data[y*f.W+x]
}

// Set writes the value at (x, y).
func (f *Field) Set(x, y int, v float64) {
	f.Data[y*f.W+x] = v
}

// scratchPool hands out envelope scratch sized to the longest row or
// column the caller will transform, so a Transform2D call over a large
// image does not reallocate V/Z once per row. This mirrors the teacher's
// internal/parallel tile-scratch reuse via sync.Pool (see
// internal/parallel/pool.go's per-worker queue design for the same
// "amortize allocation across many small units of work" idea).
type scratchPool struct {
	pool sync.Pool
}

func newScratchPool(n int) *scratchPool {
	sp := &scratchPool{}
	sp.pool.New = func() any { return newEnvelope(n) }
	return sp
}

func (sp *scratchPool) get(n int) *envelope {
	e := sp.pool.Get().(*envelope)
	e.grow(n)
	return e
}

func (sp *scratchPool) put(e *envelope) {
	sp.pool.Put(e)
}

// transpose copies src (rows x cols) into dst (cols x rows), i.e.
// dst[x][y] = src[y][x]. dst must already be sized cols x rows.
func transpose(src *Field, dst *Field) {
	for y := 0; y < src.H; y++ {
		row := src.Row(y)
		for x := 0; x < src.W; x++ {
			dst.Data[x*dst.W+y] = row[x]
		}
	}
}

// transposeSqrt is transpose but takes the element-wise square root while
// copying — the "transpose back while taking the square root" step of
// spec.md §4.3.2 that turns the squared-distance intermediate into true
// Euclidean distance.
func transposeSqrt(src *Field, dst *Field) {
	for y := 0; y < src.H; y++ {
		row := src.Row(y)
		for x := 0; x < src.W; x++ {
			dst.Data[x*dst.W+y] = math.Sqrt(row[x])
		}
	}
}

// Transform2D runs the separable Felzenszwalb-Huttenlocher transform on f
// in place: row pass, transpose, column pass (as a row pass on the
// transpose), transpose back with a final square root. pool distributes
// the row-parallel and column-parallel phases; each phase is a hard
// barrier (spec.md §5: "A global barrier separates: (Step1 rows) ->
// (Transpose) -> (Step3 rows) -> (Transpose-back)"), enforced here by
// WorkerPool.ExecuteAll blocking until every row's closure has returned.
//
// After Transform2D returns, every cell of f holds the true (rooted)
// Euclidean distance to the nearest seed, not the squared distance —
// unlike the mid-pipeline state described in spec.md §3's invariant,
// which only holds true between steps 1 and 3.
func Transform2D(f *Field, pool *parallel.WorkerPool) {
	log := Logger()
	rowScratch := newScratchPool(max(f.W, f.H))

	// Step 1: transform each row in place.
	start := time.Now()
	steals := pool.Steals()
	runRows(f, pool, rowScratch)
	log.Debug("row pass complete", "elapsed", time.Since(start), "steals", pool.Steals()-steals)

	// Step 2: transpose into a W-by-H -> H-by-W buffer.
	start = time.Now()
	transposed := &Field{W: f.H, H: f.W, Data: make([]float64, f.W*f.H)}
	transpose(f, transposed)
	log.Debug("transpose complete", "elapsed", time.Since(start))

	// Step 3: transform each row of the transpose (= each column of f).
	start = time.Now()
	steals = pool.Steals()
	runRows(transposed, pool, rowScratch)
	log.Debug("column pass complete", "elapsed", time.Since(start), "steals", pool.Steals()-steals)

	// Step 4: transpose back into f while taking the square root.
	start = time.Now()
	transposeSqrt(transposed, f)
	log.Debug("transpose-back complete", "elapsed", time.Since(start))
}

// runRows dispatches transform1D across every row of f using pool,
// blocking until all rows complete (the per-phase barrier).
func runRows(f *Field, pool *parallel.WorkerPool, scratch *scratchPool) {
	work := make([]func(), f.H)
	for y := 0; y < f.H; y++ {
		row := f.Row(y)
		work[y] = func() {
			e := scratch.get(len(row))
			transform1D(row, e.v, e.z)
			scratch.put(e)
		}
	}
	pool.ExecuteAll(work)
}

// TransformSides runs Transform2D concurrently on two independent fields
// — spec.md §5's "the inside and outside 2-D EDTs are independent and MAY
// run in parallel." Each side gets its own WorkerPool sized to workers so
// that neither side starves the other of row-level parallelism.
func TransformSides(a, b *Field, workers int) {
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		pool := parallel.NewWorkerPool(workers)
		defer pool.Close()
		Transform2D(a, pool)
	}()

	go func() {
		defer wg.Done()
		pool := parallel.NewWorkerPool(workers)
		defer pool.Close()
		Transform2D(b, pool)
	}()

	wg.Wait()
}
