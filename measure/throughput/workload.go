package throughput

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// Workload is a benchmark kernel. Setup allocates state for the
// requested problem size and worker count and returns the number of
// independent work items the runner distributes; for elementwise
// kernels this equals the element count. Process computes the kernel
// over the item range [lo, hi) on behalf of the given worker; ranges
// handed to concurrent Process calls are disjoint, so implementations
// need no synchronization as long as each worker writes only state
// derived from its range or its worker id. Verify checks the output
// after a trial has completed.
type Workload interface {
	Name() string
	Unit() string
	Setup(elements, workers int) (items int, err error)
	Process(worker, lo, hi int)
	Verify() error
}

// Mul is the elementwise multiply workload: C[i] = A[i] * B[i].
// A is initialized to all ones and B to all twos; both are immutable
// after Setup. C is fully overwritten by every trial.
type Mul struct {
	A, B, C []float64
}

// NewMul returns an unconfigured multiply workload; Setup sizes it.
func NewMul() *Mul {
	return &Mul{}
}

func (m *Mul) Name() string { return "mul" }

func (m *Mul) Unit() string { return "MegaMults/Sec" }

func (m *Mul) Setup(elements, workers int) (int, error) {
	if elements <= 0 {
		return 0, ErrInvalidElements
	}

	m.A = make([]float64, elements)
	m.B = make([]float64, elements)
	m.C = make([]float64, elements)
	for i := range m.A {
		m.A[i] = 1.0
		m.B[i] = 2.0
	}

	return elements, nil
}

func (m *Mul) Process(worker, lo, hi int) {
	vecmath.MulBlock(m.C[lo:hi], m.A[lo:hi], m.B[lo:hi])
}

func (m *Mul) Verify() error {
	for i := range m.C {
		if m.C[i] != m.A[i]*m.B[i] {
			return fmt.Errorf("throughput: mul output[%d] = %v, want %v", i, m.C[i], m.A[i]*m.B[i])
		}
	}
	return nil
}

// MulSum multiplies A and B elementwise and reduces the products into
// per-worker partial sums. Because worker w receives the same
// contiguous chunk on every trial, partial[w] is simply overwritten
// each trial and never contended.
type MulSum struct {
	A, B    []float64
	partial []float64
}

// NewMulSum returns an unconfigured multiply-sum workload.
func NewMulSum() *MulSum {
	return &MulSum{}
}

func (m *MulSum) Name() string { return "mulsum" }

func (m *MulSum) Unit() string { return "MegaMultAdds/Sec" }

func (m *MulSum) Setup(elements, workers int) (int, error) {
	if elements <= 0 {
		return 0, ErrInvalidElements
	}

	m.A = make([]float64, elements)
	m.B = make([]float64, elements)
	for i := range m.A {
		m.A[i] = 1.0
		m.B[i] = 2.0
	}
	m.partial = make([]float64, workers)

	return elements, nil
}

func (m *MulSum) Process(worker, lo, hi int) {
	sum := 0.0
	for i := lo; i < hi; i++ {
		sum += m.A[i] * m.B[i]
	}
	m.partial[worker] = sum
}

// Total returns the reduced sum over all workers for the last trial.
func (m *MulSum) Total() float64 {
	total := 0.0
	for _, p := range m.partial {
		total += p
	}
	return total
}

func (m *MulSum) Verify() error {
	want := 2.0 * float64(len(m.A))
	got := m.Total()
	if math.Abs(got-want) > 1e-6*want {
		return fmt.Errorf("throughput: mulsum total = %v, want %v", got, want)
	}
	return nil
}

// FFT forward-transforms a batch of constant complex frames, each
// worker handling disjoint frames with its own plan. A work item is
// one frame, so throughput is reported in transforms, not elements.
type FFT struct {
	frameSize int

	src, dst [][]complex128
	plans    []*algofft.Plan[complex128]
}

// NewFFT returns an FFT workload with the given frame size, which
// must be a power of two. Setup validates the size.
func NewFFT(frameSize int) *FFT {
	return &FFT{frameSize: frameSize}
}

func (f *FFT) Name() string { return "fft" }

func (f *FFT) Unit() string { return "MegaFFTs/Sec" }

// FrameSize returns the configured frame size.
func (f *FFT) FrameSize() int { return f.frameSize }

// Frames returns the number of frames allocated by Setup.
func (f *FFT) Frames() int { return len(f.src) }

func (f *FFT) Setup(elements, workers int) (int, error) {
	if elements <= 0 {
		return 0, ErrInvalidElements
	}
	if f.frameSize <= 0 || f.frameSize&(f.frameSize-1) != 0 {
		return 0, ErrFrameSize
	}

	frames := (elements + f.frameSize - 1) / f.frameSize

	f.src = make([][]complex128, frames)
	f.dst = make([][]complex128, frames)
	for i := range f.src {
		f.src[i] = make([]complex128, f.frameSize)
		f.dst[i] = make([]complex128, f.frameSize)
		for j := range f.src[i] {
			f.src[i][j] = complex(1, 0)
		}
	}

	f.plans = make([]*algofft.Plan[complex128], workers)
	for w := range f.plans {
		plan, err := algofft.NewPlan64(f.frameSize)
		if err != nil {
			return 0, fmt.Errorf("throughput: fft plan: %w", err)
		}
		f.plans[w] = plan
	}

	return frames, nil
}

func (f *FFT) Process(worker, lo, hi int) {
	for i := lo; i < hi; i++ {
		if err := f.plans[worker].Forward(f.dst[i], f.src[i]); err != nil {
			panic(err)
		}
	}
}

func (f *FFT) Verify() error {
	// The transform of an all-ones frame concentrates all energy in
	// the DC bin: dst[0] == frameSize, every other bin zero.
	want := float64(f.frameSize)
	for i := range f.dst {
		dc := f.dst[i][0]
		if math.Abs(real(dc)-want) > 1e-9*want || math.Abs(imag(dc)) > 1e-9*want {
			return fmt.Errorf("throughput: fft frame %d DC bin = %v, want %v", i, dc, want)
		}
	}
	return nil
}
