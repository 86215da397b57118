package throughput

import (
	"fmt"
	"runtime"
	"testing"

	"github.com/cwbudde/algo-bench/internal/testutil"
)

func TestNewDefaults(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	cfg := r.Config()
	if cfg.Elements != 32742 {
		t.Errorf("Elements = %d, want 32742", cfg.Elements)
	}
	if cfg.Trials != 1000 {
		t.Errorf("Trials = %d, want 1000", cfg.Trials)
	}
	if cfg.Threads != 1 {
		t.Errorf("Threads = %d, want 1", cfg.Threads)
	}
	if cfg.Workload.Name() != "mul" {
		t.Errorf("Workload = %q, want mul", cfg.Workload.Name())
	}
}

func TestNewIgnoresInvalidOptions(t *testing.T) {
	r, err := New(WithElements(-5), WithTrials(0), WithThreads(-1), WithWorkload(nil))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	cfg := r.Config()
	if cfg.Elements != 32742 || cfg.Trials != 1000 || cfg.Threads != 1 {
		t.Errorf("invalid options must keep defaults, got %+v", cfg)
	}
}

func TestRunSampleCount(t *testing.T) {
	for _, trials := range []int{1, 3, 10} {
		r, err := New(WithElements(256), WithTrials(trials), WithThreads(2))
		if err != nil {
			t.Fatal(err)
		}

		res, err := r.Run()
		if err != nil {
			t.Fatalf("Run: %v", err)
		}

		if len(res.Samples) != trials {
			t.Errorf("trials=%d: got %d samples", trials, len(res.Samples))
		}
		if res.Stats.Count != trials {
			t.Errorf("trials=%d: Stats.Count = %d", trials, res.Stats.Count)
		}
	}
}

func TestRunPeakNotBelowAverage(t *testing.T) {
	r, err := New(WithElements(10000), WithTrials(20), WithThreads(4))
	if err != nil {
		t.Fatal(err)
	}

	res, err := r.Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if res.Peak < res.Average {
		t.Errorf("Peak %v < Average %v", res.Peak, res.Average)
	}
}

func TestRunSingleTrial(t *testing.T) {
	r, err := New(WithElements(10000), WithTrials(1), WithThreads(2))
	if err != nil {
		t.Fatal(err)
	}

	res, err := r.Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if res.Peak != res.Average {
		t.Errorf("single trial: Peak %v != Average %v", res.Peak, res.Average)
	}
}

func TestRunMulOutput(t *testing.T) {
	// Four elements, every thread count from 1 to 4: the output must
	// be exactly [2 2 2 2] after a trial.
	for threads := 1; threads <= 4; threads++ {
		t.Run(fmt.Sprintf("threads%d", threads), func(t *testing.T) {
			wl := NewMul()
			r, err := New(WithElements(4), WithTrials(1), WithThreads(threads), WithWorkload(wl))
			if err != nil {
				t.Fatal(err)
			}

			if _, err := r.Run(); err != nil {
				t.Fatalf("Run: %v", err)
			}

			testutil.RequireAllEqual(t, wl.C, 2.0)
		})
	}
}

func TestRunMulOutputOddSizes(t *testing.T) {
	sizes := []int{1, 3, 17, 1000, 1023}

	for _, n := range sizes {
		wl := NewMul()
		r, err := New(WithElements(n), WithTrials(2), WithThreads(4), WithWorkload(wl))
		if err != nil {
			t.Fatal(err)
		}

		if _, err := r.Run(); err != nil {
			t.Fatalf("size %d: Run: %v", n, err)
		}

		testutil.RequireAllEqual(t, wl.C, 2.0)
	}
}

func TestRunThreadCountDoesNotChangeResult(t *testing.T) {
	serial := NewMul()
	r1, err := New(WithElements(1000), WithTrials(1), WithThreads(1), WithWorkload(serial))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := r1.Run(); err != nil {
		t.Fatalf("serial Run: %v", err)
	}

	parallel := NewMul()
	r4, err := New(WithElements(1000), WithTrials(1), WithThreads(4), WithWorkload(parallel))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := r4.Run(); err != nil {
		t.Fatalf("parallel Run: %v", err)
	}

	testutil.RequireSliceNearlyEqual(t, parallel.C, serial.C, 0)
}

func TestRunResultMetadata(t *testing.T) {
	r, err := New(WithElements(64), WithTrials(1), WithThreads(1))
	if err != nil {
		t.Fatal(err)
	}

	res, err := r.Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if res.Workload != "mul" {
		t.Errorf("Workload = %q, want mul", res.Workload)
	}
	if res.Unit != "MegaMults/Sec" {
		t.Errorf("Unit = %q, want MegaMults/Sec", res.Unit)
	}
}

func TestRunOnSingleProcRuntime(t *testing.T) {
	// A host confined to one processor must still run any thread
	// count correctly: Run raises GOMAXPROCS to the pool size.
	old := runtime.GOMAXPROCS(1)
	defer runtime.GOMAXPROCS(old)

	for threads := 2; threads <= 4; threads++ {
		runtime.GOMAXPROCS(1)

		wl := NewMul()
		r, err := New(WithElements(1000), WithTrials(2), WithThreads(threads), WithWorkload(wl))
		if err != nil {
			t.Fatal(err)
		}

		res, err := r.Run()
		if err != nil {
			t.Fatalf("threads=%d: Run: %v", threads, err)
		}

		testutil.RequireAllEqual(t, wl.C, 2.0)
		if len(res.Samples) != 2 {
			t.Errorf("threads=%d: got %d samples", threads, len(res.Samples))
		}
		if procs := runtime.GOMAXPROCS(0); procs < threads {
			t.Errorf("threads=%d: GOMAXPROCS = %d after Run, want >= %d", threads, procs, threads)
		}
	}
}

func TestRunSingleThreadKeepsGOMAXPROCS(t *testing.T) {
	old := runtime.GOMAXPROCS(1)
	defer runtime.GOMAXPROCS(old)

	r, err := New(WithElements(64), WithTrials(1), WithThreads(1))
	if err != nil {
		t.Fatal(err)
	}

	if _, err := r.Run(); err != nil {
		t.Fatalf("Run on single-processor runtime: %v", err)
	}

	if procs := runtime.GOMAXPROCS(0); procs != 1 {
		t.Errorf("GOMAXPROCS = %d after single-threaded run, want 1 untouched", procs)
	}
}
