package throughput_test

import (
	"fmt"

	"github.com/cwbudde/algo-bench/measure/throughput"
)

func ExampleRunner_Run() {
	r, err := throughput.New(
		throughput.WithElements(1000),
		throughput.WithTrials(5),
		throughput.WithThreads(2),
	)
	if err != nil {
		panic(err)
	}

	res, err := r.Run()
	if err != nil {
		panic(err)
	}

	fmt.Printf("workload: %s (%s)\n", res.Workload, res.Unit)
	fmt.Printf("samples: %d\n", len(res.Samples))
	fmt.Printf("peak >= average: %v\n", res.Peak >= res.Average)

	// Output:
	// workload: mul (MegaMults/Sec)
	// samples: 5
	// peak >= average: true
}

func ExampleNew() {
	r, err := throughput.New()
	if err != nil {
		panic(err)
	}

	cfg := r.Config()
	fmt.Printf("%d elements, %d trials, %d thread(s), %s\n",
		cfg.Elements, cfg.Trials, cfg.Threads, cfg.Workload.Name())

	// Output:
	// 32742 elements, 1000 trials, 1 thread(s), mul
}
