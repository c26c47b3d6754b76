// Bucket-bench is a benchmarking tool for measuring the julienne bucketing
// structure's construction and drain throughput under synthetic priority
// workloads.
//
// Usage:
//
//	go run ./cmd/bucket-bench -n 10000000 -buckets 128 -order increasing -churn 0.1
//
// Flags:
//
//	-n          Number of identifiers (default: 10,000,000)
//	-buckets    Total materialized slots, T (default: 128)
//	-order      Emit order: increasing or decreasing (default: increasing)
//	-workers    Parallel workers for bulk updates (default: GOMAXPROCS)
//	-churn      Fraction of each drained bucket's identifiers re-inserted,
//	            via GetBucket, toward the next bucket number before the next
//	            drain (default: 0). The synthetic oracle is fixed, so these
//	            entries are stale and the emit-time filter discards them; in
//	            decreasing order GetBucket drops them outright.
//	-seed       Murmur3 seed for the synthetic priority assignment
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/spaolacci/murmur3"
	"golang.org/x/sys/unix"

	"github.com/graphworks/julienne"
)

// getMaxRSS returns the process's peak resident set size in bytes.
func getMaxRSS() uint64 {
	var ru unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &ru); err != nil {
		return 0
	}
	maxRSS := uint64(ru.Maxrss)
	if runtime.GOOS == "linux" {
		maxRSS *= 1024 // ru_maxrss is KB on Linux, bytes on Darwin.
	}
	return maxRSS
}

// syntheticOracle assigns each identifier a fixed bucket derived from
// murmur3, giving a reproducible, allocation-free priority distribution
// without needing a persisted priority array on disk.
type syntheticOracle struct {
	seed    uint32
	buckets uint32
}

func (o syntheticOracle) Bucket(id uint32) uint32 {
	var buf [4]byte
	buf[0] = byte(id)
	buf[1] = byte(id >> 8)
	buf[2] = byte(id >> 16)
	buf[3] = byte(id >> 24)
	h := murmur3.Sum32WithSeed(buf[:], o.seed)
	return h % o.buckets
}

func main() {
	nFlag := flag.Int("n", 10_000_000, "number of identifiers")
	bucketsFlag := flag.Uint("buckets", 128, "total materialized slots (T)")
	orderFlag := flag.String("order", "increasing", "emit order: increasing or decreasing")
	workersFlag := flag.Int("workers", runtime.GOMAXPROCS(0), "parallel workers for bulk updates")
	churnFlag := flag.Float64("churn", 0, "fraction of each drained bucket's identifiers re-inserted toward the next bucket")
	seedFlag := flag.Uint("seed", 0x1234, "murmur3 seed for the synthetic priority oracle")
	flag.Parse()

	n := *nFlag
	order := julienne.Increasing
	switch *orderFlag {
	case "increasing":
		order = julienne.Increasing
	case "decreasing":
		order = julienne.Decreasing
	default:
		fmt.Printf("unknown order %q (use increasing or decreasing)\n", *orderFlag)
		os.Exit(1)
	}

	oracle := syntheticOracle{seed: uint32(*seedFlag), buckets: uint32(*bucketsFlag) - 1}

	runtime.GC()
	baselineRSS := getMaxRSS()

	fmt.Printf("Constructing buckets over %d identifiers (T=%d, order=%s, workers=%d)...\n",
		n, *bucketsFlag, order, *workersFlag)
	buildStart := time.Now()
	b, err := julienne.NewBuckets[syntheticOracle](n, oracle, order,
		julienne.WithTotalBuckets(uint32(*bucketsFlag)),
		julienne.WithWorkers(*workersFlag))
	if err != nil {
		fmt.Printf("NewBuckets failed: %v\n", err)
		os.Exit(1)
	}
	defer b.Del()
	buildDuration := time.Since(buildStart)

	fmt.Println("Draining...")
	drainStart := time.Now()
	var buckets, drained int
	for {
		bkt := b.NextBucket()
		if bkt.Number == julienne.NullBkt {
			break
		}
		buckets++
		drained += bkt.Identifiers.Size()

		if *churnFlag > 0 {
			ids := bkt.Identifiers.Identifiers()
			churnCount := int(float64(len(ids)) * *churnFlag)
			if _, err := b.UpdateBuckets(churnCount, func(i int) (uint32, uint32, bool) {
				id := ids[i]
				slot := b.GetBucket(bkt.Number, bkt.Number+1)
				return id, slot, true
			}); err != nil {
				fmt.Printf("UpdateBuckets failed: %v\n", err)
				os.Exit(1)
			}
		}
	}
	drainDuration := time.Since(drainStart)

	peakRSS := getMaxRSS()

	fmt.Printf("\n")
	fmt.Printf("╔════════════════════════╦══════════════════╗\n")
	fmt.Printf("║ Metric                 ║ Value            ║\n")
	fmt.Printf("╠════════════════════════╬══════════════════╣\n")
	fmt.Printf("║ Identifiers            ║ %16d ║\n", n)
	fmt.Printf("║ Buckets drained        ║ %16d ║\n", buckets)
	fmt.Printf("║ Identifiers drained    ║ %16d ║\n", drained)
	fmt.Printf("║ Build time             ║ %13.3f ms ║\n", buildDuration.Seconds()*1000)
	fmt.Printf("║ Drain time             ║ %13.3f ms ║\n", drainDuration.Seconds()*1000)
	fmt.Printf("║ Build throughput       ║ %10.2f M/sec ║\n", float64(n)/buildDuration.Seconds()/1_000_000)
	fmt.Printf("║ Peak RSS increase      ║ %13.1f MB ║\n", float64(peakRSS-baselineRSS)/1_000_000)
	fmt.Printf("╚════════════════════════╩══════════════════╝\n")
}
