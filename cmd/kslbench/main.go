// cmd/kslbench/main.go
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"ksl"
	"ksl/kslfmt"
	"ksl/rangeset"
)

func main() {
	n := flag.Int("n", 10000, "number of packet numbers to ACK and of stream offsets to draw")
	seed := flag.Int64("seed", 1, "PRNG seed")
	print := flag.Bool("print", false, "pretty-print the final stream-offset tree")
	flag.Parse()

	if *n <= 0 {
		log.Fatalf("kslbench: -n must be positive, got %d", *n)
	}

	rng := rand.New(rand.NewSource(*seed))

	start := time.Now()
	acked := simulateAcks(rng, *n)
	ackElapsed := time.Since(start)

	fmt.Printf("ACKed %d packet numbers into %d coalesced ranges in %s\n", *n, acked.Len(), ackElapsed)

	start = time.Now()
	offsets := simulateStreamOffsets(rng, *n)
	offsetElapsed := time.Since(start)

	fmt.Printf("Indexed %d stream-offset entries in %s (height-balanced tree, MaxNBLK=%d)\n",
		offsets.Len(), offsetElapsed, ksl.MaxNBLK)

	if *print {
		kslfmt.Fprint(os.Stdout, offsets)
	}
}

// simulateAcks drives a rangeset.RangeSet the way a QUIC loss-detection
// loop would: random packet numbers arrive out of order and get folded
// into ACK ranges as they coalesce.
func simulateAcks(rng *rand.Rand, n int) *rangeset.RangeSet {
	s := rangeset.New()
	for i := 0; i < n; i++ {
		pn := int64(rng.Intn(n * 4))
		if err := s.Add(pn, pn+1); err != nil {
			log.Fatalf("kslbench: unexpected Add error: %v", err)
		}
	}
	return s
}

// simulateStreamOffsets builds a ksl.Tree keyed by received stream byte
// offset, mirroring how an HTTP/3 stream reassembly buffer would index
// arriving data chunks for ordered iteration and lower-bound lookups.
func simulateStreamOffsets(rng *rand.Rand, n int) *ksl.Tree[int64, int] {
	tr := ksl.New[int64, int](func(a, b int64) bool { return a < b })
	for i := 0; i < n; i++ {
		off := int64(rng.Intn(n * 4))
		if it := tr.LowerBound(off); it.Valid() && it.Key() == off {
			continue
		}
		tr.Insert(off, i)
	}
	return tr
}
