// Command qvortex exercises the hash through its public API and prints
// quality and performance reports: canonical vectors, avalanche behavior,
// incremental-vs-one-shot agreement, output-byte distribution, and
// throughput.
package main

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math/bits"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	qvortex "github.com/Pre-quel/Qvortex"
)

var (
	outLenFlag = cli.IntFlag{
		Name:  "out-len",
		Usage: "digest length in bytes",
		Value: qvortex.Size,
	}
	trialsFlag = cli.IntFlag{
		Name:  "trials",
		Usage: "number of trials / inputs to run",
		Value: 10000,
	}
)

var vectorsCommand = cli.Command{
	Action: printVectors,
	Name:   "vectors",
	Usage:  "Print the canonical vector set for freezing reference digests",
	Flags:  []cli.Flag{&outLenFlag},
}

var avalancheCommand = cli.Command{
	Action: runAvalanche,
	Name:   "avalanche",
	Usage:  "Flip single input bits and report output bit diffusion",
}

var incrementalCommand = cli.Command{
	Action: runIncremental,
	Name:   "incremental",
	Usage:  "Check chunked streaming against the one-shot digest",
}

var distributionCommand = cli.Command{
	Action: runDistribution,
	Name:   "distribution",
	Usage:  "Chi-square of output byte values over sequential inputs",
	Flags:  []cli.Flag{&trialsFlag},
}

var benchCommand = cli.Command{
	Action: runBench,
	Name:   "bench",
	Usage:  "Throughput over input sizes from 64 B to 1 MiB",
}

func main() {
	app := cli.NewApp()
	app.Name = "qvortex"
	app.Usage = "Qvortex hash diagnostics"
	app.Commands = []*cli.Command{
		&vectorsCommand,
		&avalancheCommand,
		&incrementalCommand,
		&distributionCommand,
		&benchCommand,
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func printVectors(cliCtx *cli.Context) error {
	outLen := cliCtx.Int("out-len")
	out := make([]byte, outLen)

	qvortex.Hash(nil, nil, out)
	fmt.Printf("empty:        %x\n", out)

	qvortex.Hash(nil, []byte("a"), out)
	fmt.Printf("single 'a':   %x\n", out)

	fox := []byte("The quick brown fox jumps over the lazy dog")
	qvortex.Hash(nil, fox, out)
	fmt.Printf("fox string:   %x\n", out)

	qvortex.Hash([]byte("secret"), []byte("message"), out)
	fmt.Printf("keyed:        %x\n", out)

	qvortex.HashSmall(nil, make([]byte, 16), out)
	fmt.Printf("small zero16: %x\n", out)

	seeded := qvortex.Seeded(1, []byte("a"))
	fmt.Printf("seeded(1,a):  %x\n", seeded)
	return nil
}

func runAvalanche(*cli.Context) error {
	data := make([]byte, 64)
	for i := range data {
		data[i] = byte(i)
	}
	base := qvortex.Sum256(data)

	trials := len(data) * 8
	total := 0
	worstLo, worstHi := 256, 0
	for bit := 0; bit < trials; bit++ {
		data[bit/8] ^= 1 << (bit % 8)
		h := qvortex.Sum256(data)
		data[bit/8] ^= 1 << (bit % 8)

		diff := 0
		for i := range h {
			diff += bits.OnesCount8(h[i] ^ base[i])
		}
		total += diff
		worstLo = min(worstLo, diff)
		worstHi = max(worstHi, diff)
	}

	mean := float64(total) / float64(trials)
	fmt.Printf("trials:  %d (every input bit once)\n", trials)
	fmt.Printf("mean:    %.1f/256 output bits flipped (%.1f%%)\n", mean, mean*100/256)
	fmt.Printf("extremes: %d .. %d of 256\n", worstLo, worstHi)
	if worstLo < 77 || worstHi > 179 {
		return fmt.Errorf("avalanche outlier: extremes %d..%d outside 30%%..70%%", worstLo, worstHi)
	}
	return nil
}

func runIncremental(*cli.Context) error {
	msg := []byte("This is a test message for incremental hashing.")

	var oneShot [qvortex.Size]byte
	qvortex.Hash(nil, msg, oneShot[:])

	h := qvortex.New(nil)
	rest := msg
	for _, n := range []int{5, 10, 7, 15, 100} {
		if n > len(rest) {
			n = len(rest)
		}
		h.Write(rest[:n])
		rest = rest[n:]
		fmt.Printf("  fed %d bytes (%d/%d)\n", n, len(msg)-len(rest), len(msg))
	}

	var incremental [qvortex.Size]byte
	h.Sum(incremental[:])
	if !bytes.Equal(oneShot[:], incremental[:]) {
		return fmt.Errorf("incremental digest %x != one-shot %x", incremental, oneShot)
	}
	fmt.Println("incremental digest matches one-shot digest")
	return nil
}

func runDistribution(cliCtx *cli.Context) error {
	trials := cliCtx.Int("trials")

	var buckets [256]int
	var data [8]byte
	for i := 0; i < trials; i++ {
		binary.LittleEndian.PutUint64(data[:], uint64(i))
		h := qvortex.Sum256(data[:])
		for _, b := range h[:4] {
			buckets[b]++
		}
	}

	expected := float64(trials*4) / 256
	var chi2 float64
	minC, maxC := buckets[0], buckets[0]
	for _, c := range buckets {
		d := float64(c) - expected
		chi2 += d * d / expected
		minC = min(minC, c)
		maxC = max(maxC, c)
	}

	fmt.Printf("inputs:     %d sequential counters\n", trials)
	fmt.Printf("expected:   %.1f per bucket\n", expected)
	fmt.Printf("min/max:    %d / %d\n", minC, maxC)
	fmt.Printf("chi-square: %.2f (255 degrees of freedom)\n", chi2)
	return nil
}

func runBench(*cli.Context) error {
	sizes := []int{64, 256, 1024, 4096, 64 * 1024, 1024 * 1024}
	labels := []string{"64B", "256B", "1KB", "4KB", "64KB", "1MB"}

	for s, size := range sizes {
		data := make([]byte, size)
		for i := range data {
			data[i] = byte(i*7 + i/256)
		}

		iterations := 100000
		if size >= 64*1024 {
			iterations = 10000
		}
		for i := 0; i < 100; i++ {
			qvortex.Sum256(data) // warm up
		}

		start := time.Now()
		for i := 0; i < iterations; i++ {
			qvortex.Sum256(data)
		}
		elapsed := time.Since(start).Seconds()

		mbps := float64(size) * float64(iterations) / elapsed / (1024 * 1024)
		fmt.Printf("  %6s: %7d iters in %.3fs = %.1f MB/s\n", labels[s], iterations, elapsed, mbps)
	}
	return nil
}
