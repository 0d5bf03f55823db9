// collbench runs micro-benchmarks over the container packages and
// reports per-operation timings and allocation deltas.
package main

import (
	"flag"
	"fmt"
	"runtime"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/graph-guard/collections/pkg/container/deque"
	"github.com/graph-guard/collections/pkg/container/omap"
	"github.com/graph-guard/collections/pkg/container/pqueue"
	"github.com/graph-guard/collections/pkg/container/vector"
	plog "github.com/phuslu/log"
)

func main() {
	n := flag.Int("n", 1_000_000, "operations per benchmark")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	log := plog.Logger{
		Level:  plog.InfoLevel,
		Writer: &plog.ConsoleWriter{ColorOutput: true},
	}
	if *debug {
		log.Level = plog.DebugLevel
	}

	log.Info().Int("n", *n).Msg("running container benchmarks")

	run(log, "vector.Push", *n, func(n int) {
		v := vector.New[int](0)
		for i := 0; i < n; i++ {
			v.Push(i)
		}
	})
	run(log, "vector.PushPop", *n, func(n int) {
		v := vector.New[int](0)
		for i := 0; i < n; i++ {
			v.Push(i)
			if i%2 == 1 {
				if _, err := v.Pop(); err != nil {
					log.Fatal().Err(err).Msg("")
				}
			}
		}
	})
	run(log, "deque.PushShift", *n, func(n int) {
		d := deque.New[int](0)
		for i := 0; i < n; i++ {
			d.Push(i)
			if i%2 == 1 {
				if _, err := d.Shift(); err != nil {
					log.Fatal().Err(err).Msg("")
				}
			}
		}
	})
	run(log, "omap.Put", *n, func(n int) {
		m := omap.New[string, int](0, nil)
		for i := 0; i < n; i++ {
			m.Put(strconv.Itoa(i), i)
		}
	})
	run(log, "omap.Get", *n, func(n int) {
		m := omap.New[string, int](n, nil)
		for i := 0; i < n; i++ {
			m.Put(strconv.Itoa(i), i)
		}
		for i := 0; i < n; i++ {
			if _, err := m.Get(strconv.Itoa(i)); err != nil {
				log.Fatal().Err(err).Msg("")
			}
		}
	})
	run(log, "pqueue.PushPop", *n, func(n int) {
		q := pqueue.New[int](0)
		for i := 0; i < n; i++ {
			q.Push(i, i%64)
		}
		for q.Len() > 0 {
			if _, err := q.Pop(); err != nil {
				log.Fatal().Err(err).Msg("")
			}
		}
	})
}

func run(log plog.Logger, name string, n int, fn func(n int)) {
	var before, after runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&before)

	start := time.Now()
	fn(n)
	elapsed := time.Since(start)

	runtime.ReadMemStats(&after)
	allocated := after.TotalAlloc - before.TotalAlloc

	log.Info().
		Str("benchmark", name).
		Str("total", elapsed.String()).
		Str("perOp", fmt.Sprintf(
			"%.1fns", float64(elapsed.Nanoseconds())/float64(n),
		)).
		Str("allocated", humanize.IBytes(allocated)).
		Msg("done")
}
