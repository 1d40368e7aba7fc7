package aoc

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"reflect"
	"regexp"
	"slices"
	"strings"
	"sync"
	"time"

	"golang.org/x/exp/maps"
)

var (
	flagCurDay     int
	flagPart       string
	flagDebug      bool
	flagOnlySample bool
	flagSkipSample bool
	flagParallel   bool
	flagInputs     string
)

func init() {
	flag.IntVar(&flagCurDay, "day", -1, "day to run")
	flag.StringVar(&flagPart, "part", "", "part to run")
	flag.BoolVar(&flagOnlySample, "sample", false, "only run samples")
	flag.BoolVar(&flagSkipSample, "skip-sample", false, "skip samples")
	flag.BoolVar(&flagDebug, "debug", false, "print debug output")
	flag.BoolVar(&flagParallel, "parallel", false, "run all days concurrently")
	flag.StringVar(&flagInputs, "inputs", ".", "directory caching puzzle inputs")
}

var initFlags = sync.OnceFunc(flag.Parse)

type day struct {
	day   int
	parts []partSolver
}

type partSolver struct {
	Part string
	Name string
}

var methodRx = regexp.MustCompile(`^D(\d+)p(\d+.*)$`)

// extractMethods finds the methods of x named D{day}p{part}, grouped by
// day. The methods must have the signature func() any.
func extractMethods(x any) map[int]day {
	vt := reflect.TypeOf(x)
	if vt.Kind() != reflect.Pointer || vt.Elem().Kind() != reflect.Struct {
		log.Fatalf("Run: got %T; want pointer to struct", x)
	}
	vv := reflect.ValueOf(x)
	days := make(map[int]day)
	for i := 0; i < vt.NumMethod(); i++ {
		m := vt.Method(i)
		match := methodRx.FindStringSubmatch(m.Name)
		if match == nil {
			continue
		}
		if _, ok := vv.Method(i).Interface().(func() any); !ok {
			log.Fatalf("%s: got %v; want func() any", m.Name, m.Type)
		}
		d := days[Int(match[1])]
		d.day = Int(match[1])
		d.parts = append(d.parts, partSolver{Part: match[2], Name: m.Name})
		days[d.day] = d
	}
	for _, d := range days {
		slices.SortFunc(d.parts, func(a, b partSolver) int {
			return strings.Compare(a.Part, b.Part)
		})
	}
	return days
}

// newSolver returns a copy of the solver struct pointed to by slvr, so
// that days can run concurrently with their own Puzzle.
func newSolver(slvr any) any {
	v := reflect.ValueOf(slvr).Elem()
	cp := reflect.New(v.Type())
	cp.Elem().Set(v)
	return cp.Interface()
}

// runDay solves every part of d, sample first when it has one. It stops
// at the first sample that does not produce its wanted answer.
func runDay(w io.Writer, slvr any, year int, d day, samples map[string]sample) {
	p := &Puzzle{
		year:    year,
		day:     d,
		samples: samples,
		out:     w,
	}
	sv := reflect.ValueOf(slvr)
	sv.Elem().FieldByName("Puzzle").Set(reflect.ValueOf(p))
	fmt.Fprintln(w, "Running day", d.day)
	for _, ps := range d.parts {
		if flagPart != "" && ps.Part != flagPart {
			continue
		}
		p.solver = ps
		solve := sv.MethodByName(ps.Name).Interface().(func() any)
		if _, ok := samples[ps.Name]; !ok {
			fmt.Fprintf(w, "part %s: no sample\n", ps.Part)
		} else if !flagSkipSample {
			p.SampleMode = true
			t0 := time.Now()
			got := fmt.Sprint(solve())
			if want := p.Sample().want; got != want {
				fmt.Fprintf(w, "part %s: %v ❌; want %v\n", ps.Part, got, want)
				return
			}
			fmt.Fprintf(w, "part %s sample: %v ✅ (%v)\n", ps.Part, got, time.Since(t0).Round(time.Microsecond))
		}
		if flagOnlySample {
			continue
		}
		p.SampleMode = false
		p.Input() // not timed
		t0 := time.Now()
		got := solve()
		fmt.Fprintf(w, "part %s: %v (took %v)\n", ps.Part, got, time.Since(t0).Round(time.Microsecond))
	}
}

// Run runs the puzzles of year solved by slvr, a pointer to a struct
// embedding *Puzzle with methods named D{day}p{part}. Samples are read
// from the doc comments of those methods in the Go files of src.
func Run(year int, src fs.FS, slvr any) {
	initFlags()
	samples := extractAllSamples(src)
	days := extractMethods(slvr)

	if flagCurDay != -1 {
		d, ok := days[flagCurDay]
		if !ok {
			log.Fatalf("no day %d", flagCurDay)
		}
		runDay(os.Stdout, slvr, year, d, samples)
		return
	}

	nums := maps.Keys(days)
	slices.Sort(nums)
	if !flagParallel {
		for _, n := range nums {
			runDay(os.Stdout, slvr, year, days[n], samples)
			fmt.Println()
		}
		return
	}
	t0 := time.Now()
	outs := Parallel(nums, func(n int) string {
		var buf bytes.Buffer
		runDay(&buf, newSolver(slvr), year, days[n], samples)
		return buf.String()
	})
	for _, out := range outs {
		fmt.Println(out)
	}
	fmt.Printf("all days took %v\n", time.Since(t0).Round(time.Microsecond))
}
