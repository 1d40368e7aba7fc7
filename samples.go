package aoc

import (
	"go/ast"
	"go/parser"
	"go/token"
	"io/fs"
	"log"
	"regexp"
	"slices"
	"strings"
)

// A sample is the example input of a puzzle part and the answer it must
// produce. Samples live in the doc comment of the part's method:
//
//	/*
//	want=142
//
//	1abc2
//	pqr3stu8vwx
//	*/
//	func (s solver) D1p1() any
//
// A sample with only a want line reuses the input of the sample before it
// in the same file, which suits part two.
type sample struct {
	input string
	want  string
}

var sampleRx = regexp.MustCompile(`(?sm)^\s*want=([^\n]*)(?:\s+(.+\n))?\s*`)

func parseSample(comment string) (sample, bool) {
	text, isBlock := strings.CutPrefix(comment, "/*")
	if isBlock {
		text = strings.TrimSuffix(text, "*/")
	} else {
		text = strings.TrimPrefix(text, "//")
	}
	m := sampleRx.FindStringSubmatch(text)
	if m == nil {
		return sample{}, false
	}
	return sample{want: m[1], input: m[2]}, true
}

// extractSamples returns the samples of the methods declared in src,
// keyed by method name.
func extractSamples(filename string, src []byte) map[string]sample {
	f, err := parser.ParseFile(token.NewFileSet(), filename, src, parser.ParseComments)
	if err != nil {
		log.Fatalf("parsing %s to extract samples: %v", filename, err)
	}
	samples := make(map[string]sample)
	var prev string
	for _, d := range f.Decls {
		fd, ok := d.(*ast.FuncDecl)
		if !ok || fd.Doc == nil {
			continue
		}
		i := slices.IndexFunc(fd.Doc.List, func(c *ast.Comment) bool {
			_, ok := parseSample(c.Text)
			return ok
		})
		if i < 0 {
			continue
		}
		s, _ := parseSample(fd.Doc.List[i].Text)
		s.input = Or(s.input, prev)
		prev = s.input
		samples[fd.Name.Name] = s
	}
	return samples
}

// extractAllSamples collects the samples of every non-test Go file at the
// root of src.
func extractAllSamples(src fs.FS) map[string]sample {
	names := MustGet(fs.Glob(src, "*.go"))
	slices.Sort(names)
	all := make(map[string]sample)
	for _, name := range names {
		if strings.HasSuffix(name, "_test.go") {
			continue
		}
		for fn, s := range extractSamples(name, MustGet(fs.ReadFile(src, name))) {
			if _, dup := all[fn]; dup {
				log.Fatalf("%s: %s has samples in two files", name, fn)
			}
			all[fn] = s
		}
	}
	return all
}
