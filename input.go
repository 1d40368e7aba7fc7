package aoc

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

const userAgent = "github.com/puzzlekit/aoc"

var httpClient = &http.Client{Timeout: 30 * time.Second}

var session = sync.OnceValue(func() string {
	b, err := os.ReadFile(filepath.Join(os.Getenv("HOME"), "keys", "aoc.session"))
	if err != nil {
		log.Fatalf("reading session cookie: %v", err)
	}
	return strings.TrimSpace(string(b))
})

// inputPath is where the input of day is cached.
func inputPath(year, day int) string {
	return filepath.Join(flagInputs, fmt.Sprint(year), fmt.Sprintf("%d.input", day))
}

// loadInput returns the puzzle input of day, downloading it into the cache
// the first time.
func loadInput(year, day int) []byte {
	path := inputPath(year, day)
	b, err := os.ReadFile(path)
	if err == nil {
		return b
	}
	if !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("reading cached input: %v", err)
	}
	b, err = fetch(fmt.Sprintf("https://adventofcode.com/%d/day/%d/input", year, day))
	if err != nil {
		log.Fatalf("day %d: %v", day, err)
	}
	MustDo(os.MkdirAll(filepath.Dir(path), 0700))
	MustDo(os.WriteFile(path, b, 0600))
	return b
}

func fetch(url string) ([]byte, error) {
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)
	req.AddCookie(&http.Cookie{Name: "session", Value: session()})
	res, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching %s: %v", url, res.Status)
	}
	return io.ReadAll(res.Body)
}
