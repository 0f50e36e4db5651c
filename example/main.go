package main

import (
	"flag"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/achu-1612/ttlstore"
	"github.com/achu-1612/ttlstore/clock"
	"github.com/achu-1612/ttlstore/log"
)

type seed struct {
	Entries []ttlstore.Entry `yaml:"entries"`
}

func loadSeed(path string) ([]ttlstore.Entry, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading seed file: %w", err)
	}

	var s seed
	if err := yaml.Unmarshal(b, &s); err != nil {
		return nil, fmt.Errorf("parsing seed file %s: %w", path, err)
	}

	return s.Entries, nil
}

func main() {
	seedPath := flag.String("seed", "example/seed.yaml", "path to the YAML seed file")
	debug := flag.Bool("debug", false, "enable debug logs")
	flag.Parse()

	l := log.New("example", false, *debug)

	entries, err := loadSeed(*seedPath)
	if err != nil {
		l.Errorf("%v", err)
		os.Exit(1)
	}

	clk := clock.NewManual(0)

	s := ttlstore.New(entries, ttlstore.Options{
		Clock:     clk,
		Name:      "example",
		DebugLogs: *debug,
	})

	l.Infof("loaded %d entries", s.Len())

	for _, now := range []uint64{0, 1, 2, 5} {
		clk.Set(now)

		fmt.Printf("t=%d scan from \"c\": %v\n", now, s.ScanFrom("c", 3))

		if v, ok := s.Get("a"); ok {
			fmt.Printf("t=%d get a: %s\n", now, v)
		} else {
			fmt.Printf("t=%d get a: <absent>\n", now)
		}
	}

	fmt.Printf("evicted: %v\n", s.EvictExpired(0))
	fmt.Printf("remaining: %d\n", s.Len())
}
