package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"slices"
	"time"

	"github.com/openacid/testkeys"
	"github.com/rs/zerolog/log"

	"github.com/e11jah/tst"
)

var (
	ErrNoSource    = errors.New("one of --corpus or --file is required")
	ErrBothSources = errors.New("--corpus and --file are mutually exclusive")
	ErrNoCorpus    = errors.New("unknown corpus")
)

type source struct {
	corpus string
	file   string
}

// loadKeys reads keys from a testkeys corpus or from a file holding one key
// per line.
func (s source) loadKeys() ([]string, error) {
	switch {
	case s.corpus != "" && s.file != "":
		return nil, ErrBothSources
	case s.corpus != "":
		if !slices.Contains(testkeys.AssetNames(), s.corpus) {
			return nil, fmt.Errorf("%w: %s", ErrNoCorpus, s.corpus)
		}
		return testkeys.Load(s.corpus), nil
	case s.file != "":
		return readLines(s.file)
	}
	return nil, ErrNoSource
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var keys []string
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for sc.Scan() {
		keys = append(keys, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return keys, nil
}

type buildStats struct {
	keys       int
	empty      int
	duplicates int
	elapsed    time.Duration
}

// build inserts keys into a new trie, each mapped to its position in keys.
// Empty keys cannot be stored and are counted and skipped.
func build(keys []string) (*tst.Trie[int], buildStats) {
	st := buildStats{keys: len(keys)}
	tr := tst.New[int]()

	start := time.Now()
	for i, k := range keys {
		_, replaced, err := tr.Put(k, i)
		if errors.Is(err, tst.ErrEmptyKey) {
			st.empty++
			continue
		}
		if replaced {
			st.duplicates++
		}
	}
	st.elapsed = time.Since(start)

	log.Debug().
		Int("keys", st.keys).
		Int("empty", st.empty).
		Int("duplicates", st.duplicates).
		Dur("elapsed", st.elapsed).
		Msg("trie built")
	return tr, st
}
