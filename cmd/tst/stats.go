package main

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	statsSource source
	statsPrefix []string
	statsVerify bool
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Build a trie from a key set and report its shape and lookup timings",
	RunE: func(cmd *cobra.Command, args []string) error {
		keys, err := statsSource.loadKeys()
		if err != nil {
			return err
		}

		tr, st := build(keys)
		out := cmd.OutOrStdout()

		fmt.Fprintf(out, "source:     %d keys (%d empty, %d duplicate)\n", st.keys, st.empty, st.duplicates)
		fmt.Fprintf(out, "trie:       %s\n", tr)
		if tr.Size() > 0 {
			fmt.Fprintf(out, "nodes/key:  %.2f\n", float64(tr.Nodes())/float64(tr.Size()))
		}
		fmt.Fprintf(out, "build:      %s\n", st.elapsed)

		stored := tr.Keys()

		start := time.Now()
		for _, k := range stored {
			tr.Get(k)
		}
		fmt.Fprintf(out, "get hit:    %s/op\n", perOp(time.Since(start), len(stored)))

		misses := missProbes(stored)
		start = time.Now()
		for _, k := range misses {
			tr.Get(k)
		}
		fmt.Fprintf(out, "get miss:   %s/op\n", perOp(time.Since(start), len(misses)))

		if statsVerify {
			if err := verify(tr.Map(), keys); err != nil {
				return err
			}
			log.Info().Int("keys", tr.Size()).Msg("verified")
		}

		for _, p := range statsPrefix {
			fmt.Fprintf(out, "prefix %q: %d keys\n", p, len(tr.KeysWithPrefix(p)))
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().StringVar(&statsSource.corpus, "corpus", envStr(EnvCorpus, ""), "testkeys corpus to load (see `tst corpora`)")
	statsCmd.Flags().StringVar(&statsSource.file, "file", "", "file with one key per line")
	statsCmd.Flags().StringSliceVar(&statsPrefix, "prefix", nil, "count keys under these prefixes")
	statsCmd.Flags().BoolVar(&statsVerify, "verify", envBool(EnvVerify, false), "check every loaded key against the trie")
}

func perOp(d time.Duration, n int) time.Duration {
	if n == 0 {
		return 0
	}
	return d / time.Duration(n)
}

// missProbes appends \xff to every stored key and keeps the results that
// are not themselves stored.
func missProbes(stored []string) []string {
	set := make(map[string]struct{}, len(stored))
	for _, k := range stored {
		set[k] = struct{}{}
	}

	probes := make([]string, 0, len(stored))
	for _, k := range stored {
		p := k + "\xff"
		if _, ok := set[p]; !ok {
			probes = append(probes, p)
		}
	}
	return probes
}

// verify checks that the last position of every non-empty key is what the
// trie stores for it.
func verify(got map[string]int, keys []string) error {
	want := make(map[string]int, len(keys))
	for i, k := range keys {
		if k != "" {
			want[k] = i
		}
	}
	if len(want) != len(got) {
		return fmt.Errorf("verify: trie holds %d keys, want %d", len(got), len(want))
	}
	for k, i := range want {
		if v, ok := got[k]; !ok || v != i {
			return fmt.Errorf("verify: key %q maps to %d (present %t), want %d", k, v, ok, i)
		}
	}
	return nil
}
