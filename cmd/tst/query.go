package main

import (
	"fmt"

	"github.com/openacid/testkeys"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	querySource source
	queryPrefix bool
)

var queryCmd = &cobra.Command{
	Use:   "query KEY...",
	Short: "Look up keys, or list keys under prefixes, in a loaded key set",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		keys, err := querySource.loadKeys()
		if err != nil {
			return err
		}
		tr, _ := build(keys)
		out := cmd.OutOrStdout()

		for _, arg := range args {
			if queryPrefix {
				for _, k := range tr.KeysWithPrefix(arg) {
					fmt.Fprintln(out, k)
				}
				continue
			}

			if i, ok := tr.Get(arg); ok {
				fmt.Fprintf(out, "%s\t%d\n", arg, i)
			} else {
				log.Warn().Str("key", arg).Msg("not found")
			}
		}
		return nil
	},
}

var corporaCmd = &cobra.Command{
	Use:   "corpora",
	Short: "List the bundled testkeys corpora",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, name := range testkeys.AssetNames() {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	},
}

func init() {
	queryCmd.Flags().StringVar(&querySource.corpus, "corpus", envStr(EnvCorpus, ""), "testkeys corpus to load")
	queryCmd.Flags().StringVar(&querySource.file, "file", "", "file with one key per line")
	queryCmd.Flags().BoolVar(&queryPrefix, "prefix", false, "treat arguments as prefixes and list matching keys")
}
