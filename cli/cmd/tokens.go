package cmd

import (
	"github.com/alecthomas/repr"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/vippsas/htmlcode"
	"github.com/vippsas/htmlcode/htmlparser"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens file...",
	Short: "tokenize HTML files and dump the token stream",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, filename := range args {
			data, err := afero.ReadFile(fs, filename)
			if err != nil {
				return err
			}
			tokens, _ := htmlcode.Tokenize(htmlparser.FileRef(filename), data)
			for _, tok := range tokens {
				repr.Println(tok)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}
