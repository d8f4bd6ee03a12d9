package cmd

import (
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:          "htmlcode",
		Short:        "htmlcode",
		SilenceUsage: true,
		Long:         `CLI tool for running the WHATWG HTML tokenizer over documents: dump token streams, report parse errors.`,
	}

	directory string

	// commands read input through this so tests can swap in a memory fs
	fs afero.Fs = afero.NewOsFs()
)

// Execute executes the root command.
func Execute() error {
	rootCmd.PersistentFlags().StringVarP(&directory, "directory", "d", ".", "directory that is searched for htmlcode.yaml")
	return rootCmd.Execute()
}
