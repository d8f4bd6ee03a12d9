package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/vippsas/htmlcode"
	"github.com/vippsas/htmlcode/htmlparser"
)

var checkCmd = &cobra.Command{
	Use:   "check file...",
	Short: "tokenize HTML files and report parse errors",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := logrus.StandardLogger()

		cfg, err := LoadConfig(fs)
		if err != nil {
			return err
		}
		ignored, err := cfg.IgnoredKinds()
		if err != nil {
			return err
		}

		count := 0
		for _, filename := range args {
			data, err := afero.ReadFile(fs, filename)
			if err != nil {
				return err
			}
			_, errs := htmlcode.Tokenize(htmlparser.FileRef(filename), data)
			for _, pe := range errs {
				if ignored[pe.Kind] {
					continue
				}
				count++
				logger.WithField("file", filename).Error(pe.Error())
			}
		}
		if count > 0 {
			return fmt.Errorf("%d parse error(s)", count)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
