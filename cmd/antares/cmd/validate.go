package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xbcsmith/antares/campaign"
	"github.com/xbcsmith/antares/validate"
)

var validateInfo bool

var validateCmd = &cobra.Command{
	Use:   "validate <campaign-dir>",
	Short: "Load a campaign directory and report validation findings",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := ParseEnv()
		if err != nil {
			return exitf(ExitUsage, "%v", err)
		}
		router, err := cfg.BuildRouter()
		if err != nil {
			return exitf(ExitLoadFailed, "%v", err)
		}
		ctx := cmd.Context()
		defer router.Close(context.WithoutCancel(ctx))

		bands := cfg.Bands()
		c, err := campaign.LoadWith(ctx, args[0], campaign.Options{
			Bands:     &bands,
			Publisher: router,
		})
		if err != nil {
			return exitf(ExitLoadFailed, "load %s: %v", args[0], err)
		}

		out := cmd.OutOrStdout()
		for _, f := range c.Report {
			if f.Severity < validate.Warning && !validateInfo {
				continue
			}
			fmt.Fprintln(out, f.String())
		}
		errs := len(c.Report.Errors())
		warns := len(c.Report.Warnings())
		fmt.Fprintf(out, "%d errors, %d warnings\n", errs, warns)
		if errs > 0 {
			return &exitError{code: ExitFindings}
		}
		return nil
	},
}

func init() {
	validateCmd.Flags().BoolVar(&validateInfo, "info", false, "also print info findings")
	rootCmd.AddCommand(validateCmd)
}
