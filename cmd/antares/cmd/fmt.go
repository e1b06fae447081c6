package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/xbcsmith/antares/ron"
)

var fmtWrite bool

var fmtCmd = &cobra.Command{
	Use:   "fmt <file>...",
	Short: "Rewrite RON documents in canonical form",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, path := range args {
			data, err := os.ReadFile(path)
			if err != nil {
				return exitf(ExitLoadFailed, "read %s: %v", path, err)
			}
			formatted, err := ron.Format(data)
			if err != nil {
				return exitf(ExitLoadFailed, "format %s: %v", path, err)
			}
			if fmtWrite {
				if err := os.WriteFile(path, formatted, 0o644); err != nil {
					return exitf(ExitLoadFailed, "write %s: %v", path, err)
				}
				continue
			}
			fmt.Fprint(cmd.OutOrStdout(), string(formatted))
		}
		return nil
	},
}

func init() {
	fmtCmd.Flags().BoolVarP(&fmtWrite, "write", "w", false, "rewrite files in place instead of printing")
	rootCmd.AddCommand(fmtCmd)
}
