package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/xbcsmith/antares/ron"
)

var mergeCmd = &cobra.Command{
	Use:   "merge <base> <overlay>",
	Short: "Deep-merge two RON documents and print the result",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		base, err := os.ReadFile(args[0])
		if err != nil {
			return exitf(ExitLoadFailed, "read %s: %v", args[0], err)
		}
		overlay, err := os.ReadFile(args[1])
		if err != nil {
			return exitf(ExitLoadFailed, "read %s: %v", args[1], err)
		}
		merged, err := ron.MergeDocuments(base, overlay)
		if err != nil {
			var merr *ron.MergeError
			if errors.As(err, &merr) {
				return exitf(ExitFindings, "merge: %v", err)
			}
			return exitf(ExitLoadFailed, "merge: %v", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), string(merged))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(mergeCmd)
}
