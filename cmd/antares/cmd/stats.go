package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xbcsmith/antares/contentdb"
)

var statsJSON bool

var statsCmd = &cobra.Command{
	Use:   "stats <campaign-dir>",
	Short: "Print entity counts for a campaign directory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := contentdb.LoadCampaign(args[0])
		if err != nil {
			return exitf(ExitLoadFailed, "load %s: %v", args[0], err)
		}
		stats := db.Stats()
		out := cmd.OutOrStdout()
		if statsJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(stats)
		}
		fmt.Fprintf(out, "classes     %d\n", stats.Classes)
		fmt.Fprintf(out, "races       %d\n", stats.Races)
		fmt.Fprintf(out, "items       %d\n", stats.Items)
		fmt.Fprintf(out, "spells      %d\n", stats.Spells)
		fmt.Fprintf(out, "conditions  %d\n", stats.Conditions)
		fmt.Fprintf(out, "monsters    %d\n", stats.Monsters)
		fmt.Fprintf(out, "quests      %d\n", stats.Quests)
		fmt.Fprintf(out, "dialogues   %d\n", stats.Dialogues)
		fmt.Fprintf(out, "maps        %d\n", stats.Maps)
		fmt.Fprintf(out, "npcs        %d\n", stats.Npcs)
		fmt.Fprintf(out, "creatures   %d\n", stats.Creatures)
		return nil
	},
}

func init() {
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "emit stats as JSON")
	rootCmd.AddCommand(statsCmd)
}
