package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/invopop/jsonschema"
	"github.com/spf13/cobra"

	"github.com/xbcsmith/antares/content"
)

var schemaOut string

// schemaTypes are the document types exposed to editor tooling.
var schemaTypes = []struct {
	Name string
	Type any
}{
	{"class", &content.Class{}},
	{"race", &content.Race{}},
	{"item", &content.Item{}},
	{"spell", &content.Spell{}},
	{"condition", &content.Condition{}},
	{"monster", &content.Monster{}},
	{"quest", &content.Quest{}},
	{"dialogue", &content.DialogueTree{}},
	{"map", &content.Map{}},
	{"npc", &content.Npc{}},
	{"creature", &content.CreatureDefinition{}},
	{"manifest", &content.Manifest{}},
}

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Generate JSON Schemas for the content document types",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		reflector := jsonschema.Reflector{
			RequiredFromJSONSchemaTags: true,
			DoNotReference:             true,
		}
		if schemaOut != "" {
			if err := os.MkdirAll(schemaOut, 0o755); err != nil {
				return exitf(ExitLoadFailed, "create %s: %v", schemaOut, err)
			}
		}
		for _, st := range schemaTypes {
			schema := reflector.Reflect(st.Type)
			payload, err := json.MarshalIndent(schema, "", "  ")
			if err != nil {
				return exitf(ExitLoadFailed, "marshal %s schema: %v", st.Name, err)
			}
			payload = append(payload, '\n')
			if schemaOut == "" {
				fmt.Fprint(cmd.OutOrStdout(), string(payload))
				continue
			}
			path := filepath.Join(schemaOut, st.Name+".schema.json")
			if err := os.WriteFile(path, payload, 0o644); err != nil {
				return exitf(ExitLoadFailed, "write %s: %v", path, err)
			}
		}
		return nil
	},
}

func init() {
	schemaCmd.Flags().StringVarP(&schemaOut, "out", "o", "", "directory to write <type>.schema.json files into")
	rootCmd.AddCommand(schemaCmd)
}
