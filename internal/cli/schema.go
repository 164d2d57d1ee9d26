package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"caid/internal/content"
)

func init() {
	rootCmd.AddCommand(schemaCmd)
}

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON Schema of the content catalog",
	Long:  "Print the JSON Schema of the YAML content catalog used by serve --content and --offline.",
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := content.MarshalSchema(content.CatalogSchema())
		if err != nil {
			return err
		}
		fmt.Println(string(b))
		return nil
	},
}
