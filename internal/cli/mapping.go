package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newMappingCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mapping",
		Short: "Inspect the tokens injected for special keys",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "export [path]",
		Short: "Write the active injection mapping as JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				return a.mapping.SaveToJSON(args[0])
			}

			data, err := a.mapping.ToJSON()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	})

	return cmd
}
