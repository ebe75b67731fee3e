package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List the declared deployment profiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		decl, err := readDeclaration()
		if err != nil {
			return err
		}

		for _, name := range decl.Profiles() {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(profilesCmd)
}
