package cmd

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the resolved settings of a profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		site, err := loadSite()
		if err != nil {
			return err
		}

		out, err := yaml.Marshal(site)
		if err != nil {
			return errors.WithStack(err)
		}

		_, err = cmd.OutOrStdout().Write(out)
		return errors.WithStack(err)
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
