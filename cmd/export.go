package cmd

import (
	"strings"

	"github.com/nyirog/nyirog-site/pelican"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var exportDir string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write pelicanconf.py for a profile",
	Long:  `Validates the selected profile and writes it as a Pelican settings module. Nothing is written when validation fails.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if strings.TrimSpace(exportDir) == "" {
			return errors.New("--out must name a directory")
		}

		site, err := loadSite()
		if err != nil {
			return err
		}

		path, err := pelican.WriteFile(site, exportDir)
		if err != nil {
			return err
		}

		logger.Info().Str("profile", site.Profile).Str("path", path).Msg("settings exported")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportDir, "out", "o", ".", "Directory to write pelicanconf.py into")
}
