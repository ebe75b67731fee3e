package cmd

import (
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the settings of a profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		site, err := loadSite()
		if err != nil {
			return err
		}

		logger.Info().
			Str("profile", site.Profile).
			Str("site_url", site.URL).
			Str("feed_domain", site.Feeds.Domain).
			Bool("feeds", site.Feeds.Enabled()).
			Int("links", len(site.Links)).
			Int("social", len(site.Social)).
			Int("pagination", site.PaginationSize).
			Msg("configuration is valid")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
