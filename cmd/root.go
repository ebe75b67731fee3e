package cmd

import (
	"os"

	"github.com/nyirog/nyirog-site/config"
	"github.com/nyirog/nyirog-site/internal/log"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	declarationPath string
	profile         string
	logLevel        string

	logger, _ = log.New(log.Config{})
)

var rootCmd = &cobra.Command{
	Use:   "nyirog-site",
	Short: "nyirog-site - settings for the nyirog Pelican blog",
	Long: `nyirog-site keeps the settings of the nyirog blog in one declaration with
selectable deployment profiles, validates them and hands them to Pelican.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		var err error
		logger, err = log.New(log.Config{Level: logLevel, Output: cmd.ErrOrStderr()})
		if err != nil {
			logger.Warn().Err(err).Msg("falling back to info level")
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logError(logger, err)
		os.Exit(1)
	}
}

func logError(l zerolog.Logger, err error) {
	var cerr *config.ConfigurationError
	if errors.As(err, &cerr) {
		l.Error().Str("field", cerr.Field).Str("profile", cerr.Profile).Msg(cerr.Error())
		return
	}
	l.Error().Err(err).Msg("command failed")
}

func readDeclaration() (*config.Declaration, error) {
	if declarationPath == "" {
		return config.DefaultDeclaration()
	}
	return config.ReadDeclaration(declarationPath)
}

// loadSite resolves the selected profile. Any error is fatal for the caller.
func loadSite() (config.Site, error) {
	decl, err := readDeclaration()
	if err != nil {
		return config.Site{}, err
	}

	site, err := decl.Load(profile)
	if err != nil {
		return config.Site{}, err
	}

	logger.Debug().
		Str("profile", site.Profile).
		Str("declaration", declarationPath).
		Msg("configuration loaded")
	return site, nil
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&declarationPath, "config", "c", "", "Settings declaration (defaults to the built-in one)")
	rootCmd.PersistentFlags().StringVarP(&profile, "profile", "p", "", "Deployment profile to resolve")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level")
}
