package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	cfg "github.com/speakwise/analyzer/config"
	"github.com/speakwise/analyzer/logging"
	"github.com/speakwise/analyzer/scoring"
)

var (
	configPath string
	logLevel   string

	conf *cfg.Root
	log  *logrus.Logger
)

var rootCmd = &cobra.Command{
	Use:   "speakwise",
	Short: "Speech quality analysis service",
	Long: `SpeakWise transcribes short recordings and scores pace, clarity,
fluency and filler-word usage.

Configuration is read from config/$CONFIG_ENV/config.yaml (default env "dev")
or ./config.yaml, and every key can be overridden with SPEAKWISE_* variables,
for example SPEAKWISE_SERVER_PORT=8080.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if conf, err = cfg.Load(configPath); err != nil {
			return err
		}
		if logLevel != "" {
			conf.Pipeline.LogLvl = logLevel
		}
		log, err = logging.New(conf.Pipeline.LogLvl, conf.Pipeline.LogFormat)
		return err
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default: config/<CONFIG_ENV>/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "override pipeline.log_level")
}

func Execute() error {
	return rootCmd.Execute()
}

func scoringOptions(c *cfg.Root) scoring.Options {
	opts := scoring.Options{Fillers: scoring.FillerTokens}
	if c.Scoring.PhraseFillers {
		opts.Fillers = scoring.FillerPhrases
	}
	return opts
}
