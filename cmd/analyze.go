package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/speakwise/analyzer/clients"
	"github.com/speakwise/analyzer/orchestrator"
	"github.com/speakwise/analyzer/scoring"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <audio>",
	Short: "Transcribe and score a local recording",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		fi, err := f.Stat()
		if err != nil {
			return err
		}

		asr := clients.NewASR(clients.NewHTTP(conf.Services.ASR.Timeout), conf.Services.ASR.URL, conf.Services.ASR.Language)
		p := orchestrator.NewPipeline(asr, nil, log, scoringOptions(conf))
		r, err := p.Run(cmd.Context(), orchestrator.Audio{Name: filepath.Base(args[0]), Data: f, Size: fi.Size()}, "")
		if err != nil {
			return err
		}
		return encode(cmd.OutOrStdout(), r)
	},
}

// transcription is the offline input for score.
type transcription struct {
	Transcript string         `json:"transcript"`
	Words      []scoring.Word `json:"words"`
}

var scoreCmd = &cobra.Command{
	Use:   "score <transcription.json>",
	Short: "Score an existing transcription without calling the ASR service",
	Long: `Score reads {"transcript": "...", "words": [{"text","start","end","confidence"}]}
and prints the report.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		var in transcription
		if err := json.Unmarshal(b, &in); err != nil {
			return fmt.Errorf("decode %s: %w", args[0], err)
		}
		p := orchestrator.NewPipeline(nil, nil, log, scoringOptions(conf))
		r, err := p.Analyze(cmd.Context(), in.Transcript, in.Words, "")
		if err != nil {
			return err
		}
		return encode(cmd.OutOrStdout(), r)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", conf.Pipeline.Name, conf.Pipeline.Version)
	},
}

func init() {
	for _, c := range []*cobra.Command{analyzeCmd, scoreCmd} {
		c.Flags().StringVarP(&outputFormat, "format", "f", "json", "output format: json|yaml")
	}
	rootCmd.AddCommand(analyzeCmd, scoreCmd, versionCmd)
}
