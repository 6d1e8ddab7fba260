package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/speakwise/analyzer/auth"
	"github.com/speakwise/analyzer/clients"
	"github.com/speakwise/analyzer/orchestrator"
	"github.com/speakwise/analyzer/server"
	"github.com/speakwise/analyzer/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	if err := conf.Validate(); err != nil {
		return err
	}

	st, err := store.Open(conf.Store, log)
	if err != nil {
		return err
	}
	if st != nil {
		defer st.Close()
	}

	verifier := auth.NewVerifier(conf.Auth.JWTSecret)
	if verifier == nil {
		log.Warn("auth.jwt_secret is empty: every request runs in guest mode")
	}

	asr := clients.NewASR(clients.NewHTTP(conf.Services.ASR.Timeout), conf.Services.ASR.URL, conf.Services.ASR.Language)

	// A nil store must stay a nil interface on both sides.
	var (
		persister orchestrator.Persister
		reports   server.Reports
	)
	if st != nil {
		persister, reports = st, st
	}
	pipeline := orchestrator.NewPipeline(asr, persister, log, scoringOptions(conf))

	srv := server.New(server.Config{
		Addr:           conf.Addr(),
		ReadTimeout:    conf.Server.ReadTimeout,
		WriteTimeout:   conf.Server.WriteTimeout,
		MaxUploadBytes: conf.MaxUploadBytes(),
		AllowedOrigins: conf.Server.AllowedOrigins,
		Name:           conf.Pipeline.Name,
		Version:        conf.Pipeline.Version,
	}, server.Deps{
		Analyzer: pipeline,
		Reports:  reports,
		Auth:     verifier,
		ASR:      asr,
		Log:      log,
	})

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sig)

	select {
	case err := <-errCh:
		return err
	case s := <-sig:
		log.WithField("signal", s.String()).Info("shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}
