package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"turntable/internal/api"
	"turntable/internal/config"
	"turntable/internal/logging"
	"turntable/internal/studio"
	"turntable/internal/telemetry"
	"turntable/internal/viewer"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log, closer := logging.New(cfg.Environment, cfg.LogFile)
	defer closer.Close()

	ctx := context.Background()
	tel, err := telemetry.Setup(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("telemetry disabled")
		tel = telemetry.Noop()
	}
	defer tel.Shutdown(ctx)

	client := api.New(cfg.API.BaseURL,
		api.WithLogger(log),
		api.WithTracer(tel.Tracer()),
		api.WithHTTPClient(api.DefaultHTTPClient(cfg.API.Timeout)),
	)

	launcher := &viewer.Launcher{
		Command: cfg.Viewer.Command,
		Args:    cfg.Viewer.Args,
		Log:     log,
	}

	model := studio.NewAppModel(client, launcher, cfg.DownloadDir, log)
	p := tea.NewProgram(model.AsTeaModel(), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
