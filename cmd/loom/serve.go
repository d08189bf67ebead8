package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/loom-ui/loom/pkg/server"
)

func serveCmd() *cobra.Command {
	var (
		port     int
		hostFlag string
		interval time.Duration
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the demo application",
		Long: `Serve the demo application over HTTP.

The page is server-rendered at /, and clients connecting to /ws receive
a binary tree snapshot followed by incremental patch batches as the
application state changes. Prometheus metrics are exposed at /metrics.

Examples:
  loom serve
  loom serve --port=8080
  loom serve --interval=5s`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(port, hostFlag, interval)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (default from loom.json)")
	cmd.Flags().StringVarP(&hostFlag, "host", "H", "", "Host to bind to (default from loom.json)")
	cmd.Flags().DurationVar(&interval, "interval", time.Second, "State update interval")

	return cmd
}

func runServe(port int, hostFlag string, interval time.Duration) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if port > 0 {
		cfg.Server.Port = port
	}
	if hostFlag != "" {
		cfg.Server.Host = hostFlag
	}

	app := newDemoApp()
	srv := server.New(app.view, cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				app.tick()
				srv.Update(ctx)
			}
		}
	}()

	fmt.Printf("serving on http://%s\n", cfg.Addr())
	return srv.ListenAndServe(ctx)
}
