package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shopspring/decimal"
	"github.com/urfave/cli/v2"

	"github.com/astromine/planner/internal/api"
	"github.com/astromine/planner/internal/catalog"
	"github.com/astromine/planner/internal/config"
	"github.com/astromine/planner/internal/domain"
	"github.com/astromine/planner/internal/export"
	"github.com/astromine/planner/internal/screen"
)

func main() {
	cfg := config.Load()

	app := &cli.App{
		Name:           "planner",
		Usage:          "asteroid mining mission planner dashboard",
		DefaultCommand: "serve",
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "serve the dashboard until terminated",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "port",
						Usage: "HTTP listen port",
						Value: cfg.HTTPPort,
					},
				},
				Action: runServe,
			},
			{
				Name:  "export",
				Usage: "write the catalog (optionally filtered) to an xlsx workbook",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "workbook output path",
						Value:   cfg.ExportPath,
					},
					&cli.StringSliceFlag{
						Name:  "type",
						Usage: "spectral types to keep (default: all observed)",
					},
					&cli.Float64Flag{
						Name:  "min-diameter",
						Usage: "minimum diameter in km",
						Value: screen.DefaultMinDiameterKm,
					},
					&cli.StringFlag{
						Name:  "min-value",
						Usage: "minimum estimated value in billion USD",
						Value: screen.DefaultMinValue.String(),
					},
					&cli.Float64Flag{
						Name:  "max-dv",
						Usage: "maximum transfer delta-v in km/s",
						Value: screen.DefaultMaxDeltaV,
					},
				},
				Action: runExport,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func runServe(c *cli.Context) error {
	ctx, stop := signal.NotifyContext(c.Context, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := api.NewServer(c.String("port"), export.NewService())

	go func() {
		slog.Info("HTTP server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("HTTP server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	slog.Info("shutdown complete")
	return nil
}

func runExport(c *cli.Context) error {
	criteria := screen.Defaults(catalog.SpectralTypes())
	if types := c.StringSlice("type"); len(types) > 0 {
		criteria.AcceptedTypes = make([]domain.SpectralType, 0, len(types))
		for _, t := range types {
			criteria.AcceptedTypes = append(criteria.AcceptedTypes, domain.SpectralType(t))
		}
	}
	criteria.MinDiameterKm = c.Float64("min-diameter")
	criteria.MaxDeltaV = c.Float64("max-dv")

	minValue, err := decimal.NewFromString(c.String("min-value"))
	if err != nil {
		return fmt.Errorf("parsing --min-value: %w", err)
	}
	criteria.MinValue = minValue
	criteria = screen.Clamp(criteria)

	filtered := screen.Apply(catalog.All(), criteria)

	path := c.String("output")
	if err := export.NewService().WriteFile(path, filtered); err != nil {
		return err
	}

	slog.Info("workbook written", "path", path, "records", len(filtered))
	return nil
}
