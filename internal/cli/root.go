// Package cli comandos de hotelctl: reportes del hotel calculados sobre un snapshot JSON,
// sin servidor ni base de datos.
package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Leonardo2020-col/Hotel-management-demo-V2-sub002/pkg/config"
	"github.com/Leonardo2020-col/Hotel-management-demo-V2-sub002/pkg/logger"
)

// RootOptions flags globales y dependencias resueltas antes de cada subcomando.
type RootOptions struct {
	Timezone string
	LogLevel string

	cfg *config.Config
	log *logger.Logger
}

// NewRootCmd construye el comando raíz.
func NewRootCmd() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "hotelctl",
		Short:         "Reportes y métricas del hotel desde la línea de comandos",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if opts.Timezone != "" {
				cfg.Report.Timezone = opts.Timezone
			}
			if _, err := time.LoadLocation(cfg.Report.Timezone); err != nil {
				return fmt.Errorf("--timezone inválido %q: %w", cfg.Report.Timezone, err)
			}
			level := opts.LogLevel
			if level == "" {
				level = cfg.App.LogLevel
			}
			opts.cfg = cfg
			opts.log = logger.New(logger.Config{Env: "development", Level: level, Out: cmd.ErrOrStderr()})
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.Timezone, "timezone", "", "Zona horaria IANA del hotel (por defecto REPORT_TIMEZONE)")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "", "Nivel de log: trace|debug|info|warn|error|disabled")

	cmd.AddCommand(NewReportCmd(opts))

	return cmd
}
