package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Leonardo2020-col/Hotel-management-demo-V2-sub002/internal/application/dto"
	"github.com/Leonardo2020-col/Hotel-management-demo-V2-sub002/internal/application/reports"
	"github.com/Leonardo2020-col/Hotel-management-demo-V2-sub002/internal/domain"
	"github.com/Leonardo2020-col/Hotel-management-demo-V2-sub002/internal/infrastructure/pdf"
	"github.com/Leonardo2020-col/Hotel-management-demo-V2-sub002/internal/infrastructure/snapshot"
	"github.com/Leonardo2020-col/Hotel-management-demo-V2-sub002/internal/infrastructure/xlsx"
)

type reportFlags struct {
	snapshot string
	latin1   bool
	branchID string
	period   string
	fromRaw  string
	toRaw    string
	todayRaw string
	format   string
	out      string
	hotel    string
}

// NewReportCmd hotelctl report [tipo].
func NewReportCmd(opts *RootOptions) *cobra.Command {
	flags := &reportFlags{}

	cmd := &cobra.Command{
		Use:   "report [general|occupancy|revenue|guests|inventory]",
		Short: "Genera un reporte a partir de un snapshot JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reportType := ""
			if len(args) == 1 {
				reportType = args[0]
			}
			return runReport(cmd, opts, flags, reportType)
		},
	}

	cmd.Flags().StringVar(&flags.snapshot, "snapshot", "", "Archivo JSON con rooms, reservations, guests e inventory")
	cmd.Flags().BoolVar(&flags.latin1, "latin1", false, "El snapshot está codificado en ISO-8859-1")
	cmd.Flags().StringVar(&flags.branchID, "branch", "", "Sucursal (vacío = todas)")
	cmd.Flags().StringVar(&flags.period, "period", "", "today|yesterday|this_week|last_week|this_month|last_month|this_quarter|this_year")
	cmd.Flags().StringVar(&flags.fromRaw, "from", "", "Inicio del período personalizado (YYYY-MM-DD)")
	cmd.Flags().StringVar(&flags.toRaw, "to", "", "Fin del período personalizado (YYYY-MM-DD)")
	cmd.Flags().StringVar(&flags.todayRaw, "today", "", "Fecha de referencia en lugar de hoy (YYYY-MM-DD)")
	cmd.Flags().StringVar(&flags.format, "format", string(reports.FormatJSON), "Formato de salida: json|pdf|xlsx")
	cmd.Flags().StringVar(&flags.out, "out", "", "Archivo de salida; para json vacío o - escribe en stdout")
	cmd.Flags().StringVar(&flags.hotel, "hotel", "Hotel", "Nombre del hotel en el encabezado del PDF")
	_ = cmd.MarkFlagRequired("snapshot")

	return cmd
}

func runReport(cmd *cobra.Command, opts *RootOptions, flags *reportFlags, reportType string) error {
	format, ok := reports.ParseFormat(flags.format)
	if !ok {
		return fmt.Errorf("%w: %q", domain.ErrUnknownFormat, flags.format)
	}

	engine, err := reports.EngineConfig(opts.cfg.Report)
	if err != nil {
		return err
	}

	var snapOpts []snapshot.Option
	if flags.latin1 {
		snapOpts = append(snapOpts, snapshot.WithLatin1())
	}
	src, err := snapshot.Open(flags.snapshot, snapOpts...)
	if err != nil {
		return err
	}

	ucOpts := []reports.Option{
		reports.WithFetchLimit(opts.cfg.Report.FetchLimit),
		reports.WithExporter(reports.FormatPDF, pdf.NewReportGenerator(flags.hotel)),
		reports.WithExporter(reports.FormatXLSX, xlsx.NewWorkbookExporter()),
	}
	if flags.todayRaw != "" {
		today, err := time.ParseInLocation("2006-01-02", flags.todayRaw, engine.Location)
		if err != nil {
			return fmt.Errorf("--today %q no es YYYY-MM-DD", flags.todayRaw)
		}
		noon := today.Add(12 * time.Hour)
		ucOpts = append(ucOpts, reports.WithClock(func() time.Time { return noon }))
	}
	uc := reports.NewUseCase(src.Sources(), engine, opts.log, ucOpts...)

	req := dto.ReportRequest{
		Type:      reportType,
		Period:    flags.period,
		StartDate: flags.fromRaw,
		EndDate:   flags.toRaw,
		Format:    flags.format,
		BranchID:  flags.branchID,
	}

	if format == reports.FormatJSON {
		sum, err := uc.Generate(cmd.Context(), req)
		if err != nil {
			return err
		}
		b, err := json.MarshalIndent(sum, "", "  ")
		if err != nil {
			return fmt.Errorf("serializar reporte: %w", err)
		}
		return writeOutput(cmd, flags.out, append(b, '\n'))
	}

	file, err := uc.Export(cmd.Context(), req)
	if err != nil {
		return err
	}
	out := flags.out
	if out == "" || out == "-" {
		out = file.Filename
	}
	if err := writeOutput(cmd, out, file.Body); err != nil {
		return err
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "reporte escrito en %s\n", out)
	return err
}

func writeOutput(cmd *cobra.Command, path string, b []byte) error {
	if path == "" || path == "-" {
		_, err := cmd.OutOrStdout().Write(b)
		return err
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("escribir %s: %w", path, err)
	}
	return nil
}
