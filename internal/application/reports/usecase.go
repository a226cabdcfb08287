// Package reports contiene el caso de uso que arma los reportes del hotel: obtiene las
// colecciones en paralelo, las normaliza y delega el cálculo en el motor de métricas.
package reports

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Leonardo2020-col/Hotel-management-demo-V2-sub002/internal/application/dto"
	"github.com/Leonardo2020-col/Hotel-management-demo-V2-sub002/internal/domain"
	"github.com/Leonardo2020-col/Hotel-management-demo-V2-sub002/internal/domain/metrics"
	"github.com/Leonardo2020-col/Hotel-management-demo-V2-sub002/internal/domain/record"
	"github.com/Leonardo2020-col/Hotel-management-demo-V2-sub002/internal/domain/repository"
	"github.com/Leonardo2020-col/Hotel-management-demo-V2-sub002/pkg/logger"
)

const (
	dateLayout        = "2006-01-02"
	defaultFetchLimit = 5000
)

// UseCase genera reportes a partir de las fuentes de datos configuradas.
type UseCase struct {
	sources    repository.ReportSources
	engine     metrics.Config
	exporters  map[Format]Exporter
	log        *logger.Logger
	fetchLimit int
	now        func() time.Time
}

// Option configura el caso de uso.
type Option func(*UseCase)

// WithExporter registra el exportador de un formato.
func WithExporter(f Format, e Exporter) Option {
	return func(uc *UseCase) { uc.exporters[f] = e }
}

// WithFetchLimit máximo de registros leídos por colección.
func WithFetchLimit(n int) Option {
	return func(uc *UseCase) {
		if n > 0 {
			uc.fetchLimit = n
		}
	}
}

// WithClock reemplaza el reloj (tests y CLI con --today).
func WithClock(now func() time.Time) Option {
	return func(uc *UseCase) { uc.now = now }
}

// NewUseCase construye el caso de uso.
func NewUseCase(sources repository.ReportSources, engine metrics.Config, log *logger.Logger, opts ...Option) *UseCase {
	if log == nil {
		log = logger.Nop()
	}
	uc := &UseCase{
		sources:    sources,
		engine:     engine,
		exporters:  map[Format]Exporter{},
		log:        log.Named("reports"),
		fetchLimit: defaultFetchLimit,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Generate arma el resumen de métricas pedido. Solo falla ante parámetros inválidos o si el
// contexto se cancela; las fuentes que no responden se reportan como datos degradados.
func (uc *UseCase) Generate(ctx context.Context, req dto.ReportRequest) (*metrics.Summary, error) {
	rt, ok := metrics.ParseReportType(req.Type)
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownReportType, req.Type)
	}
	period, err := uc.periodRequest(req)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	resolution := uc.engine.Resolve(period, now)
	if resolution.Warning != "" {
		uc.log.Warn().Str("period", req.Period).Msg(resolution.Warning)
	}

	snap, err := uc.fetch(ctx, req.BranchID)
	if err != nil {
		return nil, err
	}

	sum := uc.engine.Assemble(rt, resolution, snap, now)
	for _, w := range sum.Warnings {
		if w != resolution.Warning {
			uc.log.Error().Str("report", string(rt)).Msg(w)
		}
	}
	uc.log.Info().
		Str("report", string(rt)).
		Str("branch_id", req.BranchID).
		Str("period", string(resolution.Name)).
		Bool("degraded", sum.Degraded).
		Int("alerts", len(sum.Alerts)).
		Msg("reporte generado")
	return &sum, nil
}

// Export genera el reporte y lo serializa en el formato pedido.
func (uc *UseCase) Export(ctx context.Context, req dto.ReportRequest) (*dto.ReportFile, error) {
	format, ok := ParseFormat(req.Format)
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownFormat, req.Format)
	}
	exporter, ok := uc.exporters[format]
	if !ok {
		return nil, fmt.Errorf("%w: %q no está habilitado", domain.ErrUnknownFormat, format)
	}

	sum, err := uc.Generate(ctx, req)
	if err != nil {
		return nil, err
	}
	body, err := exporter.Export(*sum)
	if err != nil {
		return nil, fmt.Errorf("reports: exportar %s: %w", format, err)
	}
	return &dto.ReportFile{
		Filename:    Filename(*sum, format),
		ContentType: format.ContentType(),
		Body:        body,
	}, nil
}

func (uc *UseCase) periodRequest(req dto.ReportRequest) (metrics.PeriodRequest, error) {
	out := metrics.PeriodRequest{Name: req.Period}
	if req.StartDate == "" && req.EndDate == "" {
		return out, nil
	}
	if req.StartDate == "" || req.EndDate == "" {
		return out, fmt.Errorf("%w: start_date y end_date deben indicarse juntos", domain.ErrInvalidPeriod)
	}
	loc := uc.engine.Location
	if loc == nil {
		loc = time.UTC
	}
	start, err := time.ParseInLocation(dateLayout, strings.TrimSpace(req.StartDate), loc)
	if err != nil {
		return out, fmt.Errorf("%w: start_date %q no es YYYY-MM-DD", domain.ErrInvalidPeriod, req.StartDate)
	}
	end, err := time.ParseInLocation(dateLayout, strings.TrimSpace(req.EndDate), loc)
	if err != nil {
		return out, fmt.Errorf("%w: end_date %q no es YYYY-MM-DD", domain.ErrInvalidPeriod, req.EndDate)
	}
	if end.Before(start) {
		return out, fmt.Errorf("%w: start_date %s es posterior a end_date %s", domain.ErrInvalidPeriod, req.StartDate, req.EndDate)
	}
	out.Start, out.End = start, end
	return out, nil
}

// fetch lee las cuatro colecciones en paralelo. Un fallo no cancela a las demás: la
// colección queda vacía y marcada como fallida. Si una lectura devuelve tantas filas como
// el límite configurado se marca como truncada.
func (uc *UseCase) fetch(ctx context.Context, branchID string) (metrics.Snapshot, error) {
	filter := repository.Filter{BranchID: branchID, Limit: uc.fetchLimit}

	var (
		mu                                 sync.Mutex
		rooms, reservations, guests, items []record.Raw
		snap                               metrics.Snapshot
		g                                  errgroup.Group
	)
	load := func(name string, failed, truncated *bool, dst *[]record.Raw, fn func() ([]record.Raw, error)) {
		g.Go(func() error {
			raws, err := fn()
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				*failed = true
				uc.log.Warn().Err(err).Str("collection", name).Str("branch_id", branchID).Msg("no se pudo cargar la colección")
				return nil
			}
			if uc.fetchLimit > 0 && len(raws) >= uc.fetchLimit {
				*truncated = true
				uc.log.Warn().Str("collection", name).Str("branch_id", branchID).Int("limit", uc.fetchLimit).Msg("la colección alcanzó el límite de registros")
			}
			*dst = raws
			return nil
		})
	}

	load("rooms", &snap.RoomsFailed, &snap.RoomsTruncated, &rooms, func() ([]record.Raw, error) {
		if uc.sources.Rooms == nil {
			return nil, domain.ErrFetchFailed
		}
		return uc.sources.Rooms.ListRooms(ctx, filter)
	})
	load("reservations", &snap.ReservationsFailed, &snap.ReservationsTruncated, &reservations, func() ([]record.Raw, error) {
		if uc.sources.Reservations == nil {
			return nil, domain.ErrFetchFailed
		}
		return uc.sources.Reservations.ListReservations(ctx, repository.ReservationFilter{Filter: filter})
	})
	load("guests", &snap.GuestsFailed, &snap.GuestsTruncated, &guests, func() ([]record.Raw, error) {
		if uc.sources.Guests == nil {
			return nil, domain.ErrFetchFailed
		}
		return uc.sources.Guests.ListGuests(ctx, filter)
	})
	load("inventory", &snap.ItemsFailed, &snap.ItemsTruncated, &items, func() ([]record.Raw, error) {
		if uc.sources.Inventory == nil {
			return nil, domain.ErrFetchFailed
		}
		return uc.sources.Inventory.ListInventoryItems(ctx, filter)
	})
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return metrics.Snapshot{}, fmt.Errorf("reports: %w", err)
	}

	n := uc.engine.Normalizer()
	snap.Rooms = n.Rooms(rooms)
	snap.Reservations = n.Reservations(reservations)
	snap.Guests = n.Guests(guests)
	snap.Items = n.InventoryItems(items)
	return snap, nil
}
