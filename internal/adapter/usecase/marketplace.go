package usecase

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"adsmarket/internal/core/domain"
	"adsmarket/internal/core/port"
)

var (
	_ port.CampaignUseCase  = (*Marketplace)(nil)
	_ port.PlatformUseCase  = (*Marketplace)(nil)
	_ port.PlacementUseCase = (*Marketplace)(nil)
)

// Marketplace implements every marketplace command. Each command runs in
// exactly one store transaction: validation, the state-machine check and
// every side effect (spend, counters, cascades) commit together or not at
// all. Marketplace itself holds no mutable state and is safe for concurrent
// use; concurrency control is delegated to the store's version checks.
type Marketplace struct {
	store port.Store
	clock port.Clock
	log   *slog.Logger

	tracer     trace.Tracer
	moderation ModerationWorkflow
	budget     BudgetTracker
	counters   CounterSync
	booking    BookingValidator
}

// NewMarketplace wires the use cases to a store. A nil clock falls back to
// the system clock and a nil logger to slog.Default.
func NewMarketplace(store port.Store, clock port.Clock, log *slog.Logger) *Marketplace {
	if clock == nil {
		clock = port.SystemClock{}
	}
	if log == nil {
		log = slog.Default()
	}
	return &Marketplace{
		store:  store,
		clock:  clock,
		log:    log,
		tracer: otel.Tracer("adsmarket/usecase"),
	}
}

// span starts a span for one command. The returned func ends it and records
// err when non-nil; callers defer it with a pointer to their named error.
func (m *Marketplace) span(ctx context.Context, name string, p domain.Principal, attrs ...attribute.KeyValue) (context.Context, func(*error)) {
	attrs = append(attrs, attribute.String("principal.id", p.ID.String()))
	ctx, span := m.tracer.Start(ctx, name, trace.WithAttributes(attrs...))
	return ctx, func(errp *error) {
		if err := *errp; err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, string(domain.KindOf(err)))
			m.log.DebugContext(ctx, "command rejected",
				slog.String("command", name),
				slog.String("kind", string(domain.KindOf(err))),
				slog.Any("error", err))
		}
		span.End()
	}
}

func idAttr(key string, id uuid.UUID) attribute.KeyValue {
	return attribute.String(key, id.String())
}

// checkVersion compares a client-supplied version with the stored one. Zero
// means the client did not pin a version.
func checkVersion(kind domain.EntityKind, id uuid.UUID, stored, expected int64) error {
	if expected != 0 && expected != stored {
		return domain.ConcurrentModification(kind, id, nil)
	}
	return nil
}

func requireIdentity(p domain.Principal) error {
	if p.ID == uuid.Nil {
		return domain.Unauthorized("an authenticated principal is required")
	}
	return nil
}
