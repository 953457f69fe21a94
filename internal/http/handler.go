// Package http serves the storefront pages and the JSON API on top of the
// visitor's session.
package http

import (
	"context"
	"time"

	"github.com/gauravsoni97/preservespecialmoments/internal/domain"
	"github.com/gauravsoni97/preservespecialmoments/internal/events"
	"github.com/gauravsoni97/preservespecialmoments/internal/handoff"
	"github.com/gauravsoni97/preservespecialmoments/internal/pricing"
	"github.com/gauravsoni97/preservespecialmoments/internal/session"
	"github.com/gauravsoni97/preservespecialmoments/pkg/logger"
	"go.uber.org/zap"
)

// CatalogReader is the read-only catalog the handlers browse.
type CatalogReader interface {
	Products() []domain.Product
	Categories() []string
	Filter(category string) []domain.Product
	Product(id int64) (domain.Product, bool)
	Reviews() []domain.Review
}

type SessionService interface {
	Load(ctx context.Context, id string) (*session.Session, error)
	Update(ctx context.Context, id string, fn func(*session.Session) error) (*session.Session, error)
}

type Options struct {
	Catalog   CatalogReader
	Sessions  SessionService
	Events    events.Publisher
	Messenger handoff.Messenger
	Payee     handoff.Payee
	Display   pricing.Display
	Policy    session.Policy
	QRSize    int
	Timeout   time.Duration
	Log       *zap.Logger
	Now       func() time.Time
}

type Handler struct {
	catalog   CatalogReader
	sessions  SessionService
	events    events.Publisher
	messenger handoff.Messenger
	payee     handoff.Payee
	display   pricing.Display
	policy    session.Policy
	qrSize    int
	timeout   time.Duration
	log       *zap.Logger
	now       func() time.Time
	pages     *pages
}

func NewHandler(opts Options) (*Handler, error) {
	h := &Handler{
		catalog:   opts.Catalog,
		sessions:  opts.Sessions,
		events:    opts.Events,
		messenger: opts.Messenger,
		payee:     opts.Payee,
		display:   opts.Display,
		policy:    opts.Policy,
		qrSize:    opts.QRSize,
		timeout:   opts.Timeout,
		log:       opts.Log,
		now:       opts.Now,
	}
	if h.log == nil {
		h.log = zap.NewNop()
	}
	if h.events == nil {
		h.events = events.NewLogPublisher(h.log)
	}
	if h.now == nil {
		h.now = time.Now
	}
	if h.timeout <= 0 {
		h.timeout = 30 * time.Second
	}
	if h.qrSize <= 0 {
		h.qrSize = 256
	}
	if h.policy.DoubleTapWindow <= 0 {
		h.policy.DoubleTapWindow = 300 * time.Millisecond
	}

	p, err := parsePages(h.templateFuncs())
	if err != nil {
		return nil, err
	}
	h.pages = p
	return h, nil
}

func (h *Handler) loadSession(ctx context.Context) (*session.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()
	return h.sessions.Load(ctx, sessionIDFromContext(ctx))
}

func (h *Handler) updateSession(ctx context.Context, fn func(*session.Session) error) (*session.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()
	return h.sessions.Update(ctx, sessionIDFromContext(ctx), fn)
}

func (h *Handler) product(id int64) (domain.Product, error) {
	p, ok := h.catalog.Product(id)
	if !ok {
		return domain.Product{}, errProductNotFound
	}
	return p, nil
}

// publish records a hand-off event. Failures are logged only; the visitor has
// already been handed to the external system.
func (h *Handler) publish(ctx context.Context, t events.Type, sessionID string, payload any) {
	e, err := events.New(t, sessionID, payload, h.now())
	if err != nil {
		logger.FromContext(ctx).Error("failed to build event", zap.String("event_type", string(t)), zap.Error(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()
	if err := h.events.Publish(ctx, e); err != nil {
		logger.FromContext(ctx).Warn("failed to publish event",
			zap.String("event_id", e.ID),
			zap.String("event_type", string(t)),
			zap.Error(err),
		)
	}
}
