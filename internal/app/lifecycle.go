package app

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/example/hive/internal/core/lifecycle"
	"github.com/example/hive/internal/ctxutil"
	"github.com/example/hive/internal/metrics"
	"github.com/example/hive/internal/ports/secondary"
)

// ServiceOption configures optional service collaborators.
type ServiceOption func(*serviceOptions)

type serviceOptions struct {
	logger  *zerolog.Logger
	metrics *metrics.Recorder
}

// WithLogger sets the logger used by a service.
func WithLogger(logger zerolog.Logger) ServiceOption {
	return func(o *serviceOptions) {
		o.logger = &logger
	}
}

// WithMetrics sets the recorder that counts service operations.
func WithMetrics(m *metrics.Recorder) ServiceOption {
	return func(o *serviceOptions) {
		o.metrics = m
	}
}

func buildOptions(component string, opts []ServiceOption) serviceOptions {
	o := serviceOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		l := log.Logger
		o.logger = &l
	}
	scoped := o.logger.With().Str("component", component).Logger()
	o.logger = &scoped
	return o
}

// checkDependencies rejects a missing store or user context.
func checkDependencies(store secondary.StoreContext, user secondary.UserContext) error {
	if store == nil {
		return fmt.Errorf("%w: store context is required", lifecycle.ErrInvalidArgument)
	}
	if user == nil {
		return fmt.Errorf("%w: user context is required", lifecycle.ErrInvalidArgument)
	}
	return nil
}

// entityLifecycle implements the create, update, status and purge rules shared by
// hives and sections, parameterised over the stored record type R.
type entityLifecycle[R any] struct {
	entity     string
	collection func() secondary.Collection[R]
	codeOf     func(*R) string
	deletedOf  func(*R) bool

	store   secondary.StoreContext
	user    secondary.UserContext
	logger  zerolog.Logger
	metrics *metrics.Recorder
}

func (l *entityLifecycle[R]) list(ctx context.Context) (records []*R, err error) {
	defer func() { l.metrics.Observe(l.entity, "list", err) }()

	records, err = l.collection().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list %ss: %w", l.entity, err)
	}
	return records, nil
}

func (l *entityLifecycle[R]) get(ctx context.Context, id int) (record *R, err error) {
	defer func() { l.metrics.Observe(l.entity, "get", err) }()
	return l.find(ctx, id)
}

// find loads a record and fails with ErrNotFound when it does not exist.
func (l *entityLifecycle[R]) find(ctx context.Context, id int) (*R, error) {
	record, err := l.collection().GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", l.entity, err)
	}

	result := lifecycle.CanAccess(lifecycle.ExistsContext{
		Entity: l.entity,
		ID:     id,
		Exists: record != nil,
	})
	if err := result.Error(); err != nil {
		l.logger.Debug().Int("id", id).Msg(result.Reason)
		return nil, err
	}
	return record, nil
}

func (l *entityLifecycle[R]) create(ctx context.Context, record *R) (created *R, err error) {
	defer func() { l.metrics.Observe(l.entity, "create", err) }()

	code := l.codeOf(record)
	holder, taken, err := l.collection().FindIDByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to check code uniqueness: %w", err)
	}

	// Evaluate guard
	result := lifecycle.CanCreate(lifecycle.CreateContext{
		Entity:     l.entity,
		Code:       code,
		CodeHolder: holder,
		CodeTaken:  taken,
	})
	if err := result.Error(); err != nil {
		l.logger.Debug().Str("code", code).Msg(result.Reason)
		return nil, err
	}

	id, err := l.collection().Create(ctx, record)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", l.entity, err)
	}

	// Fetch created record
	created, err = l.collection().GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch created %s: %w", l.entity, err)
	}
	if created == nil {
		return nil, fmt.Errorf("created %s %d vanished before it could be read", l.entity, id)
	}

	actor := l.actor(ctx)
	l.logger.Info().Int("id", id).Str("code", code).Str("actor", actor).Msgf("%s created", l.entity)
	l.audit(ctx, actor, func(ctx context.Context, w secondary.LogWriter) error {
		return w.LogCreate(ctx, l.entity, id)
	})
	return created, nil
}

// update applies a change to an existing record. newCode is the code the change
// will set; apply must not touch the ID or any owner reference.
func (l *entityLifecycle[R]) update(ctx context.Context, id int, newCode string, apply func(*R)) (updated *R, err error) {
	defer func() { l.metrics.Observe(l.entity, "update", err) }()

	existing, err := l.find(ctx, id)
	if err != nil {
		return nil, err
	}

	guardCtx := lifecycle.UpdateContext{
		Entity:      l.entity,
		ID:          id,
		CurrentCode: l.codeOf(existing),
		NewCode:     newCode,
	}
	if guardCtx.CodeChanged() {
		guardCtx.CodeHolder, guardCtx.CodeTaken, err = l.collection().FindIDByCode(ctx, newCode)
		if err != nil {
			return nil, fmt.Errorf("failed to check code uniqueness: %w", err)
		}
	}

	// Evaluate guard
	result := lifecycle.CanUpdate(guardCtx)
	if err := result.Error(); err != nil {
		l.logger.Debug().Int("id", id).Str("code", newCode).Msg(result.Reason)
		return nil, err
	}

	apply(existing)
	if err := l.collection().Update(ctx, existing); err != nil {
		return nil, fmt.Errorf("failed to update %s: %w", l.entity, err)
	}

	updated, err = l.collection().GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch updated %s: %w", l.entity, err)
	}
	if updated == nil {
		return nil, fmt.Errorf("updated %s %d vanished before it could be read", l.entity, id)
	}

	actor := l.actor(ctx)
	l.logger.Info().Int("id", id).Str("code", newCode).Str("actor", actor).Msgf("%s updated", l.entity)
	if guardCtx.CodeChanged() {
		l.audit(ctx, actor, func(ctx context.Context, w secondary.LogWriter) error {
			return w.LogUpdate(ctx, l.entity, id, "code", guardCtx.CurrentCode, newCode)
		})
	}
	return updated, nil
}

// setStatus sets the soft-delete flag. Repeating the current value is not an error.
func (l *entityLifecycle[R]) setStatus(ctx context.Context, id int, isDeleted bool) (err error) {
	defer func() { l.metrics.Observe(l.entity, "set_status", err) }()

	existing, err := l.find(ctx, id)
	if err != nil {
		return err
	}

	from := lifecycle.StateOf(l.deletedOf(existing))
	to := lifecycle.Transition(from, lifecycle.EventForStatus(isDeleted))

	actor := l.actor(ctx)
	if err := l.collection().SetStatus(ctx, id, to.IsDeleted(), actor); err != nil {
		return fmt.Errorf("failed to set %s status: %w", l.entity, err)
	}

	l.logger.Info().Int("id", id).Str("from", string(from)).Str("to", string(to)).Str("actor", actor).Msgf("%s status set", l.entity)
	if from != to {
		l.audit(ctx, actor, func(ctx context.Context, w secondary.LogWriter) error {
			return w.LogUpdate(ctx, l.entity, id, "is_deleted", fmt.Sprint(from.IsDeleted()), fmt.Sprint(to.IsDeleted()))
		})
	}
	return nil
}

// purge physically removes a record that has already been soft-deleted.
func (l *entityLifecycle[R]) purge(ctx context.Context, id int) (err error) {
	defer func() { l.metrics.Observe(l.entity, "delete", err) }()

	existing, err := l.find(ctx, id)
	if err != nil {
		return err
	}

	// Evaluate guard
	result := lifecycle.CanPurge(lifecycle.PurgeContext{
		Entity:    l.entity,
		ID:        id,
		IsDeleted: l.deletedOf(existing),
	})
	if err := result.Error(); err != nil {
		l.logger.Debug().Int("id", id).Msg(result.Reason)
		return err
	}

	if err := l.collection().Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete %s: %w", l.entity, err)
	}

	actor := l.actor(ctx)
	l.logger.Info().Int("id", id).Str("actor", actor).Msgf("%s purged", l.entity)
	l.audit(ctx, actor, func(ctx context.Context, w secondary.LogWriter) error {
		return w.LogDelete(ctx, l.entity, id)
	})
	return nil
}

func (l *entityLifecycle[R]) actor(ctx context.Context) string {
	return l.user.UserID(ctx)
}

// audit writes a change entry. The mutation is already committed, so a failed
// write is logged and not returned.
func (l *entityLifecycle[R]) audit(ctx context.Context, actor string, write func(context.Context, secondary.LogWriter) error) {
	w := l.store.AuditLog()
	if w == nil {
		return
	}
	if err := write(ctxutil.WithActorID(ctx, actor), w); err != nil {
		l.logger.Warn().Err(err).Msg("failed to write audit entry")
	}
}
