package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/tair/expense-tracker/internal/user/domain"
)

var tracer = otel.Tracer("user-repository")

// TracingUserRepository wraps a write repository with OpenTelemetry spans
type TracingUserRepository struct {
	inner domain.UserRepository
}

// NewTracingUserRepository decorates a write repository with tracing
func NewTracingUserRepository(inner domain.UserRepository) *TracingUserRepository {
	return &TracingUserRepository{inner: inner}
}

// Save with tracing
func (r *TracingUserRepository) Save(ctx context.Context, user *domain.User) error {
	ctx, span := tracer.Start(ctx, "repository.Save",
		trace.WithAttributes(
			attribute.String("user.id", user.ID().String()),
			attribute.String("user.email", user.Email().String()),
		),
	)
	defer span.End()

	return recordSpanErr(span, r.inner.Save(ctx, user))
}

// Update with tracing
func (r *TracingUserRepository) Update(ctx context.Context, user *domain.User) error {
	ctx, span := tracer.Start(ctx, "repository.Update",
		trace.WithAttributes(
			attribute.String("user.id", user.ID().String()),
		),
	)
	defer span.End()

	return recordSpanErr(span, r.inner.Update(ctx, user))
}

// Delete with tracing
func (r *TracingUserRepository) Delete(ctx context.Context, id domain.UserID) error {
	ctx, span := tracer.Start(ctx, "repository.Delete",
		trace.WithAttributes(
			attribute.String("user.id", id.String()),
		),
	)
	defer span.End()

	return recordSpanErr(span, r.inner.Delete(ctx, id))
}

// ExistsByEmail with tracing
func (r *TracingUserRepository) ExistsByEmail(ctx context.Context, email domain.Email) (bool, error) {
	ctx, span := tracer.Start(ctx, "repository.ExistsByEmail",
		trace.WithAttributes(
			attribute.String("user.email", email.String()),
		),
	)
	defer span.End()

	exists, err := r.inner.ExistsByEmail(ctx, email)
	if err != nil {
		return false, recordSpanErr(span, err)
	}
	span.SetAttributes(attribute.Bool("result.exists", exists))
	return exists, nil
}

// ExistsByID with tracing
func (r *TracingUserRepository) ExistsByID(ctx context.Context, id domain.UserID) (bool, error) {
	ctx, span := tracer.Start(ctx, "repository.ExistsByID",
		trace.WithAttributes(
			attribute.String("user.id", id.String()),
		),
	)
	defer span.End()

	exists, err := r.inner.ExistsByID(ctx, id)
	if err != nil {
		return false, recordSpanErr(span, err)
	}
	span.SetAttributes(attribute.Bool("result.exists", exists))
	return exists, nil
}

func recordSpanErr(span trace.Span, err error) error {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}
