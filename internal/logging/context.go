package logging

import (
	"context"

	"github.com/google/uuid"
)

// FieldCorrelationID is the standardized structured key for request
// correlation identifiers.
const FieldCorrelationID = "correlation_id"

type correlationIDKey struct{}

// WithCorrelationID stamps the context with a correlation id, generating a
// fresh one when id is empty.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	if id == "" {
		id = uuid.NewString()
	}
	return context.WithValue(ctx, correlationIDKey{}, id)
}

// CorrelationIDFromContext extracts a correlation id stamped with
// WithCorrelationID.
func CorrelationIDFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	id, ok := ctx.Value(correlationIDKey{}).(string)
	return id, ok && id != ""
}

// ContextFields builds a structured payload from context-carried identifiers,
// ready to merge into a channel emission.
func ContextFields(ctx context.Context) Fields {
	fields := Fields{}
	if id, ok := CorrelationIDFromContext(ctx); ok {
		fields[FieldCorrelationID] = id
	}
	return fields
}
