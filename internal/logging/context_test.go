package logging

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

func TestWithCorrelationIDGeneratesWhenEmpty(t *testing.T) {
	ctx := WithCorrelationID(context.Background(), "")
	id, ok := CorrelationIDFromContext(ctx)
	if !ok {
		t.Fatal("generated id not found on context")
	}
	if _, err := uuid.Parse(id); err != nil {
		t.Fatalf("generated id %q is not a UUID: %v", id, err)
	}
}

func TestWithCorrelationIDKeepsCallerValue(t *testing.T) {
	ctx := WithCorrelationID(context.Background(), "req-42")
	if id, ok := CorrelationIDFromContext(ctx); !ok || id != "req-42" {
		t.Fatalf("got %q (ok=%v), want req-42", id, ok)
	}
}

func TestCorrelationIDFromBareContext(t *testing.T) {
	if id, ok := CorrelationIDFromContext(context.Background()); ok {
		t.Fatalf("unexpected id %q on a bare context", id)
	}
	if _, ok := CorrelationIDFromContext(nil); ok {
		t.Fatal("nil context must not carry an id")
	}
}

func TestContextFieldsFlowIntoRecords(t *testing.T) {
	rt, buf := newJSONRuntime(t, Settings{DefaultLevel: "info"})
	ctx := WithCorrelationID(context.Background(), "req-42")
	fields := ContextFields(ctx)
	fields[FieldMessage] = "handling request"
	rt.UseChannel("MAIN").InfoFields(fields)

	record := decodeRecords(t, buf)[0]
	if record[FieldCorrelationID] != "req-42" {
		t.Errorf("correlation_id = %v", record[FieldCorrelationID])
	}
	if record["message"] != "handling request" {
		t.Errorf("message = %v", record["message"])
	}
}

func TestContextFieldsEmptyWithoutID(t *testing.T) {
	fields := ContextFields(context.Background())
	if len(fields) != 0 {
		t.Fatalf("expected no fields, got %v", fields)
	}
}
