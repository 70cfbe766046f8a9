package commands

import (
	"context"
	"errors"
	"testing"
	"time"

	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/go-docx-markdown/internal/logging"
)

type testMessage struct{ Path string }

func (testMessage) Type() string { return "docxmd.test.message" }

func (testMessage) Validate() error { return nil }

type invalidMessage struct{}

func (invalidMessage) Type() string { return "docxmd.test.invalid" }

func (invalidMessage) Validate() error { return errors.New("invalid") }

func TestHandlerExecuteSuccess(t *testing.T) {
	called := false
	h := NewHandler(func(ctx context.Context, msg testMessage) error {
		called = true
		return nil
	})

	if err := h.Execute(context.Background(), testMessage{}); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if !called {
		t.Fatal("expected handler to be invoked")
	}
}

func TestHandlerValidationShortCircuitsExecution(t *testing.T) {
	called := false
	h := NewHandler(func(ctx context.Context, msg invalidMessage) error {
		called = true
		return nil
	})

	err := h.Execute(context.Background(), invalidMessage{})
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category, got %v", err)
	}
	if called {
		t.Fatal("expected handler not to run when validation fails")
	}
}

func TestHandlerContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	h := NewHandler(func(ctx context.Context, msg testMessage) error {
		called = true
		return nil
	})

	err := h.Execute(ctx, testMessage{})
	if !goerrors.IsCategory(err, goerrors.CategoryCommand) {
		t.Fatalf("expected command category, got %v", err)
	}
	if called {
		t.Fatal("expected handler not to run when context is cancelled")
	}
}

func TestHandlerWrapsExecutionError(t *testing.T) {
	h := NewHandler(func(ctx context.Context, msg testMessage) error {
		return errors.New("boom")
	})

	err := h.Execute(context.Background(), testMessage{})
	if !goerrors.IsCategory(err, goerrors.CategoryCommand) {
		t.Fatalf("expected command category, got %v", err)
	}
}

func TestHandlerKeepsCategorizedErrors(t *testing.T) {
	inner := goerrors.Wrap(errors.New("bad json"), goerrors.CategoryValidation, "decode failed")
	h := NewHandler(func(ctx context.Context, msg testMessage) error {
		return inner
	})

	err := h.Execute(context.Background(), testMessage{})
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected original validation category, got %v", err)
	}
}

func TestHandlerHonoursTimeoutOption(t *testing.T) {
	h := NewHandler(func(ctx context.Context, msg testMessage) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(200 * time.Millisecond):
			return nil
		}
	}, WithTimeout[testMessage](10*time.Millisecond))

	err := h.Execute(context.Background(), testMessage{})
	if !goerrors.IsCategory(err, goerrors.CategoryCommand) {
		t.Fatalf("expected command category for timeout, got %v", err)
	}
}

func TestHandlerStoresLogFieldsOnContext(t *testing.T) {
	var fields map[string]any
	var deadline bool
	h := NewHandler(func(ctx context.Context, msg testMessage) error {
		fields = logging.ContextFields(ctx)
		_, deadline = ctx.Deadline()
		return nil
	},
		WithOperation[testMessage]("render.document"),
		WithMessageFields(func(msg testMessage) map[string]any {
			return map[string]any{"input_path": msg.Path}
		}),
	)

	var nilCtx context.Context
	if err := h.Execute(nilCtx, testMessage{Path: "doc.json"}); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if fields["command"] != "docxmd.test.message" || fields["operation"] != "render.document" || fields["input_path"] != "doc.json" {
		t.Fatalf("unexpected context fields %v", fields)
	}
	if !deadline {
		t.Fatal("expected the default timeout to set a deadline")
	}

	h = NewHandler(func(ctx context.Context, msg testMessage) error {
		_, deadline = ctx.Deadline()
		return nil
	}, WithTimeout[testMessage](0))
	if err := h.Execute(context.Background(), testMessage{}); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if deadline {
		t.Fatal("expected no deadline when the timeout is disabled")
	}
}

func TestHandlerTelemetryReceivesMessageFields(t *testing.T) {
	var got TelemetryInfo
	h := NewHandler(func(ctx context.Context, msg testMessage) error {
		return nil
	},
		WithOperation[testMessage]("render.document"),
		WithMessageFields(func(msg testMessage) map[string]any {
			return map[string]any{"input_path": msg.Path}
		}),
		WithTelemetry[testMessage](func(_ context.Context, _ testMessage, info TelemetryInfo) {
			got = info
		}),
	)

	if err := h.Execute(context.Background(), testMessage{Path: "doc.json"}); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if got.Status != TelemetryStatusSuccess {
		t.Fatalf("expected success status, got %s", got.Status)
	}
	if got.Command != "docxmd.test.message" || got.Operation != "render.document" {
		t.Fatalf("unexpected telemetry %+v", got)
	}
	if got.Fields["input_path"] != "doc.json" {
		t.Fatalf("expected message fields, got %v", got.Fields)
	}
}

func TestHandlerTelemetryFailureStatus(t *testing.T) {
	var status TelemetryStatus
	h := NewHandler(func(ctx context.Context, msg testMessage) error {
		return errors.New("write failed")
	}, WithTelemetry[testMessage](func(_ context.Context, _ testMessage, info TelemetryInfo) {
		status = info.Status
	}))

	_ = h.Execute(context.Background(), testMessage{})
	if status != TelemetryStatusFailed {
		t.Fatalf("expected failed status, got %s", status)
	}
}
