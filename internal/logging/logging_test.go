package logging

import (
	"errors"
	"os"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNewOperationErrorNil(t *testing.T) {
	if err := NewOperationError("upload.save", "req-1", nil); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}

func TestOperationErrorMessageAndUnwrap(t *testing.T) {
	cause := os.ErrNotExist
	err := NewOperationError("upload.save", "req-1", cause)

	if got, want := err.Error(), "upload.save [req-1]: "+cause.Error(); got != want {
		t.Fatalf("unexpected message %q, want %q", got, want)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatal("expected errors.Is to reach the cause")
	}

	var opErr *OperationError
	if !errors.As(err, &opErr) {
		t.Fatalf("expected OperationError, got %T", err)
	}
	if opErr.Operation != "upload.save" {
		t.Fatalf("unexpected operation: %s", opErr.Operation)
	}

	fields := opErr.Fields()
	if len(fields) != 2 || fields[0].Key != "failed_step" || fields[0].String != "upload.save" {
		t.Fatalf("unexpected fields: %+v", fields)
	}
}

func TestOperationErrorWithoutRequestID(t *testing.T) {
	err := NewOperationError("model.load", "", errors.New("boom"))
	if got := err.Error(); got != "model.load: boom" {
		t.Fatalf("unexpected message: %q", got)
	}
}

func TestNewLoggerLevel(t *testing.T) {
	logger, err := NewLogger("debug")
	if err != nil {
		t.Fatalf("failed to build logger: %v", err)
	}
	if !logger.Core().Enabled(zapcore.DebugLevel) {
		t.Fatal("expected debug level to be enabled")
	}

	logger, err = NewLogger("nonsense")
	if err != nil {
		t.Fatalf("failed to build logger: %v", err)
	}
	if logger.Core().Enabled(zapcore.DebugLevel) {
		t.Fatal("expected unknown level to fall back to info")
	}
}

func TestWithOperationKeepsLoggerUsable(t *testing.T) {
	logger := WithOperation(zap.NewNop(), "handlers.upload", "req-2")
	logger.Info("still works")
}
