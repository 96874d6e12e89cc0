package infra

import (
	"errors"
	"log/slog"

	"cart-discount-preview/internal/pkg/errs"
)

type PlatformErrorKind string

type PlatformError struct {
	Kind      PlatformErrorKind
	Operation string
	msg       string
	err       error // wrapped low-level error
}

func (e PlatformError) Error() string {
	prefix := string(e.Kind) + ": " + e.Operation + ": " + e.msg
	if e.err != nil {
		return prefix + ": " + e.err.Error()
	}
	return prefix
}

func (e PlatformError) Unwrap() error {
	return e.err
}

// WrapPlatformErr logs and wraps a failed platform call. Every kind except
// NOT_FOUND is also marked as a collaborator failure.
func WrapPlatformErr(slogger *slog.Logger, kind PlatformErrorKind, op, msg string, err error) error {
	logArgs := []any{
		slog.String("kind", string(kind)),
		slog.String("operation", op),
	}
	if err != nil {
		logArgs = append(logArgs, slog.String("error", err.Error()))
	}

	if kind == KindNotFound {
		slogger.Warn("Platform lookup miss: "+msg, logArgs...)
	} else {
		slogger.Error("Platform error: "+msg, logArgs...)
	}

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	var out error = PlatformError{Kind: kind, Operation: op, msg: msg, err: err}
	if kind != KindNotFound {
		out = errs.Mark(out, errs.ErrCollaboratorFailure)
	}
	return out
}

func IsKind(err error, kind PlatformErrorKind) bool {
	var e PlatformError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// Infrastructure-specific error kinds
const (
	KindNotFound        PlatformErrorKind = "NOT_FOUND"
	KindPlatformFailure PlatformErrorKind = "PLATFORM_FAILURE"
	KindDecodeFailure   PlatformErrorKind = "DECODE_FAILURE"
	KindCircuitOpen     PlatformErrorKind = "CIRCUIT_OPEN"
)
