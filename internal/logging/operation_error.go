package logging

import "go.uber.org/zap"

// OperationError records which step of a request failed and why.
type OperationError struct {
	Operation string
	RequestID string
	Err       error
}

func (e *OperationError) Error() string {
	if e.RequestID == "" {
		return e.Operation + ": " + e.Err.Error()
	}
	return e.Operation + " [" + e.RequestID + "]: " + e.Err.Error()
}

func (e *OperationError) Unwrap() error {
	return e.Err
}

// Fields describes the failure for a zap log entry.
func (e *OperationError) Fields() []zap.Field {
	return []zap.Field{
		zap.String("failed_step", e.Operation),
		zap.Error(e.Err),
	}
}

// NewOperationError wraps err with the failing step; a nil err stays nil.
func NewOperationError(operation, requestID string, err error) error {
	if err == nil {
		return nil
	}
	return &OperationError{Operation: operation, RequestID: requestID, Err: err}
}
