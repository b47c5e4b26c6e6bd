package rpc

import (
	"context"
	"errors"

	"github.com/litetable/litetable-go/internal/store"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ErrorDomain marks ErrorInfo details produced by the Store service.
const ErrorDomain = "store.litetable"

type mapping struct {
	err    error
	code   codes.Code
	reason string
}

var mappings = []mapping{
	{store.ErrConnectionClosed, codes.Unavailable, "CONNECTION_CLOSED"},
	{store.ErrUnavailable, codes.Unavailable, "UNAVAILABLE"},
	{store.ErrHandleClosed, codes.FailedPrecondition, "HANDLE_CLOSED"},
	{store.ErrNamespaceExists, codes.AlreadyExists, "NAMESPACE_EXISTS"},
	{store.ErrNamespaceNotFound, codes.NotFound, "NAMESPACE_NOT_FOUND"},
	{store.ErrTableExists, codes.AlreadyExists, "TABLE_EXISTS"},
	{store.ErrTableNotFound, codes.NotFound, "TABLE_NOT_FOUND"},
	{store.ErrTableDisabled, codes.FailedPrecondition, "TABLE_DISABLED"},
	{store.ErrTableEnabled, codes.FailedPrecondition, "TABLE_ENABLED"},
	{store.ErrFamilyNotFound, codes.NotFound, "FAMILY_NOT_FOUND"},
	{store.ErrNoColumnFamilies, codes.InvalidArgument, "NO_COLUMN_FAMILIES"},
	{store.ErrInvalidArgument, codes.InvalidArgument, "INVALID_ARGUMENT"},
	{store.ErrScannerNotFound, codes.NotFound, "SCANNER_NOT_FOUND"},
}

// Error is a store failure decoded from a gRPC status. It matches its sentinel with errors.Is.
type Error struct {
	err error
	msg string
}

// Error satisfies the error interface
func (e *Error) Error() string {
	return e.msg
}

// Unwrap implements the errors.Unwrap interface for compatibility with errors.Is/As
func (e *Error) Unwrap() error {
	return e.err
}

// ToStatus converts a store error into a gRPC status error carrying the sentinel as an
// ErrorInfo reason.
func ToStatus(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}

	switch {
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	}

	for _, m := range mappings {
		if !errors.Is(err, m.err) {
			continue
		}
		st := status.New(m.code, err.Error())
		detailed, derr := st.WithDetails(&errdetails.ErrorInfo{Reason: m.reason, Domain: ErrorDomain})
		if derr != nil {
			return st.Err()
		}
		return detailed.Err()
	}
	return status.Error(codes.Internal, err.Error())
}

// FromStatus converts a gRPC status error back into a store error. Transport failures come
// back as connectivity errors.
func FromStatus(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	if sentinel := reasonOf(st); sentinel != nil {
		decoded := &Error{err: sentinel, msg: st.Message()}
		if st.Code() == codes.Unavailable {
			return store.NewError(store.KindConnectivity, "", decoded)
		}
		return decoded
	}

	switch st.Code() {
	case codes.Canceled:
		return &Error{err: context.Canceled, msg: st.Message()}
	case codes.DeadlineExceeded:
		return &Error{err: context.DeadlineExceeded, msg: st.Message()}
	case codes.Unavailable:
		return store.NewError(store.KindConnectivity, "", &Error{err: store.ErrUnavailable, msg: st.Message()})
	}
	return err
}

func reasonOf(st *status.Status) error {
	for _, d := range st.Details() {
		info, ok := d.(*errdetails.ErrorInfo)
		if !ok || info.GetDomain() != ErrorDomain {
			continue
		}
		for _, m := range mappings {
			if m.reason == info.GetReason() {
				return m.err
			}
		}
	}
	return nil
}
