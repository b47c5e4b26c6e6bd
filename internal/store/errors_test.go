package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewError(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		kind     Kind
		err      error
		wantKind Kind
		wantMsg  string
		wantNil  bool
	}{
		"nil error stays nil": {
			kind:    KindDataOperation,
			wantNil: true,
		},
		"plain error takes the kind": {
			kind:     KindSchemaOperation,
			err:      ErrTableExists,
			wantKind: KindSchemaOperation,
			wantMsg:  "schema createTable: table already exists",
		},
		"unkinded error takes the kind": {
			kind:     KindDataOperation,
			err:      Errorf(KindUnknown, "", ErrTableDisabled, "%s", "default:users"),
			wantKind: KindDataOperation,
			wantMsg:  "data createTable: table is disabled: default:users",
		},
		"typed error keeps its kind": {
			kind:     KindDataOperation,
			err:      &Error{Kind: KindConnectivity, Err: ErrConnectionClosed},
			wantKind: KindConnectivity,
			wantMsg:  "connectivity createTable: connection closed",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			req := require.New(t)
			err := NewError(tc.kind, "createTable", tc.err)
			if tc.wantNil {
				req.NoError(err)
				return
			}
			req.Equal(tc.wantKind, KindOf(err))
			req.Equal(tc.wantMsg, err.Error())
		})
	}
}

func TestErrorf(t *testing.T) {
	t.Parallel()
	req := require.New(t)

	err := Errorf(KindPrecondition, "deleteTable", ErrTableNotFound, "table %s", "default:users")
	req.ErrorIs(err, ErrTableNotFound)
	req.True(IsKind(err, KindPrecondition))

	wrapped := fmt.Errorf("outer: %w", err)
	req.ErrorIs(wrapped, ErrTableNotFound)
	req.Equal(KindPrecondition, KindOf(wrapped))

	var se *Error
	req.True(errors.As(wrapped, &se))
	req.Equal("deleteTable", se.Op)
	req.Equal(KindUnknown, KindOf(errors.New("plain")))

	bare := Errorf(KindUnknown, "", ErrScannerNotFound, "%s", "abc")
	req.Equal("scanner not found: abc", bare.Error())
	req.Equal(KindUnknown, KindOf(bare))
}
