package grpc

import (
	"context"
	"testing"

	"github.com/litetable/litetable-go/internal/litetable"
	"github.com/litetable/litetable-go/internal/rpc"
	"github.com/litetable/litetable-go/internal/store"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestLt_Delete(t *testing.T) {
	users := litetable.NewTableName("", "users")
	del := store.NewDelete([]byte("2001")).AddColumns([]byte("info"), []byte("age"))

	tests := map[string]struct {
		request         *rpc.DeleteRequest
		mockSetup       func(m *Mockbackend)
		expectedCode    codes.Code
		expectedMessage string
	}{
		"missing delete": {
			request:         &rpc.DeleteRequest{Table: users},
			expectedCode:    codes.InvalidArgument,
			expectedMessage: "delete required",
		},
		"table not found": {
			request: &rpc.DeleteRequest{Table: users, Delete: del},
			mockSetup: func(m *Mockbackend) {
				m.EXPECT().
					Delete(gomock.Any(), users, del).
					Return(store.ErrTableNotFound)
			},
			expectedCode:    codes.NotFound,
			expectedMessage: "table not found",
		},
		"successful delete": {
			request: &rpc.DeleteRequest{Table: users, Delete: del},
			mockSetup: func(m *Mockbackend) {
				m.EXPECT().
					Delete(gomock.Any(), users, del).
					Return(nil)
			},
			expectedCode: codes.OK,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			req := require.New(t)

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockBackend := NewMockbackend(ctrl)
			if tc.mockSetup != nil {
				tc.mockSetup(mockBackend)
			}

			svc := &lt{
				backend: mockBackend,
			}

			resp, err := svc.Delete(context.Background(), tc.request)
			if tc.expectedCode == codes.OK {
				req.NoError(err)
				req.NotNil(resp)
				return
			}
			req.Error(err)
			st, ok := status.FromError(err)
			req.True(ok)
			req.Equal(tc.expectedCode, st.Code())
			req.Contains(st.Message(), tc.expectedMessage)
		})
	}
}

func TestLt_DeleteTable(t *testing.T) {
	users := litetable.NewTableName("", "users")
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	m := NewMockbackend(ctrl)
	m.EXPECT().DeleteTable(ctx, users).Return(store.ErrTableEnabled)

	_, err := (&lt{backend: m}).DeleteTable(ctx, &rpc.TableRequest{Table: users})
	require.Equal(t, codes.FailedPrecondition, status.Code(err))
}
