package handler

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dtroode/favcities/internal/apierror"
)

func TestHandleError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		in       error
		wantCode codes.Code
		wantMsg  string
		wantAPI  string
	}{
		{
			name:     "api error passthrough",
			in:       apierror.NewErrNoSuchAccount("nobody@x.com"),
			wantCode: codes.NotFound,
			wantMsg:  "user 'nobody@x.com' has not signed up",
			wantAPI:  apierror.CodeNoSuchAccount,
		},
		{
			name:     "wrapped api error",
			in:       fmt.Errorf("login: %w", apierror.NewErrBadCredentials()),
			wantCode: codes.Unauthenticated,
			wantMsg:  "invalid credentials",
			wantAPI:  apierror.CodeBadCredentials,
		},
		{
			name:     "other -> Internal",
			in:       errors.New("boom"),
			wantCode: codes.Internal,
			wantMsg:  "internal server error",
			wantAPI:  apierror.CodeInternal,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := handleError(tt.in)
			st, ok := status.FromError(err)
			assert.True(t, ok)
			assert.Equal(t, tt.wantCode, st.Code())
			assert.Equal(t, tt.wantMsg, st.Message())
			assert.Equal(t, tt.wantAPI, apierror.CodeFromStatus(st))
		})
	}
}
