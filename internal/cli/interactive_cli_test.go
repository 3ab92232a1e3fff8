package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	mock_cli "github.com/at-ishikawa/crossword/internal/mocks/cli"
)

func TestInteractiveCLI_Run(t *testing.T) {
	tests := []struct {
		name        string
		setupMock   func(*mock_cli.MockSession)
		cancelAfter time.Duration
		wantErr     bool
	}{
		{
			name: "Session returns error",
			setupMock: func(mockSession *mock_cli.MockSession) {
				mockSession.EXPECT().
					Session(gomock.Any()).
					Return(errors.New("mock session error")).
					Times(1)
			},
			wantErr: true,
		},
		{
			name: "Session ends after a few calls",
			setupMock: func(mockSession *mock_cli.MockSession) {
				gomock.InOrder(
					mockSession.EXPECT().Session(gomock.Any()).Return(nil).Times(2),
					mockSession.EXPECT().Session(gomock.Any()).Return(errEnd).Times(1),
				)
			},
		},
		{
			name: "Context cancelled",
			setupMock: func(mockSession *mock_cli.MockSession) {
				mockSession.EXPECT().
					Session(gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			cancelAfter: 1 * time.Millisecond,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSession := mock_cli.NewMockSession(ctrl)
			tt.setupMock(mockSession)

			var out bytes.Buffer
			cli := NewInteractiveCLI(strings.NewReader(""), &out)

			ctx := context.Background()
			if tt.cancelAfter > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, tt.cancelAfter)
				defer cancel()
			}

			err := cli.Run(ctx, mockSession)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestInteractiveCLI_readLine(t *testing.T) {
	cli := NewInteractiveCLI(strings.NewReader("first\nlast"), &bytes.Buffer{})

	line, err := cli.readLine()
	assert.NoError(t, err)
	assert.Equal(t, "first\n", line)

	line, err = cli.readLine()
	assert.NoError(t, err)
	assert.Equal(t, "last", line)

	_, err = cli.readLine()
	assert.ErrorIs(t, err, errEnd)
}
