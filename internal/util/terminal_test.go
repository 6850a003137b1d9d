package util

import (
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// MockTerminal for testing
type MockTerminal struct {
	IsTerminalResult bool
	Calls            int
}

func (m *MockTerminal) IsTerminal(fd int) bool {
	m.Calls++
	return m.IsTerminalResult
}

func TestIsInteractive(t *testing.T) {
	orig := DefaultTerminal
	defer func() { DefaultTerminal = orig }()

	tests := []struct {
		name       string
		input      func() io.Reader
		isTerminal bool
		want       bool
		wantCalls  int
	}{
		{
			name:      "plain reader",
			input:     func() io.Reader { return strings.NewReader("{}") },
			want:      false,
			wantCalls: 0,
		},
		{
			name:       "file attached to a terminal",
			input:      func() io.Reader { return os.Stdin },
			isTerminal: true,
			want:       true,
			wantCalls:  1,
		},
		{
			name:       "redirected file",
			input:      func() io.Reader { return os.Stdin },
			isTerminal: false,
			want:       false,
			wantCalls:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &MockTerminal{IsTerminalResult: tt.isTerminal}
			DefaultTerminal = mock

			assert.Equal(t, tt.want, IsInteractive(tt.input()))
			assert.Equal(t, tt.wantCalls, mock.Calls)
		})
	}
}
