package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCommandError(t *testing.T) {
	cause := errors.New("You cannot downgrade a project")
	err := NewCommandError(map[string]string{"toVersion": "1.4.1"}, nil, cause, 5)

	assert.EqualError(t, err, "You cannot downgrade a project")
	assert.Equal(t, 5, err.ExitCode)
	assert.ErrorIs(t, err, cause)
	if assert.Len(t, err.Result.Launches, 1) {
		assert.Equal(t, "FAILED", err.Result.Launches[0].Status)
		assert.Equal(t, cause.Error(), err.Result.Launches[0].Message)
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: 0},
		{name: "plain error", err: errors.New("boom"), want: 1},
		{name: "command error", err: NewCommandError(nil, nil, errors.New("up to date"), 6), want: 6},
		{name: "wrapped command error", err: fmt.Errorf("run: %w", NewCommandError(nil, nil, errors.New("rule"), 7)), want: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}
