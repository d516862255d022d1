package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPipelineErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  *PipelineError
		want string
	}{
		{
			name: "without cause",
			err:  New(CodeLoadFailed, "failed to load x.xlsx"),
			want: "LOAD_FAILED: failed to load x.xlsx",
		},
		{
			name: "with cause",
			err:  NewSaveError("out.csv", errors.New("disk full")),
			want: "SAVE_FAILED: failed to save out.csv: disk full",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestUnwrapKeepsCause(t *testing.T) {
	cause := fs.ErrNotExist
	err := NewLoadError("input.xlsx", fmt.Errorf("open: %w", cause))

	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestIsCode(t *testing.T) {
	loadErr := NewLoadError("a.csv", errors.New("boom"))

	assert.True(t, IsCode(loadErr, CodeLoadFailed))
	assert.False(t, IsCode(loadErr, CodeSaveFailed))
	assert.False(t, IsCode(errors.New("plain"), CodeLoadFailed))
	assert.False(t, IsCode(nil, CodeLoadFailed))

	wrapped := fmt.Errorf("context: %w", loadErr)
	assert.True(t, IsCode(wrapped, CodeLoadFailed))
}

func TestConstructors(t *testing.T) {
	cause := errors.New("cause")

	var pe *PipelineError
	require.True(t, errors.As(NewColumnSkipped("join_date", cause), &pe))
	assert.Equal(t, CodeColumnSkipped, pe.Code)
	assert.Contains(t, pe.Message, "join_date")
	assert.Equal(t, cause, pe.Err)
}
