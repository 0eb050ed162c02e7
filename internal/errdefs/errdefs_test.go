package errdefs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKinds(t *testing.T) {
	assert.True(t, IsInvalidInput(InvalidInput("bad")))
	assert.True(t, IsNotFound(NotFound("missing")))
	assert.True(t, IsAmbiguous(Ambiguous("which", nil)))
	assert.True(t, IsStorage(StorageCorrupt("broken")))
	assert.True(t, IsStorage(StorageUnavailable("busy")))

	assert.False(t, IsNotFound(InvalidInput("bad")))
	assert.False(t, IsInvalidInput(errors.New("plain")))
}

func TestKindSurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("loading store: %w", NotFound("habit not found: x"))
	assert.True(t, IsNotFound(err))
	assert.Equal(t, 3, ExitCode(err))
}

func TestAmbiguousMessage(t *testing.T) {
	err := Ambiguous(`ambiguous habit selector "run"`, []Candidate{
		{ID: "h0001", Name: "Run"},
		{ID: "h0002", Name: "Running club"},
	})
	assert.Equal(t, `ambiguous habit selector "run": h0001 Run, h0002 Running club`, err.Error())
	assert.Len(t, CandidatesOf(err), 2)
	assert.Nil(t, CandidatesOf(errors.New("plain")))
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 2, ExitCode(InvalidInput("bad")))
	assert.Equal(t, 3, ExitCode(NotFound("missing")))
	assert.Equal(t, 4, ExitCode(Ambiguous("which", nil)))
	assert.Equal(t, 5, ExitCode(StorageCorrupt("broken")))
	assert.Equal(t, 5, ExitCode(StorageUnavailable("busy")))
	assert.Equal(t, 1, ExitCode(errors.New("plain")))
}
