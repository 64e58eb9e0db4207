package day01

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fentz26/advent/internal/input"
	"github.com/fentz26/advent/internal/puzzle"
)

func TestParseChange(t *testing.T) {
	v, err := ParseChange("+7")
	require.NoError(t, err)
	assert.Equal(t, 7, v)

	v, err = ParseChange("-13")
	require.NoError(t, err)
	assert.Equal(t, -13, v)

	_, err = ParseChange("seven")
	assert.Error(t, err)
}

func TestSum(t *testing.T) {
	assert.Equal(t, 3, Sum([]int{1, -2, 3, 1}))
	assert.Equal(t, 3, Sum([]int{1, 1, 1}))
	assert.Equal(t, 0, Sum([]int{1, 1, -2}))
	assert.Equal(t, -6, Sum([]int{-1, -2, -3}))
}

func TestFirstRepeat(t *testing.T) {
	tests := []struct {
		changes []int
		want    int
	}{
		{[]int{1, -2, 3, 1}, 2},
		{[]int{1, -1}, 0},
		{[]int{3, 3, 4, -2, -4}, 10},
		{[]int{-6, 3, 8, 5, -6}, 5},
		{[]int{7, 7, -2, -7, -4}, 14},
	}
	for _, tt := range tests {
		got, err := FirstRepeat(tt.changes)
		require.NoError(t, err, "changes %v", tt.changes)
		assert.Equal(t, tt.want, got, "changes %v", tt.changes)
	}
}

func TestFirstRepeat_Terminates(t *testing.T) {
	_, err := FirstRepeat([]int{1, 1})
	assert.True(t, errors.Is(err, ErrNoRepeat))

	_, err = FirstRepeat(nil)
	assert.True(t, errors.Is(err, ErrEmptyInput))
}

func TestSolver(t *testing.T) {
	path := filepath.Join(t.TempDir(), "day_1.txt")
	require.NoError(t, os.WriteFile(path, []byte("+3\n+3\n+4\n-2\n-4\n"), 0o644))

	loader, err := input.NewLoader(2)
	require.NoError(t, err)
	s := New(loader)

	got, err := s.Solve(context.Background(), puzzle.PartOne, path)
	require.NoError(t, err)
	assert.Equal(t, "4", got)

	got, err = s.Solve(context.Background(), puzzle.PartTwo, path)
	require.NoError(t, err)
	assert.Equal(t, "10", got)

	_, err = s.Solve(context.Background(), puzzle.Part(3), path)
	assert.True(t, errors.Is(err, puzzle.ErrUnknownPart))
}
