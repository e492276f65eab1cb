//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"giggo-server/internal/pkg/errs"

	"github.com/stretchr/testify/require"
)

func TestWrapNilPassesThrough(t *testing.T) {
	require.NoError(t, errs.Wrap(nil, "ignored"))
}

func TestMarkKeepsCauseAndSentinel(t *testing.T) {
	sentinel := errors.New("sentinel")
	cause := errs.New("db exploded")

	marked := errs.Mark(cause, sentinel)
	require.ErrorIs(t, marked, sentinel)
	require.Contains(t, marked.Error(), "db exploded")

	require.ErrorIs(t, errs.Mark(nil, sentinel), sentinel)
}

func TestExtractStackLinesTruncates(t *testing.T) {
	err := errs.Wrap(errs.New("inner"), "outer")

	lines := errs.ExtractStackLines(err, 3)
	require.Len(t, lines, 3)
	require.Equal(t, "outer: inner", lines[0])

	require.Nil(t, errs.ExtractStackLines(nil, 3))
}
