package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWrapAndIsCode(t *testing.T) {
	base := fmt.Errorf("boom")
	err := fmt.Errorf("outer: %w", Wrap(CodeNotFound, "look not found", base))

	require.True(t, IsCode(err, CodeNotFound))
	require.False(t, IsCode(err, CodeInvalidInput))
	require.ErrorIs(t, err, base)
	require.Equal(t, "look not found", MessageOf(err))
	require.Equal(t, "plain", MessageOf(fmt.Errorf("plain")))
}
