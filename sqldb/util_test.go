package sqldb

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestJoinSplitTags(t *testing.T) {
	require.Equal(t, "a,b", joinTags([]string{" a ", "", "b"}))
	require.Equal(t, []string{"a", "b"}, splitTags("a,b"))
	require.Nil(t, splitTags(""))
	require.Equal(t, "", joinTags(nil))
}
