package sqlite

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDSN(t *testing.T) {
	got := dsn("/tmp/pin board.sqlite")

	require.True(t, strings.HasPrefix(got, "file:/tmp/pin%20board.sqlite?"), got)
	u, err := url.Parse(got)
	require.NoError(t, err)
	assert.Equal(t, connectionPragmas, u.Query()["_pragma"])
}
