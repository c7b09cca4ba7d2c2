package supertools

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsoleToaster(t *testing.T) {
	var buf bytes.Buffer
	ts := NewConsoleToaster(&buf)

	id := ts.Loading("Granting access")
	assert.Len(t, id, 8)
	ts.Success(id, "Access granted")
	other := ts.Loading("Resetting course")
	assert.NotEqual(t, id, other)
	ts.Error(other, "Course not found")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "["+id+"] ... Granting access", lines[0])
	assert.Equal(t, "["+id+"] ok  Access granted", lines[1])
	assert.Equal(t, "["+other+"] ERR Course not found", lines[3])
}
