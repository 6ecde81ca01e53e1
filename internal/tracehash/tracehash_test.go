package tracehash

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestLogger_DebugfWritesMessage(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, zerolog.DebugLevel)

	l.Debugf("chunk boundary at %d bytes", 4096)

	assert.Contains(t, buf.String(), "chunk boundary at 4096 bytes")
}

func TestLogger_DisabledLevelSuppressesOutput(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, zerolog.Disabled)

	l.Debugf("should not appear")

	assert.True(t, strings.TrimSpace(buf.String()) == "")
}
