package logsvc

import (
	"bytes"
	"log"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/accredipro/institute/core"
)

func TestRollbarLogger(t *testing.T) {
	var buf bytes.Buffer
	conf := &core.Config{Env: "TEST", Debug: true}
	logger := NewRollbarLogger(log.New(&buf, "API : ", 0), conf)

	person := core.LogPerson{ID: "u1", Name: "Ana", Email: "ana@example.com"}
	logger.Error("saving state failed", errors.New("disk full"), person)
	logger.Debug("debug line")

	out := buf.String()
	assert.Contains(t, out, "API : ERROR saving state failed\n")
	assert.Contains(t, out, "API : disk full\n")
	assert.NotContains(t, out, "ana@example.com")
	assert.Contains(t, out, "API : DEBUG debug line\n")
}

func TestRollbarLogger_Prepare(t *testing.T) {
	logger := RollbarLogger{}
	extra := map[string]interface{}{"kind": "stress-assessment"}
	args := logger.prepare("msg", []interface{}{extra, core.LogPerson{ID: "u1"}, core.LogPerson{ID: "u2"}})
	assert.Equal(t, []interface{}{"msg", extra}, args)
}

func TestRollbarLogger_DebugOffInProduction(t *testing.T) {
	var buf bytes.Buffer
	logger := NewRollbarLogger(log.New(&buf, "", 0), &core.Config{Env: "PROD"})
	logger.Debug("hidden")
	assert.Empty(t, buf.String())
}
