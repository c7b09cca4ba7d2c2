package resource

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderReport(t *testing.T) {
	w := defaultLabResults()
	w.ClientName = "Ana <script>"
	w.Values["hs-crp"] = f64(5)

	doc, err := RenderReport(w.Evaluate().Report())
	require.NoError(t, err)
	html := string(doc)

	assert.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))
	assert.Contains(t, html, "<style>")
	assert.Contains(t, html, "window.print()")
	assert.Contains(t, html, "Lab Results Calculator")
	assert.Contains(t, html, "Ana &lt;script&gt;")
	assert.Contains(t, html, `class="value concern"`)
	assert.Contains(t, html, "Reference ")
}

func TestWriteReport(t *testing.T) {
	r := defaultNutrition().Evaluate().Report()

	t.Run("nil writer", func(t *testing.T) {
		assert.NoError(t, WriteReport(nil, r))
	})

	t.Run("writes document", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteReport(&buf, r))
		assert.Contains(t, buf.String(), "Nutrition Assessment")
		assert.Contains(t, buf.String(), "needs improvement")
	})
}

func TestNewReference(t *testing.T) {
	ref, err := NewReference()
	require.NoError(t, err)
	assert.Len(t, ref, 10)
	for _, r := range ref {
		assert.Contains(t, referenceAlphabet, string(r))
	}
}
