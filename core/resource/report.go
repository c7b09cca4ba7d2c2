package resource

import (
	"bytes"
	"html/template"
	"io"
	"strconv"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/pkg/errors"
)

const referenceAlphabet = "0123456789ABCDEFGHJKLMNPQRSTUVWXYZ"

type (
	// Report is the printable summary of an evaluated widget.
	Report struct {
		Title           string          `json:"title"`
		Subtitle        string          `json:"subtitle,omitempty"`
		ClientName      string          `json:"clientName,omitempty"`
		GeneratedAt     time.Time       `json:"generatedAt"`
		Reference       string          `json:"reference"`
		Score           *int            `json:"score,omitempty"`
		ScoreLabel      string          `json:"scoreLabel,omitempty"`
		Band            string          `json:"band,omitempty"`
		Sections        []ReportSection `json:"sections"`
		Recommendations []string        `json:"recommendations"`
		Disclaimer      string          `json:"disclaimer,omitempty"`
	}

	ReportSection struct {
		Heading string      `json:"heading"`
		Rows    []ReportRow `json:"rows"`
	}

	ReportRow struct {
		Label  string `json:"label"`
		Value  string `json:"value"`
		Status string `json:"status,omitempty"` // optimal | suboptimal | concern | ...
	}
)

const defaultDisclaimer = "This report is for educational purposes only and is not a medical diagnosis. " +
	"Please review results with a qualified practitioner."

func intPtr(i int) *int { return &i }

func row(label, value string, status ...string) ReportRow {
	r := ReportRow{Label: label, Value: value}
	if len(status) > 0 {
		r.Status = status[0]
	}
	return r
}

func itoa(i int) string { return strconv.Itoa(i) }

func ftoa(f float64, prec int) string { return strconv.FormatFloat(f, 'f', prec, 64) }

var reportTmpl = template.Must(template.New("report").Funcs(template.FuncMap{
	"date": func(t time.Time) string { return t.Format("January 2, 2006 15:04 MST") },
}).Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}{{if .ClientName}} - {{.ClientName}}{{end}}</title>
<style>
  body { font-family: Georgia, 'Times New Roman', serif; color: #2d2a26; margin: 40px; }
  header { border-bottom: 2px solid #722f37; padding-bottom: 12px; margin-bottom: 24px; }
  h1 { color: #722f37; font-size: 26px; margin: 0 0 4px; }
  h2 { color: #722f37; font-size: 18px; margin: 28px 0 8px; }
  .meta { color: #6b645c; font-size: 13px; }
  .score { display: inline-block; margin-top: 16px; padding: 12px 20px; border-radius: 8px; background: #f6efe7; }
  .score strong { font-size: 28px; color: #722f37; }
  table { width: 100%; border-collapse: collapse; font-size: 14px; }
  td { padding: 6px 8px; border-bottom: 1px solid #eee6dc; }
  td.value { text-align: right; }
  .optimal { color: #2f7a3e; }
  .suboptimal { color: #b7791f; }
  .concern { color: #b83232; font-weight: bold; }
  ul { padding-left: 20px; }
  li { margin-bottom: 6px; }
  footer { margin-top: 40px; font-size: 11px; color: #8a847c; border-top: 1px solid #eee6dc; padding-top: 8px; }
  @media print { body { margin: 16mm; } }
</style>
</head>
<body>
<header>
  <h1>{{.Title}}</h1>
  {{if .Subtitle}}<div class="meta">{{.Subtitle}}</div>{{end}}
  <div class="meta">{{if .ClientName}}Client: {{.ClientName}} &middot; {{end}}Generated {{date .GeneratedAt}}</div>
  {{if .Score}}<div class="score">{{if .ScoreLabel}}{{.ScoreLabel}}: {{end}}<strong>{{.Score}}</strong>{{if .Band}} &middot; {{.Band}}{{end}}</div>{{end}}
</header>
{{range .Sections}}
<h2>{{.Heading}}</h2>
<table>
{{range .Rows}}  <tr><td>{{.Label}}</td><td class="value{{if .Status}} {{.Status}}{{end}}">{{.Value}}</td></tr>
{{end}}</table>
{{end}}
{{if .Recommendations}}
<h2>Recommendations</h2>
<ul>
{{range .Recommendations}}  <li>{{.}}</li>
{{end}}</ul>
{{end}}
<footer>Reference {{.Reference}}{{if .Disclaimer}} &middot; {{.Disclaimer}}{{end}}</footer>
<script>window.onload = function () { window.print(); };</script>
</body>
</html>
`))

// NewReference returns a short human readable report reference code.
func NewReference() (string, error) {
	return gonanoid.Generate(referenceAlphabet, 10)
}

// RenderReport renders r as a complete standalone HTML document.
func RenderReport(r Report) ([]byte, error) {
	if r.GeneratedAt.IsZero() {
		r.GeneratedAt = time.Now().UTC()
	}
	if r.Reference == "" {
		ref, err := NewReference()
		if err != nil {
			return nil, errors.Wrap(err, "generating report reference")
		}
		r.Reference = ref
	}
	if r.Disclaimer == "" {
		r.Disclaimer = defaultDisclaimer
	}

	var buf bytes.Buffer
	if err := reportTmpl.Execute(&buf, r); err != nil {
		return nil, errors.Wrap(err, "rendering report")
	}
	return buf.Bytes(), nil
}

// WriteReport renders r to w. A nil writer is silently ignored.
func WriteReport(w io.Writer, r Report) error {
	if w == nil {
		return nil
	}
	doc, err := RenderReport(r)
	if err != nil {
		return err
	}
	_, err = w.Write(doc)
	return errors.Wrap(err, "writing report")
}
