package emailsvc

import (
	"bytes"
	"net/mail"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/accredipro/institute/core"
	"github.com/accredipro/institute/core/nurture"
	appfs "github.com/accredipro/institute/fs"
)

func testConfig() *core.Config {
	return &core.Config{
		AppName:          "ASI",
		FrontendBaseURL:  "https://learn.example.com",
		TestMode:         true,
		DefaultFromEmail: mail.Address{Name: "ASI", Address: "noreply@example.com"},
	}
}

func TestConsoleServiceMock_NurtureTemplate(t *testing.T) {
	conf := testConfig()
	core.ParseEmailTemplates(appfs.FS, conf, core.NewNopLogger())
	ResetSentMessages()

	e, ok := nurture.GutHealthEmails.ByID("gut-01-welcome")
	require.True(t, ok)
	data := e.Render(map[string]string{"firstName": "Ana"})

	svc := NewConsoleServiceMock(conf)
	svc.SendMessages(&core.EmailMessage{
		To:           []mail.Address{{Name: "Ana", Address: "ana@example.com"}},
		Subject:      data.Subject,
		TemplateName: "nurture",
		TemplateData: data,
	})

	require.Len(t, SentMessages, 1)
	msg := SentMessages[0]
	assert.Equal(t, "Welcome to the Gut Health Mini Diploma", msg.Subject)
	assert.True(t, strings.HasPrefix(msg.TextContent, "Hi Ana,"))
	assert.Contains(t, msg.TextContent, "https://learn.example.com")
	assert.Contains(t, msg.HTMLContent, "<h1")
	assert.Contains(t, msg.HTMLContent, "gut-brain-immune connection")
	assert.NotContains(t, msg.HTMLContent, "{{firstName}}")
}

func TestConsoleServiceMock_SkipsEmptyMessages(t *testing.T) {
	conf := testConfig()
	ResetSentMessages()
	svc := NewConsoleServiceMock(conf)

	svc.SendMessages(
		&core.EmailMessage{Subject: "no recipients", BodyStr: "hello"},
		&core.EmailMessage{To: []mail.Address{{Address: "a@example.com"}}, Subject: "no content"},
		&core.EmailMessage{To: []mail.Address{{Address: "a@example.com"}}, Subject: "plain", BodyStr: "hello"},
	)

	require.Len(t, SentMessages, 1)
	assert.Equal(t, "plain", SentMessages[0].Subject)
	assert.Equal(t, "hello", SentMessages[0].TextContent)
}

func TestConsoleService_WritesMIME(t *testing.T) {
	var out bytes.Buffer
	svc := consoleService{
		from:       mail.Address{Name: "ASI", Address: "noreply@example.com"},
		subjPrefix: "[ASI] ",
		out:        &out,
		logger:     core.NewNopLogger(),
	}
	msg := core.EmailMessage{
		To:          []mail.Address{{Address: "a@example.com"}},
		Subject:     "Report",
		TextContent: "see attached",
	}
	require.NoError(t, msg.Attach(strings.NewReader("<html></html>"), "report.html", "text/html"))

	require.NoError(t, svc.send(msg))
	s := out.String()
	assert.Contains(t, s, "Subject: [ASI] Report\r\n")
	assert.Contains(t, s, "To: <a@example.com>\r\n")
	assert.Contains(t, s, "multipart/mixed; boundary=")
	assert.Contains(t, s, "attachment; filename=report.html")
	assert.NotContains(t, s, "CC:")
}
