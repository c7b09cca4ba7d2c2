package echoapi

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/accredipro/institute/core/nurture"
	"github.com/accredipro/institute/core/registry"
	emailsvc "github.com/accredipro/institute/services/email"
)

func Test_diplomaAPI_read(t *testing.T) {
	app := setup(t)

	var summaries []registry.Summary
	for _, e := range registry.All() {
		summaries = append(summaries, e.Summary())
	}
	gut, err := registry.Get("gut-health")
	require.NoError(t, err)

	tests := []httpTest{
		{
			name:     "list",
			method:   http.MethodGet,
			path:     "/v1/diplomas",
			wantCode: http.StatusOK,
			wantData: marchallObj(t, summaries),
		},
		{
			name:     "retrieve",
			method:   http.MethodGet,
			path:     "/v1/diplomas/gut-health",
			wantCode: http.StatusOK,
			wantData: marchallObj(t, diplomaResponse{Entry: gut, Summary: gut.Summary()}),
		},
		{
			name:     "retrieve by portal slug",
			method:   http.MethodGet,
			path:     "/v1/diplomas/" + gut.PortalSlug,
			wantCode: http.StatusOK,
			wantData: marchallObj(t, diplomaResponse{Entry: gut, Summary: gut.Summary()}),
		},
		{
			name:     "unknown with suggestion",
			method:   http.MethodGet,
			path:     "/v1/diplomas/gut-helth",
			wantCode: http.StatusNotFound,
			wantData: []byte(`{"error": "mini diploma not found", "suggestion": "gut-health"}`),
		},
		{
			name:     "unknown",
			method:   http.MethodGet,
			path:     "/v1/diplomas/astrology",
			wantCode: http.StatusNotFound,
			wantData: marchallObj(t, httpErr{Error: "mini diploma not found"}),
		},
		{
			name:     "nurture full window",
			method:   http.MethodGet,
			path:     "/v1/diplomas/gut-health/nurture",
			wantCode: http.StatusOK,
			wantData: marchallObj(t, gut.NurtureSequence),
		},
		{
			name:     "nurture first week",
			method:   http.MethodGet,
			path:     "/v1/diplomas/gut-health/nurture?from=0&to=7",
			wantCode: http.StatusOK,
			wantData: marchallObj(t, gut.NurtureSequence.Between(0, 7)),
		},
		{
			name:     "nurture past the window",
			method:   http.MethodGet,
			path:     "/v1/diplomas/gut-health/nurture?from=90",
			wantCode: http.StatusBadRequest,
			wantData: []byte(`{"from": "must not be after to"}`),
		},
		{
			name:     "nurture bad day",
			method:   http.MethodGet,
			path:     "/v1/diplomas/gut-health/nurture?to=soon",
			wantCode: http.StatusBadRequest,
			wantData: []byte(`{"to": "must be a non-negative number of days"}`),
		},
		{
			name:     "dm",
			method:   http.MethodGet,
			path:     "/v1/diplomas/gut-health/dm",
			wantCode: http.StatusOK,
			wantData: marchallObj(t, gut.DMSequence),
		},
	}
	runHTTPTests(t, app, tests)
}

func Test_diplomaAPI_preview(t *testing.T) {
	app := setup(t)
	admin := app.token(t, "admin-1", true)
	path := "/v1/diplomas/gut-health/nurture/gut-01-welcome/preview"

	runHTTPTests(t, app, []httpTest{
		{
			name:     "anonymous",
			method:   http.MethodPost,
			path:     path,
			body:     []byte(`{"email": "ana@example.com", "firstName": "Ana"}`),
			wantCode: http.StatusUnauthorized,
			wantData: marchallObj(t, errMissingToken),
		},
		{
			name:     "not admin",
			method:   http.MethodPost,
			path:     path,
			body:     []byte(`{"email": "ana@example.com", "firstName": "Ana"}`),
			token:    app.token(t, "user-1", false),
			wantCode: http.StatusForbidden,
			wantData: marchallObj(t, httpErr{Error: "permission denied"}),
		},
		{
			name:     "unknown email",
			method:   http.MethodPost,
			path:     "/v1/diplomas/gut-health/nurture/gut-99/preview",
			body:     []byte(`{"email": "ana@example.com", "firstName": "Ana"}`),
			token:    admin,
			wantCode: http.StatusNotFound,
			wantData: marchallObj(t, httpErr{Error: "not found"}),
		},
		{
			name:     "missing recipient",
			method:   http.MethodPost,
			path:     path,
			body:     []byte(`{"firstName": "Ana"}`),
			token:    admin,
			wantCode: http.StatusBadRequest,
			wantData: []byte(`{"email": "this field is required"}`),
		},
	})
	require.Empty(t, emailsvc.SentMessages)

	req, rec := newAuthRequest(http.MethodPost, path, admin, []byte(`{"email": " ana@example.com ", "firstName": "Ana"}`))
	app.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var rendered nurture.Rendered
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rendered))
	assert.Equal(t, "Welcome to the Gut Health Mini Diploma", rendered.Subject)
	assert.NotContains(t, rendered.Body, "{{firstName}}")
	assert.NotEmpty(t, rendered.Paragraphs)

	require.Len(t, emailsvc.SentMessages, 1)
	msg := emailsvc.SentMessages[0]
	assert.Equal(t, "ana@example.com", msg.To[0].Address)
	assert.Equal(t, rendered.Subject, msg.Subject)
	assert.Contains(t, msg.HTMLContent, "<h1")
}
