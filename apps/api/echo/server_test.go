package echoapi

import (
	"net/http"
	"testing"

	"github.com/dgrijalva/jwt-go"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/accredipro/institute/core"
)

func TestServer_Home(t *testing.T) {
	app := setup(t)
	req, rec := newRequest(http.MethodGet, "/")
	app.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Welcome to the ASI API!", rec.Body.String())
}

func TestServer_TrailingSlash(t *testing.T) {
	app := setup(t)
	req, rec := newRequest(http.MethodGet, "/v1/resources/")
	app.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGenerateToken(t *testing.T) {
	conf := testConfig()
	claims := NewClaims(conf, "user-1", "Ana", "ana@example.com", true)

	token, err := GenerateToken(conf, claims)
	require.NoError(t, err)

	parsed, err := jwt.ParseWithClaims(token, new(Claims), func(*jwt.Token) (interface{}, error) {
		return []byte(conf.SecretKey), nil
	})
	require.NoError(t, err)
	got := parsed.Claims.(*Claims)
	assert.Equal(t, "user-1", got.Subject)
	assert.Equal(t, "ASI", got.Issuer)
	assert.True(t, got.IsAdmin)
	assert.Equal(t, core.LogPerson{ID: "user-1", Name: "Ana", Email: "ana@example.com"}, got.person())
}

type recLogger struct {
	core.Logger
	errors []string
}

func (l *recLogger) Error(msg string, _ ...interface{}) { l.errors = append(l.errors, msg) }

func TestAppHTTPErrorHandler_ServerErrors(t *testing.T) {
	app := setup(t)
	logger := &recLogger{Logger: core.NewNopLogger()}
	var shutdown bool
	app.app.HTTPErrorHandler = newAppHTTPErrorHandler(logger, newTranslator(), func() { shutdown = true })

	app.app.GET("/boom", func(echo.Context) error {
		return errors.Wrap(errors.New("db down"), "loading")
	})
	app.app.GET("/fatal", func(echo.Context) error {
		return errors.Wrap(core.NewShutdownError("integrity"), "checking")
	})

	tests := []httpTest{
		{
			name:     "internal error",
			method:   http.MethodGet,
			path:     "/boom",
			wantCode: http.StatusInternalServerError,
			wantData: marchallObj(t, httpErr{Error: "Internal Server Error"}),
		},
		{
			name:     "shutdown error",
			method:   http.MethodGet,
			path:     "/fatal",
			wantCode: http.StatusInternalServerError,
			wantData: marchallObj(t, httpErr{Error: "Internal Server Error"}),
		},
	}
	runHTTPTests(t, app, tests)

	assert.Len(t, logger.errors, 2)
	assert.True(t, shutdown)
}
