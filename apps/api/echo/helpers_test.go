package echoapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
	"time"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/accredipro/institute/core"
	"github.com/accredipro/institute/core/resource"
	appfs "github.com/accredipro/institute/fs"
	emailsvc "github.com/accredipro/institute/services/email"
	inmemdb "github.com/accredipro/institute/storage/database/inmem"
)

var errMissingToken = httpErr{Error: "missing or malformed jwt"}

type testApp struct {
	*Server
	conf *core.Config
	svc  *resource.Service
}

func testConfig() *core.Config {
	return &core.Config{
		AppName:   "ASI",
		TestMode:  true,
		SecretKey: "test-secret",
		Server: core.ServerConfig{
			DisableReqLogs:     true,
			JWTExpirationDelta: time.Hour,
		},
	}
}

func newTranslator() ut.Translator {
	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ := uni.GetTranslator("en")
	return translator
}

func setup(t *testing.T) testApp {
	t.Helper()
	conf := testConfig()
	logger := core.NewNopLogger()

	translator := newTranslator()
	validate := validator.New()
	core.InitValidators(validate, translator)
	resource.InitValidators(validate, translator)

	core.ParseEmailTemplates(appfs.FS, conf, logger)
	emailsvc.ResetSentMessages()

	svc := resource.NewService(inmemdb.NewWidgetStateRepository(), logger, validate, conf)
	srv := NewServer(ServerDeps{
		Conf:        conf,
		Logger:      logger,
		ResourceSvc: svc,
		MailSvc:     emailsvc.NewConsoleServiceMock(conf),
		Validate:    validate,
		Translator:  translator,
	})
	t.Cleanup(func() { _ = srv.Close() })
	return testApp{Server: srv, conf: conf, svc: svc}
}

func (app testApp) token(t *testing.T, subject string, isAdmin bool) string {
	t.Helper()
	token, err := GenerateToken(app.conf, NewClaims(app.conf, subject, "Ana", subject+"@example.com", isAdmin))
	if err != nil {
		t.Fatalf("GenerateToken(): %v", err)
	}
	return token
}

type httpErr struct {
	Error string `json:"error"`
}

type httpTest struct {
	name     string
	method   string
	path     string
	body     []byte
	token    string
	wantCode int
	wantData []byte
}

func newAuthRequest(method, path, token string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	return req, rec
}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	return newAuthRequest(method, path, "", data...)
}

func marchallObj(t *testing.T, obj interface{}) []byte {
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marchallObj(): %v", err)
	}
	return data
}

func jsonBytesEqual(b1, b2 []byte) (bool, error) {
	var j1, j2 interface{}
	if err := json.Unmarshal(b1, &j1); err != nil {
		return false, err
	}
	if err := json.Unmarshal(b2, &j2); err != nil {
		return false, err
	}
	return reflect.DeepEqual(j1, j2), nil
}

func checkCodeAndData(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	t.Helper()
	if rec.Code != tt.wantCode {
		t.Errorf("failed! code = %v; wantCode %v", rec.Code, tt.wantCode)
	}
	if tt.wantData == nil {
		return
	}
	ok, err := jsonBytesEqual(rec.Body.Bytes(), tt.wantData)
	if err != nil {
		t.Errorf("jsonBytesEqual() failed to compare; err %v", err)
	}
	if !ok {
		t.Errorf("failed! data = %v; wantData %v", rec.Body.String(), string(tt.wantData))
	}
}

func runHTTPTests(t *testing.T, app testApp, tests []httpTest) {
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newAuthRequest(tt.method, tt.path, tt.token, tt.body)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}
