package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"eventflow/config"
	"eventflow/internal/handler"
	"eventflow/internal/model"
	"eventflow/internal/service/mocks"
	"eventflow/pkg/validator"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const validToken = "valid-token"

var (
	InvalidJSON = `{"invalid": json}`
	testUser    = &model.User{ID: 1, Username: "alice"}
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	if err := validator.Register(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

type testServices struct {
	events        *mocks.MockEventService
	registrations *mocks.MockRegistrationService
	accounts      *mocks.MockAccountService
	profiles      *mocks.MockProfileService
}

func setupTestRouter(t *testing.T) (*gin.Engine, testServices) {
	s := testServices{
		events:        mocks.NewMockEventService(t),
		registrations: mocks.NewMockRegistrationService(t),
		accounts:      mocks.NewMockAccountService(t),
		profiles:      mocks.NewMockProfileService(t),
	}
	router := handler.NewRouter(config.ServerConfig{Debug: true, AllowedOrigins: []string{"*"}}, handler.Services{
		Events:        s.events,
		Registrations: s.registrations,
		Accounts:      s.accounts,
		Profiles:      s.profiles,
	})
	return router, s
}

// loginAs 讓 middleware 把 validToken 認成 user
func (s testServices) loginAs(user *model.User) {
	s.accounts.EXPECT().Authenticate(mock.Anything, validToken).Return(user, nil).Maybe()
}

// create JSON request body
func createJSONRequest(data interface{}) *bytes.Buffer {
	if raw, ok := data.(string); ok {
		return bytes.NewBufferString(raw)
	}
	jsonData, err := json.Marshal(data)
	if err != nil {
		return bytes.NewBuffer([]byte(""))
	}
	return bytes.NewBuffer(jsonData)
}

// create HTTP request with JSON body
func createJSONHTTPRequest(method, url string, data interface{}) *http.Request {
	req := httptest.NewRequest(method, url, createJSONRequest(data))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func withToken(req *http.Request) *http.Request {
	req.Header.Set("Authorization", "Bearer "+validToken)
	return req
}

func serve(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}
