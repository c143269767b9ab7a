package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"complaint-tracker/internal/config"
	"complaint-tracker/internal/handlers"
	"complaint-tracker/internal/server"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type testEnv struct {
	router     *gin.Engine
	complaints *MockComplaints
	accounts   *MockAccounts
	directory  *MockDirectory
	pingErr    error
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	env := &testEnv{
		complaints: &MockComplaints{},
		accounts:   &MockAccounts{},
		directory:  &MockDirectory{},
	}
	h := handlers.New(env.complaints, env.accounts, env.directory,
		func(context.Context) error { return env.pingErr },
		zap.NewNop(),
	)
	cfg := &config.Config{SessionSecret: "test-secret", CORSAllowOrigins: "*"}
	env.router = server.NewRouter(cfg, h, zap.NewNop())

	t.Cleanup(func() {
		env.complaints.AssertExpectations(t)
		env.accounts.AssertExpectations(t)
		env.directory.AssertExpectations(t)
	})
	return env
}

func (e *testEnv) do(method, path string, body interface{}, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		_ = json.NewEncoder(&buf).Encode(b)
	}

	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func strPtr(s string) *string { return &s }
