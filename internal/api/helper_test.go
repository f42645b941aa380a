package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"factory-maintenance-backend/internal/db"
	"factory-maintenance-backend/internal/store"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// testNotifier records dispatched machine IDs.
type testNotifier struct {
	dispatched []int64
}

func (n *testNotifier) Dispatch(machineID int64) {
	n.dispatched = append(n.dispatched, machineID)
}

// newTestRouter builds a router against a fresh in-memory database. Rate
// limits are effectively disabled so tests can hammer the API.
func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB, *testNotifier) {
	t.Helper()

	dsn := fmt.Sprintf("file:api_%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	gormDB, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gormDB))
	t.Cleanup(func() {
		if sqlDB, err := gormDB.DB(); err == nil {
			sqlDB.Close()
		}
	})

	notifier := &testNotifier{}
	router := NewRouter(store.NewGormStore(gormDB), RouterOptions{
		JWTSecret: "test-secret",
		TokenTTL:  time.Hour,
		RateLimit: rate.Limit(10000),
		RateBurst: 10000,
		CacheTTL:  time.Millisecond,
		Notifier:  notifier,
	})
	return router, gormDB, notifier
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Buffer
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(raw)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func loginToken(t *testing.T, router *gin.Engine) string {
	t.Helper()

	w := doJSON(t, router, http.MethodPost, "/auth/login", "", gin.H{
		"username": "tester",
		"password": "s3cret",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.AccessToken)
	return resp.AccessToken
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}
