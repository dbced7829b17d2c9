package subscriptions

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"arte-cultura-backend/internal/domain/subscriptions"
	"arte-cultura-backend/internal/infra/storage"
	"arte-cultura-backend/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&subscriptions.Subscription{}))

	store, err := storage.NewLocal(t.TempDir(), "http://localhost:8080")
	require.NoError(t, err)

	h := NewHandler(repository.NewContent(db, store))

	r := gin.New()
	r.POST("/suscripciones", h.Subscribe)
	r.GET("/admin/suscripciones", h.List)
	r.GET("/admin/suscripciones/export.csv", h.ExportCSV)
	r.DELETE("/admin/suscripciones/:id", h.Delete)
	return r
}

func doJSON(r *gin.Engine, method string, path string, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSubscribeThenDuplicate(t *testing.T) {
	r := testRouter(t)

	w := doJSON(r, http.MethodPost, "/suscripciones", `{"email":"lector@example.com"}`)
	assert.Equal(t, http.StatusCreated, w.Code)

	// Second submission with the same email: duplicate outcome, no insert.
	w = doJSON(r, http.MethodPost, "/suscripciones", `{"email":"lector@example.com"}`)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(r, http.MethodGet, "/admin/suscripciones", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, strings.Count(w.Body.String(), "lector@example.com"))
}

func TestSubscribeRejectsBadEmail(t *testing.T) {
	r := testRouter(t)

	w := doJSON(r, http.MethodPost, "/suscripciones", `{"email":"not-an-email"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(r, http.MethodPost, "/suscripciones", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListFiltersByEmailSubstring(t *testing.T) {
	r := testRouter(t)

	doJSON(r, http.MethodPost, "/suscripciones", `{"email":"ana@example.com"}`)
	doJSON(r, http.MethodPost, "/suscripciones", `{"email":"bruno@example.org"}`)

	w := doJSON(r, http.MethodGet, "/admin/suscripciones?q=ana", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ana@example.com")
	assert.NotContains(t, w.Body.String(), "bruno@example.org")
}

func TestExportCSV(t *testing.T) {
	r := testRouter(t)

	doJSON(r, http.MethodPost, "/suscripciones", `{"email":"lector@example.com"}`)

	w := doJSON(r, http.MethodGet, "/admin/suscripciones/export.csv", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "suscripciones_")

	lines := strings.Split(strings.TrimSpace(w.Body.String()), "\n")
	require.GreaterOrEqual(t, len(lines), 2)
	assert.Equal(t, "Email,Fecha,Activo", strings.TrimSpace(lines[0]))
	assert.Contains(t, lines[1], "lector@example.com")
	assert.Contains(t, lines[1], "Sí")
}

func TestDeleteSubscription(t *testing.T) {
	r := testRouter(t)

	doJSON(r, http.MethodPost, "/suscripciones", `{"email":"lector@example.com"}`)

	w := doJSON(r, http.MethodGet, "/admin/suscripciones", "")
	var id string
	body := w.Body.String()
	start := strings.Index(body, `"id":"`)
	require.GreaterOrEqual(t, start, 0)
	id = body[start+6:]
	id = id[:strings.Index(id, `"`)]

	w = doJSON(r, http.MethodDelete, "/admin/suscripciones/"+id, "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodDelete, "/admin/suscripciones/"+id, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
