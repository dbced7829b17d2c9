package sections

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"arte-cultura-backend/internal/domain/artists"
	"arte-cultura-backend/internal/domain/columns"
	"arte-cultura-backend/internal/infra/storage"
	"arte-cultura-backend/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testRouter(t *testing.T) (*gin.Engine, *repository.Content) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&columns.OpinionColumn{}, &artists.ArtistProfile{}))

	store, err := storage.NewLocal(t.TempDir(), "http://localhost:8080")
	require.NoError(t, err)

	repo := repository.NewContent(db, store)
	h := NewHandler(repo)

	r := gin.New()
	r.GET("/secciones", h.ListSections)
	r.GET("/opinion", h.ListOpinion)
	r.GET("/opinion/:id", h.GetOpinion)
	r.GET("/artistas", h.ListArtists)
	r.GET("/artistas/:id", h.GetArtist)
	return r, repo
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestListSections(t *testing.T) {
	r, _ := testRouter(t)

	w := get(r, "/secciones")
	assert.Equal(t, http.StatusOK, w.Code)

	var out []Section
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	slugs := make([]string, 0, len(out))
	for _, s := range out {
		slugs = append(slugs, s.Slug)
	}
	assert.Equal(t, []string{"artistas", "museos", "eventos", "opinion"}, slugs)
}

// Fan view shows a flattened excerpt; detail view splits the same body into
// paragraphs. Both come from one stored record.
func TestOpinionFanAndDetailViews(t *testing.T) {
	r, repo := testRouter(t)

	created, err := repo.CreateColumn("Test", "Line one\nLine two", []repository.Upload{
		{Filename: "a.png", Data: []byte{0x89, 'P', 'N', 'G'}},
	})
	require.NoError(t, err)

	w := get(r, "/opinion")
	assert.Equal(t, http.StatusOK, w.Code)

	var fan []FanColumn
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fan))
	require.Len(t, fan, 1)
	assert.Equal(t, "Test", fan[0].Titulo)
	assert.Equal(t, "Line one Line two", fan[0].Excerpt)
	assert.NotContains(t, fan[0].Excerpt, "\n")
	assert.Equal(t, 1, fan[0].ImageCount)

	w = get(r, "/opinion/"+created.ID)
	assert.Equal(t, http.StatusOK, w.Code)

	var detail ColumnDetail
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &detail))
	assert.Equal(t, []string{"Line one", "Line two"}, detail.Parrafos)
	assert.Len(t, detail.Images, 1)
}

func TestOpinionListNewestFirst(t *testing.T) {
	r, repo := testRouter(t)

	for _, titulo := range []string{"primera", "segunda"} {
		_, err := repo.CreateColumn(titulo, "cuerpo", nil)
		require.NoError(t, err)
	}

	w := get(r, "/opinion")
	var fan []FanColumn
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fan))
	require.Len(t, fan, 2)
	assert.False(t, fan[0].CreatedAt.Before(fan[1].CreatedAt))
}

func TestArtistDetail(t *testing.T) {
	r, repo := testRouter(t)

	created, err := repo.CreateArtist("Frida", "Coyoacán", "Pintora\nMexicana", nil, "http://cdn.test/uploads/artistas/0_x.png")
	require.NoError(t, err)

	w := get(r, "/artistas/"+created.ID)
	assert.Equal(t, http.StatusOK, w.Code)

	var detail ArtistDetail
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &detail))
	assert.Equal(t, "Frida", detail.Titulo)
	assert.Equal(t, []string{"Pintora", "Mexicana"}, detail.Parrafos)
	assert.Equal(t, "http://cdn.test/uploads/artistas/0_x.png", detail.Imagen)
}

func TestDetailNotFound(t *testing.T) {
	r, _ := testRouter(t)

	w := get(r, "/opinion/00000000-0000-0000-0000-000000000000")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
