package sections

import (
	"errors"
	"net/http"

	"arte-cultura-backend/internal/content"
	"arte-cultura-backend/internal/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Handler serves the public content sections. List ("fan") and detail shapes
// are both projections of the same stored records; the client switches
// between them without another fetch.
type Handler struct {
	repo *repository.Content
}

func NewHandler(repo *repository.Content) *Handler {
	return &Handler{repo: repo}
}

var siteSections = []Section{
	{Slug: "artistas", Titulo: "Artistas", Descripcion: "Descubre el talento emergente y establecido de América Latina"},
	{Slug: "museos", Titulo: "Museos", Descripcion: "Recorre los espacios que guardan nuestra memoria cultural"},
	{Slug: "eventos", Titulo: "Eventos", Descripcion: "Agenda de exposiciones, ferias y encuentros"},
	{Slug: "opinion", Titulo: "Opinión", Descripcion: "Análisis y crítica especializada del mundo artístico"},
}

// GET /secciones
func (h *Handler) ListSections(c *gin.Context) {
	c.JSON(http.StatusOK, siteSections)
}

// GET /opinion
func (h *Handler) ListOpinion(c *gin.Context) {
	cols, err := h.repo.ListColumns()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load opinion columns"})
		return
	}

	out := make([]FanColumn, 0, len(cols))
	for _, col := range cols {
		out = append(out, FanColumn{
			ID:         col.ID,
			Titulo:     col.Titulo,
			Excerpt:    content.Excerpt(col.Descripcion, content.ExcerptLength),
			ImageCount: len(col.Images),
			CreatedAt:  col.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, out)
}

// GET /opinion/:id
func (h *Handler) GetOpinion(c *gin.Context) {
	col, err := h.repo.GetColumn(c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Column not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load column"})
		return
	}

	c.JSON(http.StatusOK, ColumnDetail{
		ID:        col.ID,
		Titulo:    col.Titulo,
		Parrafos:  content.Paragraphs(col.Descripcion),
		Images:    col.Images,
		CreatedAt: col.CreatedAt,
	})
}

// GET /artistas
func (h *Handler) ListArtists(c *gin.Context) {
	profiles, err := h.repo.ListArtists()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load artists"})
		return
	}

	out := make([]FanArtist, 0, len(profiles))
	for _, a := range profiles {
		out = append(out, FanArtist{
			ID:        a.ID,
			Titulo:    a.Titulo,
			Ubicacion: a.Ubicacion,
			Excerpt:   content.Excerpt(a.Texto, content.ExcerptLength),
			Imagen:    a.Imagen,
			CreatedAt: a.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, out)
}

// GET /artistas/:id
func (h *Handler) GetArtist(c *gin.Context) {
	a, err := h.repo.GetArtist(c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Artist not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load artist"})
		return
	}

	c.JSON(http.StatusOK, ArtistDetail{
		ID:        a.ID,
		Titulo:    a.Titulo,
		Ubicacion: a.Ubicacion,
		Parrafos:  content.Paragraphs(a.Texto),
		Imagen:    a.Imagen,
		CreatedAt: a.CreatedAt,
	})
}
