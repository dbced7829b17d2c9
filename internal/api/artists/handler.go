package artists

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	"arte-cultura-backend/internal/infra/storage"
	"arte-cultura-backend/internal/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Handler struct {
	repo *repository.Content
}

func NewHandler(repo *repository.Content) *Handler {
	return &Handler{repo: repo}
}

// GET /admin/artistas
func (h *Handler) List(c *gin.Context) {
	profiles, err := h.repo.ListArtists()
	if err != nil {
		respondStoreError(c, err, "Failed to load artists")
		return
	}
	c.JSON(http.StatusOK, profiles)
}

// POST /admin/artistas — multipart form: titulo, ubicacion, texto and either
// an "imagen" file or an "imagen_url" pointing at an already-stored image.
// A profile without an image is rejected before any store write.
func (h *Handler) Create(c *gin.Context) {
	titulo := c.PostForm("titulo")
	ubicacion := c.PostForm("ubicacion")
	texto := c.PostForm("texto")
	imagenURL := c.PostForm("imagen_url")

	file, ok := readImageFile(c)
	if !ok {
		return
	}

	profile, err := h.repo.CreateArtist(titulo, ubicacion, texto, file, imagenURL)
	if err != nil {
		respondStoreError(c, err, "Failed to save artist")
		return
	}
	c.JSON(http.StatusCreated, profile)
}

// PUT /admin/artistas/:id — without a replacement file the stored image is
// kept as-is.
func (h *Handler) Update(c *gin.Context) {
	id := c.Param("id")
	titulo := c.PostForm("titulo")
	ubicacion := c.PostForm("ubicacion")
	texto := c.PostForm("texto")

	file, ok := readImageFile(c)
	if !ok {
		return
	}

	profile, err := h.repo.UpdateArtist(id, titulo, ubicacion, texto, file)
	if err != nil {
		respondStoreError(c, err, "Failed to update artist")
		return
	}
	c.JSON(http.StatusOK, profile)
}

// DELETE /admin/artistas/:id
func (h *Handler) Delete(c *gin.Context) {
	if err := h.repo.DeleteArtist(c.Param("id")); err != nil {
		respondStoreError(c, err, "Failed to delete artist")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Artist deleted"})
}

// readImageFile pulls the single "imagen" file, if present, checking content
// type before anything is written.
func readImageFile(c *gin.Context) (*repository.Upload, bool) {
	fh, err := c.FormFile("imagen")
	if err != nil {
		return nil, true
	}

	data, err := readFile(fh)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not read uploaded file"})
		return nil, false
	}
	if !storage.IsImage(data) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only image files are accepted"})
		return nil, false
	}
	return &repository.Upload{Filename: fh.Filename, Data: data}, true
}

func readFile(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

func respondStoreError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, repository.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Artist not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
