package columns

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

// GET /admin/columnas
func (h *Handler) List(c *gin.Context) {
	cols, err := h.repo.ListColumns()
	if err != nil {
		respondStoreError(c, err, "Failed to load columns")
		return
	}
	c.JSON(http.StatusOK, cols)
}

// POST /admin/columnas — multipart form: titulo, descripcion, images (0–3 files).
// The whole selection is rejected before any upload if a file is not an image
// or the count exceeds the limit.
func (h *Handler) Create(c *gin.Context) {
	titulo := c.PostForm("titulo")
	descripcion := c.PostForm("descripcion")

	files, ok := readImageFiles(c, repository.ColumnImages.Max)
	if !ok {
		return
	}

	col, err := h.repo.CreateColumn(titulo, descripcion, files)
	if err != nil {
		respondStoreError(c, err, "Failed to save column")
		return
	}
	c.JSON(http.StatusCreated, col)
}

// PUT /admin/columnas/:id — same form as Create plus repeated "keep" fields
// holding the already-stored image URLs the edit retains. The stored image
// list is replaced wholesale by keep + new uploads.
func (h *Handler) Update(c *gin.Context) {
	id := c.Param("id")
	titulo := c.PostForm("titulo")
	descripcion := c.PostForm("descripcion")
	keep := c.PostFormArray("keep")

	files, ok := readImageFiles(c, repository.ColumnImages.Max)
	if !ok {
		return
	}

	col, err := h.repo.UpdateColumn(id, titulo, descripcion, keep, files)
	if err != nil {
		respondStoreError(c, err, "Failed to update column")
		return
	}
	c.JSON(http.StatusOK, col)
}

// DELETE /admin/columnas/:id
func (h *Handler) Delete(c *gin.Context) {
	if err := h.repo.DeleteColumn(c.Param("id")); err != nil {
		respondStoreError(c, err, "Failed to delete column")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Column deleted"})
}

// readImageFiles pulls the "images" files out of the multipart form, checking
// count and content type before anything is written anywhere.
func readImageFiles(c *gin.Context, max int) ([]repository.Upload, bool) {
	form, err := c.MultipartForm()
	if err != nil {
		// No multipart body at all: treat as zero images.
		return nil, true
	}

	headers := form.File["images"]
	if len(headers) > max {
		c.JSON(http.StatusBadRequest, gin.H{"error": "At most 3 images are allowed"})
		return nil, false
	}

	uploads := make([]repository.Upload, 0, len(headers))
	for _, fh := range headers {
		data, err := readFile(fh)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Could not read uploaded file"})
			return nil, false
		}
		if !storage.IsImage(data) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Only image files are accepted"})
			return nil, false
		}
		uploads = append(uploads, repository.Upload{Filename: fh.Filename, Data: data})
	}
	return uploads, true
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
		c.JSON(http.StatusNotFound, gin.H{"error": "Column not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
