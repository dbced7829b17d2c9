package subscriptions

import (
	"encoding/csv"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"arte-cultura-backend/internal/domain/subscriptions"
	"arte-cultura-backend/internal/repository"
	"arte-cultura-backend/internal/validate"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Handler struct {
	repo *repository.Content
}

func NewHandler(repo *repository.Content) *Handler {
	return &Handler{repo: repo}
}

// POST /suscripciones — public newsletter signup. A duplicate email is
// rejected with 409 and no insert.
func (h *Handler) Subscribe(c *gin.Context) {
	var input struct {
		Email string `json:"email" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or invalid email"})
		return
	}
	if !validate.Email(strings.TrimSpace(input.Email)) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email format"})
		return
	}

	sub, err := h.repo.Subscribe(input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": "This email is already subscribed"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to subscribe"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": sub.ID, "message": "Subscribed successfully"})
}

// GET /admin/suscripciones?q= — full list, optionally filtered by email
// substring.
func (h *Handler) List(c *gin.Context) {
	subs, err := h.filtered(c.Query("q"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load subscriptions"})
		return
	}
	c.JSON(http.StatusOK, subs)
}

// DELETE /admin/suscripciones/:id
func (h *Handler) Delete(c *gin.Context) {
	if err := h.repo.DeleteSubscription(c.Param("id")); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Subscription not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete subscription"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Subscription deleted"})
}

// GET /admin/suscripciones/export.csv?q= — CSV of the currently filtered
// list: Email,Fecha,Activo with locale dates and Sí/No booleans.
func (h *Handler) ExportCSV(c *gin.Context) {
	subs, err := h.filtered(c.Query("q"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load subscriptions"})
		return
	}

	filename := fmt.Sprintf("suscripciones_%s.csv", time.Now().Format("2006-01-02"))
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	// csv.Writer defers write errors to Error(), checked once after Flush.
	w := csv.NewWriter(c.Writer)
	_ = w.Write([]string{"Email", "Fecha", "Activo"})
	for _, s := range subs {
		activo := "No"
		if s.Activo {
			activo = "Sí"
		}
		_ = w.Write([]string{s.Email, s.Fecha.Format("2/1/2006"), activo})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		// Headers are already on the wire; all that is left is to log it.
		log.Printf("⚠️ csv export for %d subscriptions failed: %v", len(subs), err)
	}
}

func (h *Handler) filtered(q string) ([]subscriptions.Subscription, error) {
	subs, err := h.repo.ListSubscriptions()
	if err != nil {
		return nil, err
	}
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return subs, nil
	}
	out := make([]subscriptions.Subscription, 0, len(subs))
	for _, s := range subs {
		if strings.Contains(strings.ToLower(s.Email), q) {
			out = append(out, s)
		}
	}
	return out, nil
}
