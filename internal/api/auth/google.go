package auth

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"net/http"

	"arte-cultura-backend/config"
	"arte-cultura-backend/internal/domain/users"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/gin-gonic/gin"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

func googleOAuthConfig() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     config.GOOGLE_CLIENT_ID,
		ClientSecret: config.GOOGLE_CLIENT_SECRET,
		RedirectURL:  config.GOOGLE_REDIRECT_URL,
		Scopes: []string{
			"openid",
			"email",
			"profile",
		},
		Endpoint: google.Endpoint,
	}
}

func randomState() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

type googleClaims struct {
	Email string `json:"email"`
	Sub   string `json:"sub"`
	Name  string `json:"name"`
}

// GET /auth/google
func (h *Handler) GoogleStart(c *gin.Context) {
	state, err := randomState()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate state"})
		return
	}

	// state lives in an HttpOnly cookie for the round trip
	c.SetCookie(
		"oauth_state",
		state,
		300, // 5 minutes
		"/",
		"",    // domain (set in prod)
		false, // secure (true in prod HTTPS)
		true,  // httpOnly
	)

	url := googleOAuthConfig().AuthCodeURL(state, oauth2.AccessTypeOnline)
	c.Redirect(http.StatusFound, url)
}

// GET /auth/google/callback
func (h *Handler) GoogleCallback(c *gin.Context) {
	state := c.Query("state")
	code := c.Query("code")
	if code == "" || state == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing code/state"})
		return
	}

	cookieState, err := c.Cookie("oauth_state")
	if err != nil || cookieState != state {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid oauth state"})
		return
	}

	tok, err := googleOAuthConfig().Exchange(c.Request.Context(), code)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "failed to exchange code"})
		return
	}

	rawIDToken, ok := tok.Extra("id_token").(string)
	if !ok || rawIDToken == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing id_token"})
		return
	}

	claims, err := verifyGoogleIDToken(c, rawIDToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	if claims.Email == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "google account has no email"})
		return
	}

	user, err := h.findOrCreateGoogleUser(claims)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create user"})
		return
	}

	tokenString, err := h.verifier.Issue(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create token"})
		return
	}

	if config.GOOGLE_FRONTEND_REDIRECT != "" {
		c.Redirect(http.StatusFound, fmt.Sprintf("%s?token=%s", config.GOOGLE_FRONTEND_REDIRECT, tokenString))
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": tokenString})
}

func verifyGoogleIDToken(c *gin.Context, rawIDToken string) (*googleClaims, error) {
	provider, err := oidc.NewProvider(c.Request.Context(), "https://accounts.google.com")
	if err != nil {
		return nil, fmt.Errorf("oidc provider unavailable")
	}

	idToken, err := provider.Verifier(&oidc.Config{ClientID: config.GOOGLE_CLIENT_ID}).
		Verify(c.Request.Context(), rawIDToken)
	if err != nil {
		return nil, fmt.Errorf("invalid id_token")
	}

	var claims googleClaims
	if err := idToken.Claims(&claims); err != nil {
		return nil, fmt.Errorf("unreadable id_token claims")
	}
	return &claims, nil
}

func (h *Handler) findOrCreateGoogleUser(claims *googleClaims) (*users.User, error) {
	var user users.User
	err := h.db.Where("google_sub = ? OR email = ?", claims.Sub, claims.Email).First(&user).Error
	if err == nil {
		if user.GoogleSub == nil {
			sub := claims.Sub
			h.db.Model(&user).Updates(map[string]interface{}{
				"google_sub":    sub,
				"auth_provider": "google",
			})
		}
		return &user, nil
	}

	sub := claims.Sub
	role := "user"
	if config.ADMIN_EMAIL != "" && claims.Email == config.ADMIN_EMAIL {
		role = "admin"
	}
	user = users.User{
		Name:         claims.Name,
		Email:        claims.Email,
		AuthProvider: "google",
		GoogleSub:    &sub,
		Role:         role,
	}
	if err := h.db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
