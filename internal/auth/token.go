package auth

import (
	"fmt"
	"strconv"
	"sync"
	"time"

	"arte-cultura-backend/internal/domain/users"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Identity is the signed-in principal carried by a verified token.
type Identity struct {
	UID   string
	Email string
	Role  string
}

// Verifier issues and checks the app's HS256 tokens. Sign-out revokes the
// token's jti until its natural expiry.
type Verifier struct {
	secret []byte

	mu      sync.Mutex
	revoked map[string]time.Time
}

func NewVerifier(secret string) *Verifier {
	return &Verifier{
		secret:  []byte(secret),
		revoked: make(map[string]time.Time),
	}
}

func (v *Verifier) Issue(u *users.User) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": u.ID,
		"email":   u.Email,
		"role":    u.Role,
		"jti":     uuid.NewString(),
		"exp":     time.Now().Add(time.Hour * 24).Unix(),
	})
	return token.SignedString(v.secret)
}

// Verify returns the identity behind the token, or an error for anything
// malformed, expired, forged, or revoked.
func (v *Verifier) Verify(tokenString string) (*Identity, error) {
	claims, err := v.parse(tokenString)
	if err != nil {
		return nil, err
	}

	if jti, ok := claims["jti"].(string); ok && v.isRevoked(jti) {
		return nil, fmt.Errorf("token revoked")
	}

	id := &Identity{}
	if email, ok := claims["email"].(string); ok {
		id.Email = email
	}
	if role, ok := claims["role"].(string); ok {
		id.Role = role
	}
	if userIDFloat, ok := claims["user_id"].(float64); ok {
		id.UID = strconv.FormatUint(uint64(userIDFloat), 10)
	}
	return id, nil
}

// Revoke signs the token out. Unparseable tokens are ignored; they can never
// verify anyway.
func (v *Verifier) Revoke(tokenString string) {
	claims, err := v.parse(tokenString)
	if err != nil {
		return
	}
	jti, ok := claims["jti"].(string)
	if !ok || jti == "" {
		return
	}

	exp := time.Now().Add(time.Hour * 24)
	if expFloat, ok := claims["exp"].(float64); ok {
		exp = time.Unix(int64(expFloat), 0)
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	v.revoked[jti] = exp
	for id, e := range v.revoked {
		if time.Now().After(e) {
			delete(v.revoked, id)
		}
	}
}

func (v *Verifier) isRevoked(jti string) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	exp, ok := v.revoked[jti]
	if ok && time.Now().After(exp) {
		delete(v.revoked, jti)
		return false
	}
	return ok
}

func (v *Verifier) parse(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid or expired token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("invalid token claims")
	}
	return claims, nil
}
