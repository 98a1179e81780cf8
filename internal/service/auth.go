package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"employee-admin/internal/models"
)

// SessionTTL is the validity window of an issued session token.
const SessionTTL = 24 * time.Hour

// CredentialStore is the lookup boundary for login principals.
type CredentialStore interface {
	GetByUserName(ctx context.Context, userName string) (models.Credential, error)
}

// AuthService checks credentials and issues/verifies session tokens.
type AuthService struct {
	creds  CredentialStore
	secret []byte
	now    func() time.Time
}

func NewAuthService(creds CredentialStore, secret string) *AuthService {
	return &AuthService{creds: creds, secret: []byte(secret), now: time.Now}
}

// Login looks the credential up, compares the password against the
// stored bcrypt hash, and on success issues a signed session token
// valid for one day.
func (a *AuthService) Login(ctx context.Context, userName, password string) (string, models.Credential, error) {
	cred, err := a.creds.GetByUserName(ctx, userName)
	if err != nil {
		return "", models.Credential{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(password)); err != nil {
		return "", models.Credential{}, models.ErrInvalidCredential
	}

	now := a.now()
	claims := models.SessionClaims{
		UserID:   cred.Sno,
		UserName: cred.UserName,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(cred.Sno, 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(SessionTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
	if err != nil {
		return "", models.Credential{}, err
	}
	return token, cred, nil
}

// VerifySession validates the token's signature and expiry and returns
// its claims. Presence alone is never sufficient.
func (a *AuthService) VerifySession(token string) (*models.SessionClaims, error) {
	parsed, err := jwt.ParseWithClaims(token, &models.SessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return a.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := parsed.Claims.(*models.SessionClaims)
	if !ok || !parsed.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
