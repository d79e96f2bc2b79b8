package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"product-api/internal/model"
)

type TokenClaims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies HS256-signed bearer tokens. It is
// stateless; a verified token's claims are trusted until expiry with no
// revocation path.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

func (s *TokenService) Issue(userID string, email string) (string, error) {
	now := s.now().UTC()

	claims := TokenClaims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify checks signature and expiry. Malformed input, a signature mismatch
// and an expired token are indistinguishable to the caller; all return
// ok=false.
func (s *TokenService) Verify(tokenString string) (model.Identity, bool) {
	claims := &TokenClaims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(func() time.Time { return s.now() }))
	if err != nil || !parsed.Valid {
		return model.Identity{}, false
	}

	if claims.UserID == "" {
		return model.Identity{}, false
	}

	return model.Identity{UserID: claims.UserID, Email: claims.Email}, true
}
