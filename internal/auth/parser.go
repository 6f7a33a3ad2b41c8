package auth

import (
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/nurpe/ops-backend/internal/model"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims is the payload of the access tokens issued by the identity
// provider.
type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

type Parser struct {
	secret []byte
}

func NewParser(secret string) *Parser {
	return &Parser{secret: []byte(secret)}
}

func (p *Parser) Parse(token string) (model.Principal, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(strings.TrimSpace(token), claims, func(t *jwt.Token) (interface{}, error) {
		return p.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return model.Principal{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !parsed.Valid {
		return model.Principal{}, ErrInvalidToken
	}
	if strings.TrimSpace(claims.Email) == "" {
		return model.Principal{}, fmt.Errorf("%w: missing email claim", ErrInvalidToken)
	}

	return model.Principal{
		Subject: claims.Subject,
		Email:   strings.TrimSpace(claims.Email),
		Role:    claims.Role,
	}, nil
}

// Sign issues an HS256 token for claims. Used by tooling and tests; the
// service itself only verifies tokens.
func (p *Parser) Sign(claims Claims) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(p.secret)
}
