package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
)

const issuer = "coursehub"

type JWTServiceInterface interface {
	GenerateJWT(principal Principal, expirationTime time.Time) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}

var (
	ErrInvalidToken       = errors.New("invalid token")
	ErrInvalidTokenClaims = errors.New("invalid token claims")
)

type Claims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	jwt.StandardClaims
}

func (c *Claims) Principal() (Principal, error) {
	id, err := uuid.Parse(c.UserID)
	if err != nil {
		return Principal{}, ErrInvalidTokenClaims
	}
	return Principal{UserID: id, Role: Role(c.Role)}, nil
}

type JWTService struct {
	secret []byte
}

func NewJWTService(secret string) *JWTService {
	return &JWTService{secret: []byte(secret)}
}

func (s *JWTService) GenerateJWT(principal Principal, expirationTime time.Time) (string, error) {
	claims := Claims{
		UserID: principal.UserID.String(),
		Role:   string(principal.Role),
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: expirationTime.Unix(),
			Issuer:    issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || claims.UserID == "" || claims.Issuer != issuer || !Role(claims.Role).Valid() {
		return nil, ErrInvalidTokenClaims
	}

	return claims, nil
}
