package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/endri-fradomos/local-api/internal/infrastructure/config"

	"github.com/golang-jwt/jwt/v4"
)

// InterfaceJWTService defines the JWT service interface
type InterfaceJWTService interface {
	GenerateToken(userID uint, username, role string) (string, error)
	ValidateToken(tokenString string) (*jwt.Token, error)
	ExtractClaims(tokenString string) (*JWTClaims, error)
}

// JWTService provides token signing and verification
type JWTService struct {
	secretKey string
	issuer    string
	expiry    time.Duration
}

// JWTClaims defines the token claim structure
type JWTClaims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// NewJWTService creates a new JWT service
func NewJWTService(cfg *config.Config) InterfaceJWTService {
	expiry := time.Duration(cfg.JWTExpiryHour) * time.Hour
	if expiry <= 0 {
		expiry = 24 * time.Hour
	}
	return &JWTService{
		secretKey: cfg.JWTSecretKey,
		issuer:    "fradomos-local-api",
		expiry:    expiry,
	}
}

// GenerateToken generates a signed JWT token
func (s *JWTService) GenerateToken(userID uint, username, role string) (string, error) {
	expirationTime := time.Now().Add(s.expiry)

	claims := &JWTClaims{
		UserID:   userID,
		Username: username,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			Issuer:    s.issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secretKey))
}

// ValidateToken validates a JWT token
func (s *JWTService) ValidateToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.secretKey), nil
	})
}

// ExtractClaims extracts the claims from a token
func (s *JWTService) ExtractClaims(tokenString string) (*JWTClaims, error) {
	token, err := s.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}

	jwtClaims := &JWTClaims{}

	if userID, ok := claims["user_id"].(float64); ok {
		jwtClaims.UserID = uint(userID)
	}
	if username, ok := claims["username"].(string); ok {
		jwtClaims.Username = username
	}
	if role, ok := claims["role"].(string); ok {
		jwtClaims.Role = role
	}
	if issuer, ok := claims["iss"].(string); ok {
		jwtClaims.Issuer = issuer
	}

	return jwtClaims, nil
}
