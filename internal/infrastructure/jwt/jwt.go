package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/glueflow/automation-api/internal/domain"
	"github.com/glueflow/automation-api/internal/infrastructure/config"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionClaims is the decoded identity carried by a session token.
type SessionClaims struct {
	SessionID string
	UserID    string
	FullName  string
	Role      string
	ExpiresAt time.Time
}

// Sessions issues and validates HS256 session tokens for authenticated
// operators.
type Sessions struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

func NewSessions(cfg *config.Config) (*Sessions, error) {
	if cfg.SessionSecret == "" {
		return nil, fmt.Errorf("session secret not configured")
	}
	return &Sessions{
		secret: []byte(cfg.SessionSecret),
		issuer: cfg.SessionIssuer,
		ttl:    cfg.SessionTTL,
	}, nil
}

func NewSessionsWithSecret(secret, issuer string, ttl time.Duration) *Sessions {
	return &Sessions{secret: []byte(secret), issuer: issuer, ttl: ttl}
}

// Issue mints a session token for the user.
func (s *Sessions) Issue(user domain.UserInfo) (string, time.Time, error) {
	now := time.Now()
	expires := now.Add(s.ttl)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"jti":  uuid.New().String(),
		"sub":  fmt.Sprintf("%d", user.ID),
		"name": user.FullName(),
		"role": user.Role,
		"iss":  s.issuer,
		"iat":  now.Unix(),
		"exp":  expires.Unix(),
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign session token: %w", err)
	}
	return signed, expires, nil
}

// Validate parses and verifies a session token.
func (s *Sessions) Validate(tokenString string) (*SessionClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("%w: unexpected signing method %v", domain.ErrSessionInvalid, token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithIssuer(s.issuer))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrSessionExpired
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrSessionInvalid, err)
	}
	if !token.Valid {
		return nil, domain.ErrSessionInvalid
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, domain.ErrSessionInvalid
	}

	claims := &SessionClaims{
		SessionID: stringClaim(mapClaims, "jti"),
		UserID:    stringClaim(mapClaims, "sub"),
		FullName:  stringClaim(mapClaims, "name"),
		Role:      stringClaim(mapClaims, "role"),
	}
	if exp, ok := mapClaims["exp"].(float64); ok {
		claims.ExpiresAt = time.Unix(int64(exp), 0)
	}
	return claims, nil
}

func stringClaim(claims jwt.MapClaims, key string) string {
	if v, ok := claims[key].(string); ok {
		return v
	}
	return ""
}
