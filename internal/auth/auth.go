// Package auth выдает и проверяет сессионные токены администратора.
// Пароль хранится только как bcrypt-хеш в конфигурации, токен - подписанный
// HS256 JWT с ролью admin.
package auth

import (
	"crypto/subtle"
	"fmt"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// RoleAdmin единственная роль, которую выдает сервис
const RoleAdmin = "admin"

// Claims полезная нагрузка сессионного токена
type Claims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwtlib.RegisteredClaims
}

// Manager проверяет учетные данные администратора и управляет токенами сессии
type Manager struct {
	username     string
	passwordHash []byte
	secret       []byte
	ttl          time.Duration
}

// NewManager создает менеджер сессий администратора
func NewManager(username, passwordHash, secret string, ttl time.Duration) *Manager {
	return &Manager{
		username:     username,
		passwordHash: []byte(passwordHash),
		secret:       []byte(secret),
		ttl:          ttl,
	}
}

// Login проверяет учетные данные и выдает токен сессии
func (m *Manager) Login(username, password string) (string, error) {
	// Сравнение имени константным временем, чтобы не раскрывать его перебором
	if subtle.ConstantTimeCompare([]byte(username), []byte(m.username)) != 1 {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(m.passwordHash, []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}
	return m.issue(username)
}

// Verify проверяет подпись и срок действия токена и возвращает claims
func (m *Manager) Verify(tokenStr string) (*Claims, error) {
	token, err := jwtlib.ParseWithClaims(tokenStr, &Claims{}, func(t *jwtlib.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwtlib.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("%w: unexpected signing method %v", ErrInvalidToken, t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Role != RoleAdmin {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

func (m *Manager) issue(username string) (string, error) {
	now := time.Now()
	claims := Claims{
		Username: username,
		Role:     RoleAdmin,
		RegisteredClaims: jwtlib.RegisteredClaims{
			IssuedAt:  jwtlib.NewNumericDate(now),
			ExpiresAt: jwtlib.NewNumericDate(now.Add(m.ttl)),
		},
	}

	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("auth: sign token: %w", err)
	}
	return signed, nil
}

// HashPassword возвращает bcrypt-хеш пароля для записи в конфигурацию
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("auth: hash password: %w", err)
	}
	return string(hash), nil
}
