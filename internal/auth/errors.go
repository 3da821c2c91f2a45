package auth

import "errors"

var (
	// ErrInvalidCredentials возвращается при неверном логине или пароле
	ErrInvalidCredentials = errors.New("auth: invalid credentials")

	// ErrInvalidToken возвращается при невалидном или просроченном токене сессии
	ErrInvalidToken = errors.New("auth: invalid session token")
)
