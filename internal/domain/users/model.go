package users

import "time"

// User es la cuenta de acceso al sistema (independiente del dominio clínico).
type User struct {
	ID       string
	Username string // único

	// Hash bcrypt, nunca el password en claro.
	PasswordHash string

	Email     string
	FirstName string
	LastName  string
	Role      string

	CreatedAt time.Time
}
