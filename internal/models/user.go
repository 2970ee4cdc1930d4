package models

// Role is the access level attached to a user and carried by their session.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}

// User is an entry of the credential table.
type User struct {
	Username     string `json:"username" gorm:"primaryKey;type:varchar(100)"`
	PasswordHash string `json:"-" gorm:"type:varchar(255);not null"` // bcrypt verifier, never the plaintext
	Role         Role   `json:"role" gorm:"type:varchar(10);not null;default:'user'"`
}
