package models

// User represents a registered account. The password hash never leaves the
// service; external responses use the Public projection.
type User struct {
	ID           int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Username     string `json:"username" gorm:"uniqueIndex;type:varchar(100)"`
	Name         string `json:"name" gorm:"type:varchar(255)"`
	Email        string `json:"email" gorm:"type:varchar(255)"`
	PasswordHash string `json:"-" gorm:"type:varchar(255)"`
}

// PublicUser is the record view with sensitive fields stripped.
type PublicUser struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Email    string `json:"email"`
}

// Public strips the password hash for external exposure.
func (u User) Public() PublicUser {
	return PublicUser{
		ID:       u.ID,
		Username: u.Username,
		Name:     u.Name,
		Email:    u.Email,
	}
}
