package database

import (
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

type User struct {
	ID           int64
	Email        string
	PasswordHash string
	Language     string // Display name of the preferred language, e.g. "English", "Hindi"
	Interests    string // Comma-joined interest tags
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (u *User) SetPassword(password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	return nil
}

func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// InterestList splits the stored comma-joined interests into tags,
// dropping empty entries.
func (u *User) InterestList() []string {
	parts := strings.Split(u.Interests, ",")
	interests := make([]string, 0, len(parts))
	for _, p := range parts {
		if tag := strings.TrimSpace(p); tag != "" {
			interests = append(interests, tag)
		}
	}
	return interests
}
