package database

type UserRepository interface {
	GetByEmail(email string) (*User, error)
	GetByID(id int64) (*User, error)
	GetUserCount() (int, error)

	Create(user *User) error
	UpdateProfile(id int64, language string, interests []string) error
}
