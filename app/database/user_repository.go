package database

import (
	"database/sql"
	"fmt"
	"strings"
)

var _ UserRepository = (*UserRepositoryImpl)(nil)

type UserRepositoryImpl struct {
	db *DB
}

func NewUserRepository(db *DB) *UserRepositoryImpl {
	return &UserRepositoryImpl{db: db}
}

func (r *UserRepositoryImpl) GetByEmail(email string) (*User, error) {
	row := r.db.QueryRow(`
		SELECT id, email, password_hash, language, interests, created_at, updated_at
		FROM users
		WHERE email = ?
	`, email)

	return scanUser(row)
}

func (r *UserRepositoryImpl) GetByID(id int64) (*User, error) {
	row := r.db.QueryRow(`
		SELECT id, email, password_hash, language, interests, created_at, updated_at
		FROM users
		WHERE id = ?
	`, id)

	return scanUser(row)
}

func (r *UserRepositoryImpl) GetUserCount() (int, error) {
	var count int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}

func (r *UserRepositoryImpl) Create(user *User) error {
	err := r.db.QueryRow(`
		INSERT INTO users (email, password_hash)
		VALUES (?, ?)
		RETURNING id, language, interests, created_at, updated_at
	`, user.Email, user.PasswordHash).Scan(
		&user.ID, &user.Language, &user.Interests, &user.CreatedAt, &user.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

func (r *UserRepositoryImpl) UpdateProfile(id int64, language string, interests []string) error {
	result, err := r.db.Exec(`
		UPDATE users
		SET language = ?, interests = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`, language, strings.Join(interests, ","), id)

	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("user %d not found", id)
	}

	return nil
}

func scanUser(row *sql.Row) (*User, error) {
	var user User
	err := row.Scan(&user.ID, &user.Email, &user.PasswordHash,
		&user.Language, &user.Interests, &user.CreatedAt, &user.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan user: %w", err)
	}
	return &user, nil
}
