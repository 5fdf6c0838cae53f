package auth

import (
	"context"
	"database/sql"
	"time"
)

// User matches the users table shape.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Users is the users table.
type Users struct{ db *sql.DB }

// NewUsers wraps an opened, migrated database.
func NewUsers(db *sql.DB) *Users { return &Users{db: db} }

// Create validates input, checks uniqueness, hashes the password and inserts
// a new user.
func (u *Users) Create(ctx context.Context, username, pw string) (*User, error) {
	username = NormalizeUsername(username)
	if err := ValidateSignup(username, pw); err != nil {
		return nil, err
	}
	var exists int
	err := u.db.QueryRowContext(ctx, `SELECT 1 FROM users WHERE lower(username)=lower(?)`, username).Scan(&exists)
	if err == nil {
		return nil, ErrUsernameTaken
	}
	if err != sql.ErrNoRows {
		return nil, err
	}
	h, err := HashPassword(pw)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC().Truncate(time.Second)
	user := &User{ID: genID(), Username: username, PasswordHash: h, CreatedAt: now}
	if _, err := u.db.ExecContext(ctx, `INSERT INTO users (id, username, password_hash, created_at) VALUES (?,?,?,?)`,
		user.ID, user.Username, user.PasswordHash, now.Format(time.RFC3339)); err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate returns the user when the password matches.
func (u *Users) Authenticate(ctx context.Context, username, pw string) (*User, error) {
	user, err := u.scan(u.db.QueryRowContext(ctx, `SELECT id, username, password_hash, created_at
	                                              FROM users WHERE lower(username)=lower(?)`, NormalizeUsername(username)))
	if err != nil || !CheckPassword(user.PasswordHash, pw) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// ByID loads a user or returns sql.ErrNoRows.
func (u *Users) ByID(ctx context.Context, id string) (*User, error) {
	return u.scan(u.db.QueryRowContext(ctx, `SELECT id, username, password_hash, created_at
	                                         FROM users WHERE id=?`, id))
}

func (u *Users) scan(row *sql.Row) (*User, error) {
	var user User
	var created string
	if err := row.Scan(&user.ID, &user.Username, &user.PasswordHash, &created); err != nil {
		return nil, err
	}
	user.CreatedAt, _ = time.Parse(time.RFC3339, created)
	return &user, nil
}
