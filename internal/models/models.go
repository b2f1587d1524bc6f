package models

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// ErrPasswordNotReadable is returned on any attempt to read a user's
// password. Only the hash is stored; the plaintext is write-only.
var ErrPasswordNotReadable = errors.New("password is not a readable attribute")

type User struct {
	ID           int64          `json:"id" db:"id"`
	Username     string         `json:"username" db:"username"`
	Email        sql.NullString `json:"email,omitempty" db:"email"`
	PasswordHash string         `json:"-" db:"password_hash"`
	IsAdmin      bool           `json:"isAdmin" db:"is_admin"`
}

// SetPassword hashes the plaintext with bcrypt and stores the result.
// The plaintext itself is never kept.
func (u *User) SetPassword(plaintext string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}
	u.PasswordHash = string(hash)
	return nil
}

// VerifyPassword reports whether the plaintext matches the stored hash.
// A mismatch is not an error, it is just false.
func (u *User) VerifyPassword(plaintext string) bool {
	if u.PasswordHash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(plaintext)) == nil
}

// Password always fails. Reading the password by name is an explicit
// error instead of silently handing back the hash.
func (u *User) Password() (string, error) {
	return "", ErrPasswordNotReadable
}

func (u *User) String() string {
	return fmt.Sprintf("<User %s, is admin %t>", u.Username, u.IsAdmin)
}

type Post struct {
	ID       int64         `json:"id" db:"id"`
	Title    string        `json:"title" db:"title"`
	Summary  string        `json:"summary" db:"summary"`
	Body     string        `json:"body" db:"body"`
	Created  time.Time     `json:"created" db:"created"`
	Modified sql.NullTime  `json:"modified,omitempty" db:"modified"`
	PubDate  sql.NullTime  `json:"pubDate,omitempty" db:"pub_date"`
	Author   sql.NullInt64 `json:"author,omitempty" db:"author"`
	Slug     string        `json:"slug" db:"slug"`
}

// VisibleAt reports whether the post is published as of t:
// pub_date is set and not in the future.
func (p *Post) VisibleAt(t time.Time) bool {
	return p.PubDate.Valid && !p.PubDate.Time.After(t)
}

// IsVisible reports whether the post is published right now.
// Recomputed on every call since "now" advances.
func (p *Post) IsVisible() bool {
	return p.VisibleAt(time.Now())
}

func (p *Post) String() string {
	return fmt.Sprintf("<Entry for: %s>", p.Title)
}

type Page struct {
	ID       int64        `json:"id" db:"id"`
	Title    string       `json:"title" db:"title"`
	Text     string       `json:"text" db:"text"`
	Created  time.Time    `json:"created" db:"created"`
	Modified sql.NullTime `json:"modified,omitempty" db:"modified"`
}

func (p *Page) String() string {
	return fmt.Sprintf("<%s>", p.Title)
}

// Session is a refresh-token session. Kept in its own table so the users
// table layout stays untouched.
type Session struct {
	Token   string    `json:"token" db:"token"`
	UserID  int64     `json:"userId" db:"user_id"`
	Expires time.Time `json:"expires" db:"expires"`
	Created time.Time `json:"created" db:"created"`
}
