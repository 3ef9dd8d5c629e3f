package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/studyspaces/classroom-reservation/internal/model"
	"github.com/studyspaces/classroom-reservation/internal/utils"
)

// Account mirrors the 'users' table.
type Account struct {
	ID           uint64
	Name         string
	Email        string
	PasswordHash string
	Role         model.Role
	ProfilePic   string
	StudentID    string
}

// User converts the stored account into the session identity shape.
func (a Account) User() model.User {
	return model.User{
		Name:       a.Name,
		Email:      a.Email,
		Role:       a.Role,
		ProfilePic: a.ProfilePic,
		StudentID:  a.StudentID,
	}
}

type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

// Create inserts an account and returns it.  The email is normalized
// to lower case before storage so lookups are case-insensitive.
func (r *UserRepo) Create(ctx context.Context, name, email, password string, role model.Role, studentID string, cost int) (Account, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return Account{}, err
	}
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO users (name, email, password_hash, role, profile_pic, student_id) VALUES (?,?,?,?,?,?)",
		name, email, hash, string(role), "", studentID)
	if err != nil {
		// MySQL duplicate-key error code.
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return Account{}, ErrEmailExists
		}
		return Account{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return Account{}, err
	}
	return Account{
		ID:           uint64(id),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		StudentID:    studentID,
	}, nil
}

// GetByEmail fetches an account by normalized email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (Account, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	var a Account
	var role string
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,name,email,password_hash,role,profile_pic,student_id FROM users WHERE email=? LIMIT 1",
		email).Scan(&a.ID, &a.Name, &a.Email, &a.PasswordHash, &role, &a.ProfilePic, &a.StudentID)
	if err == sql.ErrNoRows {
		return Account{}, ErrUserNotFound
	}
	if err != nil {
		return Account{}, err
	}
	a.Role = model.Role(role)
	return a, nil
}

// UpdateProfile persists the mutable profile fields for an account.
func (r *UserRepo) UpdateProfile(ctx context.Context, email, name, profilePic, studentID string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	_, err := r.DB.ExecContext(ctx,
		"UPDATE users SET name=?, profile_pic=?, student_id=? WHERE email=?",
		name, profilePic, studentID, email)
	return err
}
