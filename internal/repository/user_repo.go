package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"blogapi/internal/models"
)

type UserSQLite struct {
	db *sql.DB
}

func NewUserSQLite(db *sql.DB) *UserSQLite {
	return &UserSQLite{db: db}
}

// Ensure implementation of UserRepo interface at compile time.
var _ UserRepo = (*UserSQLite)(nil)

// ErrEmptyUpdate is returned by Update when no column was set.
var ErrEmptyUpdate = errors.New("empty user update")

const (
	userColumns = `id, username, email, password_hash, role, created_at`

	insertUserSQL        = `INSERT INTO users (username, email, password_hash, role, created_at) VALUES (?, ?, ?, ?, ?)`
	selectUserByIDSQL    = `SELECT ` + userColumns + ` FROM users WHERE id = ?`
	selectUserByEmailSQL = `SELECT ` + userColumns + ` FROM users WHERE email = ?`
	selectUserExistsSQL  = `SELECT EXISTS(SELECT 1 FROM users WHERE email = ? OR username = ?)`
	selectUsersSQL       = `SELECT ` + userColumns + ` FROM users ORDER BY id ASC`
	deleteUserSQL        = `DELETE FROM users WHERE id = ?`
)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(s rowScanner) (models.User, error) {
	var u models.User
	err := s.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt)
	u.CreatedAt = u.CreatedAt.UTC()
	return u, err
}

// Create inserts a new user and returns its ID. Role defaults to "user"
// and CreatedAt to now when unset.
func (r *UserSQLite) Create(ctx context.Context, u models.User) (int, error) {
	if u.Role == "" {
		u.Role = models.RoleUser
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}
	res, err := r.db.ExecContext(ctx, insertUserSQL, u.Username, u.Email, u.PasswordHash, u.Role, u.CreatedAt.UTC())
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("insert user %q: %w", u.Username, ErrDuplicate)
		}
		return 0, fmt.Errorf("insert user %q: %w", u.Username, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for user %q: %w", u.Username, err)
	}
	return int(lastID), nil
}

func (r *UserSQLite) GetByID(ctx context.Context, id int) (*models.User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx, selectUserByIDSQL, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select user %d: %w", id, err)
	}
	return &u, nil
}

func (r *UserSQLite) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx, selectUserByEmailSQL, email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select user by email: %w", err)
	}
	return &u, nil
}

func (r *UserSQLite) ExistsByEmailOrUsername(ctx context.Context, email, username string) (bool, error) {
	var exists bool
	if err := r.db.QueryRowContext(ctx, selectUserExistsSQL, email, username).Scan(&exists); err != nil {
		return false, fmt.Errorf("check user exists: %w", err)
	}
	return exists, nil
}

func (r *UserSQLite) List(ctx context.Context) ([]models.User, error) {
	rows, err := r.db.QueryContext(ctx, selectUsersSQL)
	if err != nil {
		return nil, fmt.Errorf("select users: %w", err)
	}
	defer rows.Close()

	out := make([]models.User, 0, 16)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}
	return out, nil
}

// Update writes the columns set on upd. It reports false when no row has the id.
func (r *UserSQLite) Update(ctx context.Context, id int, upd *UserUpdate) (bool, error) {
	if upd.Empty() {
		return false, ErrEmptyUpdate
	}
	q, args := upd.build(id)
	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		cols := strings.Join(upd.Fields(), ", ")
		if isUniqueViolation(err) {
			return false, fmt.Errorf("update user %d (%s): %w", id, cols, ErrDuplicate)
		}
		return false, fmt.Errorf("update user %d (%s): %w", id, cols, err)
	}
	ok, err := rowsAffected(res)
	if err != nil {
		return false, fmt.Errorf("update user %d rows affected: %w", id, err)
	}
	return ok, nil
}

// Delete removes a user. It reports false when no row has the id.
func (r *UserSQLite) Delete(ctx context.Context, id int) (bool, error) {
	res, err := r.db.ExecContext(ctx, deleteUserSQL, id)
	if err != nil {
		return false, fmt.Errorf("delete user %d: %w", id, err)
	}
	ok, err := rowsAffected(res)
	if err != nil {
		return false, fmt.Errorf("delete user %d rows affected: %w", id, err)
	}
	return ok, nil
}
