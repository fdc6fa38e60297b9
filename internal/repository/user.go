package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"shopmatic/internal/entity"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db}
}

// GetByID returns nil, nil when no such user exists.
func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	query := `SELECT id, name, email, photo, gender, dob, role, created_at FROM users WHERE id = ?`

	user := &entity.User{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&user.ID, &user.Name, &user.Email, &user.Photo, &user.Gender, &user.DOB, &user.Role, &user.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *UserRepository) Create(ctx context.Context, user *entity.User) (*entity.User, error) {
	user.CreatedAt = time.Now()

	query := `INSERT INTO users (id, name, email, photo, gender, dob, role, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		user.ID, user.Name, user.Email, user.Photo, user.Gender, user.DOB, user.Role, user.CreatedAt)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *UserRepository) All(ctx context.Context) ([]*entity.User, error) {
	query := `SELECT id, name, email, photo, gender, dob, role, created_at FROM users`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*entity.User
	for rows.Next() {
		user := &entity.User{}
		err := rows.Scan(&user.ID, &user.Name, &user.Email, &user.Photo, &user.Gender, &user.DOB, &user.Role, &user.CreatedAt)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id)
	return err
}

func (r *UserRepository) CountAll(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM users`)
}

func (r *UserRepository) CountByGender(ctx context.Context, gender string) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM users WHERE gender = ?`, gender)
}

func (r *UserRepository) CountByRole(ctx context.Context, role string) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM users WHERE role = ?`, role)
}

func (r *UserRepository) CountCreatedBetween(ctx context.Context, from, to time.Time) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM users WHERE created_at BETWEEN ? AND ?`, from, to)
}

func (r *UserRepository) CreatedSince(ctx context.Context, since time.Time) ([]time.Time, error) {
	return scanTimes(ctx, r.db, `SELECT created_at FROM users WHERE created_at >= ?`, since)
}

// DOBs returns every user's date of birth for the age-group breakdown.
func (r *UserRepository) DOBs(ctx context.Context) ([]time.Time, error) {
	return scanTimes(ctx, r.db, `SELECT dob FROM users`)
}

func (r *UserRepository) count(ctx context.Context, query string, args ...interface{}) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&n)
	return n, err
}

func scanTimes(ctx context.Context, db *sql.DB, query string, args ...interface{}) ([]time.Time, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var times []time.Time
	for rows.Next() {
		var t time.Time
		if err := rows.Scan(&t); err != nil {
			return nil, err
		}
		times = append(times, t)
	}
	return times, rows.Err()
}
