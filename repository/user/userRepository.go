package userrepo

import (
	"context"
	"database/sql"
	"errors"

	"github.com/carolinaIbarra2/gestionBiblioteca/model"
	"github.com/carolinaIbarra2/gestionBiblioteca/util/database"
	"github.com/carolinaIbarra2/gestionBiblioteca/util/fault"
)

type Repo interface {
	NameExists(ctx context.Context, name string) (bool, error)
	Create(ctx context.Context, u *model.User) error
	ByID(ctx context.Context, id int64) (*model.User, error)
	ByName(ctx context.Context, name string) (*model.User, error)
	Update(ctx context.Context, u *model.User) error
	ListAll(ctx context.Context) ([]model.User, error)
	DetailWithLoans(ctx context.Context, id int64) (*model.UserDetail, error)
	CountLoans(ctx context.Context, userID int64) (int64, error)
	Delete(ctx context.Context, id int64) error
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db: db} }

func (r *repo) NameExists(ctx context.Context, name string) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM users WHERE name = $1)`
	var exists bool
	err := r.db.QueryRowContext(ctx, q, name).Scan(&exists)
	return exists, err
}

func (r *repo) Create(ctx context.Context, u *model.User) error {
	const q = `
INSERT INTO users (name, email)
VALUES ($1,$2)
RETURNING id`
	err := r.db.QueryRowContext(ctx, q, u.Name, u.Email).Scan(&u.ID)
	if database.IsUniqueViolation(err) {
		return fault.New(fault.ErrDuplicateKey, "a user with that name already exists")
	}
	return err
}

func (r *repo) ByID(ctx context.Context, id int64) (*model.User, error) {
	const q = `SELECT id, name, email FROM users WHERE id = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, q, id))
}

func (r *repo) ByName(ctx context.Context, name string) (*model.User, error) {
	const q = `SELECT id, name, email FROM users WHERE name = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, q, name))
}

func (r *repo) scanOne(row *sql.Row) (*model.User, error) {
	u := &model.User{}
	err := row.Scan(&u.ID, &u.Name, &u.Email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *repo) Update(ctx context.Context, u *model.User) error {
	const q = `UPDATE users SET name = $2, email = $3 WHERE id = $1`
	_, err := r.db.ExecContext(ctx, q, u.ID, u.Name, u.Email)
	return err
}

func (r *repo) ListAll(ctx context.Context) ([]model.User, error) {
	const q = `SELECT id, name, email FROM users ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r *repo) DetailWithLoans(ctx context.Context, id int64) (*model.UserDetail, error) {
	u, err := r.ByID(ctx, id)
	if err != nil || u == nil {
		return nil, err
	}

	const q = `
SELECT l.start_date, l.due_date, COALESCE(b.title, '')
FROM loans l
LEFT JOIN books b ON b.id = l.book_id
WHERE l.user_id = $1
ORDER BY l.id`
	rows, err := r.db.QueryContext(ctx, q, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	d := &model.UserDetail{User: *u, Loans: []model.UserLoan{}}
	for rows.Next() {
		var ul model.UserLoan
		if err := rows.Scan(&ul.StartDate, &ul.DueDate, &ul.BookTitle); err != nil {
			return nil, err
		}
		d.Loans = append(d.Loans, ul)
	}
	return d, rows.Err()
}

func (r *repo) CountLoans(ctx context.Context, userID int64) (int64, error) {
	const q = `SELECT COUNT(*) FROM loans WHERE user_id = $1`
	var n int64
	err := r.db.QueryRowContext(ctx, q, userID).Scan(&n)
	return n, err
}

func (r *repo) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM users WHERE id = $1`
	_, err := r.db.ExecContext(ctx, q, id)
	return err
}
