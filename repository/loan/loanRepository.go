package loanrepo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/carolinaIbarra2/gestionBiblioteca/model"
)

type Repo interface {
	Create(ctx context.Context, l *model.Loan) error
	ByID(ctx context.Context, id int64) (*model.Loan, error)
	UpdateDates(ctx context.Context, id int64, start, due time.Time) error
	List(ctx context.Context) ([]model.LoanDetail, error)
	Delete(ctx context.Context, id int64) error
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db: db} }

func (r *repo) Create(ctx context.Context, l *model.Loan) error {
	const q = `
INSERT INTO loans (start_date, due_date, user_id, book_id)
VALUES ($1,$2,$3,$4)
RETURNING id`
	return r.db.QueryRowContext(ctx, q, l.StartDate, l.DueDate, l.UserID, l.BookID).Scan(&l.ID)
}

func (r *repo) ByID(ctx context.Context, id int64) (*model.Loan, error) {
	const q = `SELECT id, start_date, due_date, user_id, book_id FROM loans WHERE id = $1`
	l := &model.Loan{}
	err := r.db.QueryRowContext(ctx, q, id).Scan(&l.ID, &l.StartDate, &l.DueDate, &l.UserID, &l.BookID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return l, nil
}

func (r *repo) UpdateDates(ctx context.Context, id int64, start, due time.Time) error {
	const q = `UPDATE loans SET start_date = $2, due_date = $3 WHERE id = $1`
	_, err := r.db.ExecContext(ctx, q, id, start, due)
	return err
}

func (r *repo) List(ctx context.Context) ([]model.LoanDetail, error) {
	const q = `
SELECT l.id, l.start_date, l.due_date, l.user_id, l.book_id,
       COALESCE(b.title, ''), COALESCE(u.name, ''), COALESCE(u.email, '')
FROM loans l
LEFT JOIN books b ON b.id = l.book_id
LEFT JOIN users u ON u.id = l.user_id
ORDER BY l.id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.LoanDetail
	for rows.Next() {
		var d model.LoanDetail
		if err := rows.Scan(&d.ID, &d.StartDate, &d.DueDate, &d.UserID, &d.BookID,
			&d.BookTitle, &d.UserName, &d.UserEmail); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *repo) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM loans WHERE id = $1`
	_, err := r.db.ExecContext(ctx, q, id)
	return err
}
