package authorrepo

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
	Create(ctx context.Context, a *model.Author) error
	ByID(ctx context.Context, id int64) (*model.Author, error)
	Update(ctx context.Context, a *model.Author) error
	ListAll(ctx context.Context) ([]model.Author, error)
	ListWithBooks(ctx context.Context) ([]model.AuthorBooks, error)
	CountBooks(ctx context.Context, authorID int64) (int64, error)
	Delete(ctx context.Context, id int64) error
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db: db} }

func (r *repo) NameExists(ctx context.Context, name string) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM authors WHERE name = $1)`
	var exists bool
	err := r.db.QueryRowContext(ctx, q, name).Scan(&exists)
	return exists, err
}

func (r *repo) Create(ctx context.Context, a *model.Author) error {
	const q = `
INSERT INTO authors (name, birth_date, biography)
VALUES ($1,$2,$3)
RETURNING id`
	err := r.db.QueryRowContext(ctx, q, a.Name, a.BirthDate, a.Biography).Scan(&a.ID)
	if database.IsUniqueViolation(err) {
		return fault.New(fault.ErrDuplicateKey, "an author with that name already exists")
	}
	return err
}

func (r *repo) ByID(ctx context.Context, id int64) (*model.Author, error) {
	const q = `SELECT id, name, birth_date, biography FROM authors WHERE id = $1`
	a := &model.Author{}
	err := r.db.QueryRowContext(ctx, q, id).Scan(&a.ID, &a.Name, &a.BirthDate, &a.Biography)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (r *repo) Update(ctx context.Context, a *model.Author) error {
	const q = `
UPDATE authors
SET name = $2, birth_date = $3, biography = $4
WHERE id = $1`
	_, err := r.db.ExecContext(ctx, q, a.ID, a.Name, a.BirthDate, a.Biography)
	return err
}

func (r *repo) ListAll(ctx context.Context) ([]model.Author, error) {
	const q = `SELECT id, name, birth_date, biography FROM authors ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Author
	for rows.Next() {
		var a model.Author
		if err := rows.Scan(&a.ID, &a.Name, &a.BirthDate, &a.Biography); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *repo) ListWithBooks(ctx context.Context) ([]model.AuthorBooks, error) {
	const q = `
SELECT a.id, a.name, a.birth_date, a.biography,
       b.id, b.title, b.synopsis, b.publication_year, b.quantity
FROM authors a
LEFT JOIN books b ON b.author_id = a.id
ORDER BY a.id, b.id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.AuthorBooks
	for rows.Next() {
		var (
			a        model.Author
			bookID   sql.NullInt64
			title    sql.NullString
			synopsis sql.NullString
			year     sql.NullInt64
			qty      sql.NullInt64
		)
		if err := rows.Scan(&a.ID, &a.Name, &a.BirthDate, &a.Biography,
			&bookID, &title, &synopsis, &year, &qty); err != nil {
			return nil, err
		}
		if len(out) == 0 || out[len(out)-1].ID != a.ID {
			out = append(out, model.AuthorBooks{Author: a, Books: []model.Book{}})
		}
		if bookID.Valid {
			cur := &out[len(out)-1]
			cur.Books = append(cur.Books, model.Book{
				ID:              bookID.Int64,
				Title:           title.String,
				Synopsis:        synopsis.String,
				PublicationYear: int(year.Int64),
				Quantity:        int(qty.Int64),
				AuthorID:        &a.ID,
			})
		}
	}
	return out, rows.Err()
}

func (r *repo) CountBooks(ctx context.Context, authorID int64) (int64, error) {
	const q = `SELECT COUNT(*) FROM books WHERE author_id = $1`
	var n int64
	err := r.db.QueryRowContext(ctx, q, authorID).Scan(&n)
	return n, err
}

func (r *repo) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM authors WHERE id = $1`
	_, err := r.db.ExecContext(ctx, q, id)
	return err
}
