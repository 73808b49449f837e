package bookrepo

import (
	"context"
	"database/sql"
	"errors"

	"github.com/carolinaIbarra2/gestionBiblioteca/model"
	"github.com/carolinaIbarra2/gestionBiblioteca/util/database"
	"github.com/carolinaIbarra2/gestionBiblioteca/util/fault"
)

type Repo interface {
	TitleExists(ctx context.Context, title string) (bool, error)
	// Create inserts the book and its category link as one unit of work.
	Create(ctx context.Context, b *model.Book, categoryID int64) error
	ByID(ctx context.Context, id int64) (*model.Book, error)
	ByTitle(ctx context.Context, title string) (*model.Book, error)
	Detail(ctx context.Context, id int64) (*model.BookDetail, error)
	List(ctx context.Context) ([]model.BookDetail, error)
	ListWithLoans(ctx context.Context) ([]model.BookLoans, error)
	// Update replaces quantity and the author link. A nil authorID detaches
	// the book from its author.
	Update(ctx context.Context, id int64, quantity int, authorID *int64) error
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db: db} }

func (r *repo) TitleExists(ctx context.Context, title string) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM books WHERE title = $1)`
	var exists bool
	err := r.db.QueryRowContext(ctx, q, title).Scan(&exists)
	return exists, err
}

func (r *repo) Create(ctx context.Context, b *model.Book, categoryID int64) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	const ins = `
INSERT INTO books (title, synopsis, publication_year, quantity, author_id)
VALUES ($1,$2,$3,$4,$5)
RETURNING id`
	err = tx.QueryRowContext(ctx, ins, b.Title, b.Synopsis, b.PublicationYear, b.Quantity, b.AuthorID).Scan(&b.ID)
	if database.IsUniqueViolation(err) {
		return fault.New(fault.ErrDuplicateKey, "a book with that title already exists")
	}
	if err != nil {
		return err
	}

	const link = `INSERT INTO book_categories (book_id, category_id) VALUES ($1,$2)`
	if _, err = tx.ExecContext(ctx, link, b.ID, categoryID); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *repo) ByID(ctx context.Context, id int64) (*model.Book, error) {
	const q = `SELECT id, title, synopsis, publication_year, quantity, author_id FROM books WHERE id = $1`
	b := &model.Book{}
	err := r.db.QueryRowContext(ctx, q, id).Scan(&b.ID, &b.Title, &b.Synopsis, &b.PublicationYear, &b.Quantity, &b.AuthorID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (r *repo) ByTitle(ctx context.Context, title string) (*model.Book, error) {
	const q = `SELECT id, title, synopsis, publication_year, quantity, author_id FROM books WHERE title = $1`
	b := &model.Book{}
	err := r.db.QueryRowContext(ctx, q, title).Scan(&b.ID, &b.Title, &b.Synopsis, &b.PublicationYear, &b.Quantity, &b.AuthorID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (r *repo) Detail(ctx context.Context, id int64) (*model.BookDetail, error) {
	rows, err := r.queryDetails(ctx, `WHERE b.id = $1`, id)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

func (r *repo) List(ctx context.Context) ([]model.BookDetail, error) {
	return r.queryDetails(ctx, "")
}

func (r *repo) queryDetails(ctx context.Context, where string, args ...any) ([]model.BookDetail, error) {
	q := `
SELECT b.id, b.title, b.synopsis, b.publication_year, b.quantity, b.author_id,
       a.id, a.name, a.birth_date, a.biography,
       c.id, c.name, c.description
FROM books b
LEFT JOIN authors a ON a.id = b.author_id
LEFT JOIN book_categories bc ON bc.book_id = b.id
LEFT JOIN categories c ON c.id = bc.category_id
` + where + `
ORDER BY b.id, c.id`
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.BookDetail
	for rows.Next() {
		var (
			b        model.Book
			aID      sql.NullInt64
			aName    sql.NullString
			aBirth   sql.NullTime
			aBio     sql.NullString
			cID      sql.NullInt64
			cName    sql.NullString
			cDesc    sql.NullString
		)
		if err := rows.Scan(&b.ID, &b.Title, &b.Synopsis, &b.PublicationYear, &b.Quantity, &b.AuthorID,
			&aID, &aName, &aBirth, &aBio, &cID, &cName, &cDesc); err != nil {
			return nil, err
		}
		if len(out) == 0 || out[len(out)-1].ID != b.ID {
			d := model.BookDetail{Book: b, Categories: []model.Category{}}
			if aID.Valid {
				d.Author = &model.Author{ID: aID.Int64, Name: aName.String, BirthDate: aBirth.Time, Biography: aBio.String}
			}
			out = append(out, d)
		}
		if cID.Valid {
			cur := &out[len(out)-1]
			cur.Categories = append(cur.Categories, model.Category{ID: cID.Int64, Name: cName.String, Description: cDesc.String})
		}
	}
	return out, rows.Err()
}

func (r *repo) ListWithLoans(ctx context.Context) ([]model.BookLoans, error) {
	const q = `
SELECT b.id, b.title, b.synopsis, b.publication_year, b.quantity, b.author_id,
       l.id, l.start_date, l.due_date
FROM books b
LEFT JOIN loans l ON l.book_id = b.id
ORDER BY b.id, l.id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.BookLoans
	for rows.Next() {
		var (
			b      model.Book
			loanID sql.NullInt64
			start  sql.NullTime
			due    sql.NullTime
		)
		if err := rows.Scan(&b.ID, &b.Title, &b.Synopsis, &b.PublicationYear, &b.Quantity, &b.AuthorID,
			&loanID, &start, &due); err != nil {
			return nil, err
		}
		if len(out) == 0 || out[len(out)-1].ID != b.ID {
			out = append(out, model.BookLoans{Book: b, Loans: []model.BookLoan{}})
		}
		if loanID.Valid {
			cur := &out[len(out)-1]
			cur.Loans = append(cur.Loans, model.BookLoan{StartDate: start.Time, DueDate: due.Time})
		}
	}
	return out, rows.Err()
}

func (r *repo) Update(ctx context.Context, id int64, quantity int, authorID *int64) error {
	const q = `UPDATE books SET quantity = $2, author_id = $3 WHERE id = $1`
	_, err := r.db.ExecContext(ctx, q, id, quantity, authorID)
	return err
}
