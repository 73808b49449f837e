package categoryrepo

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
	Create(ctx context.Context, c *model.Category) error
	ByID(ctx context.Context, id int64) (*model.Category, error)
	ByName(ctx context.Context, name string) (*model.Category, error)
	UpdateDescription(ctx context.Context, id int64, description string) error
	ListAll(ctx context.Context) ([]model.Category, error)
	CountBooks(ctx context.Context, categoryID int64) (int64, error)
	Delete(ctx context.Context, id int64) error
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db: db} }

func (r *repo) NameExists(ctx context.Context, name string) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM categories WHERE name = $1)`
	var exists bool
	err := r.db.QueryRowContext(ctx, q, name).Scan(&exists)
	return exists, err
}

func (r *repo) Create(ctx context.Context, c *model.Category) error {
	const q = `
INSERT INTO categories (name, description)
VALUES ($1,$2)
RETURNING id`
	err := r.db.QueryRowContext(ctx, q, c.Name, c.Description).Scan(&c.ID)
	if database.IsUniqueViolation(err) {
		return fault.New(fault.ErrDuplicateKey, "a category with that name already exists")
	}
	return err
}

func (r *repo) ByID(ctx context.Context, id int64) (*model.Category, error) {
	const q = `SELECT id, name, description FROM categories WHERE id = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, q, id))
}

func (r *repo) ByName(ctx context.Context, name string) (*model.Category, error) {
	const q = `SELECT id, name, description FROM categories WHERE name = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, q, name))
}

func (r *repo) scanOne(row *sql.Row) (*model.Category, error) {
	c := &model.Category{}
	err := row.Scan(&c.ID, &c.Name, &c.Description)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *repo) UpdateDescription(ctx context.Context, id int64, description string) error {
	const q = `UPDATE categories SET description = $2 WHERE id = $1`
	_, err := r.db.ExecContext(ctx, q, id, description)
	return err
}

func (r *repo) ListAll(ctx context.Context) ([]model.Category, error) {
	const q = `SELECT id, name, description FROM categories ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Category
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *repo) CountBooks(ctx context.Context, categoryID int64) (int64, error) {
	const q = `SELECT COUNT(*) FROM book_categories WHERE category_id = $1`
	var n int64
	err := r.db.QueryRowContext(ctx, q, categoryID).Scan(&n)
	return n, err
}

func (r *repo) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM categories WHERE id = $1`
	_, err := r.db.ExecContext(ctx, q, id)
	return err
}
