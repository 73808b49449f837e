package booksvc

import (
	"context"

	"github.com/carolinaIbarra2/gestionBiblioteca/model"
	"github.com/carolinaIbarra2/gestionBiblioteca/util/fault"
)

type Repo interface {
	TitleExists(ctx context.Context, title string) (bool, error)
	Create(ctx context.Context, b *model.Book, categoryID int64) error
	ByID(ctx context.Context, id int64) (*model.Book, error)
	Detail(ctx context.Context, id int64) (*model.BookDetail, error)
	List(ctx context.Context) ([]model.BookDetail, error)
	ListWithLoans(ctx context.Context) ([]model.BookLoans, error)
	Update(ctx context.Context, id int64, quantity int, authorID *int64) error
}

type AuthorRepo interface {
	ByID(ctx context.Context, id int64) (*model.Author, error)
}

type CategoryRepo interface {
	ByName(ctx context.Context, name string) (*model.Category, error)
}

type Service interface {
	// Create stores a new book linked to an existing author (by id) and an
	// existing category (by name). The title must be unique.
	Create(ctx context.Context, title, synopsis string, year, quantity int, authorID int64, category string) (int64, error)

	// Update replaces quantity and the author link. A nil authorID detaches
	// the book from its author; a non-nil one must resolve to an existing
	// author. The title is immutable here.
	Update(ctx context.Context, id int64, quantity int, authorID *int64) error

	List(ctx context.Context) ([]model.BookDetail, error)
	ListWithLoans(ctx context.Context) ([]model.BookLoans, error)
	Detail(ctx context.Context, id int64) (*model.BookDetail, error)
}

type service struct {
	r  Repo
	ar AuthorRepo
	cr CategoryRepo
}

func New(r Repo, ar AuthorRepo, cr CategoryRepo) Service {
	return &service{r: r, ar: ar, cr: cr}
}

func (s *service) Create(ctx context.Context, title, synopsis string, year, quantity int, authorID int64, category string) (int64, error) {
	exists, err := s.r.TitleExists(ctx, title)
	if err != nil {
		return 0, err
	}
	if exists {
		return 0, fault.New(fault.ErrDuplicateKey, "a book with that title already exists")
	}

	author, err := s.ar.ByID(ctx, authorID)
	if err != nil {
		return 0, err
	}
	if author == nil {
		return 0, fault.New(fault.ErrReferenceNotFound, "the author does not exist")
	}

	cat, err := s.cr.ByName(ctx, category)
	if err != nil {
		return 0, err
	}
	if cat == nil {
		return 0, fault.New(fault.ErrReferenceNotFound, "the category does not exist")
	}

	if year < 1000 || year > 9999 {
		return 0, fault.New(fault.ErrValidationFailed, "publication_year must be a four digit year")
	}
	if quantity < 0 {
		return 0, fault.New(fault.ErrValidationFailed, "quantity must not be negative")
	}

	b := &model.Book{
		Title:           title,
		Synopsis:        synopsis,
		PublicationYear: year,
		Quantity:        quantity,
		AuthorID:        &author.ID,
	}
	if err := s.r.Create(ctx, b, cat.ID); err != nil {
		return 0, err
	}
	return b.ID, nil
}

func (s *service) Update(ctx context.Context, id int64, quantity int, authorID *int64) error {
	b, err := s.r.ByID(ctx, id)
	if err != nil {
		return err
	}
	if b == nil {
		return fault.New(fault.ErrNotFound, "the book does not exist")
	}

	if quantity < 0 {
		return fault.New(fault.ErrValidationFailed, "quantity must not be negative")
	}

	if authorID != nil {
		author, err := s.ar.ByID(ctx, *authorID)
		if err != nil {
			return err
		}
		if author == nil {
			return fault.New(fault.ErrReferenceNotFound, "the author does not exist")
		}
	}
	return s.r.Update(ctx, id, quantity, authorID)
}

func (s *service) List(ctx context.Context) ([]model.BookDetail, error) {
	return s.r.List(ctx)
}

func (s *service) ListWithLoans(ctx context.Context) ([]model.BookLoans, error) {
	return s.r.ListWithLoans(ctx)
}

func (s *service) Detail(ctx context.Context, id int64) (*model.BookDetail, error) {
	return s.r.Detail(ctx, id)
}
