package authorsvc

import (
	"context"

	"github.com/carolinaIbarra2/gestionBiblioteca/model"
	"github.com/carolinaIbarra2/gestionBiblioteca/util/dates"
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

type Service interface {
	// Create stores a new author. The name must be unique and the birth
	// date must be a strict dd-mm-yyyy string.
	Create(ctx context.Context, name, birthDate, biography string) (int64, error)

	// Update replaces name, birth date and biography. The name is not
	// re-checked for uniqueness, matching the create-only contract.
	Update(ctx context.Context, id int64, name, birthDate, biography string) error

	List(ctx context.Context) ([]model.Author, error)
	ListWithBooks(ctx context.Context) ([]model.AuthorBooks, error)

	// Delete removes the author unless any book still references it.
	Delete(ctx context.Context, id int64) error
}

type service struct{ r Repo }

func New(r Repo) Service { return &service{r: r} }

func (s *service) Create(ctx context.Context, name, birthDate, biography string) (int64, error) {
	exists, err := s.r.NameExists(ctx, name)
	if err != nil {
		return 0, err
	}
	if exists {
		return 0, fault.New(fault.ErrDuplicateKey, "an author with that name already exists")
	}

	birth, err := dates.Parse(birthDate)
	if err != nil {
		return 0, fault.New(fault.ErrInvalidDateFormat, "birth_date must be a dd-mm-yyyy date")
	}

	a := &model.Author{Name: name, BirthDate: birth, Biography: biography}
	if err := s.r.Create(ctx, a); err != nil {
		return 0, err
	}
	return a.ID, nil
}

func (s *service) Update(ctx context.Context, id int64, name, birthDate, biography string) error {
	a, err := s.r.ByID(ctx, id)
	if err != nil {
		return err
	}
	if a == nil {
		return fault.New(fault.ErrNotFound, "the author does not exist")
	}

	birth, err := dates.Parse(birthDate)
	if err != nil {
		return fault.New(fault.ErrInvalidDateFormat, "birth_date must be a dd-mm-yyyy date")
	}

	a.Name = name
	a.BirthDate = birth
	a.Biography = biography
	return s.r.Update(ctx, a)
}

func (s *service) List(ctx context.Context) ([]model.Author, error) {
	return s.r.ListAll(ctx)
}

func (s *service) ListWithBooks(ctx context.Context) ([]model.AuthorBooks, error) {
	return s.r.ListWithBooks(ctx)
}

func (s *service) Delete(ctx context.Context, id int64) error {
	a, err := s.r.ByID(ctx, id)
	if err != nil {
		return err
	}
	if a == nil {
		return fault.New(fault.ErrNotFound, "the author does not exist")
	}

	n, err := s.r.CountBooks(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return fault.New(fault.ErrHasDependents, "the author has associated books and cannot be deleted")
	}
	return s.r.Delete(ctx, id)
}
