package categorysvc

import (
	"context"

	"github.com/carolinaIbarra2/gestionBiblioteca/model"
	"github.com/carolinaIbarra2/gestionBiblioteca/util/fault"
)

type Repo interface {
	NameExists(ctx context.Context, name string) (bool, error)
	Create(ctx context.Context, c *model.Category) error
	ByID(ctx context.Context, id int64) (*model.Category, error)
	UpdateDescription(ctx context.Context, id int64, description string) error
	ListAll(ctx context.Context) ([]model.Category, error)
	CountBooks(ctx context.Context, categoryID int64) (int64, error)
	Delete(ctx context.Context, id int64) error
}

type Service interface {
	Create(ctx context.Context, name, description string) (int64, error)

	// Update only replaces the description; the name is fixed at creation.
	Update(ctx context.Context, id int64, description string) error

	List(ctx context.Context) ([]model.Category, error)

	// Delete removes the category unless any book is still linked to it.
	Delete(ctx context.Context, id int64) error
}

type service struct{ r Repo }

func New(r Repo) Service { return &service{r: r} }

func (s *service) Create(ctx context.Context, name, description string) (int64, error) {
	exists, err := s.r.NameExists(ctx, name)
	if err != nil {
		return 0, err
	}
	if exists {
		return 0, fault.New(fault.ErrDuplicateKey, "a category with that name already exists")
	}

	c := &model.Category{Name: name, Description: description}
	if err := s.r.Create(ctx, c); err != nil {
		return 0, err
	}
	return c.ID, nil
}

func (s *service) Update(ctx context.Context, id int64, description string) error {
	c, err := s.r.ByID(ctx, id)
	if err != nil {
		return err
	}
	if c == nil {
		return fault.New(fault.ErrNotFound, "the category does not exist")
	}
	return s.r.UpdateDescription(ctx, id, description)
}

func (s *service) List(ctx context.Context) ([]model.Category, error) {
	return s.r.ListAll(ctx)
}

func (s *service) Delete(ctx context.Context, id int64) error {
	c, err := s.r.ByID(ctx, id)
	if err != nil {
		return err
	}
	if c == nil {
		return fault.New(fault.ErrNotFound, "the category does not exist")
	}

	n, err := s.r.CountBooks(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return fault.New(fault.ErrHasDependents, "the category has associated books and cannot be deleted")
	}
	return s.r.Delete(ctx, id)
}
