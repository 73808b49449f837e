package usersvc

import (
	"context"

	"github.com/go-playground/validator/v10"

	"github.com/carolinaIbarra2/gestionBiblioteca/model"
	"github.com/carolinaIbarra2/gestionBiblioteca/util/fault"
)

type Repo interface {
	NameExists(ctx context.Context, name string) (bool, error)
	Create(ctx context.Context, u *model.User) error
	ByID(ctx context.Context, id int64) (*model.User, error)
	Update(ctx context.Context, u *model.User) error
	ListAll(ctx context.Context) ([]model.User, error)
	DetailWithLoans(ctx context.Context, id int64) (*model.UserDetail, error)
	CountLoans(ctx context.Context, userID int64) (int64, error)
	Delete(ctx context.Context, id int64) error
}

type Service interface {
	// Create stores a new user. The name must be unique and the email
	// syntactically valid.
	Create(ctx context.Context, name, email string) (int64, error)

	// Update replaces name and email. The name is not re-checked for
	// uniqueness, matching the create-only contract.
	Update(ctx context.Context, id int64, name, email string) error

	List(ctx context.Context) ([]model.User, error)

	// Detail returns the user with all loans that reference it, nil when
	// no user has that id.
	Detail(ctx context.Context, id int64) (*model.UserDetail, error)

	// Delete removes the user unless any loan still references it.
	Delete(ctx context.Context, id int64) error
}

type service struct {
	r Repo
	v *validator.Validate
}

func New(r Repo, v *validator.Validate) Service { return &service{r: r, v: v} }

func (s *service) Create(ctx context.Context, name, email string) (int64, error) {
	exists, err := s.r.NameExists(ctx, name)
	if err != nil {
		return 0, err
	}
	if exists {
		return 0, fault.New(fault.ErrDuplicateKey, "a user with that name already exists")
	}

	if err := s.v.Var(email, "required,email"); err != nil {
		return 0, fault.New(fault.ErrValidationFailed, "email is not a valid address")
	}

	u := &model.User{Name: name, Email: email}
	if err := s.r.Create(ctx, u); err != nil {
		return 0, err
	}
	return u.ID, nil
}

func (s *service) Update(ctx context.Context, id int64, name, email string) error {
	u, err := s.r.ByID(ctx, id)
	if err != nil {
		return err
	}
	if u == nil {
		return fault.New(fault.ErrNotFound, "the user does not exist")
	}

	if err := s.v.Var(email, "required,email"); err != nil {
		return fault.New(fault.ErrValidationFailed, "email is not a valid address")
	}

	u.Name = name
	u.Email = email
	return s.r.Update(ctx, u)
}

func (s *service) List(ctx context.Context) ([]model.User, error) {
	return s.r.ListAll(ctx)
}

func (s *service) Detail(ctx context.Context, id int64) (*model.UserDetail, error) {
	return s.r.DetailWithLoans(ctx, id)
}

func (s *service) Delete(ctx context.Context, id int64) error {
	u, err := s.r.ByID(ctx, id)
	if err != nil {
		return err
	}
	if u == nil {
		return fault.New(fault.ErrNotFound, "the user does not exist")
	}

	n, err := s.r.CountLoans(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return fault.New(fault.ErrHasDependents, "the user has associated loans and cannot be deleted")
	}
	return s.r.Delete(ctx, id)
}
