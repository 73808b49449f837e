package loansvc

import (
	"context"
	"time"

	"github.com/carolinaIbarra2/gestionBiblioteca/model"
	"github.com/carolinaIbarra2/gestionBiblioteca/util/dates"
	"github.com/carolinaIbarra2/gestionBiblioteca/util/fault"
)

type Repo interface {
	Create(ctx context.Context, l *model.Loan) error
	ByID(ctx context.Context, id int64) (*model.Loan, error)
	UpdateDates(ctx context.Context, id int64, start, due time.Time) error
	List(ctx context.Context) ([]model.LoanDetail, error)
	Delete(ctx context.Context, id int64) error
}

type UserRepo interface {
	ByName(ctx context.Context, name string) (*model.User, error)
}

type BookRepo interface {
	ByTitle(ctx context.Context, title string) (*model.Book, error)
}

type Service interface {
	// Create stores a new loan linking an existing user (by name) to an
	// existing book (by title). Both dates are strict dd-mm-yyyy strings.
	Create(ctx context.Context, startDate, dueDate, userName, bookTitle string) (int64, error)

	// Update replaces both dates; the user and book links are immutable.
	Update(ctx context.Context, id int64, startDate, dueDate string) error

	List(ctx context.Context) ([]model.LoanDetail, error)

	// Delete removes the loan. Loans have no dependents, so no guard applies.
	Delete(ctx context.Context, id int64) error
}

type service struct {
	r  Repo
	ur UserRepo
	br BookRepo
}

func New(r Repo, ur UserRepo, br BookRepo) Service {
	return &service{r: r, ur: ur, br: br}
}

func (s *service) parseDates(startDate, dueDate string) (start, due time.Time, err error) {
	start, err = dates.Parse(startDate)
	if err != nil {
		return start, due, fault.New(fault.ErrInvalidDateFormat, "start_date must be a dd-mm-yyyy date")
	}
	due, err = dates.Parse(dueDate)
	if err != nil {
		return start, due, fault.New(fault.ErrInvalidDateFormat, "due_date must be a dd-mm-yyyy date")
	}
	return start, due, nil
}

func (s *service) Create(ctx context.Context, startDate, dueDate, userName, bookTitle string) (int64, error) {
	start, due, err := s.parseDates(startDate, dueDate)
	if err != nil {
		return 0, err
	}

	user, err := s.ur.ByName(ctx, userName)
	if err != nil {
		return 0, err
	}
	if user == nil {
		return 0, fault.New(fault.ErrReferenceNotFound, "the user does not exist")
	}

	book, err := s.br.ByTitle(ctx, bookTitle)
	if err != nil {
		return 0, err
	}
	if book == nil {
		return 0, fault.New(fault.ErrReferenceNotFound, "the book does not exist")
	}

	l := &model.Loan{StartDate: start, DueDate: due, UserID: &user.ID, BookID: &book.ID}
	if err := s.r.Create(ctx, l); err != nil {
		return 0, err
	}
	return l.ID, nil
}

func (s *service) Update(ctx context.Context, id int64, startDate, dueDate string) error {
	l, err := s.r.ByID(ctx, id)
	if err != nil {
		return err
	}
	if l == nil {
		return fault.New(fault.ErrNotFound, "the loan does not exist")
	}

	start, due, err := s.parseDates(startDate, dueDate)
	if err != nil {
		return err
	}
	return s.r.UpdateDates(ctx, id, start, due)
}

func (s *service) List(ctx context.Context) ([]model.LoanDetail, error) {
	return s.r.List(ctx)
}

func (s *service) Delete(ctx context.Context, id int64) error {
	l, err := s.r.ByID(ctx, id)
	if err != nil {
		return err
	}
	if l == nil {
		return fault.New(fault.ErrNotFound, "the loan does not exist")
	}
	return s.r.Delete(ctx, id)
}
