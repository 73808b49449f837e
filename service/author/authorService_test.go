package authorsvc_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/carolinaIbarra2/gestionBiblioteca/model"
	"github.com/carolinaIbarra2/gestionBiblioteca/repository/memory"
	authorsvc "github.com/carolinaIbarra2/gestionBiblioteca/service/author"
	"github.com/carolinaIbarra2/gestionBiblioteca/util/dates"
	"github.com/carolinaIbarra2/gestionBiblioteca/util/fault"
)

type repoMock struct {
	nameExistsFn func(ctx context.Context, name string) (bool, error)
	createFn     func(ctx context.Context, a *model.Author) error
	byIDFn       func(ctx context.Context, id int64) (*model.Author, error)
	countBooksFn func(ctx context.Context, authorID int64) (int64, error)
}

func (m *repoMock) NameExists(ctx context.Context, name string) (bool, error) {
	if m.nameExistsFn == nil {
		return false, nil
	}
	return m.nameExistsFn(ctx, name)
}

func (m *repoMock) Create(ctx context.Context, a *model.Author) error {
	if m.createFn == nil {
		return nil
	}
	return m.createFn(ctx, a)
}

func (m *repoMock) ByID(ctx context.Context, id int64) (*model.Author, error) {
	if m.byIDFn == nil {
		return nil, nil
	}
	return m.byIDFn(ctx, id)
}

func (m *repoMock) Update(ctx context.Context, a *model.Author) error { return nil }

func (m *repoMock) ListAll(ctx context.Context) ([]model.Author, error) { return nil, nil }

func (m *repoMock) ListWithBooks(ctx context.Context) ([]model.AuthorBooks, error) {
	return nil, nil
}

func (m *repoMock) CountBooks(ctx context.Context, authorID int64) (int64, error) {
	if m.countBooksFn == nil {
		return 0, nil
	}
	return m.countBooksFn(ctx, authorID)
}

func (m *repoMock) Delete(ctx context.Context, id int64) error { return nil }

var _ authorsvc.Repo = (*repoMock)(nil)

func TestCreate_DuplicateName(t *testing.T) {
	m := &repoMock{
		nameExistsFn: func(ctx context.Context, name string) (bool, error) { return true, nil },
	}
	s := authorsvc.New(m)
	_, err := s.Create(context.Background(), "Borges", "24-08-1899", "")
	require.Error(t, err)
	require.Equal(t, fault.ErrDuplicateKey, fault.Code(err))
}

func TestCreate_BadBirthDate(t *testing.T) {
	s := authorsvc.New(&repoMock{})
	_, err := s.Create(context.Background(), "Borges", "31-02-2024", "")
	require.Error(t, err)
	require.Equal(t, fault.ErrInvalidDateFormat, fault.Code(err))
	require.Contains(t, err.Error(), "birth_date")
}

func TestUpdate_NotFound(t *testing.T) {
	s := authorsvc.New(&repoMock{})
	err := s.Update(context.Background(), 99, "Borges", "24-08-1899", "")
	require.Equal(t, fault.ErrNotFound, fault.Code(err))
}

func TestDelete_HasBooks(t *testing.T) {
	m := &repoMock{
		byIDFn: func(ctx context.Context, id int64) (*model.Author, error) {
			return &model.Author{ID: id, Name: "Borges"}, nil
		},
		countBooksFn: func(ctx context.Context, authorID int64) (int64, error) { return 1, nil },
	}
	s := authorsvc.New(m)
	err := s.Delete(context.Background(), 1)
	require.Equal(t, fault.ErrHasDependents, fault.Code(err))
}

// --- end to end against the in-memory store ---

func TestCreateAndList(t *testing.T) {
	ctx := context.Background()
	st := memory.NewStore()
	s := authorsvc.New(st.Authors)

	id, err := s.Create(ctx, "Borges", "24-08-1899", "Argentine writer")
	require.NoError(t, err)
	require.NotZero(t, id)

	// second author with the same name is rejected, the first survives
	_, err = s.Create(ctx, "Borges", "01-01-1950", "")
	require.Equal(t, fault.ErrDuplicateKey, fault.Code(err))

	rows, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "Borges", rows[0].Name)
	require.Equal(t, "24-08-1899", dates.Format(rows[0].BirthDate))
}

func TestDeleteLifecycle(t *testing.T) {
	ctx := context.Background()
	st := memory.NewStore()
	s := authorsvc.New(st.Authors)

	id, err := s.Create(ctx, "Borges", "24-08-1899", "")
	require.NoError(t, err)

	// attach a book, delete must be blocked
	b := &model.Book{Title: "Ficciones", PublicationYear: 1944, Quantity: 3, AuthorID: &id}
	cat := &model.Category{Name: "Fiction"}
	require.NoError(t, st.Categories.Create(ctx, cat))
	require.NoError(t, st.Books.Create(ctx, b, cat.ID))

	err = s.Delete(ctx, id)
	require.Equal(t, fault.ErrHasDependents, fault.Code(err))

	// detach the book, delete goes through
	require.NoError(t, st.Books.Update(ctx, b.ID, b.Quantity, nil))
	require.NoError(t, s.Delete(ctx, id))

	got, err := st.Authors.ByID(ctx, id)
	require.NoError(t, err)
	require.Nil(t, got)

	err = s.Delete(ctx, id)
	require.Equal(t, fault.ErrNotFound, fault.Code(err))
}
