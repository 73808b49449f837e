package loansvc_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/carolinaIbarra2/gestionBiblioteca/model"
	"github.com/carolinaIbarra2/gestionBiblioteca/repository/memory"
	loansvc "github.com/carolinaIbarra2/gestionBiblioteca/service/loan"
	"github.com/carolinaIbarra2/gestionBiblioteca/util/dates"
	"github.com/carolinaIbarra2/gestionBiblioteca/util/fault"
)

type fixture struct {
	store *memory.Store
	loans loansvc.Service
}

func setup(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	st := memory.NewStore()

	u := &model.User{Name: "maria", Email: "maria@example.com"}
	require.NoError(t, st.Users.Create(ctx, u))

	cat := &model.Category{Name: "Fiction"}
	require.NoError(t, st.Categories.Create(ctx, cat))

	b := &model.Book{Title: "Ficciones", Quantity: 3}
	require.NoError(t, st.Books.Create(ctx, b, cat.ID))

	return &fixture{store: st, loans: loansvc.New(st.Loans, st.Users, st.Books)}
}

func TestCreate_BadDates(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	_, err := f.loans.Create(ctx, "31-02-2024", "15-03-2024", "maria", "Ficciones")
	require.Equal(t, fault.ErrInvalidDateFormat, fault.Code(err))
	require.Contains(t, err.Error(), "start_date")

	_, err = f.loans.Create(ctx, "01-03-2024", "2024-03-15", "maria", "Ficciones")
	require.Equal(t, fault.ErrInvalidDateFormat, fault.Code(err))
	require.Contains(t, err.Error(), "due_date")
}

func TestCreate_MissingReferences(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	_, err := f.loans.Create(ctx, "01-03-2024", "15-03-2024", "nobody", "Ficciones")
	require.Equal(t, fault.ErrReferenceNotFound, fault.Code(err))
	require.Contains(t, err.Error(), "user")

	_, err = f.loans.Create(ctx, "01-03-2024", "15-03-2024", "maria", "No Such Book")
	require.Equal(t, fault.ErrReferenceNotFound, fault.Code(err))
	require.Contains(t, err.Error(), "book")
}

func TestCreate_AndList(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	id, err := f.loans.Create(ctx, "01-03-2024", "15-03-2024", "maria", "Ficciones")
	require.NoError(t, err)
	require.NotZero(t, id)

	rows, err := f.loans.List(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, id, rows[0].ID)
	require.Equal(t, "Ficciones", rows[0].BookTitle)
	require.Equal(t, "maria", rows[0].UserName)
	require.Equal(t, "maria@example.com", rows[0].UserEmail)
	require.Equal(t, "01-03-2024", dates.Format(rows[0].StartDate))
	require.Equal(t, "15-03-2024", dates.Format(rows[0].DueDate))
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	err := f.loans.Update(ctx, 99, "01-03-2024", "15-03-2024")
	require.Equal(t, fault.ErrNotFound, fault.Code(err))

	id, err := f.loans.Create(ctx, "01-03-2024", "15-03-2024", "maria", "Ficciones")
	require.NoError(t, err)

	err = f.loans.Update(ctx, id, "01-03-2024", "31-04-2024")
	require.Equal(t, fault.ErrInvalidDateFormat, fault.Code(err))

	require.NoError(t, f.loans.Update(ctx, id, "02-03-2024", "20-03-2024"))
	rows, err := f.loans.List(ctx)
	require.NoError(t, err)
	require.Equal(t, "02-03-2024", dates.Format(rows[0].StartDate))
	require.Equal(t, "20-03-2024", dates.Format(rows[0].DueDate))
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	err := f.loans.Delete(ctx, 42)
	require.Equal(t, fault.ErrNotFound, fault.Code(err))

	id, err := f.loans.Create(ctx, "01-03-2024", "15-03-2024", "maria", "Ficciones")
	require.NoError(t, err)

	require.NoError(t, f.loans.Delete(ctx, id))
	rows, err := f.loans.List(ctx)
	require.NoError(t, err)
	require.Empty(t, rows)
}
