package booksvc_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/carolinaIbarra2/gestionBiblioteca/model"
	"github.com/carolinaIbarra2/gestionBiblioteca/repository/memory"
	authorsvc "github.com/carolinaIbarra2/gestionBiblioteca/service/author"
	booksvc "github.com/carolinaIbarra2/gestionBiblioteca/service/book"
	categorysvc "github.com/carolinaIbarra2/gestionBiblioteca/service/category"
	"github.com/carolinaIbarra2/gestionBiblioteca/util/dates"
	"github.com/carolinaIbarra2/gestionBiblioteca/util/fault"
)

type fixture struct {
	store    *memory.Store
	books    booksvc.Service
	authors  authorsvc.Service
	cats     categorysvc.Service
	authorID int64
}

func setup(t *testing.T) *fixture {
	t.Helper()
	st := memory.NewStore()
	f := &fixture{
		store:   st,
		books:   booksvc.New(st.Books, st.Authors, st.Categories),
		authors: authorsvc.New(st.Authors),
		cats:    categorysvc.New(st.Categories),
	}
	id, err := f.authors.Create(context.Background(), "Borges", "24-08-1899", "")
	require.NoError(t, err)
	f.authorID = id
	return f
}

func TestCreate_CategoryMissing(t *testing.T) {
	f := setup(t)
	_, err := f.books.Create(context.Background(), "Ficciones", "", 1944, 3, f.authorID, "Fiction")
	require.Equal(t, fault.ErrReferenceNotFound, fault.Code(err))
	require.Contains(t, err.Error(), "category")
}

func TestCreate_AuthorMissing(t *testing.T) {
	f := setup(t)
	_, err := f.books.Create(context.Background(), "Ficciones", "", 1944, 3, 999, "Fiction")
	require.Equal(t, fault.ErrReferenceNotFound, fault.Code(err))
	require.Contains(t, err.Error(), "author")
}

func TestCreate_Success(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	_, err := f.cats.Create(ctx, "Fiction", "")
	require.NoError(t, err)

	id, err := f.books.Create(ctx, "Ficciones", "Short stories", 1944, 3, f.authorID, "Fiction")
	require.NoError(t, err)

	d, err := f.books.Detail(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, d)
	require.Equal(t, "Ficciones", d.Title)
	require.NotNil(t, d.Author)
	require.Equal(t, "Borges", d.Author.Name)
	require.Len(t, d.Categories, 1)
	require.Equal(t, "Fiction", d.Categories[0].Name)
}

func TestCreate_DuplicateTitle(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	_, err := f.cats.Create(ctx, "Fiction", "")
	require.NoError(t, err)

	_, err = f.books.Create(ctx, "Ficciones", "", 1944, 3, f.authorID, "Fiction")
	require.NoError(t, err)
	_, err = f.books.Create(ctx, "Ficciones", "", 1962, 1, f.authorID, "Fiction")
	require.Equal(t, fault.ErrDuplicateKey, fault.Code(err))
}

func TestCreate_BadYear(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	_, err := f.cats.Create(ctx, "Fiction", "")
	require.NoError(t, err)

	_, err = f.books.Create(ctx, "Ficciones", "", 194, 3, f.authorID, "Fiction")
	require.Equal(t, fault.ErrValidationFailed, fault.Code(err))
	require.Contains(t, err.Error(), "publication_year")
}

func TestCreate_NegativeQuantity(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	_, err := f.cats.Create(ctx, "Fiction", "")
	require.NoError(t, err)

	_, err = f.books.Create(ctx, "Ficciones", "", 1944, -1, f.authorID, "Fiction")
	require.Equal(t, fault.ErrValidationFailed, fault.Code(err))
}

func TestUpdate_NotFound(t *testing.T) {
	f := setup(t)
	err := f.books.Update(context.Background(), 999, 1, nil)
	require.Equal(t, fault.ErrNotFound, fault.Code(err))
}

func TestUpdate_AuthorMissing(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	_, err := f.cats.Create(ctx, "Fiction", "")
	require.NoError(t, err)
	id, err := f.books.Create(ctx, "Ficciones", "", 1944, 3, f.authorID, "Fiction")
	require.NoError(t, err)

	missing := int64(999)
	err = f.books.Update(ctx, id, 3, &missing)
	require.Equal(t, fault.ErrReferenceNotFound, fault.Code(err))
}

func TestListWithLoans(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	_, err := f.cats.Create(ctx, "Fiction", "")
	require.NoError(t, err)
	id, err := f.books.Create(ctx, "Ficciones", "Short stories", 1944, 3, f.authorID, "Fiction")
	require.NoError(t, err)
	_, err = f.books.Create(ctx, "El Aleph", "", 1949, 2, f.authorID, "Fiction")
	require.NoError(t, err)

	u := &model.User{Name: "maria", Email: "maria@example.com"}
	require.NoError(t, f.store.Users.Create(ctx, u))
	for _, d := range []struct{ start, due string }{
		{"01-03-2024", "15-03-2024"},
		{"20-03-2024", "03-04-2024"},
	} {
		start, err := dates.Parse(d.start)
		require.NoError(t, err)
		due, err := dates.Parse(d.due)
		require.NoError(t, err)
		l := &model.Loan{StartDate: start, DueDate: due, UserID: &u.ID, BookID: &id}
		require.NoError(t, f.store.Loans.Create(ctx, l))
	}

	rows, err := f.books.ListWithLoans(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	require.Equal(t, "Ficciones", rows[0].Title)
	require.Len(t, rows[0].Loans, 2)
	require.Equal(t, "01-03-2024", dates.Format(rows[0].Loans[0].StartDate))
	require.Equal(t, "15-03-2024", dates.Format(rows[0].Loans[0].DueDate))
	require.Equal(t, "20-03-2024", dates.Format(rows[0].Loans[1].StartDate))

	// a book nobody borrowed still lists, with an empty loans slice
	require.Equal(t, "El Aleph", rows[1].Title)
	require.Empty(t, rows[1].Loans)
}

// Link symmetry: the author side and the book side always agree.
func TestUpdate_DetachAuthor(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	_, err := f.cats.Create(ctx, "Fiction", "")
	require.NoError(t, err)
	id, err := f.books.Create(ctx, "Ficciones", "", 1944, 3, f.authorID, "Fiction")
	require.NoError(t, err)

	withBooks, err := f.authors.ListWithBooks(ctx)
	require.NoError(t, err)
	require.Len(t, withBooks, 1)
	require.Len(t, withBooks[0].Books, 1)
	require.Equal(t, "Ficciones", withBooks[0].Books[0].Title)

	require.NoError(t, f.books.Update(ctx, id, 5, nil))

	d, err := f.books.Detail(ctx, id)
	require.NoError(t, err)
	require.Nil(t, d.Author)
	require.Equal(t, 5, d.Quantity)

	withBooks, err = f.authors.ListWithBooks(ctx)
	require.NoError(t, err)
	require.Empty(t, withBooks[0].Books)
}
