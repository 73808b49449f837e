package categorysvc_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/carolinaIbarra2/gestionBiblioteca/model"
	"github.com/carolinaIbarra2/gestionBiblioteca/repository/memory"
	categorysvc "github.com/carolinaIbarra2/gestionBiblioteca/service/category"
	"github.com/carolinaIbarra2/gestionBiblioteca/util/fault"
)

func TestCreate_Duplicate(t *testing.T) {
	ctx := context.Background()
	st := memory.NewStore()
	s := categorysvc.New(st.Categories)

	_, err := s.Create(ctx, "Fiction", "made up stories")
	require.NoError(t, err)
	_, err = s.Create(ctx, "Fiction", "")
	require.Equal(t, fault.ErrDuplicateKey, fault.Code(err))
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	st := memory.NewStore()
	s := categorysvc.New(st.Categories)

	err := s.Update(ctx, 42, "whatever")
	require.Equal(t, fault.ErrNotFound, fault.Code(err))

	id, err := s.Create(ctx, "Fiction", "old")
	require.NoError(t, err)
	require.NoError(t, s.Update(ctx, id, "new"))

	rows, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "Fiction", rows[0].Name)
	require.Equal(t, "new", rows[0].Description)
}

func TestDelete_Guard(t *testing.T) {
	ctx := context.Background()
	st := memory.NewStore()
	s := categorysvc.New(st.Categories)

	id, err := s.Create(ctx, "Fiction", "")
	require.NoError(t, err)

	b := &model.Book{Title: "Ficciones", PublicationYear: 1944}
	require.NoError(t, st.Books.Create(ctx, b, id))

	err = s.Delete(ctx, id)
	require.Equal(t, fault.ErrHasDependents, fault.Code(err))

	// an unlinked category can go
	id2, err := s.Create(ctx, "Poetry", "")
	require.NoError(t, err)
	require.NoError(t, s.Delete(ctx, id2))

	err = s.Delete(ctx, 999)
	require.Equal(t, fault.ErrNotFound, fault.Code(err))
}
