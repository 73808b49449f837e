package fault_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/carolinaIbarra2/gestionBiblioteca/util/fault"
)

func TestCode(t *testing.T) {
	err := fault.New(fault.ErrDuplicateKey, "an author with that name already exists")
	require.Equal(t, fault.ErrDuplicateKey, fault.Code(err))
	require.Equal(t, "an author with that name already exists", err.Error())
}

func TestCode_Wrapped(t *testing.T) {
	err := fmt.Errorf("create author: %w", fault.New(fault.ErrNotFound, "the author does not exist"))
	require.Equal(t, fault.ErrNotFound, fault.Code(err))
}

func TestCode_Plain(t *testing.T) {
	require.Equal(t, fault.ErrCode(""), fault.Code(errors.New("boom")))
	require.Equal(t, fault.ErrCode(""), fault.Code(nil))
}
