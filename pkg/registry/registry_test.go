package registry

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pakt-build/pakt/pkg/errors"
)

func TestRegisterAndGet(t *testing.T) {
	reg := New[int]()

	require.NoError(t, reg.Register("one", 1))
	require.NoError(t, reg.Register("two", 2))

	value, err := reg.Get("one")
	require.NoError(t, err)
	assert.Equal(t, 1, value)

	assert.Equal(t, 2, reg.Count())
	assert.True(t, reg.Has("two"))
	assert.False(t, reg.Has("three"))
}

func TestRegisterEmptyName(t *testing.T) {
	reg := New[int]()
	err := reg.Register("", 1)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestRegisterDuplicate(t *testing.T) {
	reg := New[int]()
	require.NoError(t, reg.Register("one", 1))

	err := reg.Register("one", 11)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrAlreadyExists))
}

func TestGetMissing(t *testing.T) {
	reg := New[int]()
	_, err := reg.Get("absent")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
}

func TestListSorted(t *testing.T) {
	reg := New[string]()
	require.NoError(t, reg.Register("zeta", "z"))
	require.NoError(t, reg.Register("alpha", "a"))
	require.NoError(t, reg.Register("mid", "m"))

	assert.Equal(t, []string{"alpha", "mid", "zeta"}, reg.List())
}

func TestClear(t *testing.T) {
	reg := New[int]()
	require.NoError(t, reg.Register("one", 1))
	reg.Clear()
	assert.Equal(t, 0, reg.Count())
}

func TestMustRegisterPanics(t *testing.T) {
	reg := New[int]()
	MustRegister(reg, "one", 1)
	assert.Panics(t, func() {
		MustRegister(reg, "one", 2)
	})
}

func TestConcurrentAccess(t *testing.T) {
	reg := New[int]()
	require.NoError(t, reg.Register("shared", 42))

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			value, err := reg.Get("shared")
			assert.NoError(t, err)
			assert.Equal(t, 42, value)
		}()
	}
	wg.Wait()
}
