package env_test

import (
	"os"
	"sync"
	"testing"

	"github.com/runabol/froytools/env"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	t.Setenv("FROY_TEST_GET", "value")
	assert.Equal(t, "value", env.Get("FROY_TEST_GET", "fallback"))
}

func TestGet_Default(t *testing.T) {
	t.Setenv("FROY_TEST_GET_DEFAULT", "")
	require.NoError(t, os.Unsetenv("FROY_TEST_GET_DEFAULT"))
	assert.Equal(t, "fallback", env.Get("FROY_TEST_GET_DEFAULT", "fallback"))
}

func TestGet_EmptyValueIsPresent(t *testing.T) {
	t.Setenv("FROY_TEST_GET_EMPTY", "")
	assert.Equal(t, "", env.Get("FROY_TEST_GET_EMPTY", "fallback"))
}

func TestSetUnset(t *testing.T) {
	t.Setenv("FROY_TEST_SET", "")

	require.NoError(t, env.Set("FROY_TEST_SET", "abc"))
	assert.Equal(t, "abc", os.Getenv("FROY_TEST_SET"))

	require.NoError(t, env.Unset("FROY_TEST_SET"))
	_, ok := os.LookupEnv("FROY_TEST_SET")
	assert.False(t, ok)

	// unsetting twice is fine
	assert.NoError(t, env.Unset("FROY_TEST_SET"))
}

func TestOSStore_SetEmptyKey(t *testing.T) {
	err := env.OSStore{}.Set("", "abc")
	assert.Error(t, err)
}

func TestMapStore(t *testing.T) {
	initial := map[string]string{"A": "1"}
	s := env.NewMapStore(initial)

	v, ok := s.Lookup("A")
	assert.True(t, ok)
	assert.Equal(t, "1", v)

	require.NoError(t, s.Set("B", "2"))
	v, ok = s.Lookup("B")
	assert.True(t, ok)
	assert.Equal(t, "2", v)

	// the initial map is copied
	_, ok = initial["B"]
	assert.False(t, ok)

	require.NoError(t, s.Unset("A"))
	_, ok = s.Lookup("A")
	assert.False(t, ok)
	assert.NoError(t, s.Unset("A"))
}

func TestMapStore_EmptyKey(t *testing.T) {
	s := env.NewMapStore(nil)
	assert.ErrorIs(t, s.Set("", "x"), env.ErrEmptyKey)
	_, ok := s.Lookup("")
	assert.False(t, ok)
}

func TestMapStore_Concurrent(t *testing.T) {
	s := env.NewMapStore(nil)
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, s.Set("K", "v"))
			s.Lookup("K")
			assert.NoError(t, s.Unset("K"))
		}()
	}
	wg.Wait()
	_, ok := s.Lookup("K")
	assert.False(t, ok)
}

func TestMapStore_ZeroValue(t *testing.T) {
	var s env.MapStore
	require.NoError(t, s.Set("A", "1"))
	assert.Equal(t, "1", env.GetFrom(&s, "A", "x"))
}

func TestGetFrom(t *testing.T) {
	s := env.NewMapStore(map[string]string{"A": "1"})
	assert.Equal(t, "1", env.GetFrom(s, "A", "x"))
	assert.Equal(t, "x", env.GetFrom(s, "B", "x"))
}

func TestStore_InterfaceCompliance(t *testing.T) {
	var _ env.Store = env.OSStore{}
	var _ env.Store = &env.MapStore{}
}
