package registry

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type shape interface {
	Draw() string
}

type circle struct{}

func (circle) Draw() string { return "Drawing a circle" }

type square struct{}

func (square) Draw() string { return "Drawing a square" }

func TestRegistry_Create(t *testing.T) {
	reg := New[shape]()
	require.NoError(t, reg.Register("circle", func(map[string]any) (shape, error) { return circle{}, nil }))

	s, err := reg.Create("circle", nil)
	require.NoError(t, err)
	assert.Equal(t, "Drawing a circle", s.Draw())
}

func TestRegistry_CreateUnknownKey(t *testing.T) {
	reg := New[shape]()
	_, err := reg.Create("triangle", nil)
	var unknown *UnknownKeyError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "triangle", unknown.Key)
	assert.Contains(t, err.Error(), "triangle")
}

func TestRegistry_ReRegisterReplaces(t *testing.T) {
	reg := New[shape]()
	require.NoError(t, reg.Register("s", func(map[string]any) (shape, error) { return circle{}, nil }))
	require.NoError(t, reg.Register("s", func(map[string]any) (shape, error) { return square{}, nil }))

	s, err := reg.Create("s", nil)
	require.NoError(t, err)
	assert.Equal(t, "Drawing a square", s.Draw())
	assert.Equal(t, []string{"s"}, reg.Keys())
}

func TestRegistry_KeysOrdered(t *testing.T) {
	reg := New[int]()
	for _, k := range []string{"a", "b", "c"} {
		reg.MustRegister(k, func(map[string]any) (int, error) { return 0, nil })
	}
	assert.Equal(t, []string{"a", "b", "c"}, reg.Keys())

	// Re-registration keeps the original position.
	reg.MustRegister("b", func(map[string]any) (int, error) { return 1, nil })
	assert.Equal(t, []string{"a", "b", "c"}, reg.Keys())
}

func TestRegistry_KeysSnapshot(t *testing.T) {
	reg := New[int]()
	reg.MustRegister("a", func(map[string]any) (int, error) { return 0, nil })
	keys := reg.Keys()
	reg.MustRegister("b", func(map[string]any) (int, error) { return 0, nil })
	assert.Equal(t, []string{"a"}, keys)
}

func TestRegistry_ConstructionError(t *testing.T) {
	cause := errors.New("boom")
	reg := New[shape]()
	reg.MustRegister("broken", func(map[string]any) (shape, error) { return nil, cause })

	_, err := reg.Create("broken", nil)
	var cerr *ConstructionError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "broken", cerr.Key)
	assert.ErrorIs(t, err, cause)
}

func TestRegistry_NilConstructor(t *testing.T) {
	reg := New[int]()
	err := reg.Register("x", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "x")
	assert.Empty(t, reg.Keys())
	assert.Panics(t, func() { reg.MustRegister("x", nil) })
}

type sized struct{ n int }

func TestDecode(t *testing.T) {
	var c struct {
		N int `json:"n"`
	}
	require.NoError(t, Decode(map[string]any{"n": 3}, &c))
	assert.Equal(t, 3, c.N)

	reg := New[*sized]()
	reg.MustRegister("sized", func(conf map[string]any) (*sized, error) {
		var c struct {
			N int `json:"n"`
		}
		if err := Decode(conf, &c); err != nil {
			return nil, err
		}
		return &sized{n: c.N}, nil
	})
	s, err := reg.Create("sized", map[string]any{"n": 7})
	require.NoError(t, err)
	assert.Equal(t, 7, s.n)
}
