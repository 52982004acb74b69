package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTag_Validation(t *testing.T) {
	r := NewRegistry()

	accepted := []string{"ab_CD.12", "db", "a-b", "x:y;z", "t+1", "#tag", "(a)", "[b]", "<c>", "a,b"}
	for _, name := range accepted {
		tag, err := r.Tag(name)
		require.NoError(t, err, "name %q", name)
		assert.Equal(t, name, tag.Name())
	}

	rejected := []string{"", "ab*cd", "a?b", "a^b", "a$b", "a b", "a\nb", "täg", "a/b", "a\\b"}
	for _, name := range rejected {
		_, err := r.Tag(name)
		require.Error(t, err, "name %q", name)
		assert.ErrorIs(t, err, ErrInvalidName)
	}

	assert.Len(t, r.Tags(), len(accepted), "rejected names must not be stored")
}

func TestTag_Interning(t *testing.T) {
	r := NewRegistry()

	a, err := r.Tag("database")
	require.NoError(t, err)
	assert.Equal(t, 0, a.ID())

	b, err := r.Tag("database")
	require.NoError(t, err)
	assert.Same(t, a, b)

	c, err := r.Tag("network")
	require.NoError(t, err)
	assert.Equal(t, 1, c.ID())
	assert.Equal(t, "network", c.String())
}
