package genre

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestName(t *testing.T) {
	name, ok := Name(878)
	require.True(t, ok)
	assert.Equal(t, "Science Fiction", name)

	_, ok = Name(9999)
	assert.False(t, ok)
}

func TestResolveSlug(t *testing.T) {
	cases := map[string]int{
		"action": 28,
		"comedy": 35,
		"drama":  18,
		"horror": 27,
		"sci-fi": 878,
	}
	for slug, want := range cases {
		id, ok := Resolve(slug)
		require.True(t, ok, "slug %q", slug)
		assert.Equal(t, want, id)
	}
}

func TestResolveNumeric(t *testing.T) {
	id, ok := Resolve("10749")
	require.True(t, ok)
	assert.Equal(t, 10749, id)
}

func TestResolveUnknown(t *testing.T) {
	_, ok := Resolve("romance")
	assert.False(t, ok)

	_, ok = Resolve("0")
	assert.False(t, ok)
}

func TestResolveNumericOutsideRegistry(t *testing.T) {
	// Any parseable id resolves; it just has no display name.
	id, ok := Resolve("123456")
	require.True(t, ok)
	assert.Equal(t, 123456, id)

	_, known := Name(123456)
	assert.False(t, known)
}

func TestAll(t *testing.T) {
	all := All()
	require.Len(t, all, 19)
	for i := 1; i < len(all); i++ {
		assert.Less(t, all[i-1].Name, all[i].Name)
	}
}

func TestSlugsStable(t *testing.T) {
	assert.Equal(t, Slugs(), Slugs())
	assert.Len(t, Slugs(), 5)
}
