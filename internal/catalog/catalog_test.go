package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hopcount/internal/catalog"
)

func TestLoad(t *testing.T) {
	cases, err := catalog.Load()
	require.NoError(t, err)
	require.Len(t, cases, 8)

	names, err := catalog.Names()
	require.NoError(t, err)
	assert.Equal(t, []string{
		"scenario-1", "scenario-2", "scenario-3", "scenario-4", "scenario-5",
		"long-98", "long-91", catalog.Custom,
	}, names)

	for _, c := range cases {
		assert.NoError(t, c.Validate(), c.Name)
		assert.Equal(t, 0, c.Expected[0], c.Name)
	}
}

func TestLookup(t *testing.T) {
	c, err := catalog.Lookup("scenario-3")
	require.NoError(t, err)
	assert.Equal(t, 7, c.N)
	assert.Equal(t, []int{4, 4, 4, 4, 7, 7, 7}, c.Shortcuts)
	assert.Equal(t, []int{0, 1, 2, 1, 2, 3, 3}, c.Expected)

	c, err = catalog.Lookup("long-98")
	require.NoError(t, err)
	assert.Len(t, c.Shortcuts, 98)

	_, err = catalog.Lookup("nope")
	assert.ErrorIs(t, err, catalog.ErrUnknownCase)
}

func TestParse_Invalid(t *testing.T) {
	cases := []struct {
		name string
		doc  string
	}{
		{"ShortShortcuts", "cases:\n  - name: a\n    n: 3\n    shortcuts: [1, 2]\n"},
		{"ShortExpected", "cases:\n  - name: a\n    n: 2\n    shortcuts: [1, 2]\n    expected: [0]\n"},
		{"ZeroN", "cases:\n  - name: a\n    n: 0\n"},
		{"Duplicate", "cases:\n  - name: a\n    n: 1\n    shortcuts: [1]\n  - name: a\n    n: 1\n    shortcuts: [1]\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := catalog.Parse([]byte(tc.doc))
			assert.ErrorIs(t, err, catalog.ErrInvalidCase)
		})
	}

	_, err := catalog.Parse([]byte("cases: [unterminated"))
	assert.Error(t, err)
}

func TestParse_ExpectedOptional(t *testing.T) {
	cases, err := catalog.Parse([]byte("cases:\n  - name: a\n    n: 2\n    shortcuts: [2, 1]\n"))
	require.NoError(t, err)
	require.Len(t, cases, 1)
	assert.Nil(t, cases[0].Expected)
}
