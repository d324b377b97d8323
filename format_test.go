package lingo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/lingo"
)

func TestFormat(t *testing.T) {
	t.Parallel()

	t.Run("no arguments returns the string unchanged", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "100%% done", lingo.Format("100%% done"))
	})

	t.Run("substitutes positional arguments", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Home | Acme", lingo.Format("%s | Acme", "Home"))
		assert.Equal(t, "2 of 10", lingo.Format("%d of %d", 2, 10))
	})
}

func TestReplacePlaceholders(t *testing.T) {
	t.Parallel()

	t.Run("replaces named placeholders", func(t *testing.T) {
		t.Parallel()
		got := lingo.ReplacePlaceholders(
			"Hello, {{name}}! You have {{count}} messages.",
			lingo.M{"name": "John", "count": 5},
		)
		assert.Equal(t, "Hello, John! You have 5 messages.", got)
	})

	t.Run("keeps unknown placeholders", func(t *testing.T) {
		t.Parallel()
		got := lingo.ReplacePlaceholders("Hello, {{name}}!", lingo.M{"other": "x"})
		assert.Equal(t, "Hello, {{name}}!", got)
	})

	t.Run("empty map returns the template unchanged", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Hello", lingo.ReplacePlaceholders("Hello", nil))
	})
}
