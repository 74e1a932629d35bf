package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestDefaultRegistry(t *testing.T) {
	r := DefaultRegistry()
	assert.NotNil(t, r)
	assert.Len(t, r.Commands(), 8)
	assert.Equal(t, "go", r.Commands()[0].Name)
}

func TestResolve_CanonicalName(t *testing.T) {
	r := DefaultRegistry()

	cmd, ok := r.Resolve("go")
	assert.True(t, ok)
	assert.Equal(t, "go", cmd.Name)
	assert.Equal(t, HandlerMove, cmd.Handler)
}

func TestResolve_Alias(t *testing.T) {
	r := DefaultRegistry()

	cmd, ok := r.Resolve("head")
	assert.True(t, ok)
	assert.Equal(t, "go", cmd.Name)
}

func TestResolve_CaseInsensitive(t *testing.T) {
	r := DefaultRegistry()

	cmd, ok := r.Resolve("TAKE")
	assert.True(t, ok)
	assert.Equal(t, HandlerTake, cmd.Handler)
}

func TestResolve_NotFound(t *testing.T) {
	r := DefaultRegistry()

	_, ok := r.Resolve("teleport")
	assert.False(t, ok)
	_, ok = r.Resolve("")
	assert.False(t, ok)
	_, ok = r.Resolve("42")
	assert.False(t, ok)
}

func TestResolve_AllVocabulary(t *testing.T) {
	r := DefaultRegistry()
	vocabulary := map[string]string{
		"go": HandlerMove, "move": HandlerMove, "head": HandlerMove,
		"take": HandlerTake, "pickup": HandlerTake,
		"use":  HandlerUse,
		"drop": HandlerDrop,
		"desc": HandlerDescribe, "describe": HandlerDescribe, "where": HandlerDescribe,
		"help": HandlerHelp,
		"cls":  HandlerClear, "clear": HandlerClear,
		"exit": HandlerQuit, "quit": HandlerQuit, "end": HandlerQuit, "bye": HandlerQuit,
	}
	for word, handler := range vocabulary {
		cmd, ok := r.Resolve(word)
		require.True(t, ok, word)
		assert.Equal(t, handler, cmd.Handler, word)
	}
}

func TestResolve_PhoneticVariants(t *testing.T) {
	r := DefaultRegistry()
	variants := map[string]string{
		"hed":      HandlerMove,
		"tak":      HandlerTake,
		"quitt":    HandlerQuit,
		"discribe": HandlerDescribe,
		"clr":      HandlerClear,
	}
	for word, handler := range variants {
		cmd, ok := r.Resolve(word)
		require.True(t, ok, word)
		assert.Equal(t, handler, cmd.Handler, word)
	}
}

func TestResolve_PhoneticDisabled(t *testing.T) {
	r := DefaultRegistry(WithPhonetic(false))

	_, ok := r.Resolve("hed")
	assert.False(t, ok)
	_, ok = r.Resolve("head")
	assert.True(t, ok)
}

func TestResolve_AmbiguousCodesAreNotMatched(t *testing.T) {
	r, err := NewRegistry([]Command{
		{Name: "robert", Handler: "a"},
		{Name: "rupert", Handler: "b"},
		{Name: "tack", Handler: "c"},
	})
	require.NoError(t, err)

	_, ok := r.Resolve("robbert")
	assert.False(t, ok)
	cmd, ok := r.Resolve("tak")
	require.True(t, ok)
	assert.Equal(t, "tack", cmd.Name)
}

func TestNewRegistry_Collisions(t *testing.T) {
	_, err := NewRegistry([]Command{{Name: "go"}, {Name: "go"}})
	assert.Error(t, err)

	_, err = NewRegistry([]Command{{Name: "go", Aliases: []string{"walk"}}, {Name: "walk"}})
	assert.Error(t, err)

	_, err = NewRegistry([]Command{{Name: "go", Aliases: []string{"walk"}}, {Name: "run", Aliases: []string{"walk"}}})
	assert.Error(t, err)
}

func TestNewRegistry_InvalidCacheSize(t *testing.T) {
	_, err := NewRegistry(BuiltinCommands(), WithCodeCacheSize(0))
	assert.Error(t, err)
}

func TestCommandsByCategory(t *testing.T) {
	r := DefaultRegistry()
	byCat := r.CommandsByCategory()
	for _, cat := range Categories() {
		assert.NotEmpty(t, byCat[cat], cat)
	}
	assert.Len(t, byCat[CategoryItems], 3)
}

func TestNeedsArgument(t *testing.T) {
	r := DefaultRegistry()
	for _, cmd := range r.Commands() {
		switch cmd.Handler {
		case HandlerMove, HandlerTake, HandlerUse, HandlerDrop:
			assert.True(t, cmd.NeedsArgument(), cmd.Name)
		default:
			assert.False(t, cmd.NeedsArgument(), cmd.Name)
		}
	}
}

func TestPropertyResolveIsDeterministic(t *testing.T) {
	r := DefaultRegistry(WithCodeCacheSize(4))
	rapid.Check(t, func(t *rapid.T) {
		word := rapid.StringMatching(`[a-z]{1,8}`).Draw(t, "word")
		first, ok1 := r.Resolve(word)
		second, ok2 := r.Resolve(word)
		if ok1 != ok2 || first != second {
			t.Fatalf("Resolve(%q) not stable: %v/%v vs %v/%v", word, first, ok1, second, ok2)
		}
	})
}
