package minirepl

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuilder_Duplicate(t *testing.T) {
	_, err := NewBuilder().
		Add("name_x", NewCommand("Command X", nil, TrivialHandler{})).
		Add("name_x", NewCommand("Command X 2", nil, TrivialHandler{})).
		Build()

	require.Error(t, err)
	buildErr, ok := err.(*BuildError)
	require.True(t, ok)
	require.Equal(t, ErrDuplicateCommands, buildErr.Kind)
	require.Equal(t, "name_x", buildErr.Name)
}

func TestBuilder_DuplicateIgnoresNamesAndDescriptions(t *testing.T) {
	// same type signature with different arg names is still a duplicate
	_, err := NewBuilder().
		Add("cmd", NewCommand("first", []ArgInfo{NamedArg(ArgInt32, "a")}, TrivialHandler{})).
		Add("cmd", NewCommand("second", []ArgInfo{NamedArg(ArgInt32, "b")}, TrivialHandler{})).
		Build()

	require.Error(t, err)
	buildErr, ok := err.(*BuildError)
	require.True(t, ok)
	require.Equal(t, ErrDuplicateCommands, buildErr.Kind)
}

func TestBuilder_Overload(t *testing.T) {
	repl, err := NewBuilder().
		Add("name_x", NewCommand("Command X", nil, TrivialHandler{})).
		Add("name_x", NewCommand("Command X 2", []ArgInfo{Arg(ArgInt32)}, TrivialHandler{})).
		Build()

	require.NoError(t, err)
	require.Len(t, repl.commands["name_x"], 2)
}

func TestBuilder_EmptyName(t *testing.T) {
	_, err := NewBuilder().
		Add("", NewCommand("", nil, TrivialHandler{})).
		Build()

	require.Error(t, err)
	buildErr, ok := err.(*BuildError)
	require.True(t, ok)
	require.Equal(t, ErrInvalidName, buildErr.Kind)
}

func TestBuilder_NameWithSpaces(t *testing.T) {
	_, err := NewBuilder().
		Add("name-with spaces", NewCommand("", nil, TrivialHandler{})).
		Build()

	require.Error(t, err)
	buildErr, ok := err.(*BuildError)
	require.True(t, ok)
	require.Equal(t, ErrInvalidName, buildErr.Kind)
}

func TestBuilder_UnparsableName(t *testing.T) {
	_, err := NewBuilder().
		Add("name'with quote", NewCommand("", nil, TrivialHandler{})).
		Build()

	require.Error(t, err)
	buildErr, ok := err.(*BuildError)
	require.True(t, ok)
	require.Equal(t, ErrInvalidName, buildErr.Kind)
}

func TestBuilder_Reserved(t *testing.T) {
	for _, name := range []string{"help", "quit"} {
		t.Run(name, func(t *testing.T) {
			_, err := NewBuilder().
				Add(name, NewCommand("", nil, TrivialHandler{})).
				Build()

			require.Error(t, err)
			buildErr, ok := err.(*BuildError)
			require.True(t, ok)
			require.Equal(t, ErrReservedName, buildErr.Kind)
			require.Equal(t, name, buildErr.Name)
		})
	}
}

func TestBuilder_FirstFailureAborts(t *testing.T) {
	_, err := NewBuilder().
		Add("ok", NewCommand("", nil, TrivialHandler{})).
		Add("bad name", NewCommand("", nil, TrivialHandler{})).
		Add("help", NewCommand("", nil, TrivialHandler{})).
		Build()

	require.Error(t, err)
	buildErr, ok := err.(*BuildError)
	require.True(t, ok)
	require.Equal(t, ErrInvalidName, buildErr.Kind)
	require.Equal(t, "bad name", buildErr.Name)
}

func TestBuilder_VariantCountsRoundTrip(t *testing.T) {
	counts := map[string]int{"alpha": 3, "beta": 1, "gamma": 2}
	b := NewBuilder()

	// pairwise-distinct signatures per name: 0, 1, 2, ... int args
	for name, n := range counts {
		for i := 0; i < n; i++ {
			args := make([]ArgInfo, i)
			for j := range args {
				args[j] = Arg(ArgInt32)
			}
			b.Add(name, NewCommand("", args, TrivialHandler{}))
		}
	}

	repl, err := b.Build()
	require.NoError(t, err)

	for name, n := range counts {
		require.Len(t, repl.commands[name], n, "variant count for %q", name)
	}
}

func TestBuilder_Defaults(t *testing.T) {
	repl, err := NewBuilder().withEditor(&scriptEditor{}).Build()
	require.NoError(t, err)

	require.Equal(t, "> ", repl.prompt)
	require.Equal(t, 80, repl.textWidth)
	require.True(t, repl.predict)
	require.Empty(t, repl.description)
}
