package treematch

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunMatchLiteralSequence(t *testing.T) {
	prog, err := Compile(3, 4, 5)
	require.NoError(t, err)

	root := Lift([]any{1, 2, 3, 4, 5, 6, 7, 8, 9})
	end, _, ok, err := Run(prog, &root, 2, DefaultLimits())
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 5, end)

	// Dismatch at a different start.
	_, _, ok, err = Run(prog, &root, 0, DefaultLimits())
	require.NoError(t, err)
	require.False(t, ok)
}

func TestRunPredicate(t *testing.T) {
	isString := func(e Element) bool {
		_, ok := e.Value().(string)
		return ok
	}
	prog, err := Compile(Check(isString))
	require.NoError(t, err)

	root := Lift([]any{"x", 1})
	_, _, ok, err := Run(prog, &root, 0, DefaultLimits())
	require.NoError(t, err)
	require.True(t, ok)

	_, _, ok, err = Run(prog, &root, 1, DefaultLimits())
	require.NoError(t, err)
	require.False(t, ok)
}

func TestRunBackrefSoundness(t *testing.T) {
	prog, err := Compile(Named("a", Anything()), More(Ref("a")))
	require.NoError(t, err)

	root := Lift([]any{3, 3, 3, 9})
	end, caps, ok, err := Run(prog, &root, 0, DefaultLimits())
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 3, end)
	c := caps[0]
	require.Equal(t, 3, c.node.items[c.start].Value())
}

func TestRunBackrefUnboundIsFailureNotError(t *testing.T) {
	prog, err := Compile(Maybe(Named("a", 1)), Ref("a"))
	require.NoError(t, err)

	root := Lift([]any{2, 2})
	_, _, ok, err := Run(prog, &root, 0, DefaultLimits())
	require.NoError(t, err)
	require.False(t, ok)
}

func TestRunDepthLimit(t *testing.T) {
	prog, err := Compile(Many(1))
	require.NoError(t, err)

	items := make([]any, 0, 2000)
	for i := 0; i < 2000; i++ {
		items = append(items, 1)
	}
	root := Lift(items)

	_, _, _, err = Run(prog, &root, 0, Limits{MaxDepth: 10})
	require.Error(t, err)
	require.True(t, ErrDepthExceeded.Is(err))
}

// TestGreedyNonGreedyDuality checks that swapping a greedy repetition
// for its non-greedy twin never starts a match earlier, and at the
// same start never matches further.
func TestGreedyNonGreedyDuality(t *testing.T) {
	greedy, err := Compile(2, Whatever(), 4)
	require.NoError(t, err)
	nonGreedy, err := Compile(2, WhateverNG(), 4)
	require.NoError(t, err)

	root := Lift([]any{1, 2, 3, 4, 2, 4, 2, 1, "a", "b", 4, 5})

	var greedyStart, nonGreedyStart = -1, -1
	var greedyEnd, nonGreedyEnd int
	for i := 0; i <= root.Len(); i++ {
		if end, _, ok, _ := Run(greedy, &root, i, DefaultLimits()); ok && greedyStart == -1 {
			greedyStart, greedyEnd = i, end
		}
		if end, _, ok, _ := Run(nonGreedy, &root, i, DefaultLimits()); ok && nonGreedyStart == -1 {
			nonGreedyStart, nonGreedyEnd = i, end
		}
	}

	require.True(t, nonGreedyStart >= greedyStart)
	if nonGreedyStart == greedyStart {
		require.LessOrEqual(t, nonGreedyEnd, greedyEnd)
	}
}
