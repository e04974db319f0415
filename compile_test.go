package treematch

import (
	"testing"

	"github.com/stretchr/testify/require"
	errors "gopkg.in/src-d/go-errors.v1"
)

func TestCompileAssignsStableGroupIDs(t *testing.T) {
	prog, err := Compile(Named("a"), Named("b"), Ref("a"))
	require.NoError(t, err)
	require.Equal(t, 0, prog.GroupNames["a"])
	require.Equal(t, 1, prog.GroupNames["b"])
	require.Equal(t, []string{"a", "b"}, prog.GroupOrder)
}

// compileErrorTestData is a single build-time-error case: compiling
// exprs must fail, and the error must be of kind.
type compileErrorTestData struct {
	name  string
	exprs []any
	kind  *errors.Kind
}

func runCompileErrorTestData(t *testing.T, data compileErrorTestData) {
	t.Helper()
	_, err := Compile(data.exprs...)
	require.Error(t, err)
	require.Truef(t, data.kind.Is(err), "Compile(%v) => %v, want kind %v", data.exprs, err, data.kind)
}

func TestCompileErrors(t *testing.T) {
	cases := []compileErrorTestData{
		{
			name:  "unknown ref",
			exprs: []any{Ref("nope")},
			kind:  ErrUnknownGroupName,
		},
		{
			// "a" is declared after the Ref, so it must still be unresolved.
			name:  "forward ref",
			exprs: []any{Ref("a"), Named("a")},
			kind:  ErrUnknownGroupName,
		},
		{
			name:  "empty named name",
			exprs: []any{Named("")},
			kind:  ErrEmptyName,
		},
		{
			name:  "nil predicate",
			exprs: []any{Check(nil)},
			kind:  ErrNilPredicate,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			runCompileErrorTestData(t, c)
		})
	}
}

func TestCompileNamedDefaultsToAnything(t *testing.T) {
	prog, err := Compile(Named("x"))
	require.NoError(t, err)

	root := Lift([]any{1, 2, 3})
	end, caps, ok, err := Run(prog, &root, 0, DefaultLimits())
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 1, end)
	c := caps[0]
	require.Equal(t, 0, c.start)
	require.Equal(t, 1, c.end)
}

func TestCompileSubseqRightAnchored(t *testing.T) {
	// A SUBSEQ only matches a nested sequence of exactly the given
	// length.
	prog, err := Compile(Subseq("a", "b"))
	require.NoError(t, err)

	short := Lift([]any{[]any{"a", "b"}})
	long := Lift([]any{[]any{"a", "b", "c"}})

	_, _, ok, err := Run(prog, &short, 0, DefaultLimits())
	require.NoError(t, err)
	require.True(t, ok)

	_, _, ok, err = Run(prog, &long, 0, DefaultLimits())
	require.NoError(t, err)
	require.False(t, ok)
}

func TestTimesBounds(t *testing.T) {
	prog, err := Compile(Times(2, 3, "x"), End())
	require.NoError(t, err)

	cases := []struct {
		name string
		n    int
		ok   bool
	}{
		{"below min", 1, false},
		{"at min", 2, true},
		{"between min and max", 3, true},
		{"above max", 4, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			items := make([]any, c.n)
			for i := range items {
				items[i] = "x"
			}
			root := Lift(items)
			_, _, ok, err := Run(prog, &root, 0, DefaultLimits())
			require.NoError(t, err)
			require.Equal(t, c.ok, ok)
		})
	}
}
