package curve3

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func mustHandle(t testing.TB, e Evaluator, loop bool) Handle {
	t.Helper()
	h, err := NewHandle(e, loop, 0)
	if err != nil {
		t.Fatal(err)
	}
	return h
}

func mustSpline(s Spline, err error) Spline {
	if err != nil {
		panic(err)
	}
	return s
}
