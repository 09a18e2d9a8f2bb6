package matchcheck

import (
	"testing"

	"github.com/funvibe/matchuse/internal/ast"
)

func testCtx() *Context {
	return NewContext(ast.NewArena(), nil, "test", "subpatset lattice")
}

// equalSubPatSet is a structural comparison used only by these tests; the
// production code never needs to compare two SubPatSets for equality.
func equalSubPatSet(a, b *SubPatSet) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case spEmpty, spFull:
		return true
	case spSeq:
		if len(a.seq) != len(b.seq) {
			return false
		}
		for k, av := range a.seq {
			bv, ok := b.seq[k]
			if !ok || !equalSubPatSet(av, bv) {
				return false
			}
		}
		return true
	case spAlt:
		if a.altCount != b.altCount || len(a.alt) != len(b.alt) {
			return false
		}
		for k, av := range a.alt {
			bv, ok := b.alt[k]
			if !ok || !equalSubPatSet(av, bv) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func sampleSeqA() *SubPatSet {
	inner := NewAlt(map[int]*SubPatSet{0: Full()}, 2, ast.NoHandle)
	return NewSeq(map[int]*SubPatSet{0: inner})
}

func sampleSeqB() *SubPatSet {
	inner := NewAlt(map[int]*SubPatSet{1: Full()}, 2, ast.NoHandle)
	return NewSeq(map[int]*SubPatSet{0: inner})
}

func sampleSeqC() *SubPatSet {
	inner := NewAlt(map[int]*SubPatSet{0: Full(), 1: Full()}, 2, ast.NoHandle)
	return NewSeq(map[int]*SubPatSet{1: inner})
}

func TestUnion_EmptyIsIdentity(t *testing.T) {
	ctx := testCtx()
	a := sampleSeqA()

	if got := Union(ctx, Empty(), a); !equalSubPatSet(got, a) {
		t.Errorf("Union(Empty, a) != a")
	}
	if got := Union(ctx, a, Empty()); !equalSubPatSet(got, a) {
		t.Errorf("Union(a, Empty) != a")
	}
	if got := Union(ctx, Empty(), Empty()); !got.IsEmpty() {
		t.Errorf("Union(Empty, Empty) should stay Empty")
	}
}

func TestUnion_FullAbsorbs(t *testing.T) {
	ctx := testCtx()
	a := sampleSeqA()

	if got := Union(ctx, Full(), a); !got.IsFull() {
		t.Errorf("Union(Full, a) should be Full")
	}
	if got := Union(ctx, a, Full()); !got.IsFull() {
		t.Errorf("Union(a, Full) should be Full")
	}
	if got := Union(ctx, Full(), Full()); !got.IsFull() {
		t.Errorf("Union(Full, Full) should be Full")
	}
}

func TestUnion_Idempotent(t *testing.T) {
	ctx := testCtx()
	for _, a := range []*SubPatSet{sampleSeqA(), sampleSeqB(), sampleSeqC(), Empty(), Full()} {
		if got := Union(ctx, a, a); !equalSubPatSet(got, a) {
			t.Errorf("Union(a, a) != a for %v", a.kind)
		}
	}
}

func TestUnion_Commutative(t *testing.T) {
	ctx := testCtx()
	pairs := [][2]*SubPatSet{
		{sampleSeqA(), sampleSeqB()},
		{sampleSeqA(), sampleSeqC()},
		{sampleSeqB(), sampleSeqC()},
		{sampleSeqA(), Empty()},
		{sampleSeqA(), Full()},
	}
	for _, p := range pairs {
		ab := Union(ctx, p[0], p[1])
		ba := Union(ctx, p[1], p[0])
		if !equalSubPatSet(ab, ba) {
			t.Errorf("Union not commutative: Union(a,b).kind=%v, Union(b,a).kind=%v", ab.kind, ba.kind)
		}
	}
}

func TestUnion_Associative(t *testing.T) {
	ctx := testCtx()
	a, b, c := sampleSeqA(), sampleSeqB(), sampleSeqC()

	left := Union(ctx, Union(ctx, a, b), c)
	right := Union(ctx, a, Union(ctx, b, c))
	if !equalSubPatSet(left, right) {
		t.Errorf("Union not associative: (a∪b)∪c.kind=%v, a∪(b∪c).kind=%v", left.kind, right.kind)
	}
}

func TestUnspecialize_FullAndEmptyPassThrough(t *testing.T) {
	ctx := testCtx()
	if got := Full().Unspecialize(ctx, 3); !got.IsFull() {
		t.Errorf("Unspecialize(Full) should stay Full")
	}
	if got := Empty().Unspecialize(ctx, 3); !got.IsEmpty() {
		t.Errorf("Unspecialize(Empty) should stay Empty")
	}
}

func TestUnsplitOrPat_EmptyStaysEmpty(t *testing.T) {
	ctx := testCtx()
	if got := Empty().UnsplitOrPat(ctx, 0, 2, ast.NoHandle); !got.IsEmpty() {
		t.Errorf("UnsplitOrPat(Empty) should stay Empty")
	}
}

func TestListUnreachableSubpatterns_FullMeansNoneUnreachable(t *testing.T) {
	ctx := testCtx()
	subs, ok := Full().ListUnreachableSubpatterns(ctx)
	if !ok {
		t.Fatalf("ListUnreachableSubpatterns(Full) ok = false, want true")
	}
	if len(subs) != 0 {
		t.Errorf("ListUnreachableSubpatterns(Full) = %v, want none", subs)
	}
}

func TestListUnreachableSubpatterns_EmptyMeansWhollyUnreachable(t *testing.T) {
	ctx := testCtx()
	_, ok := Empty().ListUnreachableSubpatterns(ctx)
	if ok {
		t.Fatalf("ListUnreachableSubpatterns(Empty) ok = true, want false (caller treats whole arm as dead)")
	}
}
