package result

import (
	"strconv"
	"strings"
	"testing"
)

func TestMap_Ok(t *testing.T) {
	t.Parallel()

	r := Map(Ok[int, string](5), func(x int) int { return x * 2 })
	if v, _ := r.Ok().Get(); !r.IsOk() || v != 10 {
		t.Fatalf("expected Ok(10), got: isOk=%v, val=%v", r.IsOk(), v)
	}
}

func TestMap_ErrUntouched(t *testing.T) {
	t.Parallel()

	calls := 0
	r := Map(Err[int]("boom"), func(x int) int {
		calls++
		return x * 2
	})

	if e, _ := r.Err().Get(); !r.IsErr() || e != "boom" {
		t.Fatalf("expected Err(boom), got: isErr=%v, err=%v", r.IsErr(), e)
	}
	if calls != 0 {
		t.Fatalf("mapper should not run on an Err result, calls=%d", calls)
	}
}

func TestMap_IdentityLaw(t *testing.T) {
	t.Parallel()

	identity := func(x int) int { return x }

	for _, r := range []Result[int, string]{Ok[int, string](5), Err[int]("boom")} {
		m := Map(r, identity)
		if m.IsOk() != r.IsOk() {
			t.Fatalf("identity map changed the discriminant")
		}
		if v, ok := r.Ok().Get(); ok {
			if mv, _ := m.Ok().Get(); mv != v {
				t.Fatalf("identity map changed the Ok payload: %v != %v", mv, v)
			}
		}
		if e, ok := r.Err().Get(); ok {
			if me, _ := m.Err().Get(); me != e {
				t.Fatalf("identity map changed the Err payload: %v != %v", me, e)
			}
		}
	}
}

func TestMap_CompositionLaw(t *testing.T) {
	t.Parallel()

	f := func(x int) int { return x + 1 }
	g := func(x int) string { return strconv.Itoa(x * 2) }

	for _, r := range []Result[int, string]{Ok[int, string](5), Err[int]("boom")} {
		lhs := Map(Map(r, f), g)
		rhs := Map(r, func(x int) string { return g(f(x)) })

		if lhs.IsOk() != rhs.IsOk() {
			t.Fatalf("composition changed the discriminant")
		}
		lv, _ := lhs.Ok().Get()
		rv, _ := rhs.Ok().Get()
		le, _ := lhs.Err().Get()
		re, _ := rhs.Err().Get()
		if lv != rv || le != re {
			t.Fatalf("composition mismatch: (%v,%v) != (%v,%v)", lv, le, rv, re)
		}
	}
}

func TestMapErr(t *testing.T) {
	t.Parallel()

	calls := 0
	upper := func(e string) string {
		calls++
		return strings.ToUpper(e)
	}

	r := MapErr(Err[int]("boom"), upper)
	if e, _ := r.Err().Get(); e != "BOOM" {
		t.Fatalf("expected Err(BOOM), got %v", e)
	}

	ok := MapErr(Ok[int, string](7), upper)
	if v, _ := ok.Ok().Get(); !ok.IsOk() || v != 7 {
		t.Fatalf("Ok payload must pass through MapErr untouched, got: isOk=%v, val=%v", ok.IsOk(), v)
	}
	if calls != 1 {
		t.Fatalf("error mapper should run on Err only, calls=%d", calls)
	}
}

func TestAndThen_LeftIdentity(t *testing.T) {
	t.Parallel()

	f := func(x int) Result[string, string] { return Ok[string, string](strconv.Itoa(x)) }

	bound := AndThen(Ok[int, string](5), f)
	direct := f(5)

	bv, _ := bound.Ok().Get()
	dv, _ := direct.Ok().Get()
	if bound.IsOk() != direct.IsOk() || bv != dv {
		t.Fatalf("AndThen(Ok(x), f) must equal f(x): got %v vs %v", bv, dv)
	}
}

func TestAndThen_Ok(t *testing.T) {
	t.Parallel()

	r := AndThen(Ok[int, string](5), func(x int) Result[int, string] {
		if x > 0 {
			return Ok[int, string](x + 1)
		}
		return Err[int]("neg")
	})

	if v, _ := r.Ok().Get(); !r.IsOk() || v != 6 {
		t.Fatalf("expected Ok(6), got: isOk=%v, val=%v", r.IsOk(), v)
	}
}

func TestAndThen_ShortCircuit(t *testing.T) {
	t.Parallel()

	calls := 0
	r := AndThen(Err[int]("boom"), func(x int) Result[int, string] {
		calls++
		return Ok[int, string](x)
	})

	if e, _ := r.Err().Get(); !r.IsErr() || e != "boom" {
		t.Fatalf("expected Err(boom), got: isErr=%v, err=%v", r.IsErr(), e)
	}
	if calls != 0 {
		t.Fatalf("bound step should never run on an Err result, calls=%d", calls)
	}
}

func TestOrElse(t *testing.T) {
	t.Parallel()

	calls := 0
	recoverErr := func(e string) Result[int, string] {
		calls++
		return Ok[int, string](len(e))
	}

	r := OrElse(Err[int]("boom"), recoverErr)
	if v, _ := r.Ok().Get(); !r.IsOk() || v != 4 {
		t.Fatalf("expected Ok(4) after recovery, got: isOk=%v, val=%v", r.IsOk(), v)
	}

	passed := OrElse(Ok[int, string](9), recoverErr)
	if v, _ := passed.Ok().Get(); !passed.IsOk() || v != 9 {
		t.Fatalf("Ok payload must pass through OrElse untouched, got: isOk=%v, val=%v", passed.IsOk(), v)
	}
	if calls != 1 {
		t.Fatalf("recovery should run on Err only, calls=%d", calls)
	}
}

func TestAnd_Eager(t *testing.T) {
	t.Parallel()

	r := And(Ok[int, string](1), Ok[string, string]("two"))
	if v, _ := r.Ok().Get(); !r.IsOk() || v != "two" {
		t.Fatalf("expected the second operand, got: isOk=%v, val=%v", r.IsOk(), v)
	}

	e := And(Err[int]("boom"), Ok[string, string]("two"))
	if msg, _ := e.Err().Get(); !e.IsErr() || msg != "boom" {
		t.Fatalf("expected the first operand's Err, got: isErr=%v, err=%v", e.IsErr(), msg)
	}
}

func TestFold(t *testing.T) {
	t.Parallel()

	describe := func(r Result[int, string]) string {
		return Fold(r,
			func(v int) string { return "ok:" + strconv.Itoa(v) },
			func(e string) string { return "err:" + e })
	}

	if got := describe(Ok[int, string](3)); got != "ok:3" {
		t.Fatalf("expected ok:3, got %v", got)
	}
	if got := describe(Err[int]("boom")); got != "err:boom" {
		t.Fatalf("expected err:boom, got %v", got)
	}
}
