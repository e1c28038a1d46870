package node

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/sprig-lang/sprig/internal/common/failure"
	"github.com/sprig-lang/sprig/internal/common/struct/frame"
	"github.com/sprig-lang/sprig/internal/common/type/list"
	"github.com/sprig-lang/sprig/internal/common/type/vec"
	"github.com/sprig-lang/sprig/internal/host"
)

type counter struct {
	n int
}

func (c *counter) Eval(*frame.T) (any, error) {
	c.n++

	return nil, nil
}

type failing struct {
	err error
}

func (e failing) Eval(*frame.T) (any, error) {
	return nil, e.err
}

func TestRecurAssignsAfterEvaluating(t *testing.T) {
	f := frame.New(2, nil)
	f.Set(0, "a")
	f.Set(1, "b")

	r := &Recur{
		Args:  []Expr{&LocalUse{Slot: 1}, &LocalUse{Slot: 0}},
		Slots: []int{0, 1},
	}

	if _, err := r.Eval(f); !IsRepeat(err) {
		t.Fatalf("expected repeat, got %v", err)
	}

	if f.Get(0) != "b" || f.Get(1) != "a" {
		t.Fatalf("expected swapped slots, got %v %v", f.Get(0), f.Get(1))
	}
}

func TestLoopReusesFrame(t *testing.T) {
	c := &counter{}

	// Repeat until slot 0 is set, which the recur does on its way out.
	body := &If{
		Test: &LocalUse{Slot: 0},
		Then: &Const{Value: "done"},
		Else: &Do{Exprs: []Expr{c, &Recur{Args: []Expr{&Const{Value: true}}, Slots: []int{0}}}},
	}

	v, err := (&Loop{Body: body}).Eval(frame.New(1, nil))
	if err != nil || v != "done" || c.n != 1 {
		t.Fatalf("expected done after one repeat, got %v, %v, %d", v, err, c.n)
	}
}

func TestFnDispatch(t *testing.T) {
	fixed := &Method{Arity: 1, Body: &LocalUse{Slot: 1}, Slots: 2}
	variadic := &Method{Arity: 2, Body: &LocalUse{Slot: 3}, Slots: 4, Variadic: true}

	methods := make([]*Method, MaxPositionalArity+1)
	methods[1] = fixed

	v, err := (&Closure{Label: "f", Methods: methods, Variadic: variadic}).Eval(frame.New(0, nil))
	if err != nil {
		t.Fatal(err)
	}

	fn := v.(*Fn)

	if v, err = fn.Invoke([]any{"x"}); err != nil || v != "x" {
		t.Fatalf("expected x, got %v, %v", v, err)
	}

	if v, err = fn.Invoke([]any{1, 2}); err != nil || v != nil {
		t.Fatalf("expected nil rest, got %v, %v", v, err)
	}

	v, err = fn.Invoke([]any{1, 2, 3, 4})
	if rest, ok := v.(*list.T); err != nil || !ok || rest.Count() != 2 || rest.First() != 3 {
		t.Fatalf("expected (3 4), got %v, %v", v, err)
	}

	if _, err = fn.Invoke(nil); !failure.Is(err, failure.ArityMismatch) {
		t.Fatalf("expected arity mismatch, got %v", err)
	}

	if fn.Literal() != "#function[f]" {
		t.Fatalf("unexpected literal %s", fn.Literal())
	}
}

func TestSelfAndCaptures(t *testing.T) {
	methods := make([]*Method, MaxPositionalArity+1)
	methods[0] = &Method{Body: &Vector{Items: []Expr{&LocalUse{Slot: 0}, &CaptureUse{Index: 0}}}, Slots: 1}

	f := frame.New(1, nil)
	f.Set(0, "captured")

	v, err := (&Closure{Captures: []Expr{&LocalUse{Slot: 0}}, Methods: methods}).Eval(f)
	if err != nil {
		t.Fatal(err)
	}

	// Later changes to the defining frame are not seen.
	f.Set(0, "changed")

	r, err := v.(*Fn).Invoke(nil)
	if err != nil {
		t.Fatal(err)
	}

	items := r.(*vec.T).Items()
	if items[0] != v || items[1] != "captured" {
		t.Fatalf("unexpected result %v", r)
	}
}

func TestFinallyRunsOnce(t *testing.T) {
	object := host.NewClass("Object", nil).Matching(func(any) bool { return true })
	boom := errors.New("boom")

	for _, tc := range []struct {
		name    string
		body    Expr
		catches []*Catch
		err     bool
	}{
		{"normal", &Const{Value: 1}, nil, false},
		{"handled", failing{boom}, []*Catch{{Body: &Const{Value: 2}, Class: object}}, false},
		{"unhandled", failing{boom}, nil, true},
	} {
		c := &counter{}

		_, err := (&Try{Body: tc.body, Catches: tc.catches, Finally: c}).Eval(frame.New(1, nil))
		if (err != nil) != tc.err {
			t.Fatalf("%s: unexpected error %v", tc.name, err)
		}

		if c.n != 1 {
			t.Fatalf("%s: expected finally to run once, ran %d times", tc.name, c.n)
		}
	}
}

func TestTryIgnoresRepeat(t *testing.T) {
	object := host.NewClass("Object", nil).Matching(func(any) bool { return true })
	c := &counter{}

	_, err := (&Try{
		Body:    failing{errRepeat},
		Catches: []*Catch{{Body: &Const{}, Class: object}},
		Finally: c,
	}).Eval(frame.New(1, nil))
	if !IsRepeat(err) || c.n != 1 {
		t.Fatalf("expected repeat to pass through, got %v, %d", err, c.n)
	}
}

func TestFinallyFailureWins(t *testing.T) {
	boom := errors.New("boom")

	_, err := (&Try{Body: &Const{Value: 1}, Finally: failing{boom}}).Eval(frame.New(0, nil))
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
}

func TestLockingExcludes(t *testing.T) {
	const workers = 8

	var wg sync.WaitGroup

	shared := 0
	key := "key"

	body := exprFunc(func() {
		n := shared
		shared = n + 1
	})

	for i := 0; i < workers; i++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for j := 0; j < 100; j++ {
				_, _ = (&Locking{Body: body, Lock: &Const{Value: key}}).Eval(frame.New(0, nil))
			}
		}()
	}

	wg.Wait()

	if shared != workers*100 {
		t.Fatalf("expected %d, got %d", workers*100, shared)
	}

	monitorsl.Lock()
	defer monitorsl.Unlock()

	if len(monitors) != 0 {
		t.Fatalf("expected every monitor released, %d held", len(monitors))
	}
}

func TestLockingReenters(t *testing.T) {
	const workers = 4

	key := "nested"
	shared := 0

	nested := &Locking{
		Body: &Locking{
			Body: exprFunc(func() {
				n := shared
				shared = n + 1
			}),
			Lock: &Const{Value: key},
		},
		Lock: &Const{Value: key},
	}

	done := make(chan struct{})

	go func() {
		defer close(done)

		var wg sync.WaitGroup

		for i := 0; i < workers; i++ {
			wg.Add(1)

			go func() {
				defer wg.Done()

				for j := 0; j < 50; j++ {
					_, _ = nested.Eval(frame.New(0, nil))
				}
			}()
		}

		wg.Wait()
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("nested locking on the same value deadlocked")
	}

	if shared != workers*50 {
		t.Fatalf("expected %d, got %d", workers*50, shared)
	}

	monitorsl.Lock()
	defer monitorsl.Unlock()

	if len(monitors) != 0 {
		t.Fatalf("expected every monitor released, %d held", len(monitors))
	}
}

func TestLockingRejects(t *testing.T) {
	for _, v := range []any{nil, []int{1}} {
		_, err := (&Locking{Body: &Const{}, Lock: &Const{Value: v}}).Eval(frame.New(0, nil))
		if !failure.Is(err, failure.Type) {
			t.Fatalf("expected type error for %v, got %v", v, err)
		}
	}
}

type exprFunc func()

func (fn exprFunc) Eval(*frame.T) (any, error) {
	fn()

	return nil, nil
}
