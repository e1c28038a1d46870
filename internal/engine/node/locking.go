// Released under an MIT license. See LICENSE.

package node

import (
	"bytes"
	"reflect"
	"runtime"
	"strconv"
	"sync"

	"github.com/sprig-lang/sprig/internal/common"
	"github.com/sprig-lang/sprig/internal/common/failure"
	"github.com/sprig-lang/sprig/internal/common/struct/frame"
)

// Locking evaluates Body while holding the lock for the value of Lock.
type Locking struct {
	Body Expr
	Lock Expr
}

// Eval evaluates l in f. The lock is released on every path out.
func (l *Locking) Eval(f *frame.T) (any, error) {
	k, err := l.Lock.Eval(f)
	if err != nil {
		return nil, err
	}

	m, err := acquire(k)
	if err != nil {
		return nil, err
	}

	defer release(k, m)

	return l.Body.Eval(f)
}

// monitor is held by one goroutine at a time. The goroutine holding it may
// acquire it again; it is unlocked when every hold has been released.
type monitor struct {
	sync.Mutex
	depth int
	owner int64
	refs  int
}

//nolint:gochecknoglobals
var (
	monitors  = map[any]*monitor{}
	monitorsl = &sync.Mutex{}
)

func acquire(k any) (*monitor, error) {
	if k == nil {
		return nil, failure.Type.New("cannot lock nil")
	}

	if !reflect.TypeOf(k).Comparable() {
		return nil, failure.Type.New("cannot lock a %s", common.TypeName(k))
	}

	g := goroutine()

	monitorsl.Lock()

	m, ok := monitors[k]
	if !ok {
		m = &monitor{}
		monitors[k] = m
	}

	m.refs++

	if m.depth > 0 && m.owner == g {
		m.depth++

		monitorsl.Unlock()

		return m, nil
	}

	monitorsl.Unlock()

	m.Lock()

	monitorsl.Lock()
	m.depth = 1
	m.owner = g
	monitorsl.Unlock()

	return m, nil
}

func release(k any, m *monitor) {
	monitorsl.Lock()
	defer monitorsl.Unlock()

	m.depth--
	if m.depth == 0 {
		m.owner = 0
		m.Unlock()
	}

	m.refs--
	if m.refs == 0 {
		delete(monitors, k)
	}
}

// goroutine returns the id of the calling goroutine, read from the header
// of its stack trace ("goroutine 18 [running]:").
func goroutine() int64 {
	var b [64]byte

	s := bytes.TrimPrefix(b[:runtime.Stack(b[:], false)], []byte("goroutine "))
	if i := bytes.IndexByte(s, ' '); i >= 0 {
		s = s[:i]
	}

	id, _ := strconv.ParseInt(string(s), 10, 64)

	return id
}
