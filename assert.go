// Copyright (c) 2026 Chuck Tilbury. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package unit

import (
	"bytes"
	"math"
	"reflect"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/exp/constraints"

	"github.com/chucktilbury/unit-tests/pkg/heap"
)

// Each assertion records exactly one pass or one fail on the running
// test's record and returns whether it passed, so tests can guard
// follow-up assertions:
//
//	if t.NotNil(f) {
//	    t.PoolSize(32)
//	}

// True passes iff given value is true.
func (t *T) True(v bool) bool {
	if !v {
		t.fail("assert true")
		return false
	}
	t.pass("assert true")
	return true
}

// False passes iff given value is false.
func (t *T) False(v bool) bool {
	if v {
		t.fail("assert false")
		return false
	}
	t.pass("assert false")
	return true
}

// IntEq passes iff exp == got.
func (t *T) IntEq(exp, got int) bool {
	if exp != got {
		t.fail("assert int equal expected %d but got %d", exp, got)
		return false
	}
	t.pass("assert int equal")
	return true
}

// IntNeq passes iff exp != got.
func (t *T) IntNeq(exp, got int) bool {
	if exp == got {
		t.fail("assert int not equal expected %d but got %d", exp, got)
		return false
	}
	t.pass("assert int not equal")
	return true
}

// UintEq passes iff exp == got.
func (t *T) UintEq(exp, got uint) bool {
	if exp != got {
		t.fail("assert uint equal expected %d but got %d", exp, got)
		return false
	}
	t.pass("assert uint equal")
	return true
}

// UintNeq passes iff exp != got.
func (t *T) UintNeq(exp, got uint) bool {
	if exp == got {
		t.fail("assert uint not equal expected %d but got %d", exp, got)
		return false
	}
	t.pass("assert uint not equal")
	return true
}

// Eq passes iff exp == got; it covers every integer type the typed
// assertion methods do not.
func Eq[N constraints.Integer](t *T, exp, got N) bool {
	if exp != got {
		t.fail("assert %T equal expected %v but got %v", exp, exp, got)
		return false
	}
	t.pass("assert %T equal", exp)
	return true
}

// Neq passes iff exp != got; the negation of Eq.
func Neq[N constraints.Integer](t *T, exp, got N) bool {
	if exp == got {
		t.fail("assert %T not equal expected %v but got %v", exp, exp, got)
		return false
	}
	t.pass("assert %T not equal", exp)
	return true
}

// StrEq passes iff exp and got have equal content.
func (t *T) StrEq(exp, got string) bool {
	if exp != got {
		t.fail("assert string equal expected %q but got %q%s",
			exp, got, diffSuffix(exp, got))
		return false
	}
	t.pass("assert string equal")
	return true
}

// StrNeq passes iff exp and got differ in content.
func (t *T) StrNeq(exp, got string) bool {
	if exp == got {
		t.fail("assert string not equal but both are %q", got)
		return false
	}
	t.pass("assert string not equal")
	return true
}

// DoubleEq passes iff |exp-got| <= tol.
func (t *T) DoubleEq(exp, got, tol float64) bool {
	if math.Abs(exp-got) > tol {
		t.fail("assert double equal expected %f but got %f", exp, got)
		return false
	}
	t.pass("assert double equal")
	return true
}

// DoubleNeq passes iff |exp-got| > tol.
func (t *T) DoubleNeq(exp, got, tol float64) bool {
	if math.Abs(exp-got) <= tol {
		t.fail("assert double not equal expected %f but got %f", exp, got)
		return false
	}
	t.pass("assert double not equal")
	return true
}

// Nil passes iff p is nil, including typed nil pointers wrapped in an
// interface.
func (t *T) Nil(p interface{}) bool {
	if !isNil(p) {
		t.fail("assert pointer is nil: got %v", p)
		return false
	}
	t.pass("assert pointer is nil")
	return true
}

// NotNil passes iff p is non-nil; see Nil.
func (t *T) NotNil(p interface{}) bool {
	if isNil(p) {
		t.fail("assert pointer is not nil")
		return false
	}
	t.pass("assert pointer is not nil")
	return true
}

func isNil(p interface{}) bool {
	if p == nil {
		return true
	}
	switch v := reflect.ValueOf(p); v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan,
		reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return v.IsNil()
	}
	return false
}

// BufEq passes iff exp and got are byte-wise equal.
func (t *T) BufEq(exp, got []byte) bool {
	if !bytes.Equal(exp, got) {
		t.fail("assert buffer equal%s", diffSuffix(exp, got))
		return false
	}
	t.pass("assert buffer equal")
	return true
}

// BufNeq passes iff exp and got differ byte-wise.
func (t *T) BufNeq(exp, got []byte) bool {
	if bytes.Equal(exp, got) {
		t.fail("assert buffer not equal but both are % x", got)
		return false
	}
	t.pass("assert buffer not equal")
	return true
}

// diffSuffix renders a go-cmp diff of two values for a failure
// message, empty if cmp cannot produce one.
func diffSuffix(exp, got interface{}) string {
	d := cmp.Diff(exp, got)
	if d == "" {
		return ""
	}
	return " (-expected +got):\n" + d
}

// MockEntered passes iff the mock of given name was entered at least
// once during the current test.
func (t *T) MockEntered(name string) bool {
	if t.s.mocks.count(name) == 0 {
		t.fail("assert mock entered %q", name)
		return false
	}
	t.pass("assert mock entered %q", name)
	return true
}

// MockNotEntered passes iff the mock of given name was never entered
// during the current test.
func (t *T) MockNotEntered(name string) bool {
	if c := t.s.mocks.count(name); c != 0 {
		t.fail("assert mock not entered %q: entered %d times", name, c)
		return false
	}
	t.pass("assert mock not entered %q", name)
	return true
}

// MockEnteredCount passes iff the mock of given name was entered
// exactly count times during the current test.
func (t *T) MockEnteredCount(count int, name string) bool {
	if c := t.s.mocks.count(name); c != count {
		t.fail("assert mock entered count %q expected %d but got %d",
			name, count, c)
		return false
	}
	t.pass("assert mock entered count %q", name)
	return true
}

// StubEntered passes iff the stub of given name was entered at least
// once during the current test.
func (t *T) StubEntered(name string) bool {
	if t.s.stubs.count(name) == 0 {
		t.fail("assert stub entered %q", name)
		return false
	}
	t.pass("assert stub entered %q", name)
	return true
}

// StubNotEntered passes iff the stub of given name was never entered
// during the current test.
func (t *T) StubNotEntered(name string) bool {
	if c := t.s.stubs.count(name); c != 0 {
		t.fail("assert stub not entered %q: entered %d times", name, c)
		return false
	}
	t.pass("assert stub not entered %q", name)
	return true
}

// StubEnteredCount passes iff the stub of given name was entered
// exactly count times during the current test.
func (t *T) StubEnteredCount(count int, name string) bool {
	if c := t.s.stubs.count(name); c != count {
		t.fail("assert stub entered count %q expected %d but got %d",
			name, count, c)
		return false
	}
	t.pass("assert stub entered count %q", name)
	return true
}

// memOn reports a harness error and returns false if the allocation
// instrumentation is off; allocation assertions must not silently
// read undefined counters.
func (t *T) memOn() bool {
	if t.s.mem != nil {
		return true
	}
	// frames: printAt, errorAt, memOn, assertion, test body.
	t.s.errorAt(4, "memory tracking is disabled: enable Config.Memory to use allocation assertions")
	return false
}

// PoolSize passes iff the outstanding byte count equals n.
func (t *T) PoolSize(n int) bool {
	if !t.memOn() {
		return false
	}
	if got := t.s.mem.Pool(); got != n {
		t.fail("assert memory pool size expected %d but got %d", n, got)
		return false
	}
	t.pass("assert memory pool size")
	return true
}

// PoolZero passes iff no allocated bytes are outstanding, i.e. every
// allocation of the current test was released.
func (t *T) PoolZero() bool {
	if !t.memOn() {
		return false
	}
	if got := t.s.mem.Pool(); got != 0 {
		t.fail("assert memory pool is zero but got %d", got)
		return false
	}
	t.pass("assert memory pool is zero")
	return true
}

// PoolNotZero passes iff allocated bytes are outstanding.
func (t *T) PoolNotZero() bool {
	if !t.memOn() {
		return false
	}
	if t.s.mem.Pool() == 0 {
		t.fail("assert memory pool not zero")
		return false
	}
	t.pass("assert memory pool not zero")
	return true
}

// TotalSize passes iff the cumulative byte count of the current test
// equals n.
func (t *T) TotalSize(n int) bool {
	if !t.memOn() {
		return false
	}
	if got := t.s.mem.Total(); got != n {
		t.fail("assert memory total size expected %d but got %d", n, got)
		return false
	}
	t.pass("assert memory total size")
	return true
}

// MemEntered passes iff the given allocation operation was invoked at
// least once during the current test.
func (t *T) MemEntered(op heap.Op) bool {
	if !t.memOn() {
		return false
	}
	if t.s.mem.Count(op) == 0 {
		t.fail("assert %s entered", op)
		return false
	}
	t.pass("assert %s entered", op)
	return true
}

// MemNotEntered passes iff the given allocation operation was never
// invoked during the current test.
func (t *T) MemNotEntered(op heap.Op) bool {
	if !t.memOn() {
		return false
	}
	if c := t.s.mem.Count(op); c != 0 {
		t.fail("assert %s not entered: entered %d times", op, c)
		return false
	}
	t.pass("assert %s not entered", op)
	return true
}

// MemEnteredCount passes iff the given allocation operation was
// invoked exactly count times during the current test.
func (t *T) MemEnteredCount(op heap.Op, count int) bool {
	if !t.memOn() {
		return false
	}
	if c := t.s.mem.Count(op); c != count {
		t.fail("assert %s entered count expected %d but got %d",
			op, count, c)
		return false
	}
	t.pass("assert %s entered count", op)
	return true
}
