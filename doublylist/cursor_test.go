package doublylist

import (
	"slices"
	"testing"

	"github.com/sharedcode/lists"
)

func TestCursor_BothDirections(t *testing.T) {
	l := From(1, 2, 3)
	c := l.Cursor()

	var forward []int
	for ok := c.First(); ok; ok = c.Next() {
		v, err := c.GetCurrentValue()
		if err != nil {
			t.Fatalf("GetCurrentValue: %v", err)
		}
		forward = append(forward, v)
	}
	if !slices.Equal(forward, []int{1, 2, 3}) {
		t.Errorf("forward walk = %v, want [1 2 3]", forward)
	}

	var backward []int
	for ok := c.Last(); ok; ok = c.Previous() {
		v, err := c.GetCurrentValue()
		if err != nil {
			t.Fatalf("GetCurrentValue: %v", err)
		}
		backward = append(backward, v)
	}
	if !slices.Equal(backward, []int{3, 2, 1}) {
		t.Errorf("backward walk = %v, want [3 2 1]", backward)
	}
}

func TestCursor_ZigZag(t *testing.T) {
	// 11 10 20 21 built by mixed front/back pushes, walked from both ends.
	l := New[int]()
	l.PushFront(10)
	l.PushBack(20)
	l.PushFront(11)
	l.PushBack(21)
	mustValid(t, l)

	front := l.Cursor()
	back := l.Cursor()
	front.First()
	back.Last()
	if v, _ := front.GetCurrentValue(); v != 11 {
		t.Errorf("front = %d, want 11", v)
	}
	if v, _ := back.GetCurrentValue(); v != 21 {
		t.Errorf("back = %d, want 21", v)
	}
	front.Next()
	back.Previous()
	if v, _ := front.GetCurrentValue(); v != 10 {
		t.Errorf("front = %d, want 10", v)
	}
	if v, _ := back.GetCurrentValue(); v != 20 {
		t.Errorf("back = %d, want 20", v)
	}
}

func TestCursor_EmptyList(t *testing.T) {
	l := New[int]()
	c := l.Cursor()
	if c.First() || c.Last() || c.Next() || c.Previous() {
		t.Errorf("navigation on an empty list claimed a position")
	}
	if _, err := c.GetCurrentValue(); !lists.IsCode(err, lists.InvalidPosition) {
		t.Errorf("unpositioned cursor returned a value: %v", err)
	}
}

func TestCursor_InsertsAroundCurrent(t *testing.T) {
	l := From(2)
	c := l.Cursor()
	c.First()
	if err := c.InsertBefore(1); err != nil {
		t.Fatalf("InsertBefore: %v", err)
	}
	if err := c.InsertAfter(3); err != nil {
		t.Fatalf("InsertAfter: %v", err)
	}
	if v, _ := c.GetCurrentValue(); v != 2 {
		t.Errorf("cursor moved off 2 to %d", v)
	}
	if got := slices.Collect(l.Values()); !slices.Equal(got, []int{1, 2, 3}) {
		t.Errorf("got %v, want [1 2 3]", got)
	}
	mustValid(t, l)
}

func TestCursor_UpdateAndRemove(t *testing.T) {
	l := From(1, 2, 3)
	c := l.Cursor()
	c.Last()
	c.Previous() // on 2
	if err := c.UpdateCurrentValue(20); err != nil {
		t.Fatalf("UpdateCurrentValue: %v", err)
	}
	v, err := c.RemoveCurrentItem()
	if err != nil {
		t.Fatalf("RemoveCurrentItem: %v", err)
	}
	if v != 20 {
		t.Errorf("removed %d, want 20", v)
	}
	if got := slices.Collect(l.Values()); !slices.Equal(got, []int{1, 3}) {
		t.Errorf("got %v, want [1 3]", got)
	}
	mustValid(t, l)
	if _, err := c.GetCurrentValue(); !lists.IsCode(err, lists.InvalidPosition) {
		t.Errorf("cursor still positioned after removal: %v", err)
	}
}

func TestCursor_StaleAfterOutsideRemoval(t *testing.T) {
	l := From(1, 2, 3)
	c := l.Cursor()
	c.First()
	c.Next() // on 2
	if _, err := l.RemoveAt(1); err != nil {
		t.Fatalf("RemoveAt: %v", err)
	}
	if c.Next() || c.Previous() {
		t.Errorf("cursor navigated off a removed element")
	}
	if _, err := c.GetCurrentValue(); !lists.IsCode(err, lists.InvalidPosition) {
		t.Errorf("cursor on a removed element yielded a value: %v", err)
	}
}
