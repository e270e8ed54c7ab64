package deque

import (
	"errors"
	"reflect"
	"testing"
)

func TestDeque_FIFO(t *testing.T) {
	d := New[int]()
	for i := 1; i <= 3; i++ {
		d.PushBack(i)
	}

	for _, want := range []int{1, 2, 3} {
		got, err := d.PopFront()
		if err != nil {
			t.Fatalf("PopFront() error = %v", err)
		}
		if got != want {
			t.Errorf("PopFront() = %d, want %d", got, want)
		}
	}
	if got := d.Len(); got != 0 {
		t.Errorf("Len() = %d, want 0", got)
	}
}

func TestDeque_LIFO(t *testing.T) {
	d := New[int]()
	for i := 1; i <= 3; i++ {
		d.PushFront(i)
	}

	for _, want := range []int{3, 2, 1} {
		got, err := d.PopFront()
		if err != nil {
			t.Fatalf("PopFront() error = %v", err)
		}
		if got != want {
			t.Errorf("PopFront() = %d, want %d", got, want)
		}
	}
}

func TestDeque_BothEnds(t *testing.T) {
	d := New[int]()
	d.PushFront(1)
	d.PushFront(2)

	got, err := d.PopFront()
	if err != nil || got != 2 {
		t.Errorf("PopFront() = %d, %v, want 2, nil", got, err)
	}

	got, err = d.PopBack()
	if err != nil || got != 1 {
		t.Errorf("PopBack() = %d, %v, want 1, nil", got, err)
	}

	if got := d.Len(); got != 0 {
		t.Errorf("Len() = %d, want 0", got)
	}
}

func TestDeque_PopEmpty(t *testing.T) {
	tests := []struct {
		name string
		pop  func(d *Deque[string]) (string, error)
	}{
		{"front", func(d *Deque[string]) (string, error) { return d.PopFront() }},
		{"back", func(d *Deque[string]) (string, error) { return d.PopBack() }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := New[string]()
			if _, err := tt.pop(d); !errors.Is(err, ErrEmpty) {
				t.Errorf("pop on empty deque error = %v, want ErrEmpty", err)
			}

			// Draining a non-empty deque must end in the same failure.
			d.PushBack("card")
			if _, err := tt.pop(d); err != nil {
				t.Fatalf("pop error = %v", err)
			}
			if _, err := tt.pop(d); !errors.Is(err, ErrEmpty) {
				t.Errorf("pop on drained deque error = %v, want ErrEmpty", err)
			}
		})
	}
}

func TestDeque_From(t *testing.T) {
	d := From([]string{"omen", "ritual", "relic"})

	if got := d.Len(); got != 3 {
		t.Fatalf("Len() = %d, want 3", got)
	}

	front, err := d.PeekFront()
	if err != nil || front != "omen" {
		t.Errorf("PeekFront() = %q, %v, want omen, nil", front, err)
	}
	back, err := d.PeekBack()
	if err != nil || back != "relic" {
		t.Errorf("PeekBack() = %q, %v, want relic, nil", back, err)
	}
}

func TestDeque_Items(t *testing.T) {
	tests := []struct {
		name string
		fill func(d *Deque[int])
		want []int
	}{
		{
			name: "empty",
			fill: func(d *Deque[int]) {},
			want: []int{},
		},
		{
			name: "pushed at the back",
			fill: func(d *Deque[int]) {
				d.PushBack(1)
				d.PushBack(2)
				d.PushBack(3)
			},
			want: []int{1, 2, 3},
		},
		{
			name: "pushed at the front",
			fill: func(d *Deque[int]) {
				d.PushFront(1)
				d.PushFront(2)
			},
			want: []int{2, 1},
		},
		{
			name: "mixed ends",
			fill: func(d *Deque[int]) {
				d.PushBack(2)
				d.PushFront(1)
				d.PushBack(3)
			},
			want: []int{1, 2, 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := New[int]()
			tt.fill(d)
			if got := d.Items(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Items() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDeque_PeekDoesNotMutate(t *testing.T) {
	d := From([]int{1, 2})

	for i := 0; i < 3; i++ {
		if _, err := d.PeekFront(); err != nil {
			t.Fatalf("PeekFront() error = %v", err)
		}
		if _, err := d.PeekBack(); err != nil {
			t.Fatalf("PeekBack() error = %v", err)
		}
	}

	if got := d.Len(); got != 2 {
		t.Errorf("Len() = %d after peeks, want 2", got)
	}
}

func TestDeque_PeekEmpty(t *testing.T) {
	d := New[int]()
	if _, err := d.PeekFront(); !errors.Is(err, ErrEmpty) {
		t.Errorf("PeekFront() error = %v, want ErrEmpty", err)
	}
	if _, err := d.PeekBack(); !errors.Is(err, ErrEmpty) {
		t.Errorf("PeekBack() error = %v, want ErrEmpty", err)
	}
}

func TestDeque_LenBookkeeping(t *testing.T) {
	d := New[int]()

	pushes, pops := 0, 0
	push := func(front bool, v int) {
		if front {
			d.PushFront(v)
		} else {
			d.PushBack(v)
		}
		pushes++
	}
	pop := func(front bool) {
		var err error
		if front {
			_, err = d.PopFront()
		} else {
			_, err = d.PopBack()
		}
		if err == nil {
			pops++
		}
	}

	push(true, 1)
	push(false, 2)
	pop(true)
	push(false, 3)
	pop(false)
	pop(false)
	pop(true) // fails: deque is empty by now
	push(true, 4)

	if got, want := d.Len(), pushes-pops; got != want {
		t.Errorf("Len() = %d, want %d (pushes=%d, successful pops=%d)", got, want, pushes, pops)
	}
}

func TestDeque_Empty(t *testing.T) {
	d := New[int]()
	if !d.Empty() {
		t.Error("Empty() = false on a new deque, want true")
	}

	d.PushBack(1)
	if d.Empty() {
		t.Error("Empty() = true after a push, want false")
	}

	if _, err := d.PopBack(); err != nil {
		t.Fatalf("PopBack() error = %v", err)
	}
	if !d.Empty() {
		t.Error("Empty() = false after draining, want true")
	}
}
