package menu

import (
	"errors"
	"testing"

	"pgregory.net/rapid"
)

func TestStackCapacity(t *testing.T) {
	s := NewStack(0)
	if s.Limit() != StackCapacity {
		t.Fatalf("Limit() = %d, want %d", s.Limit(), StackCapacity)
	}
	n := NewNode(typeSettings, "m")
	for i := 0; i < StackCapacity; i++ {
		if err := s.Push(n); err != nil {
			t.Fatalf("Push #%d: %v", i, err)
		}
	}
	if err := s.Push(n); !errors.Is(err, ErrCapacityExceeded) {
		t.Fatalf("Push past capacity: err = %v, want ErrCapacityExceeded", err)
	}
	if s.Len() != StackCapacity {
		t.Errorf("Len() = %d after failed push", s.Len())
	}
}

func TestStackPopEmpty(t *testing.T) {
	s := NewStack(2)
	if top, err := s.Pop(); !errors.Is(err, ErrStackEmpty) || top != nil {
		t.Fatalf("Pop() = %v, %v; want nil, ErrStackEmpty", top, err)
	}
	if s.Peek() != nil {
		t.Error("Peek() on empty stack is not nil")
	}
}

func TestStackDepthProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		limit := rapid.IntRange(1, StackCapacity).Draw(t, "limit")
		ops := rapid.SliceOf(rapid.Bool()).Draw(t, "pushes")

		s := NewStack(limit)
		n := NewNode(typeSettings, "m")
		depth := 0
		for _, push := range ops {
			if push {
				err := s.Push(n)
				if depth < limit {
					if err != nil {
						t.Fatalf("push at depth %d: %v", depth, err)
					}
					depth++
				} else if !errors.Is(err, ErrCapacityExceeded) {
					t.Fatalf("push at capacity: err = %v", err)
				}
			} else {
				_, err := s.Pop()
				if depth > 0 {
					if err != nil {
						t.Fatalf("pop at depth %d: %v", depth, err)
					}
					depth--
				} else if !errors.Is(err, ErrStackEmpty) {
					t.Fatalf("pop on empty: err = %v", err)
				}
			}
			if s.Len() != depth {
				t.Fatalf("Len() = %d, want %d", s.Len(), depth)
			}
		}
	})
}
