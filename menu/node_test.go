package menu

import (
	"errors"
	"testing"
)

const (
	typeRoot = iota
	typeSpacer
	typeROM
	typeSettings
	typeAbout
)

func TestAddChildKeepsOrder(t *testing.T) {
	root := NewNode(typeRoot, "root")
	for _, name := range []string{"b", "a", "c", "a"} {
		if err := root.AddChild(NewNode(typeROM, name)); err != nil {
			t.Fatalf("AddChild(%s): %v", name, err)
		}
	}

	want := []string{"b", "a", "c", "a"}
	if root.ChildCount() != len(want) {
		t.Fatalf("ChildCount() = %d, want %d", root.ChildCount(), len(want))
	}
	for i, w := range want {
		if got := root.Child(i).Name(); got != w {
			t.Errorf("child %d = %q, want %q", i, got, w)
		}
		if root.Child(i).Parent() != root {
			t.Errorf("child %d parent not set", i)
		}
	}
}

func TestAddChildGrowsCapacity(t *testing.T) {
	root := NewNode(typeRoot, "root")
	start := root.Cap()
	for i := 0; i < start*3; i++ {
		root.Add(typeROM, "rom")
	}
	if root.ChildCount() != start*3 {
		t.Fatalf("ChildCount() = %d, want %d", root.ChildCount(), start*3)
	}
	if root.Cap() < root.ChildCount() {
		t.Errorf("Cap() = %d is below ChildCount() = %d", root.Cap(), root.ChildCount())
	}
}

func TestAddChildRejectsSharedAndCyclicNodes(t *testing.T) {
	root := NewNode(typeRoot, "root")
	sub := root.Add(typeSettings, "settings")

	if err := root.AddChild(sub); !errors.Is(err, ErrNotATree) {
		t.Errorf("re-adding attached child: err = %v, want ErrNotATree", err)
	}

	orphan := NewNode(typeRoot, "other")
	if err := orphan.AddChild(orphan); !errors.Is(err, ErrNotATree) {
		t.Errorf("adding node to itself: err = %v, want ErrNotATree", err)
	}
	if err := root.AddChild(nil); !errors.Is(err, ErrNotATree) {
		t.Errorf("adding nil: err = %v, want ErrNotATree", err)
	}
}

func TestFindIsPreOrderFromRoot(t *testing.T) {
	root := NewNode(typeRoot, "root")
	load := root.Add(typeSettings, "load")
	first := load.Add(typeROM, "first")
	root.Add(typeROM, "second")

	tests := []struct {
		name string
		typ  int
		want *Node
	}{
		{"root itself", typeRoot, root},
		{"depth first before sibling", typeROM, first},
		{"submenu", typeSettings, load},
		{"missing", typeAbout, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := root.Find(tt.typ); got != tt.want {
				t.Errorf("Find(%d) = %v, want %v", tt.typ, got, tt.want)
			}
		})
	}
}

func TestClearChildrenKeepsNode(t *testing.T) {
	root := NewNode(typeRoot, "root")
	sub := root.Add(typeSettings, "sub")
	leaf := sub.Add(typeROM, "leaf")

	root.ClearChildren()

	if root.ChildCount() != 0 {
		t.Fatalf("root still has %d children", root.ChildCount())
	}
	if sub.ChildCount() != 0 || sub.Parent() != nil || leaf.Parent() != nil {
		t.Error("subtree was not detached")
	}
	if root.Name() != "root" {
		t.Error("root was modified")
	}
	// detached nodes may be attached again
	if err := root.AddChild(sub); err != nil {
		t.Errorf("AddChild after clear: %v", err)
	}
}

func TestSortChildrenIsCaseInsensitiveAndStable(t *testing.T) {
	root := NewNode(typeRoot, "root")
	names := []string{"zelda", "Asteroids", "burgertime", "asteroids", "Burgertime"}
	for _, n := range names {
		root.Add(typeROM, n)
	}
	dup := root.Add(typeROM, "zelda")

	root.SortChildren()

	want := []string{"Asteroids", "asteroids", "Burgertime", "burgertime", "zelda", "zelda"}
	for i, w := range want {
		if got := root.Child(i).Name(); got != w {
			t.Errorf("position %d = %q, want %q", i, got, w)
		}
	}
	if root.Child(5) != dup {
		t.Error("equal names changed relative order")
	}
}

func TestCompareNames(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"abc", "abd", -1},
		{"ABC", "abd", -1},
		{"b", "A", 1},
		{"same", "same", 0},
		{"Same", "same", -1},
	}
	for _, tt := range tests {
		got := CompareNames(NewNode(0, tt.a), NewNode(0, tt.b))
		if got != tt.want {
			t.Errorf("CompareNames(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}
