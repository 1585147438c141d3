package textview

import (
	"bytes"
	"testing"

	"github.com/automoto/emucommon/menu"
)

const (
	typeRoot = iota
	typeSpacer
	typeROM
	typeSettings
	typeVsync
)

type host struct {
	menu.BaseHost
	hidden *menu.Node
}

func (h host) IsNodeVisible(n *menu.Node) bool { return n != h.hidden }

func (h host) NodeName(n *menu.Node) (string, string) {
	if n.Type() == typeVsync {
		return n.Name(), "Enabled"
	}
	return n.Name(), ""
}

func (h host) Header(n *menu.Node) string { return n.Name() }

func tree() (*menu.Node, *menu.Node, *menu.Node) {
	root := menu.NewNode(typeRoot, "Emulator")
	root.Add(typeROM, "Load game")
	root.Add(typeSpacer, "")
	settings := root.Add(typeSettings, "Settings")
	settings.Add(typeVsync, "Vsync")
	hidden := settings.Add(typeVsync, "Secret")
	root.Add(typeROM, "About")
	return root, settings, hidden
}

func TestScreen(t *testing.T) {
	root, _, hidden := tree()
	s := menu.NewSession(root, host{BaseHost: menu.BaseHost{Spacer: typeSpacer, ROM: typeROM}, hidden: hidden}, menu.Options{})
	s.Open()
	s.Move(1)

	var buf bytes.Buffer
	if err := Screen(&buf, s); err != nil {
		t.Fatal(err)
	}
	want := "Emulator\n\n" +
		"  Load game\n" +
		"\n" +
		"> Settings\n" +
		"  About\n"
	if got := buf.String(); got != want {
		t.Errorf("screen:\n%s\nwant:\n%s", got, want)
	}

	if err := s.Handle(menu.ActionConfirm); err != nil {
		t.Fatal(err)
	}
	buf.Reset()
	if err := Screen(&buf, s); err != nil {
		t.Fatal(err)
	}
	want = "Settings\n\n> Vsync: Enabled\n"
	if got := buf.String(); got != want {
		t.Errorf("submenu:\n%s\nwant:\n%s", got, want)
	}

	s.SetStatus("Successfully saved state.")
	buf.Reset()
	_ = Screen(&buf, s)
	want += "\nSuccessfully saved state.\n"
	if got := buf.String(); got != want {
		t.Errorf("with status:\n%s\nwant:\n%s", got, want)
	}
}

func TestTree(t *testing.T) {
	root, _, hidden := tree()
	s := menu.NewSession(root, host{BaseHost: menu.BaseHost{Spacer: typeSpacer, ROM: typeROM}, hidden: hidden}, menu.Options{})
	s.Open()

	var buf bytes.Buffer
	if err := Tree(&buf, s); err != nil {
		t.Fatal(err)
	}
	want := "Emulator\n" +
		"├── Load game\n" +
		"├── -\n" +
		"├── Settings\n" +
		"│   ├── Vsync: Enabled\n" +
		"│   └── Secret: Enabled\n" +
		"└── About\n"
	if got := buf.String(); got != want {
		t.Errorf("tree:\n%s\nwant:\n%s", got, want)
	}
}
