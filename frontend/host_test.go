package frontend

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/automoto/emucommon/core"
	"github.com/automoto/emucommon/menu"
	"github.com/automoto/emucommon/settings"
	"github.com/automoto/emucommon/store"
	"github.com/automoto/emucommon/textview"
)

type fakeChanges struct{ pending bool }

func (f *fakeChanges) Poll() bool {
	p := f.pending
	f.pending = false
	return p
}

type fixture struct {
	host    *Host
	romDir  string
	conf    store.ConfigFile
	changes *fakeChanges
	core    *core.Pattern
	set     *settings.Settings
}

func newFixture(t *testing.T, roms ...string) *fixture {
	t.Helper()
	romDir := t.TempDir()
	for _, r := range roms {
		if err := os.WriteFile(filepath.Join(romDir, r), []byte(r), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	data := store.DirBackend{Root: t.TempDir()}
	f := &fixture{
		romDir:  romDir,
		conf:    store.ConfigFile{Backend: data, Name: "settings.conf"},
		changes: &fakeChanges{},
		core:    core.New(),
		set:     settings.Defaults(),
	}
	f.host = New(Config{
		Title:        "Sample",
		Settings:     f.set,
		Core:         f.core,
		Snapshots:    &store.Snapshots{Backend: data, Host: f.core},
		ROMs:         DirROMs{Dir: romDir, Exts: []string{".bin"}},
		Load:         os.ReadFile,
		Changes:      f.changes,
		SettingsFile: &f.conf,
	})
	return f
}

func (f *fixture) screen(t *testing.T) string {
	t.Helper()
	var buf bytes.Buffer
	if err := textview.Screen(&buf, f.host.Session()); err != nil {
		t.Fatal(err)
	}
	return buf.String()
}

func (f *fixture) press(t *testing.T, actions ...menu.Action) {
	t.Helper()
	for _, a := range actions {
		f.host.Handle(a)
	}
}

func TestTopMenuBeforeLaunch(t *testing.T) {
	f := newFixture(t, "b.bin", "a.bin")
	f.host.Session().Open()

	want := "Sample\n\n" +
		"> Load game\n" +
		"\n" +
		"\n" +
		"  Settings\n" +
		"\n" +
		"  About\n" +
		"  Exit\n"
	if got := f.screen(t); got != want {
		t.Errorf("top menu:\n%s\nwant:\n%s", got, want)
	}
}

func TestGameList(t *testing.T) {
	f := newFixture(t, "Zork.bin", "adventure.bin", "notes.txt", ".hidden.bin")
	s := f.host.Session()
	s.Open()
	f.press(t, menu.ActionConfirm)

	want := "Load game\n\n" +
		"> adventure\n" +
		"  Zork\n" +
		"\n1 of 2 games\n"
	if got := f.screen(t); got != want {
		t.Errorf("game list:\n%s\nwant:\n%s", got, want)
	}

	if err := os.WriteFile(filepath.Join(f.romDir, "berzerk.bin"), nil, 0o644); err != nil {
		t.Fatal(err)
	}
	s.Tick()
	if got := len(s.Current().Children()); got != 2 {
		t.Fatalf("rescanned without a change notice: %d", got)
	}
	s.TakeRedraw()
	f.changes.pending = true
	s.Tick()
	if got := len(s.Current().Children()); got != 3 {
		t.Fatalf("after rescan: %d entries", got)
	}
	if !s.TakeRedraw() {
		t.Error("rescan did not request a redraw")
	}
}

func TestRescanResetsSelection(t *testing.T) {
	f := newFixture(t, "a.bin", "b.bin", "c.bin")
	s := f.host.Session()
	s.Open()
	f.press(t, menu.ActionConfirm, menu.ActionDown, menu.ActionDown)
	if n := s.Selected(); n == nil || n.Name() != "c" {
		t.Fatalf("selected %v, want c", n)
	}

	if err := os.WriteFile(filepath.Join(f.romDir, "0.bin"), nil, 0o644); err != nil {
		t.Fatal(err)
	}
	f.changes.pending = true
	s.Tick()

	if n := s.Selected(); n == nil || n.Name() != "0" {
		t.Errorf("selected %v after rescan, want 0", n)
	}
	if c := s.Cursor(); c.Index != 0 || c.Start != 0 {
		t.Errorf("cursor %+v after rescan", c)
	}
}

func TestEmptyGameList(t *testing.T) {
	f := newFixture(t)
	s := f.host.Session()
	s.Open()
	f.press(t, menu.ActionConfirm)

	if s.Depth() != 1 || s.Current().Type() != NodeGames {
		t.Fatalf("depth %d current %q", s.Depth(), s.Current().Name())
	}
	if s.Selected() != nil {
		t.Errorf("selected %v in an empty list", s.Selected())
	}
	if got := f.host.Footer(s.Current()); got != "No games found" {
		t.Errorf("footer = %q", got)
	}

	if err := os.WriteFile(filepath.Join(f.romDir, "pong.bin"), nil, 0o644); err != nil {
		t.Fatal(err)
	}
	f.changes.pending = true
	s.Tick()
	if n := s.Selected(); n == nil || n.Name() != "pong" {
		t.Errorf("selected %v after the first rom appeared", n)
	}
}

func TestLaunchAndStates(t *testing.T) {
	f := newFixture(t, "pitfall.bin")
	s := f.host.Session()
	s.Open()
	f.press(t, menu.ActionConfirm, menu.ActionConfirm)

	if r := f.host.TakeRequest(); r != RequestResume {
		t.Fatalf("request = %v", r)
	}
	if !s.Quitting() || s.Depth() != 0 {
		t.Fatalf("quitting=%v depth=%d", s.Quitting(), s.Depth())
	}
	rom := filepath.Join(f.romDir, "pitfall.bin")
	if f.core.ROM() != rom || f.set.LastROM != rom {
		t.Fatalf("core %q, last rom %q", f.core.ROM(), f.set.LastROM)
	}
	s.Close()
	got := settings.Defaults()
	if err := got.Load(f.conf); err != nil || got.LastROM != rom {
		t.Fatalf("saved last rom %q: %v", got.LastROM, err)
	}

	for range 7 {
		f.core.Step()
	}
	s.Open()
	if n := s.Selected(); n == nil || n.Type() != NodeGames {
		t.Fatalf("selected %v", n)
	}
	// Load game, Resume, Reset, Save state
	f.press(t, menu.ActionDown, menu.ActionDown, menu.ActionDown, menu.ActionConfirm)
	if msg, _ := s.Status(); msg != store.MsgSaved {
		t.Fatalf("status %q, err %v", msg, f.host.Err())
	}
	if !strings.Contains(f.screen(t), "Load state") {
		t.Error("load state hidden after saving")
	}

	f.core.Step()
	f.press(t, menu.ActionDown, menu.ActionConfirm)
	if msg, _ := s.Status(); msg != MsgLoaded {
		t.Fatalf("status %q, err %v", msg, f.host.Err())
	}
	if f.core.Frame() != 7 {
		t.Errorf("frame after load = %d", f.core.Frame())
	}
	if r := f.host.TakeRequest(); r != RequestResume {
		t.Errorf("request after load = %v", r)
	}

	s.Open()
	f.press(t, menu.ActionDown, menu.ActionDown, menu.ActionDown, menu.ActionDown, menu.ActionDown, menu.ActionConfirm)
	if msg, _ := s.Status(); msg != store.MsgDeleted {
		t.Fatalf("status %q, err %v", msg, f.host.Err())
	}
	if strings.Contains(f.screen(t), "Load state") {
		t.Error("load state shown after delete")
	}
	if n := s.Selected(); n == nil || n.Type() != NodeGames {
		t.Errorf("selected %v after delete, want Load game", n)
	}
}

func TestLaunchFailure(t *testing.T) {
	f := newFixture(t, "gone.bin")
	s := f.host.Session()
	s.Open()
	if err := os.Remove(filepath.Join(f.romDir, "gone.bin")); err != nil {
		t.Fatal(err)
	}
	f.press(t, menu.ActionConfirm, menu.ActionConfirm)
	if !errors.Is(f.host.Err(), os.ErrNotExist) {
		t.Errorf("err = %v", f.host.Err())
	}
	if msg, _ := s.Status(); msg != "Unable to load gone." {
		t.Errorf("status %q", msg)
	}
	if s.Quitting() || f.host.TakeRequest() != RequestNone {
		t.Error("failed launch left the menu")
	}
}

func TestSettingsMenu(t *testing.T) {
	f := newFixture(t)
	s := f.host.Session()
	s.Open()
	f.press(t, menu.ActionDown, menu.ActionConfirm)
	if s.Current().Type() != NodeSettings {
		t.Fatalf("in %q", s.Current().Name())
	}

	f.press(t, menu.ActionRight)
	if f.set.Vsync != settings.VsyncDisabled {
		t.Error("vsync not toggled")
	}
	f.press(t, menu.ActionDown, menu.ActionLeft)
	if f.set.Widescreen != settings.WidescreenEnabled {
		t.Errorf("widescreen = %v", f.set.Widescreen)
	}
	f.press(t, menu.ActionDown, menu.ActionConfirm)
	if !f.set.MoteVertical {
		t.Error("confirm did not toggle orientation")
	}

	want := "Settings\n\n" +
		"  Vertical sync: Disabled\n" +
		"  Widescreen: Enabled\n" +
		"> Remote orientation: Upright\n" +
		"  Top menu exit: Enabled\n" +
		"\n" +
		"  Double strike: Disabled\n" +
		"  Color trap filter: Enabled\n" +
		"  16:9 correction: Disabled\n" +
		"  Screen size: Native\n" +
		"\n" +
		"  Selection color: Blue\n"
	if got := f.screen(t); got != want {
		t.Errorf("settings:\n%s\nwant:\n%s", got, want)
	}

	f.press(t, menu.ActionCancel)
	s.Close()
	got := settings.Defaults()
	if err := got.Load(f.conf); err != nil {
		t.Fatal(err)
	}
	if got.Vsync != settings.VsyncDisabled || !got.MoteVertical {
		t.Errorf("saved %+v", *got)
	}
}

func TestCancelAtTop(t *testing.T) {
	f := newFixture(t)
	s := f.host.Session()
	s.Open()
	f.press(t, menu.ActionCancel)
	if s.Quitting() {
		t.Error("cancel left the menu with nothing loaded")
	}

	f.core.Load("x.bin", nil)
	f.press(t, menu.ActionCancel)
	if !s.Quitting() || f.host.TakeRequest() != RequestResume {
		t.Error("cancel at top did not resume")
	}

	s.Open()
	f.set.TopMenuExit = false
	f.press(t, menu.ActionCancel)
	if s.Quitting() {
		t.Error("cancel resumed with top menu exit off")
	}

	f.press(t, menu.ActionHome)
	if f.host.TakeRequest() != RequestExit {
		t.Error("home did not ask to exit")
	}
}

func TestDisplayName(t *testing.T) {
	tests := map[string]string{
		"/roms/Pitfall!.a26": "Pitfall!",
		"sd:game.bin":        "game",
		".bin":               ".bin",
		"noext":              "noext",
	}
	for in, want := range tests {
		if got := DisplayName(in); got != want {
			t.Errorf("DisplayName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestLaunchFromLoader(t *testing.T) {
	f := newFixture(t, "alpha.bin")
	rom := filepath.Join(f.romDir, "alpha.bin")
	if !f.host.Launch(rom) {
		t.Fatalf("Launch(%q) = false", rom)
	}
	if f.core.ROM() != rom || f.set.LastROM != rom {
		t.Errorf("core rom %q, last rom %q", f.core.ROM(), f.set.LastROM)
	}
	if f.host.Launch(filepath.Join(f.romDir, "missing.bin")) {
		t.Error("missing rom launched")
	}
	if f.core.ROM() != rom {
		t.Errorf("failed launch replaced the game: %q", f.core.ROM())
	}
}
