// Package frontend is the menu of the sample emulator front-end: the node
// tree, the menu.Host behind it and the requests it hands to the scenes.
// It has no display dependencies so the whole menu can be driven from
// tests or dumped to a terminal.
package frontend

import (
	"bytes"
	"fmt"
	"log"

	"github.com/automoto/emucommon/core"
	"github.com/automoto/emucommon/menu"
	"github.com/automoto/emucommon/settings"
	"github.com/automoto/emucommon/store"
)

// Node types.
const (
	NodeRoot = iota
	NodeSpacer
	NodeROM
	NodeGames
	NodeResume
	NodeReset
	NodeSaveState
	NodeLoadState
	NodeDeleteState
	NodeSettings
	NodeVsync
	NodeWidescreen
	NodeMoteVertical
	NodeTopMenuExit
	NodeDoubleStrike
	NodeTrapFilter
	NodeCorrect169
	NodeUSBKeepAlive
	NodeSelColor
	NodeResize
	NodeAbout
	NodeExit
)

// Request is what the menu asks the scenes to do after a selection.
type Request int

const (
	RequestNone Request = iota
	RequestResume
	RequestResize
	RequestAbout
	RequestExit
)

// Status messages for loading states, alongside the store.Msg* ones.
const (
	MsgLoaded     = "Successfully loaded state."
	MsgLoadFailed = "An error occurred attempting to load state."
)

// Changes reports whether the ROM directory changed since the last call.
// platform.Watcher implements it.
type Changes interface {
	Poll() bool
}

// Loader reads a ROM file.
type Loader func(rom string) ([]byte, error)

type Config struct {
	Title     string
	Settings  *settings.Settings
	Core      *core.Pattern
	Snapshots *store.Snapshots
	ROMs      ROMSource
	Load      Loader
	// Changes and SettingsFile are optional.
	Changes      Changes
	SettingsFile *store.ConfigFile
	// USB shows the USB keep-alive option.
	USB bool
	// Menu options for the session.
	Options menu.Options
}

// Host implements menu.Host, menu.Adjuster and menu.SubMenu for the sample front-end.
type Host struct {
	menu.BaseHost
	cfg     Config
	session *menu.Session

	root    *menu.Node
	games   *menu.Node
	roms    map[*menu.Node]string
	scanned bool
	dirty   bool
	request Request
	lastErr error
}

// New builds the menu tree and a session over it.
func New(cfg Config) *Host {
	h := &Host{
		BaseHost: menu.BaseHost{Spacer: NodeSpacer, ROM: NodeROM},
		cfg:      cfg,
		roms:     make(map[*menu.Node]string),
	}
	h.root = h.buildTree()
	h.session = menu.NewSession(h.root, h, cfg.Options)
	return h
}

func (h *Host) buildTree() *menu.Node {
	root := menu.NewNode(NodeRoot, h.cfg.Title)
	h.games = root.Add(NodeGames, "Load game")
	root.Add(NodeResume, "Resume")
	root.Add(NodeReset, "Reset")
	root.Add(NodeSpacer, "")
	root.Add(NodeSaveState, "Save state")
	root.Add(NodeLoadState, "Load state")
	root.Add(NodeDeleteState, "Delete state")
	root.Add(NodeSpacer, "")

	opts := root.Add(NodeSettings, "Settings")
	opts.Add(NodeVsync, "Vertical sync")
	opts.Add(NodeWidescreen, "Widescreen")
	opts.Add(NodeMoteVertical, "Remote orientation")
	opts.Add(NodeTopMenuExit, "Top menu exit")
	opts.Add(NodeSpacer, "")
	opts.Add(NodeDoubleStrike, "Double strike")
	opts.Add(NodeTrapFilter, "Color trap filter")
	opts.Add(NodeCorrect169, "16:9 correction")
	opts.Add(NodeResize, "Screen size")
	opts.Add(NodeSpacer, "")
	opts.Add(NodeSelColor, "Selection color")
	opts.Add(NodeUSBKeepAlive, "USB keep alive")

	root.Add(NodeSpacer, "")
	root.Add(NodeAbout, "About")
	root.Add(NodeExit, "Exit")
	return root
}

func (h *Host) Session() *menu.Session       { return h.session }
func (h *Host) Settings() *settings.Settings { return h.cfg.Settings }
func (h *Host) Core() *core.Pattern          { return h.cfg.Core }

// MarkDirty schedules a settings save for the end of the next menu pass.
func (h *Host) MarkDirty() { h.dirty = true }

// TakeRequest returns and clears the pending request.
func (h *Host) TakeRequest() Request {
	r := h.request
	h.request = RequestNone
	return r
}

// Err returns the last error hit while handling a selection.
func (h *Host) Err() error { return h.lastErr }

// RefreshROMs rebuilds the game menu from the ROM source, sorted by name.
func (h *Host) RefreshROMs() error {
	h.scanned = true
	h.games.ClearChildren()
	clear(h.roms)
	if h.cfg.ROMs == nil {
		return nil
	}
	roms, err := h.cfg.ROMs.List()
	if err != nil {
		return err
	}
	for _, rom := range roms {
		h.roms[h.games.Add(NodeROM, DisplayName(rom))] = rom
	}
	h.games.SortChildren()
	return nil
}

// ROMPath returns the file behind a ROM node.
func (h *Host) ROMPath(n *menu.Node) string { return h.roms[n] }

func (h *Host) loaded() bool { return h.cfg.Core != nil && h.cfg.Core.Loaded() }

func (h *Host) hasState() bool {
	return h.loaded() && h.cfg.Snapshots != nil && h.cfg.Snapshots.Exists(h.cfg.Core.ROM())
}

// IsSubMenu lets the game list open while the directory is empty.
func (h *Host) IsSubMenu(n *menu.Node) bool {
	return n.Type() == NodeGames || n.Type() == NodeSettings
}

func (h *Host) IsNodeVisible(n *menu.Node) bool {
	switch n.Type() {
	case NodeResume, NodeReset, NodeSaveState:
		return h.loaded()
	case NodeLoadState, NodeDeleteState:
		return h.hasState()
	case NodeUSBKeepAlive:
		return h.cfg.USB
	}
	return true
}

func (h *Host) NodeName(n *menu.Node) (string, string) {
	s := h.cfg.Settings
	switch n.Type() {
	case NodeVsync:
		return n.Name(), s.Vsync.String()
	case NodeWidescreen:
		return n.Name(), s.Widescreen.String()
	case NodeMoteVertical:
		if s.MoteVertical {
			return n.Name(), "Upright"
		}
		return n.Name(), "Sideways"
	case NodeTopMenuExit:
		return n.Name(), onOff(s.TopMenuExit)
	case NodeDoubleStrike:
		return n.Name(), onOff(s.DoubleStrike)
	case NodeTrapFilter:
		return n.Name(), onOff(s.TrapFilter)
	case NodeCorrect169:
		return n.Name(), onOff(s.Correct169)
	case NodeUSBKeepAlive:
		return n.Name(), onOff(s.USBKeepAlive)
	case NodeSelColor:
		return n.Name(), settings.SelColorName(s.SelColor)
	case NodeResize:
		if s.ScreenW == 0 || s.ScreenH == 0 {
			return n.Name(), "Native"
		}
		return n.Name(), fmt.Sprintf("%dx%d", s.ScreenW, s.ScreenH)
	}
	return n.Name(), ""
}

func onOff(b bool) string {
	if b {
		return "Enabled"
	}
	return "Disabled"
}

func (h *Host) Header(m *menu.Node) string {
	if m == h.root {
		return h.cfg.Title
	}
	return m.Name()
}

func (h *Host) Footer(m *menu.Node) string {
	switch {
	case m == h.games:
		return h.session.ListFooter("game", "games")
	case m == h.root && h.loaded():
		return "Playing: " + DisplayName(h.cfg.Core.ROM())
	}
	return ""
}

// Update rescans the game list when the directory changed while it is on
// screen.
func (h *Host) Update(m *menu.Node) {
	if m != h.games || h.cfg.Changes == nil || !h.cfg.Changes.Poll() {
		return
	}
	if err := h.RefreshROMs(); err != nil {
		log.Printf("Warning: Could not rescan roms: %v", err)
	}
	h.session.ResetIndexes()
	h.session.ForceRedraw()
}

func (h *Host) PreLoop() {
	if h.scanned {
		return
	}
	if err := h.RefreshROMs(); err != nil {
		log.Printf("Warning: Could not list roms: %v", err)
		h.session.SetStatus("Unable to read the rom directory.")
	}
}

// PostLoop writes the settings when they changed.
func (h *Host) PostLoop() {
	if err := h.SaveSettings(); err != nil {
		log.Printf("Warning: %v", err)
	}
}

// SaveSettings writes the settings file if anything changed since the
// last save.
func (h *Host) SaveSettings() error {
	if !h.dirty || h.cfg.SettingsFile == nil {
		return nil
	}
	if err := h.cfg.Settings.Save(*h.cfg.SettingsFile); err != nil {
		return err
	}
	h.dirty = false
	return nil
}

func (h *Host) HomeButton() { h.Finish(RequestExit) }

// Cancel handles the cancel action. At the top menu it resumes the game
// when top menu exit is enabled.
func (h *Host) Cancel() {
	if _, err := h.session.Pop(); err == nil {
		return
	}
	if h.cfg.Settings.TopMenuExit && h.loaded() {
		h.Finish(RequestResume)
	}
}

// Handle applies a decoded action to the session.
func (h *Host) Handle(a menu.Action) {
	if a == menu.ActionCancel {
		h.Cancel()
		return
	}
	if err := menu.IgnoreRoot(h.session.Handle(a)); err != nil {
		log.Printf("Warning: %v", err)
	}
}

func (h *Host) SelectNode(n *menu.Node) {
	h.lastErr = nil
	switch n.Type() {
	case NodeROM:
		h.launch(h.roms[n])
	case NodeResume:
		h.Finish(RequestResume)
	case NodeReset:
		h.cfg.Core.Reset()
		h.Finish(RequestResume)
	case NodeSaveState:
		h.lastErr = h.cfg.Snapshots.SaveAndReport("", h.cfg.Core.ROM(), h.session)
	case NodeLoadState:
		h.loadState()
	case NodeDeleteState:
		h.lastErr = h.cfg.Snapshots.DeleteAndReport(h.cfg.Core.ROM(), h.session)
		if h.lastErr == nil {
			h.session.ResetIndexes()
		}
	case NodeResize:
		h.Finish(RequestResize)
	case NodeAbout:
		h.Finish(RequestAbout)
	case NodeExit:
		h.Finish(RequestExit)
	default:
		h.AdjustNode(n, 1)
	}
}

// Finish ends the menu pass with r.
func (h *Host) Finish(r Request) {
	h.request = r
	h.session.Quit()
}

// Launch loads rom as if it was picked in the game menu, such as a ROM
// handed over by a loader. It reports whether the game is ready to run.
func (h *Host) Launch(rom string) bool {
	h.launch(rom)
	return h.TakeRequest() == RequestResume
}

func (h *Host) launch(rom string) {
	data, err := h.cfg.Load(rom)
	if err != nil {
		h.lastErr = fmt.Errorf("load %s: %w", rom, err)
		log.Printf("Warning: %v", h.lastErr)
		h.session.SetStatus("Unable to load " + DisplayName(rom) + ".")
		return
	}
	h.cfg.Core.Load(rom, data)
	h.cfg.Settings.LastROM = rom
	h.dirty = true
	h.session.PopToRoot()
	h.Finish(RequestResume)
}

func (h *Host) loadState() {
	data, err := h.cfg.Snapshots.Load(h.cfg.Core.ROM())
	if err == nil {
		err = h.cfg.Core.LoadState(bytes.NewReader(data))
	}
	if err != nil {
		h.lastErr = err
		h.session.SetStatus(MsgLoadFailed)
		return
	}
	h.session.SetStatus(MsgLoaded)
	h.Finish(RequestResume)
}

// AdjustNode cycles the value of a settings node.
func (h *Host) AdjustNode(n *menu.Node, delta int) {
	s := h.cfg.Settings
	switch n.Type() {
	case NodeVsync:
		s.Vsync = settings.Vsync(cycle(int(s.Vsync), delta, 2))
	case NodeWidescreen:
		s.Widescreen = settings.Widescreen(cycle(int(s.Widescreen), delta, 3))
	case NodeMoteVertical:
		s.MoteVertical = !s.MoteVertical
	case NodeTopMenuExit:
		s.TopMenuExit = !s.TopMenuExit
	case NodeDoubleStrike:
		s.DoubleStrike = !s.DoubleStrike
	case NodeTrapFilter:
		s.TrapFilter = !s.TrapFilter
	case NodeCorrect169:
		s.Correct169 = !s.Correct169
	case NodeUSBKeepAlive:
		s.USBKeepAlive = !s.USBKeepAlive
	case NodeSelColor:
		s.CycleSelColor(delta)
	default:
		return
	}
	h.dirty = true
}

func cycle(v, delta, n int) int {
	return ((v+delta)%n + n) % n
}
