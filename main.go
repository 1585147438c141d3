package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/automoto/emucommon/assets"
	"github.com/automoto/emucommon/config"
	"github.com/automoto/emucommon/core"
	"github.com/automoto/emucommon/fonts"
	"github.com/automoto/emucommon/frontend"
	"github.com/automoto/emucommon/menu"
	"github.com/automoto/emucommon/pad"
	"github.com/automoto/emucommon/platform"
	"github.com/automoto/emucommon/render"
	"github.com/automoto/emucommon/scenes"
	"github.com/automoto/emucommon/settings"
	"github.com/automoto/emucommon/store"
	"github.com/automoto/emucommon/systems"
	"github.com/automoto/emucommon/textview"
	"github.com/hajimehoshi/ebiten/v2"
)

const (
	title   = "emucommon"
	version = "0.1.0"
)

var romExts = []string{".bin", ".rom"}

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
	quit   bool
	onExit func()
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

// Exit ends the game after the current frame
func (g *Game) Exit() {
	g.quit = true
}

func (g *Game) Update() error {
	g.scene.Update()
	if g.quit {
		if g.onExit != nil {
			g.onExit()
		}
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

type options struct {
	sd, usb  string
	appPath  string
	dataDir  string
	roms     string
	gdata    bool
	pal      bool
	dumpMenu bool
}

func parseFlags() options {
	var o options
	flag.StringVar(&o.sd, "sd", ".", "host directory served as the sd: drive")
	flag.StringVar(&o.usb, "usb", "", "host directory served as the usb: drive")
	flag.StringVar(&o.appPath, "app", "sd:/apps/emucommon/", "application directory")
	flag.StringVar(&o.dataDir, "data", "/emucommon/", "data directory on the data drive, empty for none")
	flag.StringVar(&o.roms, "roms", "roms/", "ROM directory, relative to the application directory or with a drive prefix")
	flag.BoolVar(&o.gdata, "gdata", false, "keep settings and save states in the user data directory")
	flag.BoolVar(&o.pal, "pal", false, "use 50 Hz timing")
	flag.BoolVar(&o.dumpMenu, "dump-menu", false, "print the menu tree and exit")
	flag.Parse()
	return o
}

// newDrives registers the host directories behind the console drives. The
// data directory is created on sd: so a fresh install finds it.
func newDrives(o options) *platform.Drives {
	drives := platform.NewDrives()
	drives.RetryDelay = 100 * time.Millisecond
	drives.Register(platform.PrefixSD, platform.DirDevice{Path: o.sd})
	if o.usb != "" {
		drives.Register(platform.PrefixUSB, platform.DirDevice{Path: o.usb})
	}
	if o.dataDir != "" {
		if err := os.MkdirAll(filepath.Join(o.sd, filepath.FromSlash(o.dataDir)), 0o755); err != nil {
			log.Printf("Warning: Could not create data directory: %v", err)
		}
	}
	return drives
}

// watchSignals presses the hardware buttons: SIGHUP is reset, SIGINT and
// SIGTERM are power.
func watchSignals(latch *pad.HardwareLatch) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		for sig := range ch {
			if sig == syscall.SIGHUP {
				latch.Press(pad.HardwareReset)
			} else {
				latch.Press(pad.HardwarePower)
			}
		}
	}()
}

func main() {
	o := parseFlags()
	config.C.PAL = o.pal

	if err := fonts.LoadDefaults(nil); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	g := &Game{}
	drives := newDrives(o)
	app, err := platform.ProcessArgs(drives, append([]string{o.appPath}, flag.Args()...), o.appPath, o.dataDir)
	if err != nil {
		g.scene = scenes.NewErrorScene(g, err)
		run(g)
		return
	}
	g.onExit = app.Close

	backend := systems.InitPersistence(app, o.gdata)
	set := settings.Defaults()
	settingsFile := systems.SettingsFile(app, backend)
	systems.LoadSettings(set, settingsFile)

	romDir, err := app.Resolve(o.roms)
	if err != nil {
		log.Printf("Warning: Could not resolve rom directory: %v", err)
		romDir = o.roms
	}

	emu := core.New()
	cfgHost := frontend.Config{
		Title:        fmt.Sprintf("%s %s", title, version),
		Settings:     set,
		Core:         emu,
		Snapshots:    &store.Snapshots{Backend: backend, Host: emu},
		ROMs:         frontend.DirROMs{Dir: romDir, Exts: romExts},
		Load:         os.ReadFile,
		SettingsFile: settingsFile,
		USB:          app.IsUSB,
		Options:      menu.Options{Rows: config.Menu.Rows, FrameRate: config.C.FrameRate()},
	}
	if w, err := platform.NewWatcher(romDir, 250*time.Millisecond); err != nil {
		log.Printf("Warning: Could not watch roms: %v", err)
	} else if err := w.Start(); err != nil {
		log.Printf("Warning: Could not watch roms: %v", err)
		w.Stop()
	} else {
		defer w.Stop()
		cfgHost.Changes = w
	}
	host := frontend.New(cfgHost)

	if o.dumpMenu {
		host.Session().Open()
		if err := textview.Tree(os.Stdout, host.Session()); err != nil {
			log.Fatalf("Failed to print menu: %v", err)
		}
		return
	}

	if err := assets.LoadShaders(); err != nil {
		log.Printf("Warning: Could not load shaders: %v", err)
	}
	watchSignals(systems.Hardware)

	sceneApp := &scenes.App{
		Host:     host,
		Core:     emu,
		Settings: set,
		Stack:    render.NewStack(),
		Mutex:    render.NewMutex(),
		About:    fmt.Sprintf("%s %s\nA sample front-end for emulators.", title, version),
	}

	g.scene = scenes.NewMenuScene(g, sceneApp)
	if rom := app.InitialROM; rom != "" {
		if path, err := app.Resolve(rom); err != nil {
			log.Printf("Warning: Could not resolve %s: %v", rom, err)
		} else if host.Launch(path) {
			g.scene = scenes.NewEmulatorScene(g, sceneApp)
		}
	}
	run(g)
}

func run(g *Game) {
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetTPS(config.C.FrameRate())

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
