package platform

import (
	"fmt"
	"os"
	"strings"

	"github.com/automoto/emucommon/store"
)

// App describes where the application and its data live.
type App struct {
	// Path is the application directory with a trailing slash, such as
	// "sd:/apps/emu/".
	Path string
	// InitialROM is the ROM passed by a loader, if any.
	InitialROM string
	// IsUSB is set when the data directory was found on the usb drive.
	IsUSB bool
	// DataDir is the data directory without a drive prefix.
	DataDir string

	drives *Drives
}

// ProcessArgs works out the application path and initial ROM from args and
// mounts the application and data drives.
//
// args[0] carrying a drive prefix replaces baseDir (its file name is
// dropped). args[1] is a ROM directory or path and args[2] an optional file
// name within it. The data drive is looked up on the drive of the initial
// ROM first, then on the other one. An empty dataDir means no data drive is
// needed.
func ProcessArgs(drives *Drives, args []string, baseDir, dataDir string) (*App, error) {
	app := &App{Path: baseDir, DataDir: dataDir, drives: drives}

	if len(args) > 0 && strings.ContainsRune(args[0], ':') {
		app.Path = appPath(args[0])
	}
	if len(args) > 1 {
		app.InitialROM = initialROM(args[1:])
	}

	if err := drives.MountPath(app.Path, MountRetries); err != nil {
		return app, fmt.Errorf("unable to mount file system for application %s: %w", app.Path, err)
	}

	preferred := app.Path
	if app.InitialROM != "" {
		preferred = app.InitialROM
	}
	if err := app.findDataDrive(preferred); err != nil {
		return app, err
	}
	return app, nil
}

func appPath(arg string) string {
	p := arg
	if i := strings.LastIndexByte(p, '/'); i >= 0 {
		p = p[:i]
	}
	if i := strings.IndexByte(p, ':'); i >= 0 {
		p = strings.ToLower(p[:i]) + p[i:]
	}
	return p + "/"
}

func initialROM(args []string) string {
	path := args[0]
	if path == "" {
		return ""
	}
	var name string
	if len(args) > 1 && args[1] != "" && !hasPrefixFold(args[1], PrefixUSB) && !hasPrefixFold(args[1], PrefixSD) {
		name = args[1]
	}
	if name != "" && !strings.HasSuffix(path, "/") {
		path += "/"
	}
	return path + name
}

func (a *App) findDataDrive(preferred string) error {
	if a.DataDir == "" {
		return nil
	}
	checkUSB := hasPrefixFold(preferred, "usb")
	for i := 0; i < 2; i++ {
		prefix := PrefixSD
		if checkUSB {
			prefix = PrefixUSB
		}
		dataPath := prefix + a.DataDir
		if a.drives.MountPath(dataPath, MountRetries) == nil {
			if dir, err := a.drives.Resolve(dataPath); err == nil {
				if fi, err := os.Stat(dir); err == nil && fi.IsDir() {
					a.IsUSB = checkUSB
					return nil
				}
			}
		}
		checkUSB = !checkUSB
	}
	return fmt.Errorf("unable to find and mount data drive: %w", ErrMountFailed)
}

// FSPrefix is the drive prefix of the data drive.
func (a *App) FSPrefix() string {
	if a.IsUSB {
		return PrefixUSB
	}
	return PrefixSD
}

// Relative returns file relative to the application directory.
func (a *App) Relative(file string) string {
	return a.Path + file
}

// Data returns file within the data directory on the data drive.
func (a *App) Data(file string) string {
	return a.FSPrefix() + a.DataDir + file
}

// Resolve maps a drive path onto the host file system. Paths without a
// drive prefix are relative to the application directory.
func (a *App) Resolve(path string) (string, error) {
	if _, _, ok := SplitPrefix(path); !ok {
		path = a.Relative(strings.TrimLeft(path, "/"))
	}
	return a.drives.Resolve(path)
}

// Backend stores files through the mounted drives.
func (a *App) Backend() store.DirBackend {
	return store.DirBackend{Resolve: a.Resolve}
}

// Close unmounts all drives.
func (a *App) Close() {
	a.drives.UnmountAll()
}

func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}
