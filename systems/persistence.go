package systems

import (
	"log"

	"github.com/automoto/emucommon/platform"
	"github.com/automoto/emucommon/settings"
	"github.com/automoto/emucommon/store"
)

// AppName names the per-user data directory when gdata storage is used.
const AppName = "emucommon"

// SettingsName is the settings file within the data directory.
const SettingsName = "settings.conf"

// InitPersistence picks where settings and save states live: the gdata
// application directory when useGdata is set, otherwise the mounted data
// drive of app. Gdata falls back to the drive when it cannot be opened.
func InitPersistence(app *platform.App, useGdata bool) store.Backend {
	if useGdata {
		b, err := store.OpenGdata(AppName)
		if err == nil {
			return b
		}
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	return app.Backend()
}

// SettingsFile returns the settings file of app within backend.
func SettingsFile(app *platform.App, backend store.Backend) *store.ConfigFile {
	return &store.ConfigFile{Backend: backend, Name: app.Data(SettingsName)}
}

// LoadSettings reads f into s. A missing file leaves the defaults; other
// failures are logged and keep whatever was read.
func LoadSettings(s *settings.Settings, f *store.ConfigFile) {
	if f == nil {
		return
	}
	if err := s.Load(*f); err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
	}
}
