// Package version сообщает, из какой ревизии собран catalog-service.
package version

import (
	"fmt"
	"runtime/debug"
)

// Заполняются через -ldflags "-X github.com/vladislavdragonenkov/catalog/internal/version.version=v1.0.0".
var (
	version = "dev"
	commit  = ""
	date    = ""
)

const unknown = "unknown"

// Build содержит сведения о сборке, которые отдаются в /healthz и пишутся в лог при старте.
type Build struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// Get возвращает сведения о сборке. Пустые commit и date берутся из VCS-меток go build.
func Get() Build {
	return resolve(debug.ReadBuildInfo)
}

func resolve(read func() (*debug.BuildInfo, bool)) Build {
	b := Build{Version: version, Commit: commit, Date: date}
	if b.Commit == "" || b.Date == "" {
		if info, ok := read(); ok && info != nil {
			for _, setting := range info.Settings {
				switch {
				case setting.Key == "vcs.revision" && b.Commit == "":
					b.Commit = setting.Value
				case setting.Key == "vcs.time" && b.Date == "":
					b.Date = setting.Value
				}
			}
		}
	}
	if b.Commit == "" {
		b.Commit = unknown
	}
	if b.Date == "" {
		b.Date = unknown
	}
	return b
}

// GetVersion возвращает версию релиза.
func GetVersion() string { return Get().Version }

func (b Build) String() string {
	return fmt.Sprintf("catalog-service version=%s commit=%s date=%s", b.Version, b.Commit, b.Date)
}

// String возвращает краткую строку для логов.
func String() string { return Get().String() }
