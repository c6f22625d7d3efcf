package version

import (
	"fmt"
	"runtime/debug"

	"terminus-veil/internal/infrastructure/storage"
	"terminus-veil/pkg/api"
)

// Задаются через -ldflags "-X terminus-veil/internal/version.Build=...".
var (
	Build  string
	Commit string
)

// Info - что сервер сообщает клиенту о себе: сборка и версии форматов,
// с которыми клиент и сохраненные реплеи должны совпадать.
type Info struct {
	Build        string `json:"build"`
	Commit       string `json:"commit,omitempty"`
	Modified     bool   `json:"modified,omitempty"`
	GoVersion    string `json:"goVersion,omitempty"`
	Protocol     int    `json:"protocol"`
	ReplayFormat uint32 `json:"replayFormat"`
}

// readBuildInfo подменяется в тестах.
var readBuildInfo = debug.ReadBuildInfo

// Get собирает Info. Без ldflags коммит берется из vcs-меток go build.
func Get() Info {
	info := Info{
		Build:        Build,
		Commit:       Commit,
		Protocol:     api.ProtocolVersion,
		ReplayFormat: storage.FormatVersion,
	}

	if bi, ok := readBuildInfo(); ok {
		info.GoVersion = bi.GoVersion
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs.revision":
				if info.Commit == "" {
					info.Commit = s.Value
				}
			case "vcs.modified":
				info.Modified = s.Value == "true"
			}
		}
	}

	if info.Build == "" {
		info.Build = "dev"
	}
	if len(info.Commit) > 12 {
		info.Commit = info.Commit[:12]
	}
	return info
}

// String - строка для лога при старте.
func (i Info) String() string {
	commit := i.Commit
	if commit == "" {
		commit = "unknown"
	}
	if i.Modified {
		commit += "+dirty"
	}
	return fmt.Sprintf("Terminus Veil %s commit[%s] protocol v%d replay v%d",
		i.Build, commit, i.Protocol, i.ReplayFormat)
}
