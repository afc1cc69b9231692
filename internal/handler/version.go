package handler

import (
	"net/http"
	"os"
	"runtime"
	"runtime/debug"
)

// VersionInfo contains version and build information
type VersionInfo struct {
	Service   string `json:"service"`
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
	BuildTime string `json:"build_time,omitempty"`
	GitCommit string `json:"git_commit,omitempty"`
	Modified  bool   `json:"modified,omitempty"`
}

// Overridden with -ldflags "-X" in release builds
var (
	Version   = ""
	BuildTime = ""
	GitCommit = ""
)

// HandleVersion reports the running build
// @Summary Build information
// @Description Reports the deployed version, for deployment verification
// @Tags health
// @Produce json
// @Success 200 {object} VersionInfo
// @Router /version [get]
func HandleVersion(serviceName string) http.HandlerFunc {
	info := buildInfo(serviceName, os.Getenv("VERSION"), debug.ReadBuildInfo)
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, info)
	}
}

// buildInfo prefers ldflags values, then VERSION, then the VCS stamp the Go
// toolchain embeds in the binary.
func buildInfo(service, envVersion string, read func() (*debug.BuildInfo, bool)) VersionInfo {
	info := VersionInfo{
		Service:   service,
		Version:   firstNonEmpty(Version, envVersion),
		GoVersion: runtime.Version(),
		BuildTime: BuildTime,
		GitCommit: GitCommit,
	}

	if bi, ok := read(); ok {
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs.revision":
				info.GitCommit = firstNonEmpty(info.GitCommit, s.Value)
			case "vcs.time":
				info.BuildTime = firstNonEmpty(info.BuildTime, s.Value)
			case "vcs.modified":
				info.Modified = s.Value == "true"
			}
		}
		if v := bi.Main.Version; v != "" && v != "(devel)" {
			info.Version = firstNonEmpty(info.Version, v)
		}
	}

	info.Version = firstNonEmpty(info.Version, "dev")
	return info
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
