// Package build describes the binary that is running. Release builds inject
// a JSON blob via -ldflags; other builds fall back to what the Go toolchain
// recorded in the executable.
package build

import (
	"encoding/json"
	"log/slog"
	"runtime/debug"
	"strings"
)

// Injected at link time:
//
//	go build -ldflags "-X 'github.com/amp-labs/daily-dev-lab/build.infoJSON={...}'"
var infoJSON string //nolint:gochecknoglobals

// Info contains build metadata.
type Info struct {
	Version      string            `json:"version"`
	GitCommit    string            `json:"git_commit"` //nolint:tagliatelle
	GitBranch    string            `json:"git_branch"` //nolint:tagliatelle
	GitDate      string            `json:"git_date"`   //nolint:tagliatelle
	BuildTime    string            `json:"build_time"` //nolint:tagliatelle
	BuildHost    string            `json:"build_host"` //nolint:tagliatelle
	BuildUser    string            `json:"build_user"` //nolint:tagliatelle
	GoVersion    string            `json:"go_version"` //nolint:tagliatelle
	Modified     bool              `json:"modified"`
	Dependencies map[string]string `json:"dependencies"`
}

// Parse deserializes a JSON string into build Info.
// Returns (nil, false) if the input is empty, "{}", or fails to parse.
func Parse(js string) (*Info, bool) {
	js = strings.TrimSpace(js)
	if js == "" || js == "{}" {
		return nil, false
	}

	var info Info

	if err := json.Unmarshal([]byte(js), &info); err != nil {
		slog.Warn("Failed to parse build info from JSON",
			"data", js,
			"error", err)

		return nil, false
	}

	return &info, true
}

// FromBuildInfo converts the toolchain's record of the build.
func FromBuildInfo(bi *debug.BuildInfo) *Info {
	info := &Info{
		Version:      bi.Main.Version,
		GoVersion:    bi.GoVersion,
		Dependencies: make(map[string]string, len(bi.Deps)),
	}

	for _, dep := range bi.Deps {
		version := dep.Version
		if dep.Replace != nil {
			version = dep.Replace.Path + "@" + dep.Replace.Version
		}

		info.Dependencies[dep.Path] = version
	}

	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			info.GitCommit = s.Value
		case "vcs.time":
			info.GitDate = s.Value
		case "vcs.modified":
			info.Modified = s.Value == "true"
		}
	}

	return info
}

// Current returns the injected build info when present, otherwise whatever
// runtime/debug can tell. The boolean is false if neither source exists.
func Current() (*Info, bool) {
	if info, ok := Parse(infoJSON); ok {
		return info, true
	}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return nil, false
	}

	return FromBuildInfo(bi), true
}

// Summary is a one-line description for version output.
func (i *Info) Summary() string {
	if i == nil {
		return "unknown build"
	}

	version := i.Version
	if version == "" {
		version = "(devel)"
	}

	parts := []string{version}

	if i.GitCommit != "" {
		commit := i.GitCommit
		if len(commit) > 12 { //nolint:mnd
			commit = commit[:12]
		}

		if i.Modified {
			commit += "-dirty"
		}

		parts = append(parts, commit)
	}

	if i.GoVersion != "" {
		parts = append(parts, i.GoVersion)
	}

	return strings.Join(parts, " ")
}
