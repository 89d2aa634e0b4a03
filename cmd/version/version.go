// SPDX-License-Identifier: MIT

// Package version reports how the running blockmul binary was built.
//
// Values set with -ldflags win:
//
//	-ldflags "-X github.com/katalvlaran/blockmul/cmd/version.Version=v0.3.0"
//
// anything left empty is read from the module and VCS stamps the Go
// toolchain embeds (debug.ReadBuildInfo).
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

// Link-time overrides.
var (
	Version   string
	GitCommit string
	BuildTime string
)

const unknown = "unknown"

// Info is the resolved build description.
type Info struct {
	Version   string
	GitCommit string
	BuildTime string
	Modified  bool
	GoVersion string
	Platform  string
}

// Current resolves Info from the link-time overrides and the embedded
// build information.
func Current() Info {
	info := Info{
		Version:   Version,
		GitCommit: GitCommit,
		BuildTime: BuildTime,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		fromBuildInfo(&info, bi)
	}
	info.Version = orUnknown(info.Version)
	info.GitCommit = orUnknown(info.GitCommit)
	info.BuildTime = orUnknown(info.BuildTime)

	return info
}

// fromBuildInfo fills the fields still empty in info.
func fromBuildInfo(info *Info, bi *debug.BuildInfo) {
	if info.Version == "" {
		info.Version = bi.Main.Version
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.GitCommit == "" {
				info.GitCommit = s.Value
			}
		case "vcs.time":
			if info.BuildTime == "" {
				info.BuildTime = s.Value
			}
		case "vcs.modified":
			info.Modified = s.Value == "true"
		}
	}
}

func orUnknown(s string) string {
	if s == "" {
		return unknown
	}
	return s
}

// String renders the table printed by `blockmul version`.
func (i Info) String() string {
	var sb strings.Builder
	commit := i.GitCommit
	if i.Modified {
		commit += " (dirty)"
	}
	fmt.Fprintf(&sb, "Version:\t %s\n", i.Version)
	fmt.Fprintf(&sb, "Go version:\t %s\n", i.GoVersion)
	fmt.Fprintf(&sb, "Git commit:\t %s\n", commit)
	fmt.Fprintf(&sb, "Built:\t\t %s\n", i.BuildTime)
	fmt.Fprintf(&sb, "OS/Arch:\t %s\n", i.Platform)
	return sb.String()
}

// BuildInfo is Current().String().
func BuildInfo() string {
	return Current().String()
}
