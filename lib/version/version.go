// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package version

import (
	"fmt"
	"runtime"
)

// These variables are set via -ldflags at build time, for example:
//
//	go build -ldflags "-X github.com/bureau-foundation/paramkit/lib/version.GitCommit=$(git rev-parse --short HEAD)"
var (
	// GitCommit is the short git SHA of the build.
	GitCommit = "unknown"

	// GitDirty indicates whether there were uncommitted changes.
	GitDirty = "false"

	// BuildTime is the UTC timestamp of the build.
	BuildTime = "unknown"

	// Version is the semantic version. This is set manually for releases.
	Version = "0.1.0-dev"
)

// Info is the build description of the running binary.
type Info struct {
	Version   string `json:"version" yaml:"version"`
	Commit    string `json:"commit" yaml:"commit"`
	Dirty     bool   `json:"dirty,omitempty" yaml:"dirty,omitempty"`
	BuildTime string `json:"build_time" yaml:"build_time"`
	Go        string `json:"go" yaml:"go"`
	Platform  string `json:"platform" yaml:"platform"`
}

// Current returns the build description of the running binary.
func Current() Info {
	return Info{
		Version:   Version,
		Commit:    GitCommit,
		Dirty:     GitDirty == "true",
		BuildTime: BuildTime,
		Go:        runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// String returns a formatted version string suitable for --version
// output: "0.1.0-dev (abc1234-dirty, 2026-02-10T...)".
func (i Info) String() string {
	dirty := ""
	if i.Dirty {
		dirty = "-dirty"
	}
	return fmt.Sprintf("%s (%s%s, %s)", i.Version, i.Commit, dirty, i.BuildTime)
}

// Full returns the version string followed by the Go version and
// platform on indented lines.
func (i Info) Full() string {
	return fmt.Sprintf("%s\n  Go: %s\n  Platform: %s", i.String(), i.Go, i.Platform)
}
