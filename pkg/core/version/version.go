// ============================================================================
// ratio - Exact Fractions from Heterogeneous Input
// ============================================================================
//
// Package:     version
// Description: Central version information for the ratio tool
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"

	"github.com/msto63/ratio/foundation/utils/ratiox"
)

// Version constants
const (
	// CLI is the version of the ratio command
	CLI = "0.1.0"

	// Library is the version of the ratiox package the command is built on
	Library = ratiox.Version
)

// Set at build time via -ldflags "-X github.com/msto63/ratio/pkg/core/version.GitCommit=..."
var (
	GitCommit = "development"
	BuildDate = "unknown"
)

// Info describes a build
type Info struct {
	CLI       string `json:"cli"`
	Library   string `json:"library"`
	GitCommit string `json:"git_commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// Get returns the version information of the running binary
func Get() Info {
	return Info{
		CLI:       CLI,
		Library:   Library,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// String returns a one line summary such as "ratio v0.1.0 (ratiox 0.4.0)"
func (i Info) String() string {
	return fmt.Sprintf("ratio v%s (ratiox %s)", i.CLI, i.Library)
}
