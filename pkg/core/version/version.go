// ============================================================================
// mcalc - Console Calculator
// ============================================================================
//
// Package:     version
// Description: Build metadata, overridable via -ldflags
// Author:      Mike Stoffels
// Created:     2026-10-15
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
	"strings"
)

// Set at build time:
//
//	go build -ldflags "-X github.com/msto63/mcalc/pkg/core/version.GitCommit=$(git rev-parse --short HEAD)"
var (
	Version   = "0.1.0"
	GitCommit = "development"
	BuildDate = "unknown"
)

// Info returns the multi-line version report printed by "mcalc version"
func Info() string {
	var s strings.Builder
	fmt.Fprintf(&s, "mcalc v%s\n", Version)
	fmt.Fprintf(&s, "  Git Commit: %s\n", GitCommit)
	fmt.Fprintf(&s, "  Build Date: %s\n", BuildDate)
	fmt.Fprintf(&s, "  Go Version: %s\n", runtime.Version())
	fmt.Fprintf(&s, "  OS/Arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)
	return s.String()
}
