// Package version provides version information for the colorpicker tool.
// It supports semantic versions with build-time injection.
package version

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Build information that can be set at compile time via -ldflags
var (
	// Version is the semantic version of the application
	Version = "0.3.0"

	// GitCommit is the git commit hash when the binary was built
	GitCommit = "unknown"

	// BuildDate is the date when the binary was built
	BuildDate = "unknown"
)

// releaseNames maps minor release lines to their names.
var releaseNames = map[string]string{
	"0.1.0": "Slate",
	"0.2.0": "Teal",
	"0.3.0": "Ochre",
}

// Info represents comprehensive version information
type Info struct {
	Version     string          `json:"version"`
	ReleaseName string          `json:"releaseName"`
	GitCommit   string          `json:"gitCommit"`
	BuildDate   string          `json:"buildDate"`
	GoVersion   string          `json:"goVersion"`
	Platform    string          `json:"platform"`
	SemVer      *semver.Version `json:"-"`
}

// ReleaseNameForVersion returns the release name for version.
// Patch and prerelease versions use the name of their major.minor.0 line.
func ReleaseNameForVersion(version string) string {
	if name, exists := releaseNames[version]; exists {
		return name
	}

	sv, err := semver.NewVersion(version)
	if err != nil {
		return ""
	}

	return releaseNames[fmt.Sprintf("%d.%d.0", sv.Major(), sv.Minor())]
}

// GetInfo returns comprehensive version information
func GetInfo() (*Info, error) {
	sv, err := semver.NewVersion(Version)
	if err != nil {
		return nil, fmt.Errorf("invalid semantic version '%s': %w", Version, err)
	}

	return &Info{
		Version:     Version,
		ReleaseName: ReleaseNameForVersion(Version),
		GitCommit:   GitCommit,
		BuildDate:   BuildDate,
		GoVersion:   runtime.Version(),
		Platform:    fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
		SemVer:      sv,
	}, nil
}

// GetFormattedVersion returns a one-line version string.
func GetFormattedVersion() string {
	info, err := GetInfo()
	if err != nil {
		return fmt.Sprintf("colorpicker v%s (invalid version)", Version)
	}

	var parts []string
	if info.ReleaseName != "" {
		parts = append(parts, fmt.Sprintf("colorpicker v%s '%s'", info.Version, info.ReleaseName))
	} else {
		parts = append(parts, fmt.Sprintf("colorpicker v%s", info.Version))
	}

	if info.GitCommit != "unknown" && info.GitCommit != "" {
		shortCommit := info.GitCommit
		if len(shortCommit) > 7 {
			shortCommit = shortCommit[:7]
		}
		parts = append(parts, fmt.Sprintf("commit %s", shortCommit))
	}

	if info.BuildDate != "unknown" && info.BuildDate != "" {
		parts = append(parts, fmt.Sprintf("built %s", info.BuildDate))
	}

	parts = append(parts, info.Platform)
	return strings.Join(parts, ", ")
}

// IsPrerelease returns true if the current version is a prerelease
func IsPrerelease() bool {
	sv, err := semver.NewVersion(Version)
	if err != nil {
		return false
	}
	return sv.Prerelease() != ""
}
