// Package platform detects the host's platform family: an opaque key naming
// the package-manager ecosystem (e.g. "debian"), used only for install
// command selection. An empty key means no family was recognized and callers
// fall back to generic install suggestions.
package platform

import (
	"bufio"
	"os"
	"runtime"
	"strings"

	"github.com/ajxudir/depcheck/pkg/verbose"
)

// osReleasePath is swappable for tests.
var osReleasePath = "/etc/os-release"

// distroFamilies maps os-release ID values to platform family keys.
var distroFamilies = map[string]string{
	"debian":    "debian",
	"ubuntu":    "debian",
	"raspbian":  "debian",
	"fedora":    "redhat",
	"rhel":      "redhat",
	"centos":    "redhat",
	"rocky":     "redhat",
	"almalinux": "redhat",
	"arch":      "arch",
	"manjaro":   "arch",
	"alpine":    "alpine",
	"opensuse":  "suse",
	"sles":      "suse",
}

// Detect returns the platform family key for the host.
//
// Non-Linux systems map directly from the OS name; Linux systems are
// classified from /etc/os-release ID and ID_LIKE values. Unrecognized hosts
// return an empty key.
//
// Returns:
//   - string: The platform family key, or "" when unrecognized
func Detect() string {
	switch runtime.GOOS {
	case "darwin":
		return "darwin"
	case "freebsd":
		return "freebsd"
	case "linux":
		return detectLinux()
	default:
		verbose.Infof("No platform family for OS %s", runtime.GOOS)
		return ""
	}
}

// detectLinux classifies a Linux host from its os-release file.
//
// The ID field is consulted first, then each token of ID_LIKE, so
// derivatives resolve to their parent family.
//
// Returns:
//   - string: The platform family key, or "" when unrecognized
func detectLinux() string {
	file, err := os.Open(osReleasePath)
	if err != nil {
		verbose.Infof("Cannot read %s: %v", osReleasePath, err)
		return ""
	}
	defer file.Close()

	var id string
	var idLike []string

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		value = strings.Trim(value, `"'`)

		switch key {
		case "ID":
			id = strings.ToLower(value)
		case "ID_LIKE":
			idLike = strings.Fields(strings.ToLower(value))
		}
	}

	if family, ok := distroFamilies[id]; ok {
		verbose.Infof("Detected platform family %s (ID=%s)", family, id)
		return family
	}
	for _, like := range idLike {
		if family, ok := distroFamilies[like]; ok {
			verbose.Infof("Detected platform family %s (ID_LIKE=%s)", family, like)
			return family
		}
	}

	verbose.Infof("Unrecognized distribution (ID=%q ID_LIKE=%v)", id, idLike)
	return ""
}
