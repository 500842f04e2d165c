// Package fetch downloads the pinned packager script and verifies its digest.
package fetch

import "strings"

// Packager release pinned by this build.
const (
	PackagerVersion     = "v2.3.1"
	PackagerSHA256      = "40c28ec61b19ce6cba7051580d14e6ee6e8c8a42a364396788cc4876e55ceaec"
	PackagerURLTemplate = "https://raw.githubusercontent.com/BigWigsMods/packager/{version}/release.sh"
	PackagerFileName    = "release.sh"
)

// Artifact pins an external tool by version and SHA-256 digest.
type Artifact struct {
	Version     string
	SHA256      string
	URLTemplate string
}

// DefaultArtifact returns the pinned packager release.
func DefaultArtifact() Artifact {
	return Artifact{
		Version:     PackagerVersion,
		SHA256:      PackagerSHA256,
		URLTemplate: PackagerURLTemplate,
	}
}

// URL expands the template for the artifact version.
func (a Artifact) URL() string {
	return strings.ReplaceAll(a.URLTemplate, "{version}", a.Version)
}
