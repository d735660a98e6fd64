package params

import (
	"fmt"
)

// release number
const (
	VersionMajor = 0
	VersionMinor = 1
	VersionPatch = 0
)

// VersionMeta tags the build. Release builds are linked with
//
//	-ldflags "-X github.com/anyswap/xrpl-txmodel/params.VersionMeta=stable"
var VersionMeta = "unstable"

const versionStable = "stable"

// Version is the bare release number
var Version = fmt.Sprintf("%d.%d.%d", VersionMajor, VersionMinor, VersionPatch)

// VersionWithMeta is Version tagged with VersionMeta, e.g. 0.1.0-unstable
func VersionWithMeta() string {
	if VersionMeta == "" {
		return Version
	}
	return Version + "-" + VersionMeta
}

// VersionWithCommit appends the short commit hash, and the commit date unless the build is stable:
// 0.1.0-stable-0123abcd, 0.1.0-unstable-0123abcd-20240601
func VersionWithCommit(gitCommit, gitDate string) string {
	vsn := VersionWithMeta()
	if len(gitCommit) >= 8 {
		vsn += "-" + gitCommit[:8]
	}
	if VersionMeta != versionStable && gitDate != "" {
		vsn += "-" + gitDate
	}
	return vsn
}
