package quire

import (
	_ "embed"
	"strings"
)

//go:embed VERSION
var embeddedVersion string

// Version is the library version in SemVer format, without the leading "v".
var Version = strings.TrimSpace(embeddedVersion)
