package aprsobj

import (
	"fmt"
	"runtime/debug"
	"strconv"
)

// Set at build time via `-ldflags "-X 'github.com/doismellburning/aprsobj/src.APRSOBJ_VERSION=X'"`
var APRSOBJ_VERSION string

func buildSetting(bi *debug.BuildInfo, key string, defaultValue string) string {
	if bi == nil {
		return defaultValue
	}

	for _, bs := range bi.Settings {
		if bs.Key == key {
			return bs.Value
		}
	}

	return defaultValue
}

// VersionString describes this build, e.g. for --version.
func VersionString(program string) string {
	var buildInfo, _ = debug.ReadBuildInfo()

	var (
		buildTime                 = buildSetting(buildInfo, "vcs.time", "UNKNOWN")
		buildCommit               = buildSetting(buildInfo, "vcs.revision", "UNKNOWN")
		buildDirtyStr             = buildSetting(buildInfo, "vcs.modified", "INVALID")
		buildDirty, buildDirtyErr = strconv.ParseBool(buildDirtyStr)
	)

	if buildDirty {
		buildCommit += "-DIRTY"
	} else if buildDirtyErr != nil {
		buildCommit += "-UNKNOWNDIRTY"
	}

	var version = APRSOBJ_VERSION
	if version == "" {
		version = "!UNKNOWN!"
	}

	return fmt.Sprintf("%s - Version %s (revision %s, built at %s)", program, version, buildCommit, buildTime)
}

func PrintVersion(program string, verbose bool) {
	fmt.Println(VersionString(program))

	if verbose {
		var buildInfo, _ = debug.ReadBuildInfo()
		fmt.Printf("\nBuildInfo: %+v\n", buildInfo)
	}
}
