package version

import (
	"runtime/debug"
	"strings"
)

// ModulePath is the import path looked up in the build info.
const ModulePath = "github.com/kbukum/resultiter"

// Version overrides the build info lookup when set with -ldflags.
var Version = ""

const develVersion = "(devel)"

// Info describes the linked module.
type Info struct {
	Version   string `json:"version"`
	Revision  string `json:"revision,omitempty"`
	GoVersion string `json:"go_version"`
	IsRelease bool   `json:"is_release"`
	IsDirty   bool   `json:"is_dirty"`
}

var readBuildInfo = debug.ReadBuildInfo

// Get returns the version of the module as linked into the binary. When the
// module is the main module of a development build the version is
// "(devel)" and the VCS revision is reported instead.
func Get() Info {
	info := Info{Version: develVersion}
	bi, ok := readBuildInfo()
	if ok {
		info.GoVersion = bi.GoVersion
		info.Version = moduleVersion(bi)
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs.revision":
				info.Revision = s.Value
				if len(info.Revision) > 7 {
					info.Revision = info.Revision[:7]
				}
			case "vcs.modified":
				info.IsDirty = s.Value == "true"
			}
		}
	}
	if Version != "" {
		info.Version = Version
	}
	info.IsRelease = strings.HasPrefix(info.Version, "v") && !strings.Contains(info.Version, "dirty")
	return info
}

func moduleVersion(bi *debug.BuildInfo) string {
	if bi.Main.Path == ModulePath && bi.Main.Version != "" {
		return bi.Main.Version
	}
	for _, dep := range bi.Deps {
		if dep.Path != ModulePath {
			continue
		}
		if dep.Replace != nil && dep.Replace.Version != "" {
			return dep.Replace.Version
		}
		return dep.Version
	}
	return develVersion
}

// String is the short form used for instrumentation and resource versions:
// the module version, or "(devel)-<revision>" for development builds.
func (i Info) String() string {
	v := i.Version
	if !i.IsRelease && i.Revision != "" {
		v += "-" + i.Revision
	}
	if i.IsDirty {
		v += "-dirty"
	}
	return v
}
