package version

import (
	"fmt"
	"io"
	"runtime/debug"
	"slices"
)

var (
	// These will be set by build flags or default to development values
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// ModulePath is reported when the binary carries no build info.
const ModulePath = "github.com/Srijan619/ziffy"

// Modules whose versions decide what a comparison produces. Digests from
// different HashModule versions, or diffs from different DiffModule versions,
// are not guaranteed to agree.
const (
	HashModule = "github.com/zeebo/xxh3"
	DiffModule = "znkr.io/diff"
	ZipModule  = "github.com/klauspost/compress"
)

// EngineModules lists the modules recorded in Info.Engine.
var EngineModules = []string{HashModule, DiffModule, ZipModule}

// Info contains version information
type Info struct {
	Version   string            `json:"version"`
	Commit    string            `json:"commit"`
	Date      string            `json:"date"`
	Dirty     bool              `json:"dirty,omitempty"`
	Module    string            `json:"module"`
	GoVersion string            `json:"go_version,omitempty"`
	Engine    map[string]string `json:"engine"`
}

// readBuildInfo is swapped out by tests.
var readBuildInfo = debug.ReadBuildInfo

// GetInfo returns complete version information. Linker-set values win over
// what the Go build info says.
func GetInfo() Info {
	bi, ok := readBuildInfo()
	if !ok {
		bi = nil
	}
	return infoFrom(bi)
}

func infoFrom(bi *debug.BuildInfo) Info {
	info := Info{
		Version: Version,
		Commit:  Commit,
		Date:    Date,
		Module:  ModulePath,
		Engine:  make(map[string]string, len(EngineModules)),
	}
	for _, m := range EngineModules {
		info.Engine[m] = "unknown"
	}
	if info.Version == "dev" || info.Version == "" {
		info.Version = "development"
		if bi != nil && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
			info.Version = bi.Main.Version
		}
	}
	if bi == nil {
		return info
	}

	if bi.Main.Path != "" {
		info.Module = bi.Main.Path
	}
	info.GoVersion = bi.GoVersion
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.Commit == "unknown" || info.Commit == "" {
				info.Commit = s.Value
			}
		case "vcs.time":
			if info.Date == "unknown" || info.Date == "" {
				info.Date = s.Value
			}
		case "vcs.modified":
			info.Dirty = s.Value == "true"
		}
	}
	for _, dep := range bi.Deps {
		if _, tracked := info.Engine[dep.Path]; !tracked {
			continue
		}
		v := dep.Version
		if dep.Replace != nil {
			v = dep.Replace.Version + " (replaced)"
		}
		info.Engine[dep.Path] = v
	}
	return info
}

// GetVersion returns the version string.
func GetVersion() string {
	return GetInfo().Version
}

// DigestAlgorithm names the content digest together with the version of the
// module implementing it, e.g. "xxh3-64@v1.0.2".
func DigestAlgorithm() string {
	return "xxh3-64@" + GetInfo().Engine[HashModule]
}

// GetFullVersion returns a formatted version string with commit and date
func GetFullVersion() string {
	return GetInfo().full()
}

func (i Info) full() string {
	v := i.Version
	if i.Commit != "unknown" && len(i.Commit) > 7 {
		rev := i.Commit[:7]
		if i.Dirty {
			rev += "-dirty"
		}
		if i.Date != "unknown" {
			return fmt.Sprintf("%s (%s, built %s)", v, rev, i.Date)
		}
		return fmt.Sprintf("%s (%s)", v, rev)
	}
	return v
}

// PrintVersion writes human-readable version information to w
func PrintVersion(w io.Writer, appName string) {
	GetInfo().print(w, appName)
}

func (i Info) print(w io.Writer, appName string) {
	fmt.Fprintf(w, "%s version %s\n", appName, i.full())
	fmt.Fprintf(w, "Module: %s\n", i.Module)
	if i.GoVersion != "" {
		fmt.Fprintf(w, "Go: %s\n", i.GoVersion)
	}
	fmt.Fprintf(w, "Commit: %s\n", i.Commit)
	fmt.Fprintf(w, "Build Date: %s\n", i.Date)
	fmt.Fprintln(w, "Engine:")
	paths := make([]string, 0, len(i.Engine))
	for p := range i.Engine {
		paths = append(paths, p)
	}
	slices.Sort(paths)
	for _, p := range paths {
		fmt.Fprintf(w, "  %s %s\n", p, i.Engine[p])
	}
}
