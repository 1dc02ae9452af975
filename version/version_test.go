package version

import (
	"bytes"
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// linkerValues sets the link-time variables for the duration of a test.
func linkerValues(t *testing.T, v, c, d string) {
	t.Helper()
	oldV, oldC, oldD := Version, Commit, Date
	t.Cleanup(func() { Version, Commit, Date = oldV, oldC, oldD })
	Version, Commit, Date = v, c, d
}

func sampleBuildInfo() *debug.BuildInfo {
	return &debug.BuildInfo{
		GoVersion: "go1.25.1",
		Main:      debug.Module{Path: "github.com/Srijan619/ziffy", Version: "v0.3.0"},
		Deps: []*debug.Module{
			{Path: "github.com/zeebo/xxh3", Version: "v1.0.2"},
			{Path: "znkr.io/diff", Version: "v1.0.0", Replace: &debug.Module{Path: "../diff", Version: "v1.0.1-local"}},
			{Path: "github.com/spf13/cobra", Version: "v1.10.2"},
		},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "0123456789abcdef"},
			{Key: "vcs.time", Value: "2025-01-01T00:00:00Z"},
			{Key: "vcs.modified", Value: "true"},
		},
	}
}

func TestInfoFrom_BuildInfo(t *testing.T) {
	linkerValues(t, "dev", "unknown", "unknown")

	info := infoFrom(sampleBuildInfo())
	assert.Equal(t, "v0.3.0", info.Version)
	assert.Equal(t, "0123456789abcdef", info.Commit)
	assert.Equal(t, "2025-01-01T00:00:00Z", info.Date)
	assert.True(t, info.Dirty)
	assert.Equal(t, "go1.25.1", info.GoVersion)
	assert.Equal(t, map[string]string{
		HashModule: "v1.0.2",
		DiffModule: "v1.0.1-local (replaced)",
		ZipModule:  "unknown",
	}, info.Engine)
	assert.Equal(t, "v0.3.0 (0123456-dirty, built 2025-01-01T00:00:00Z)", info.full())
}

func TestInfoFrom_LinkerValuesWin(t *testing.T) {
	linkerValues(t, "v1.2.3", "fedcba9876543210", "unknown")

	info := infoFrom(sampleBuildInfo())
	assert.Equal(t, "v1.2.3", info.Version)
	assert.Equal(t, "fedcba9876543210", info.Commit)
	assert.Equal(t, "2025-01-01T00:00:00Z", info.Date)
}

func TestInfoFrom_NoBuildInfo(t *testing.T) {
	linkerValues(t, "dev", "unknown", "unknown")

	info := infoFrom(nil)
	assert.Equal(t, "development", info.Version)
	assert.Equal(t, ModulePath, info.Module)
	assert.Equal(t, "development", info.full())
	for _, m := range EngineModules {
		assert.Equal(t, "unknown", info.Engine[m], m)
	}
}

func TestDigestAlgorithm(t *testing.T) {
	old := readBuildInfo
	t.Cleanup(func() { readBuildInfo = old })
	readBuildInfo = func() (*debug.BuildInfo, bool) { return sampleBuildInfo(), true }

	assert.Equal(t, "xxh3-64@v1.0.2", DigestAlgorithm())
}

func TestPrintVersion(t *testing.T) {
	linkerValues(t, "v1.2.3", "unknown", "unknown")
	old := readBuildInfo
	t.Cleanup(func() { readBuildInfo = old })
	readBuildInfo = func() (*debug.BuildInfo, bool) { return sampleBuildInfo(), true }

	var buf bytes.Buffer
	PrintVersion(&buf, "ziffy")
	out := buf.String()
	require.Contains(t, out, "ziffy version v1.2.3 (0123456-dirty, built 2025-01-01T00:00:00Z)\n")
	assert.Contains(t, out, "Module: github.com/Srijan619/ziffy\n")
	assert.Contains(t, out, "  github.com/zeebo/xxh3 v1.0.2\n")
	assert.Less(t, bytes.Index(buf.Bytes(), []byte(HashModule)), bytes.Index(buf.Bytes(), []byte(DiffModule)))
}
