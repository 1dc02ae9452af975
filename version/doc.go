// Package version reports what build of ziffy is running and which versions
// of the hashing, diffing and ZIP modules it was linked against.
//
// Version, Commit and Date can be set at link time:
//
//	-ldflags "-X github.com/Srijan619/ziffy/version.Version=v1.0.0 -X github.com/Srijan619/ziffy/version.Commit=abc123"
//
// Anything left unset is filled in from debug.ReadBuildInfo. The engine
// module versions always come from the build info; a digest recorded by
// inspect carries DigestAlgorithm so that digests produced by different
// hasher versions are never mistaken for comparable ones.
package version
