package zipdiff

import (
	"slices"
	"strings"

	"github.com/Srijan619/ziffy/util"
)

// ImageExtensions lists the name suffixes that are reported as
// StatusModifiedImage without their content being read.
var ImageExtensions = []string{"png", "jpg", "jpeg", "gif", "bmp", "webp", "tiff", "svg"}

// IsImage reports whether name ends with one of ImageExtensions.
// The match is a case-sensitive suffix match without a leading dot.
func IsImage(name string) bool {
	for _, ext := range ImageExtensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

// Universe returns the sorted union of the names of both catalogs.
func Universe(c1, c2 util.Catalog) []string {
	names := make([]string, 0, max(c1.Len(), c2.Len()))
	names = append(names, c1.Names()...)
	names = append(names, c2.Names()...)
	slices.Sort(names)
	return slices.Compact(names)
}

// decision is what the catalogs alone say about one name.
type decision int

const (
	decideUnchanged decision = iota
	decideReport
	decideDiff
)

// classify decides the status of name from the two catalogs. It never reads
// archive content; decideDiff means the content differ must finish the job.
func classify(name string, c1, c2 util.Catalog) (FileDifference, decision) {
	d1, in1 := c1.Get(name)
	d2, in2 := c2.Get(name)

	switch {
	case in1 && !in2:
		return FileDifference{Filename: name, Status: StatusRemoved}, decideReport
	case !in1 && in2:
		return FileDifference{Filename: name, Status: StatusAdded}, decideReport
	case in1 && in2:
		if d1 == d2 {
			return FileDifference{}, decideUnchanged
		}
		if IsImage(name) {
			return FileDifference{Filename: name, Status: StatusModifiedImage}, decideReport
		}
		return FileDifference{Filename: name}, decideDiff
	default:
		return FileDifference{Filename: name, Status: StatusUnknown}, decideReport
	}
}
