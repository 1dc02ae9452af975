package zipdiff

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Srijan619/ziffy/util"
)

func TestIsImage(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"x.png", true},
		{"photos/x.jpg", true},
		{"x.jpeg", true},
		{"x.gif", true},
		{"x.bmp", true},
		{"x.webp", true},
		{"x.tiff", true},
		{"icon.svg", true},
		{"x.PNG", false},
		{"x.txt", false},
		{"png.txt", false},
		// suffix match without a dot, same as the extension list
		{"notapng", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsImage(tt.name))
		})
	}
}

func TestUniverse(t *testing.T) {
	c1 := util.NewCatalog(map[string]util.Digest{"a.txt": 1, "b.txt": 2})
	c2 := util.NewCatalog(map[string]util.Digest{"b.txt": 2, "c.txt": 3, "B.txt": 4})

	assert.Equal(t, []string{"B.txt", "a.txt", "b.txt", "c.txt"}, Universe(c1, c2))
	assert.Empty(t, Universe(util.Catalog{}, util.Catalog{}))
}

func TestClassify(t *testing.T) {
	c1 := util.NewCatalog(map[string]util.Digest{
		"removed.txt": 1,
		"same.txt":    2,
		"changed.txt": 3,
		"x.png":       4,
	})
	c2 := util.NewCatalog(map[string]util.Digest{
		"added.txt":   5,
		"same.txt":    2,
		"changed.txt": 6,
		"x.png":       7,
	})

	tests := []struct {
		name       string
		wantStatus Status
		want       decision
	}{
		{"removed.txt", StatusRemoved, decideReport},
		{"added.txt", StatusAdded, decideReport},
		{"same.txt", "", decideUnchanged},
		{"x.png", StatusModifiedImage, decideReport},
		{"changed.txt", "", decideDiff},
		{"nowhere.txt", StatusUnknown, decideReport},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diff, got := classify(tt.name, c1, c2)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantStatus, diff.Status)
			assert.Nil(t, diff.ContentDiff)
		})
	}
}
