package assets

import (
	"embed"
	"fmt"
	"path"

	"github.com/automoto/coinhop/shared/leveldata"
)

const levelsDir = "levels"

var (
	//go:embed all:levels
	assetFS embed.FS
)

// LoadLevel returns the embedded level with the given stem name.
func LoadLevel(name string) (*leveldata.Layout, error) {
	layout, err := leveldata.LoadLayout(assetFS, path.Join(levelsDir, name+".tmx"))
	if err != nil {
		return nil, fmt.Errorf("embedded level %q: %w", name, err)
	}
	return layout, nil
}

// LevelNames lists the embedded levels in sorted order.
func LevelNames() ([]string, error) {
	_, names, err := leveldata.LoadAllLayouts(assetFS, levelsDir)
	return names, err
}
