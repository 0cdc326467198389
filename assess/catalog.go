// Package assess holds the damage catalog and the simulated assessment
// generator. The catalog is loaded once at startup and read-only afterwards.
package assess

import (
	_ "embed"

	"github.com/vahanscan/vahanscan/util/common"

	"github.com/pelletier/go-toml/v2"
)

//go:embed catalog.toml
var catalogTOML []byte

// Category is one entry of the damage reference table.
type Category struct {
	Name        string `toml:"name" json:"name"`
	MinCost     int    `toml:"min_cost" json:"minCost"`
	MaxCost     int    `toml:"max_cost" json:"maxCost"`
	Description string `toml:"description" json:"description"`
	Location    string `toml:"location" json:"location"`
}

// Catalog is the fixed set of damage categories.
type Catalog struct {
	Categories []Category `toml:"categories"`
}

// LoadCatalog parses the embedded catalog table. An empty or malformed
// catalog is a fatal startup condition.
func LoadCatalog() (*Catalog, error) {
	var catalog Catalog
	if err := toml.Unmarshal(catalogTOML, &catalog); err != nil {
		return nil, common.NewErrorf("parse damage catalog: %v", err)
	}
	if len(catalog.Categories) == 0 {
		return nil, common.NewError("damage catalog is empty")
	}
	for _, cat := range catalog.Categories {
		if cat.Name == "" || cat.MinCost <= 0 || cat.MaxCost < cat.MinCost {
			return nil, common.NewErrorf("invalid damage catalog entry: %q", cat.Name)
		}
	}
	return &catalog, nil
}
