package domain

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Region is the coarse geographic tag that drives monster spawns
type Region string

const (
	RegionEriador     Region = "eriador"
	RegionBarrowDowns Region = "barrow_downs"
	RegionHighPass    Region = "high_pass"
	RegionEnedwaith   Region = "enedwaith"
	RegionMoria       Region = "moria"
	RegionRhovanion   Region = "rhovanion"
	RegionRohan       Region = "rohan"
	RegionGondor      Region = "gondor"
	RegionMordor      Region = "mordor"
)

// Regions lists every region in travel order
var Regions = []Region{
	RegionEriador,
	RegionBarrowDowns,
	RegionHighPass,
	RegionEnedwaith,
	RegionMoria,
	RegionRhovanion,
	RegionRohan,
	RegionGondor,
	RegionMordor,
}

var titleCaser = cases.Title(language.English)

// ParseRegion accepts either the key ("barrow_downs") or the display form ("Barrow Downs")
func ParseRegion(s string) (Region, error) {
	key := Region(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "_"))
	for _, r := range Regions {
		if r == key {
			return r, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownRegion, s)
}

// DisplayName returns the region as shown to the player, e.g. "High Pass"
func (r Region) DisplayName() string {
	return titleCaser.String(strings.ReplaceAll(string(r), "_", " "))
}
