// Copyright (c) 2026 ArtScope. All rights reserved.

package taxonomy

import "fmt"

// # Kinds

// Kind names one of the three filter hierarchies.
type Kind string

const (
	KindDepartments Kind = "departments"
	KindMediums     Kind = "mediums"
	KindPeriods     Kind = "periods"
)

// Kinds lists every hierarchy kind as plain strings, in menu order.
func Kinds() []string {
	return []string{string(KindDepartments), string(KindMediums), string(KindPeriods)}
}

// ParseKind validates a raw kind string.
func ParseKind(raw string) (Kind, error) {
	switch Kind(raw) {
	case KindDepartments, KindMediums, KindPeriods:
		return Kind(raw), nil
	}
	return "", fmt.Errorf("taxonomy: unknown kind %q", raw)
}

// # Catalog

// Catalog bundles the three hierarchies a browsing context filters with.
type Catalog struct {
	Departments *Hierarchy[string]
	Mediums     *Hierarchy[string]
	Periods     *Hierarchy[Period]
}

// DefaultCatalog returns the built-in hierarchies. Callers must treat them as
// read-only.
func DefaultCatalog() Catalog {
	return Catalog{
		Departments: departments,
		Mediums:     mediums,
		Periods:     periods,
	}
}

// Categories returns the string hierarchy for kind; periods are not a category.
func (c Catalog) Categories(kind Kind) (*Hierarchy[string], bool) {
	switch kind {
	case KindDepartments:
		return c.Departments, true
	case KindMediums:
		return c.Mediums, true
	}
	return nil, false
}

var departments = &Hierarchy[string]{
	Name: "Departments",
	Groups: []Group[string]{
		{Name: "Medieval to Early Modern", Subgroups: []Subgroup[string]{
			{Name: "Medieval Europe", Leaves: []string{"Medieval Art", "The Cloisters"}},
			{Name: "European Traditions", Leaves: []string{"Arms and Armor", "Musical Instruments"}},
			{Name: "Renaissance to 18th Century Europe", Leaves: []string{"European Sculpture and Decorative Arts", "The Robert Lehman Collection"}},
		}},
		{Name: "Modern & Contemporary", Subgroups: []Subgroup[string]{
			{Name: "Modern Art", Leaves: []string{"Modern Art", "Photographs", "Drawings and Prints"}},
			{Name: "Fashion & Material Culture", Leaves: []string{"The Costume Institute"}},
			{Name: "Archives", Leaves: []string{"The Libraries"}},
		}},
		{Name: "Geographic Cultural Regions", Subgroups: []Subgroup[string]{
			{Name: "Americas & Europe", Leaves: []string{"American Decorative Arts", "European Paintings", "Greek and Roman Art"}},
			{Name: "Africa & Asia", Leaves: []string{"Arts of Africa, Oceania, and the Americas", "Egyptian Art"}},
			{Name: "Asian", Leaves: []string{"Asian Art", "Islamic Art", "Ancient Near Eastern Art"}},
		}},
	},
}

var mediums = &Hierarchy[string]{
	Name: "Medium",
	Groups: []Group[string]{
		{Name: "Materials", Subgroups: []Subgroup[string]{
			{Name: "Metals", Leaves: []string{"gold", "silver", "metal", "steel", "copper", "nickel", "brass", "iron", "bronze", "alloy", "metallic"}},
			{Name: "Ceramics & Glass", Leaves: []string{"porcelain", "stoneware", "earthenware", "slip", "glaze", "enamel", "glass"}},
			{Name: "Textiles & Organics", Leaves: []string{"silk", "cotton", "wool", "linen", "leather", "fiber", "thread", "ivory", "mother-of-pearl", "shell", "beads"}},
			{Name: "Plastics & Synthetics", Leaves: []string{"plastic", "synthetic"}},
			{Name: "Wood", Leaves: []string{"wood"}},
		}},
		{Name: "Supports & Presentation", Subgroups: []Subgroup[string]{
			{Name: "Paper & Sheet Supports", Leaves: []string{"paper", "wove", "laid"}},
			{Name: "Framing & Mounting", Leaves: []string{"framing", "mounted"}},
		}},
		{Name: "Techniques", Subgroups: []Subgroup[string]{
			{Name: "Drawing & Painting", Leaves: []string{"ink", "pen", "graphite", "chalk", "wash", "brush", "illustrations", "watercolor", "gouache", "painted", "pigment", "oil"}},
			{Name: "Printmaking", Leaves: []string{"etching", "engraving", "drypoint", "aquatint", "lithograph", "woodcut"}},
			{Name: "Surface Treatment & Construction", Leaves: []string{"gilt", "gilded", "traces", "decoration", "lacquer", "carved", "cut", "lines", "heightened", "printed", "state"}},
		}},
	},
}

func span(name string, minYear, maxYear int) Period {
	return Period{Name: name, YearRange: YearRange{MinYear: minYear, MaxYear: maxYear}}
}

var periods = &Hierarchy[Period]{
	Name: "Time Period",
	Groups: []Group[Period]{
		{Name: "Antiquity & Classical Eras", Subgroups: []Subgroup[Period]{
			{Name: "Early Civilizations", Leaves: []Period{
				span("Before 3000 BCE", -9999, -3000),
				span("3000–1000 BCE", -3000, -1000),
			}},
			{Name: "Classical Worlds", Leaves: []Period{
				span("Greece & Mediterranean (1000–0 BCE)", -1000, 0),
				span("Roman & Late Antiquity (0–500 CE)", 0, 500),
			}},
		}},
		{Name: "The Medieval World", Subgroups: []Subgroup[Period]{
			{Name: "Early Medieval", Leaves: []Period{span("500–1000 CE", 500, 1000)}},
			{Name: "High & Late Medieval", Leaves: []Period{span("1000–1400 CE", 1000, 1400)}},
		}},
		{Name: "Renaissance to Enlightenment", Subgroups: []Subgroup[Period]{
			{Name: "Renaissance", Leaves: []Period{span("1400–1600 CE", 1400, 1600)}},
			{Name: "Early Modern Europe", Leaves: []Period{
				span("Baroque & Rococo (1600–1750)", 1600, 1750),
				span("Age of Enlightenment (1750–1800)", 1750, 1800),
			}},
		}},
		{Name: "Industrial & Modern Period", Subgroups: []Subgroup[Period]{
			{Name: "19th Century", Leaves: []Period{
				span("1800–1850", 1800, 1850),
				span("1850–1900", 1850, 1900),
			}},
			{Name: "Early 20th Century", Leaves: []Period{span("1900–1945", 1900, 1945)}},
			{Name: "Mid-Century Modern", Leaves: []Period{span("1945–1980", 1945, 1980)}},
		}},
		{Name: "Contemporary Era", Subgroups: []Subgroup[Period]{
			{Name: "Late 20th Century", Leaves: []Period{span("1980–2000", 1980, 2000)}},
			{Name: "21st Century", Leaves: []Period{span("2000–Present", 2000, 9999)}},
		}},
	},
}
