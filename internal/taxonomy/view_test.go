// Copyright (c) 2026 ArtScope. All rights reserved.

package taxonomy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jenna9192/artscope/internal/taxonomy"
)

func findNode(t *testing.T, nodes []taxonomy.NodeView, id string) taxonomy.NodeView {
	t.Helper()
	for _, node := range nodes {
		if node.ID == id {
			return node
		}
		for _, child := range node.Children {
			if child.ID == id {
				return child
			}
			for _, leaf := range child.Children {
				if leaf.ID == id {
					return leaf
				}
			}
		}
	}
	require.Failf(t, "node not found", "id %q", id)
	return taxonomy.NodeView{}
}

func TestCategoryView_TriState(t *testing.T) {
	catalog := taxonomy.DefaultCatalog()
	selected := taxonomy.NewSet("gold", "silver", "metal", "steel", "copper", "nickel", "brass", "iron", "bronze", "alloy", "metallic", "wood")

	view := catalog.View(taxonomy.KindMediums, nil, selected, nil)
	assert.Equal(t, taxonomy.KindMediums, view.Kind)
	require.Len(t, view.Nodes, 3)

	materials := findNode(t, view.Nodes, "materials")
	assert.False(t, materials.Checked)
	assert.True(t, materials.Indeterminate)

	metals := findNode(t, view.Nodes, "materials.metals")
	assert.True(t, metals.Checked)
	assert.False(t, metals.Indeterminate)

	glass := findNode(t, view.Nodes, "materials.ceramics-glass")
	assert.False(t, glass.Checked)
	assert.False(t, glass.Indeterminate)

	gold := findNode(t, view.Nodes, "materials.metals.gold")
	assert.True(t, gold.Checked)

	techniques := findNode(t, view.Nodes, "techniques")
	assert.False(t, techniques.Checked || techniques.Indeterminate)
}

func TestPeriodView_AncestorsArePartial(t *testing.T) {
	catalog := taxonomy.DefaultCatalog()
	selected, ok := taxonomy.ResolvePeriod(catalog.Periods, taxonomy.Path{Leaf: "1800–1850"})
	require.True(t, ok)

	view := catalog.View(taxonomy.KindPeriods, nil, nil, &selected)

	leaf := findNode(t, view.Nodes, "industrial-modern-period.19th-century.1800-1850")
	assert.True(t, leaf.Checked)
	require.NotNil(t, leaf.Range)
	assert.Equal(t, 1800, leaf.Range.MinYear)

	century := findNode(t, view.Nodes, "industrial-modern-period.19th-century")
	assert.False(t, century.Checked)
	assert.True(t, century.Indeterminate)

	era := findNode(t, view.Nodes, "industrial-modern-period")
	assert.True(t, era.Indeterminate)

	sibling := findNode(t, view.Nodes, "industrial-modern-period.19th-century.1850-1900")
	assert.False(t, sibling.Checked || sibling.Indeterminate)
}
