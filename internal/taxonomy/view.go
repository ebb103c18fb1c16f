// Copyright (c) 2026 ArtScope. All rights reserved.

package taxonomy

import (
	"strings"

	"github.com/jenna9192/artscope/pkg/slice"
	"github.com/jenna9192/artscope/pkg/slug"
)

// NodeView is one node of a hierarchy as the presentation layer renders it: a
// checkbox (or radio, for periods) with tri-state flags.
type NodeView struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Checked       bool       `json:"checked"`
	Indeterminate bool       `json:"indeterminate"`
	Range         *YearRange `json:"range,omitempty"`
	Children      []NodeView `json:"children,omitempty"`
}

// TreeView is a whole hierarchy rendered for one selection.
type TreeView struct {
	Kind  Kind       `json:"kind"`
	Name  string     `json:"name"`
	Nodes []NodeView `json:"nodes"`
}

func nodeID(segments ...string) string {
	return strings.Join(slice.Map(segments, slug.From), ".")
}

// CategoryView renders a department or medium hierarchy against selected leaves.
func CategoryView(kind Kind, h *Hierarchy[string], selected Set) TreeView {
	view := TreeView{Kind: kind, Name: h.Name}

	for _, g := range h.Groups {
		groupStatus := SelectionStatus(LeavesOf(h, Path{Group: g.Name}), selected)
		groupNode := NodeView{
			ID:            nodeID(g.Name),
			Name:          g.Name,
			Checked:       groupStatus.All,
			Indeterminate: groupStatus.Partial,
		}

		for _, sub := range g.Subgroups {
			subStatus := SelectionStatus(NewSet(sub.Leaves...), selected)
			subNode := NodeView{
				ID:            nodeID(g.Name, sub.Name),
				Name:          sub.Name,
				Checked:       subStatus.All,
				Indeterminate: subStatus.Partial,
			}
			for _, leaf := range sub.Leaves {
				subNode.Children = append(subNode.Children, NodeView{
					ID:      nodeID(g.Name, sub.Name, leaf),
					Name:    leaf,
					Checked: selected.Has(leaf),
				})
			}
			groupNode.Children = append(groupNode.Children, subNode)
		}

		view.Nodes = append(view.Nodes, groupNode)
	}

	return view
}

// PeriodView renders the time hierarchy against the selected period, if any.
// Ancestors of the selected range report indeterminate.
func PeriodView(h *Hierarchy[Period], selected *Period) TreeView {
	view := TreeView{Kind: KindPeriods, Name: h.Name}

	var selectedRange *YearRange
	if selected != nil {
		selectedRange = &selected.YearRange
	}

	node := func(id, name string, r YearRange) NodeView {
		status := TimeSelectionStatus(r, selectedRange)
		return NodeView{
			ID:            id,
			Name:          name,
			Checked:       status.All,
			Indeterminate: status.Partial,
			Range:         &r,
		}
	}

	for _, g := range h.Groups {
		groupRange, ok := RangeOf(h, Path{Group: g.Name})
		if !ok {
			continue
		}
		groupNode := node(nodeID(g.Name), g.Name, groupRange)

		for _, sub := range g.Subgroups {
			subRange, ok := RangeOf(h, Path{Group: g.Name, Subgroup: sub.Name})
			if !ok {
				continue
			}
			subNode := node(nodeID(g.Name, sub.Name), sub.Name, subRange)
			for _, leaf := range sub.Leaves {
				subNode.Children = append(subNode.Children, node(nodeID(g.Name, sub.Name, leaf.Name), leaf.Name, leaf.YearRange))
			}
			groupNode.Children = append(groupNode.Children, subNode)
		}

		view.Nodes = append(view.Nodes, groupNode)
	}

	return view
}

// View renders the hierarchy of kind for the given selections.
func (c Catalog) View(kind Kind, departments, mediums Set, period *Period) TreeView {
	switch kind {
	case KindDepartments:
		return CategoryView(kind, c.Departments, departments)
	case KindMediums:
		return CategoryView(kind, c.Mediums, mediums)
	default:
		return PeriodView(c.Periods, period)
	}
}
