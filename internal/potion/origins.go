package potion

import (
	"github.com/osse101/CharacterForge_Go/internal/domain"
)

// UnlockedOrigins collects the origins of every ingredient visible with books
func (c *Catalog) UnlockedOrigins(books []string) map[string]struct{} {
	out := make(map[string]struct{})
	for _, ing := range c.ingredients {
		if !IsUnlocked(ing.Books, books) {
			continue
		}
		for _, o := range ing.Origins {
			out[o] = struct{}{}
		}
	}
	return out
}

// PruneOrigins keeps the branches of tree that lead to an origin in keep.
// A kept node retains only its kept descendants.
func PruneOrigins(tree []domain.OriginNode, keep map[string]struct{}) []domain.OriginNode {
	var out []domain.OriginNode
	for _, node := range tree {
		kids := PruneOrigins(node.Children, keep)
		_, self := keep[node.Label]
		if self || len(kids) > 0 {
			out = append(out, domain.OriginNode{Label: node.Label, Children: kids})
		}
	}
	return out
}

// originIndex links every label of a tree to its parent and children
type originIndex struct {
	parent   map[string]string
	children map[string][]string
}

func indexOrigins(tree []domain.OriginNode) originIndex {
	idx := originIndex{parent: map[string]string{}, children: map[string][]string{}}
	var walk func(nodes []domain.OriginNode, parent string)
	walk = func(nodes []domain.OriginNode, parent string) {
		for _, n := range nodes {
			if parent != "" {
				idx.parent[n.Label] = parent
			}
			for _, k := range n.Children {
				idx.children[n.Label] = append(idx.children[n.Label], k.Label)
			}
			walk(n.Children, n.Label)
		}
	}
	walk(tree, "")
	return idx
}

func (idx originIndex) addWithChildren(key string, set map[string]struct{}) {
	set[key] = struct{}{}
	for _, k := range idx.children[key] {
		idx.addWithChildren(k, set)
	}
}

func (idx originIndex) removeWithChildren(key string, set map[string]struct{}) {
	delete(set, key)
	for _, k := range idx.children[key] {
		idx.removeWithChildren(k, set)
	}
}

// CheckOrigin selects key and all its descendants. Ancestors whose children
// end up all selected are selected too.
func CheckOrigin(tree []domain.OriginNode, selected []string, key string) []string {
	idx := indexOrigins(tree)
	set := toSet(selected)
	idx.addWithChildren(key, set)

	for p, ok := idx.parent[key]; ok; p, ok = idx.parent[p] {
		all := true
		for _, k := range idx.children[p] {
			if _, in := set[k]; !in {
				all = false
				break
			}
		}
		if !all {
			break
		}
		set[p] = struct{}{}
	}
	return ordered(tree, selected, set)
}

// UncheckOrigin deselects key, its descendants and every ancestor
func UncheckOrigin(tree []domain.OriginNode, selected []string, key string) []string {
	idx := indexOrigins(tree)
	set := toSet(selected)
	idx.removeWithChildren(key, set)
	for p, ok := idx.parent[key]; ok; p, ok = idx.parent[p] {
		delete(set, p)
	}
	return ordered(tree, selected, set)
}

func toSet(list []string) map[string]struct{} {
	set := make(map[string]struct{}, len(list))
	for _, v := range list {
		set[v] = struct{}{}
	}
	return set
}

// ordered lists set in previous-selection order, then new labels in tree order
func ordered(tree []domain.OriginNode, previous []string, set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	emitted := make(map[string]struct{}, len(set))
	emit := func(label string) {
		if _, in := set[label]; !in {
			return
		}
		if _, done := emitted[label]; done {
			return
		}
		emitted[label] = struct{}{}
		out = append(out, label)
	}
	for _, v := range previous {
		emit(v)
	}
	var walk func(nodes []domain.OriginNode)
	walk = func(nodes []domain.OriginNode) {
		for _, n := range nodes {
			emit(n.Label)
			walk(n.Children)
		}
	}
	walk(tree)
	return out
}

// originLabels returns every label and every slash-joined path of the tree
func originLabels(tree []domain.OriginNode) (labels, paths map[string]struct{}) {
	labels = map[string]struct{}{}
	paths = map[string]struct{}{}
	var walk func(nodes []domain.OriginNode, prefix string)
	walk = func(nodes []domain.OriginNode, prefix string) {
		for _, n := range nodes {
			path := n.Label
			if prefix != "" {
				path = prefix + "/" + n.Label
			}
			labels[n.Label] = struct{}{}
			paths[path] = struct{}{}
			walk(n.Children, path)
		}
	}
	walk(tree, "")
	return labels, paths
}
