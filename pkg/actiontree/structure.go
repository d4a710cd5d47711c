package actiontree

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Structure is the plain nested form of a node. Keys keep insertion order when
// encoded to JSON.
type Structure = orderedmap.OrderedMap[string, any]

// Node is implemented by every tree node. ToStructure builds a fresh Structure
// on each call and never modifies the node.
type Node interface {
	ToStructure() (*Structure, error)
}

func newStructure() *Structure {
	return orderedmap.New[string, any]()
}

func childStructures[T Node](children []T) ([]*Structure, error) {
	structures := make([]*Structure, 0, len(children))

	for _, child := range children {
		structure, err := child.ToStructure()
		if err != nil {
			return nil, err
		}

		structures = append(structures, structure)
	}

	return structures, nil
}
