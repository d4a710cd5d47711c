package actiontree

import (
	"golang.org/x/exp/slices"
)

const (
	ActionTypeComplexStatic    = "CAStatic"
	ActionTypeComplexNonstatic = "CANonstatic"
)

var complexActionTypes = []string{ActionTypeComplexStatic, ActionTypeComplexNonstatic}

// IsComplexActionType reports whether actions of this type expand into children
func IsComplexActionType(actionType string) bool {
	return slices.Contains(complexActionTypes, actionType)
}

// ActionDescriptor identifies the root of a complex action tree
type ActionDescriptor struct {
	ActionID       int64  `json:"actionId"`
	ActionListID   int64  `json:"actionListId"`
	ActionDetailID int64  `json:"actionDetailId"`
	ActionType     string `json:"actionType"`
	MediaType      string `json:"mediaType"`
}

// ComplexAction is a node of the recursive action tree. ActionListID is the list
// of the tree root and is shared by every node of the tree.
type ComplexAction struct {
	ActionID       int64
	ActionListID   int64
	ActionDetailID int64
	ActionType     string
	MediaType      string

	// Type starts as ActionType and becomes the execution rule name once expanded
	Type string

	Attributes *Attributes
	Children   []*ComplexAction
}

func newComplexAction(descriptor ActionDescriptor) *ComplexAction {
	return &ComplexAction{
		ActionID:       descriptor.ActionID,
		ActionListID:   descriptor.ActionListID,
		ActionDetailID: descriptor.ActionDetailID,
		ActionType:     descriptor.ActionType,
		MediaType:      descriptor.MediaType,
		Type:           descriptor.ActionType,
		Attributes:     NewAttributes(),
		Children:       []*ComplexAction{},
	}
}

func (c *ComplexAction) ToStructure() (*Structure, error) {
	structure := newStructure()
	structure.Set("type", c.Type)
	structure.Set("actionId", c.ActionID)
	structure.Set("actionDetailId", c.ActionDetailID)
	structure.Set("actionType", c.ActionType)
	structure.Set("mediaType", c.MediaType)

	c.Attributes.mergeInto(structure)

	children, err := childStructures(c.Children)
	if err != nil {
		return nil, err
	}
	structure.Set("children", children)

	return structure, nil
}
