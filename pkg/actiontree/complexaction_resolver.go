package actiontree

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/travigo/cab/pkg/database"
	"golang.org/x/exp/slices"
)

// ComplexActionResolver expands complex actions depth first into a tree
type ComplexActionResolver struct {
	store  database.Store
	logger zerolog.Logger
}

func NewComplexActionResolver(store database.Store, logger zerolog.Logger) *ComplexActionResolver {
	return &ComplexActionResolver{
		store:  store,
		logger: logger,
	}
}

func (r *ComplexActionResolver) Resolve(ctx context.Context, root ActionDescriptor) (*ComplexAction, error) {
	return r.resolve(ctx, root, nil)
}

// path holds the ids of the complex actions currently being expanded above descriptor
func (r *ComplexActionResolver) resolve(ctx context.Context, descriptor ActionDescriptor, path []int64) (*ComplexAction, error) {
	action := newComplexAction(descriptor)

	if !IsComplexActionType(descriptor.ActionType) {
		return action, nil
	}

	if slices.Contains(path, descriptor.ActionID) {
		cycle := append(slices.Clone(path), descriptor.ActionID)
		return nil, &CyclicActionError{ActionID: descriptor.ActionID, Path: cycle}
	}
	path = append(slices.Clone(path), descriptor.ActionID)

	rows, err := r.store.ComplexActionByActionID(ctx, descriptor.ActionID)
	if err != nil {
		return nil, err
	}

	r.logger.Debug().
		Str("lookup", database.LookupComplexActions).
		Int64("action_id", descriptor.ActionID).
		Int("depth", len(path)).
		Int("rows", len(rows)).
		Msg("Expanding complex action")

	// Rows are independent, so lists repeated on each child slot row are merged again
	for _, row := range rows {
		if row.RuleTypeName != nil {
			action.Type = *row.RuleTypeName
		}

		if err := MergeAttributes(ctx, r.store, row.RuleAttributeListID, action.Attributes); err != nil {
			return nil, err
		}
		if err := MergeAttributes(ctx, r.store, row.AttributeListID, action.Attributes); err != nil {
			return nil, err
		}

		if row.ChildActionID == nil {
			continue
		}

		child, err := r.resolve(ctx, childDescriptor(row, descriptor.ActionListID), path)
		if err != nil {
			return nil, err
		}

		action.Children = append(action.Children, child)
	}

	return action, nil
}

func childDescriptor(row database.ComplexActionRow, actionListID int64) ActionDescriptor {
	descriptor := ActionDescriptor{
		ActionID:     *row.ChildActionID,
		ActionListID: actionListID,
	}

	if row.ChildActionDetailID != nil {
		descriptor.ActionDetailID = *row.ChildActionDetailID
	}
	if row.ChildActionType != nil {
		descriptor.ActionType = *row.ChildActionType
	}
	if row.ChildMediaType != nil {
		descriptor.MediaType = *row.ChildMediaType
	}

	return descriptor
}
