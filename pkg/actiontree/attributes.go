package actiontree

import (
	"context"
	"fmt"

	"github.com/travigo/cab/pkg/database"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

const attributeSeparator = ", "

// Attributes holds the merged key/values of a complex action in first-seen order.
// Values are int64 or string.
type Attributes struct {
	values *orderedmap.OrderedMap[string, any]
}

func NewAttributes() *Attributes {
	return &Attributes{
		values: orderedmap.New[string, any](),
	}
}

// Merge inserts value under name, or appends it to the existing value as text.
func (a *Attributes) Merge(name string, value any) {
	if existing, exists := a.values.Get(name); exists {
		a.values.Set(name, appendAttributeValue(existing, value))
	} else {
		a.values.Set(name, value)
	}
}

func (a *Attributes) Get(name string) (any, bool) {
	return a.values.Get(name)
}

func (a *Attributes) Len() int {
	return a.values.Len()
}

func (a *Attributes) Names() []string {
	names := make([]string, 0, a.values.Len())
	for pair := a.values.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}

	return names
}

// mergeInto applies the same collision rule against an already populated structure
func (a *Attributes) mergeInto(structure *Structure) {
	for pair := a.values.Oldest(); pair != nil; pair = pair.Next() {
		if existing, exists := structure.Get(pair.Key); exists {
			structure.Set(pair.Key, appendAttributeValue(existing, pair.Value))
		} else {
			structure.Set(pair.Key, pair.Value)
		}
	}
}

func appendAttributeValue(existing any, value any) string {
	return fmt.Sprintf("%v%s%v", existing, attributeSeparator, value)
}

// AttributeValue picks whichever of the integer and text columns is set.
// Rows with neither or both set have no value.
func AttributeValue(row database.AttributeRow) (any, bool) {
	switch {
	case row.IntegerValue != nil && row.TextValue == nil:
		return *row.IntegerValue, true
	case row.TextValue != nil && row.IntegerValue == nil:
		return *row.TextValue, true
	}

	return nil, false
}

// MergeAttributes folds the attribute list into attributes. A nil list id is a no-op.
func MergeAttributes(ctx context.Context, store database.Store, attributeListID *int64, attributes *Attributes) error {
	if attributeListID == nil {
		return nil
	}

	rows, err := store.AttributesByAttributeListID(ctx, *attributeListID)
	if err != nil {
		return err
	}

	for _, row := range rows {
		value, ok := AttributeValue(row)
		if !ok {
			continue
		}

		attributes.Merge(row.Name, value)
	}

	return nil
}
