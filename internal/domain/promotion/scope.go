package promotion

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrEmptyItemScope     = errors.New("specific-items scope requires at least one item")
	ErrEmptyCategoryScope = errors.New("categories scope requires at least one category")
)

type ScopeKind string

const (
	ScopeAllOrder      ScopeKind = "all_order"
	ScopeSpecificItems ScopeKind = "specific_items"
	ScopeCategories    ScopeKind = "categories"
)

type Scope struct {
	kind        ScopeKind
	itemIDs     map[uuid.UUID]struct{}
	categoryIDs map[uuid.UUID]struct{}
}

func NewAllOrderScope() Scope {
	return Scope{kind: ScopeAllOrder}
}

func NewSpecificItemsScope(itemIDs []uuid.UUID) (Scope, error) {
	if len(itemIDs) == 0 {
		return Scope{}, ErrEmptyItemScope
	}
	set := make(map[uuid.UUID]struct{}, len(itemIDs))
	for _, id := range itemIDs {
		set[id] = struct{}{}
	}
	return Scope{kind: ScopeSpecificItems, itemIDs: set}, nil
}

func NewCategoriesScope(categoryIDs []uuid.UUID) (Scope, error) {
	if len(categoryIDs) == 0 {
		return Scope{}, ErrEmptyCategoryScope
	}
	set := make(map[uuid.UUID]struct{}, len(categoryIDs))
	for _, id := range categoryIDs {
		set[id] = struct{}{}
	}
	return Scope{kind: ScopeCategories, categoryIDs: set}, nil
}

func (s Scope) Kind() ScopeKind {
	return s.kind
}

// Covers reports whether a line with the given item and category falls under
// this scope. Pure function of its inputs.
func (s Scope) Covers(itemID, categoryID uuid.UUID) bool {
	switch s.kind {
	case ScopeAllOrder:
		return true
	case ScopeSpecificItems:
		_, ok := s.itemIDs[itemID]
		return ok
	case ScopeCategories:
		_, ok := s.categoryIDs[categoryID]
		return ok
	default:
		return false
	}
}

func (s Scope) ItemIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(s.itemIDs))
	for id := range s.itemIDs {
		ids = append(ids, id)
	}
	return ids
}

func (s Scope) CategoryIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(s.categoryIDs))
	for id := range s.categoryIDs {
		ids = append(ids, id)
	}
	return ids
}
