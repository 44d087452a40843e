// Package store is the persistence layer: one repository per entity type,
// all sharing a single GORM handle, plus the deletion-propagation logic that
// keeps the entity graph referentially consistent.
//
// Every relationship in the model has a declared deletion policy:
//
//	Cascade — dependents are deleted transitively:
//	  Player → Duty, PlayerStatistic
//	  Horse  → HorseStatistic
//	  Match  → PlayerStatistic, HorseStatistic, ChukkerScore
//	  Field  → Match (and, through the match, its fact rows)
//	  Team   → its matches as Team A or Team B (likewise transitive)
//
//	Nullify — the back-reference is cleared but the dependent survives:
//	  Club       ↔ Team, Player, Tournament
//	  Team       ↔ Player (roster membership)
//	  Tournament ↔ Match, Award, Field
//	  Award      ↔ Tournament, Player, Horse, Team
//	  Duty       ↔ Match, Tournament
//	  User       ↔ Player, bred Horse
//
// Each Delete* method resolves every relationship its entity participates in
// inside one database transaction — either the whole delete applies or none
// of it does. A partially-applied delete (some dependents cascaded, others
// left dangling) can never be observed.
package store

import (
	"gorm.io/gorm"
)

// Store bundles the shared database handle behind the per-entity repository
// methods defined across this package's files.
type Store struct {
	db *gorm.DB
}

// New creates a Store on top of an open GORM handle.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// ListOptions parameterizes a List query: equality filters plus an explicit
// sort key. Relationship collections carry no guaranteed order of their own,
// so callers that care about order must ask for one; CreatedAt ascending is
// the default, which also breaks ties deterministically by insertion order.
type ListOptions struct {
	Filters map[string]any // column = value equality filters
	SortBy  string         // column to sort by; empty means created_at
	Desc    bool           // descending when true
	Limit   int            // 0 means no limit
}

// applyList turns ListOptions into query clauses. Column names are checked
// against the entity's whitelist before being interpolated — filter values go
// through placeholders, but column identifiers cannot, so an unknown filter
// key is dropped and an unknown sort key falls back to created_at rather
// than reaching the SQL string.
func applyList(q *gorm.DB, opts ListOptions, columns map[string]bool) *gorm.DB {
	for col, val := range opts.Filters {
		if columns[col] {
			q = q.Where(col+" = ?", val)
		}
	}
	sortBy := "created_at"
	if opts.SortBy != "" && columns[opts.SortBy] {
		sortBy = opts.SortBy
	}
	if opts.Desc {
		q = q.Order(sortBy + " DESC")
	} else {
		q = q.Order(sortBy)
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}
	return q
}
