// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Alert is the predicate function for alert builders.
type Alert func(*sql.Selector)

// AttemptRecord is the predicate function for attemptrecord builders.
type AttemptRecord func(*sql.Selector)

// PolicyOverride is the predicate function for policyoverride builders.
type PolicyOverride func(*sql.Selector)

// ReactionEntry is the predicate function for reactionentry builders.
type ReactionEntry func(*sql.Selector)

// UsageCounter is the predicate function for usagecounter builders.
type UsageCounter func(*sql.Selector)
