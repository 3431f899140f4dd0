// Package constraint provides the concrete fdcsp.Constraint variants:
// OpConstraint, EqualityConstraint, OrEqualityConstraint,
// CombinedEqualityConstraint, OrRangeConstraint, and AllDifferentConstraint.
// Each is constructed by a function rather than a struct literal, so that
// fdcsp.Model.AddConstraint always receives a value already in its
// invariant-respecting initial state.
package constraint
