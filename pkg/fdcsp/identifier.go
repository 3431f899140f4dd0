package fdcsp

import "math"

// VarID is a dense, zero-based index into a Model's variable table.
type VarID int

// Invalid is the sentinel VarID denoting absence, e.g. the lastAssigned
// argument of Constraint.Evaluate when it is called outside a search step.
const Invalid VarID = -1

// Unassigned is the sentinel instantiated value meaning "no value chosen
// yet". It is chosen far outside any domain a caller could plausibly
// construct with AddIntVar/AddFixedVar, so it can never collide with a
// real domain value.
const Unassigned = math.MinInt
