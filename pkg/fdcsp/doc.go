// Package fdcsp implements the modelling layer and backtracking search
// engine for a finite-domain constraint satisfaction problem: integer
// variables with explicit-set or half-open-range domains, a heterogeneous
// set of constraint kinds, and a recursive forward-checking search that
// applies per-constraint arc consistency as it goes.
//
// Concrete constraint kinds live in the sibling package
// github.com/fdcsp/fdcsp/pkg/fdcsp/constraint, which depends on this
// package rather than the reverse, the same split the teacher uses between
// its deppy and deppy/constraint packages.
package fdcsp
