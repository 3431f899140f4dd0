package fdcsp

// Variable owns a VarID, its initial Domain, and the reverse index of
// constraints that reference it. The reverse index is populated exactly
// once, by FinalizeModel; variables are never deleted or re-indexed.
//
// Unlike the C/C++ source this spec was distilled from, the reverse index
// stores Constraint interface values directly rather than integer handles
// into a separate constraint table. A Go slice element, once appended, is
// an independent copy; growing Model.constraints never invalidates a
// Constraint value already appended to a Variable's linkedConstraints, so
// the "storage must not reallocate after Finalize" footgun the original
// worked around with raw pointers simply doesn't arise here.
type Variable struct {
	id              VarID
	initialDomain   Domain
	linkedConstraints []Constraint
}

// ID returns the variable's VarID.
func (v *Variable) ID() VarID {
	return v.id
}

// InitialDomain returns the domain the variable was constructed with.
func (v *Variable) InitialDomain() Domain {
	return v.initialDomain
}

// Constraints returns the constraints linked to this variable by
// FinalizeModel, in the order they were added to the Model.
func (v *Variable) Constraints() []Constraint {
	return v.linkedConstraints
}

// Link appends c to the variable's reverse index. Called by each
// Constraint's LinkVars during FinalizeModel; a Constraint should Link
// itself to every Variable it evaluates.
func (v *Variable) Link(c Constraint) {
	v.linkedConstraints = append(v.linkedConstraints, c)
}
