package fdcsp

// Model owns the variable table, each variable's initial domain, and the
// constraint collection. It is built up via AddIntVar/AddFixedVar/
// AddBoolVar/AddConstraint and then sealed with FinalizeModel; after that
// it is read-only and safe to share across any number of concurrent
// searches, each against its own Assignment.
type Model struct {
	variables   []*Variable
	constraints []Constraint
	finalized   bool
}

// NewModel returns an empty, unfinalized Model.
func NewModel() *Model {
	return &Model{}
}

// AddIntVar creates a new variable with initial domain [min, max). max <=
// min yields an initially empty domain, per spec.md §8's boundary
// behaviors; any search requiring that variable then returns false.
func (m *Model) AddIntVar(min, max int) VarID {
	return m.addVar(NewRangeDomain(min, max))
}

// AddIntVarDomain creates a new variable with a caller-supplied domain of
// either shape.
func (m *Model) AddIntVarDomain(domain Domain) VarID {
	domain.validate()
	return m.addVar(domain.Clone())
}

// AddFixedVar creates a new variable whose initial domain is the single
// value v.
func (m *Model) AddFixedVar(v int) VarID {
	return m.addVar(NewValuesDomain(v))
}

// AddBoolVar creates a new variable with initial domain {0, 1}.
func (m *Model) AddBoolVar() VarID {
	return m.addVar(NewValuesDomain(0, 1))
}

func (m *Model) addVar(domain Domain) VarID {
	if m.finalized {
		misuse("cannot add a variable after FinalizeModel")
	}
	id := VarID(len(m.variables))
	m.variables = append(m.variables, &Variable{id: id, initialDomain: domain})
	return id
}

// AddConstraint appends a constraint to the model. Must precede
// FinalizeModel.
func (m *Model) AddConstraint(c Constraint) {
	if m.finalized {
		misuse("cannot add a constraint after FinalizeModel")
	}
	m.constraints = append(m.constraints, c)
}

// FinalizeModel seals the model: every constraint's LinkVars is invoked
// exactly once so each variable holds stable back-references to the
// constraints it participates in. After this call neither variables nor
// constraints may be added, and the model is safe for concurrent search.
func (m *Model) FinalizeModel() {
	if m.finalized {
		misuse("FinalizeModel called more than once")
	}
	for _, c := range m.constraints {
		c.LinkVars(m.variables)
	}
	m.finalized = true
}

// NumVars returns the number of variables in the model.
func (m *Model) NumVars() int {
	return len(m.variables)
}

// Variable returns the variable with the given VarID. Panics with a
// ModelMisuseError if vid is out of range.
func (m *Model) Variable(vid VarID) *Variable {
	if vid < 0 || int(vid) >= len(m.variables) {
		misuse("VarID %d out of range for a model with %d variables", vid, len(m.variables))
	}
	return m.variables[vid]
}

// Finalized reports whether FinalizeModel has been called.
func (m *Model) Finalized() bool {
	return m.finalized
}
