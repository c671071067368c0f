package types

// TypeClass is a parameterized type class declaration (spec.md §4.I collection
// phase: "each class declaration contributes (class-name, type-parameters,
// method-name -> method-scheme)"). Grounded on
// _examples/wdamron-poly/types/type_class.go's TypeClass/MethodSet shape,
// adapted from a single-parameter Param to a list since bolt's grammar
// allows multi-parameter classes (spec.md §9 open question).
type TypeClass struct {
	Name    string
	Params  []string // type-variable names bound by the class head
	Methods map[string]*Scheme
}

// Instance is one instance declaration for a TypeClass (spec.md §4.I:
// "each instance contributes (class-name, instance-types, per-method
// declaration)").
type Instance struct {
	Class *TypeClass
	Args  []Type
	// Methods maps a class method name to the name of the let declaration
	// implementing it within this instance's body.
	Methods map[string]string
	// Context holds the instance's own constraints (e.g. `instance Eq a =>
	// Eq [a]`). The checker never sets or reads it: discharging a
	// constraint through an instance adds no constraints to the caller's
	// residual set.
	Context []Constraint
}

// ClassEnv is the class/instance environment built during collection
// (component I). It is not built on the persistent immutable.SortedMap the
// way Env is: classes and instances are registered once per file and never
// shadowed or rolled back, so a plain map is enough and no benefit is lost
// by skipping structural sharing here.
type ClassEnv struct {
	classes   map[string]*TypeClass
	instances map[string][]*Instance
}

// NewClassEnv creates an empty class/instance environment.
func NewClassEnv() *ClassEnv {
	return &ClassEnv{classes: make(map[string]*TypeClass), instances: make(map[string][]*Instance)}
}

// AddClass registers a class declaration.
func (e *ClassEnv) AddClass(tc *TypeClass) { e.classes[tc.Name] = tc }

// Class looks up a class declaration by name.
func (e *ClassEnv) Class(name string) (*TypeClass, bool) {
	tc, ok := e.classes[name]
	return tc, ok
}

// AddInstance registers an instance under its class's name.
func (e *ClassEnv) AddInstance(inst *Instance) {
	e.instances[inst.Class.Name] = append(e.instances[inst.Class.Name], inst)
}

// Instances returns every instance registered for a class name.
func (e *ClassEnv) Instances(className string) []*Instance {
	return e.instances[className]
}
