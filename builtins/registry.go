package builtins

import "skiff/types"

// Scope is where builtin bindings are installed; the evaluator's root
// scope satisfies it
type Scope interface {
	Define(name string, v types.Value)
}

// Registry holds all registered builtin functions and module maps
type Registry struct {
	funcs   map[string]*types.Func
	modules map[string]*types.Map
}

// NewRegistry creates a registry populated with every builtin
func NewRegistry() *Registry {
	r := &Registry{
		funcs:   make(map[string]*types.Func),
		modules: make(map[string]*types.Map),
	}

	// Core builtins
	r.Register("print", builtinPrint)
	r.Register("input", builtinInput)
	r.Register("type", builtinType)
	r.Register("exit", builtinExit)
	r.Register("sleep", builtinSleep)
	r.Register("run", builtinRun)

	// Module maps
	r.RegisterModule("math", mathModule())
	r.RegisterModule("crypto", cryptoModule())

	return r
}

// Register adds a named native function
func (r *Registry) Register(name string, fn types.NativeFunc) {
	r.funcs[name] = types.NewNative(name, fn)
}

// RegisterModule adds a named module map
func (r *Registry) RegisterModule(name string, m *types.Map) {
	r.modules[name] = m
}

// Get looks up a builtin function by name
func (r *Registry) Get(name string) (*types.Func, bool) {
	fn, ok := r.funcs[name]
	return fn, ok
}

// Install binds every builtin and module into the given scope. Builtins
// are ordinary bindings: a program may freely shadow or rebind them.
func (r *Registry) Install(s Scope) {
	for name, fn := range r.funcs {
		s.Define(name, fn)
	}
	for name, m := range r.modules {
		s.Define(name, m)
	}
}

// Install populates a scope with a fresh default registry
func Install(s Scope) {
	NewRegistry().Install(s)
}

// moduleFunc binds a native into a module map under its dotted name
func moduleFunc(m *types.Map, module, name string, fn types.NativeFunc) {
	m.Set(types.NewStr(name), types.NewNative(module+"."+name, fn))
}
