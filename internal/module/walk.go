package module

// Walk visits m and all its descendants in pre-order, parents before
// children, children in registration order.
//
// fn receives the dotted path of each module relative to m ("" for m itself).
// Walk stops at the first error returned by fn and returns it.
func Walk(m Module, fn func(path string, m Module) error) error {
	return walk("", m, fn)
}

func walk(path string, m Module, fn func(string, Module) error) error {
	if err := fn(path, m); err != nil {
		return err
	}
	for _, child := range m.core().NamedChildren() {
		childPath := child.Name
		if path != "" {
			childPath = path + "." + child.Name
		}
		if err := walk(childPath, child.Module, fn); err != nil {
			return err
		}
	}
	return nil
}

// ParameterMap returns the parameters of m keyed by dotted path.
//
// Colliding paths resolve as in NamedParameters: the later parameter wins.
func ParameterMap(m Module) map[string]*Parameter {
	named := m.core().NamedParameters()
	params := make(map[string]*Parameter, len(named))
	for _, np := range named {
		params[np.Name] = np.Parameter
	}
	return params
}
