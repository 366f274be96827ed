package command

// NewDefaultRegistry builds a Registry holding the built-in commands in
// their canonical order. The order matters: it is the order patterns are
// tried in during dispatch, and it is the order help output lists commands
// in.
func NewDefaultRegistry() (*Registry, error) {
	reg := &Registry{}

	defs := []Definition{
		GiveDefinition(),
		TimeSetDefinition(),
		HelpDefinition(reg),
		QuitDefinition(),
	}

	if err := reg.init(defs); err != nil {
		return nil, err
	}
	return reg, nil
}
