package codegen

// DefaultRegistry is the global registry instance. Generator packages register
// their artifact in init, so importing a generator package makes it available.
var DefaultRegistry = NewRegistry()
