package tlrt

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// Host is the object system of the embedding environment. Generated Register
// routines define every wrapper class and the client entry point on it.
type Host interface {
	// DefineClass registers a wrapper class and returns its handle
	DefineClass(spec ClassSpec) (*Class, error)

	// DefineClient registers the client entry point
	DefineClient(spec ClientSpec) error
}

// ClassSpec describes a generated wrapper type
type ClassSpec struct {
	Name       string
	Tag        int32
	Properties []string
	New        func(props Props) Wrapper
}

// Class is the handle of a registered wrapper type
type Class struct {
	Name       string
	Tag        int32
	Properties []string
	new        func(props Props) Wrapper
}

// New creates a wrapper instance. Zero-property classes ignore props.
func (c *Class) New(props Props) Wrapper {
	return c.new(props)
}

// ClientInstance is a client bound to an engine
type ClientInstance interface {
	// Call sends the request of the named method and waits for its result
	Call(ctx context.Context, method string, request Value) (Value, error)

	// Execute runs a request synchronously
	Execute(request Value) (Value, error)
}

// ClientSpec describes the generated client entry point
type ClientSpec struct {
	Name    string
	Methods []string
	New     func(engine Engine) ClientInstance
}

// Registry is an in-memory Host. It is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	classes map[string]*Class
	client  *ClientSpec
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		classes: make(map[string]*Class),
	}
}

// DefineClass registers a wrapper class
func (r *Registry) DefineClass(spec ClassSpec) (*Class, error) {
	if spec.Name == "" || spec.New == nil {
		return nil, fmt.Errorf("invalid class spec %q", spec.Name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.classes[spec.Name]; exists {
		return nil, fmt.Errorf("class %s: %w", spec.Name, ErrAlreadyRegistered)
	}

	class := &Class{
		Name:       spec.Name,
		Tag:        spec.Tag,
		Properties: append([]string(nil), spec.Properties...),
		new:        spec.New,
	}
	r.classes[spec.Name] = class
	return class, nil
}

// DefineClient registers the client entry point
func (r *Registry) DefineClient(spec ClientSpec) error {
	if spec.Name == "" || spec.New == nil {
		return fmt.Errorf("invalid client spec %q", spec.Name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.client != nil {
		return fmt.Errorf("client %s: %w", spec.Name, ErrAlreadyRegistered)
	}
	r.client = &spec
	return nil
}

// Class returns the handle of a registered class
func (r *Registry) Class(name string) (*Class, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	class, ok := r.classes[name]
	return class, ok
}

// Classes returns the names of all registered classes in sorted order
func (r *Registry) Classes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.classes))
	for name := range r.classes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Construct creates an instance of a registered class
func (r *Registry) Construct(name string, props Props) (Wrapper, error) {
	class, ok := r.Class(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotRegistered, name)
	}
	return class.New(props), nil
}

// Wrap turns an encoded object into an instance of its registered class
func (r *Registry) Wrap(v Value) (Wrapper, error) {
	name, err := ConstructorName(v)
	if err != nil {
		return nil, err
	}
	_, props, _ := Unwrap(v)
	return r.Construct(name, props)
}

// Client returns the registered client spec
func (r *Registry) Client() (ClientSpec, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.client == nil {
		return ClientSpec{}, false
	}
	return *r.client, true
}

// NewClient binds the registered client to an engine
func (r *Registry) NewClient(engine Engine) (ClientInstance, error) {
	spec, ok := r.Client()
	if !ok {
		return nil, fmt.Errorf("%w: client", ErrNotRegistered)
	}
	return spec.New(engine), nil
}
