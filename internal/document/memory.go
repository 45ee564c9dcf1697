package document

// Memory is an in-memory Document for tests and embedding.
type Memory struct {
	root    *MemoryElement
	body    *MemoryElement
	icon    *MemoryIcon
	control *MemoryControl
}

// MemoryOption configures a Memory document.
type MemoryOption func(*Memory)

// WithoutIcon creates the document without a toggle icon.
func WithoutIcon() MemoryOption {
	return func(d *Memory) {
		d.icon = nil
	}
}

// WithoutControl creates the document without a toggle control.
func WithoutControl() MemoryOption {
	return func(d *Memory) {
		d.control = nil
	}
}

// NewMemory creates an in-memory document with an icon and a control
// unless disabled via options.
func NewMemory(opts ...MemoryOption) *Memory {
	d := &Memory{
		root:    &MemoryElement{classes: map[string]bool{}},
		body:    &MemoryElement{classes: map[string]bool{}},
		icon:    &MemoryIcon{},
		control: &MemoryControl{},
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Root returns the root element.
func (d *Memory) Root() Element { return d.root }

// Body returns the body element.
func (d *Memory) Body() Element { return d.body }

// Icon returns the toggle icon, or nil when constructed with WithoutIcon.
func (d *Memory) Icon() Icon {
	if d.icon == nil {
		return nil
	}
	return d.icon
}

// Control returns the toggle control, or nil when constructed with WithoutControl.
func (d *Memory) Control() Control {
	if d.control == nil {
		return nil
	}
	return d.control
}

// RootElement exposes the concrete root element for assertions.
func (d *Memory) RootElement() *MemoryElement { return d.root }

// BodyElement exposes the concrete body element for assertions.
func (d *Memory) BodyElement() *MemoryElement { return d.body }

// IconState exposes the concrete icon for assertions. Nil without an icon.
func (d *Memory) IconState() *MemoryIcon { return d.icon }

// ControlState exposes the concrete control. Nil without a control.
func (d *Memory) ControlState() *MemoryControl { return d.control }

// MemoryElement is an in-memory marker set.
type MemoryElement struct {
	classes map[string]bool

	// Mutations counts AddClass and RemoveClass calls.
	Mutations int
}

// AddClass adds the marker. Adding a present marker is a no-op beyond the
// mutation count.
func (e *MemoryElement) AddClass(name string) error {
	e.Mutations++
	e.classes[name] = true
	return nil
}

// RemoveClass removes the marker if present.
func (e *MemoryElement) RemoveClass(name string) error {
	e.Mutations++
	delete(e.classes, name)
	return nil
}

// HasClass reports whether the marker is present.
func (e *MemoryElement) HasClass(name string) bool {
	return e.classes[name]
}

// Classes returns a copy of the current marker set.
func (e *MemoryElement) Classes() []string {
	out := make([]string, 0, len(e.classes))
	for c := range e.classes {
		out = append(out, c)
	}
	return out
}

// MemoryIcon records the last glyph set.
type MemoryIcon struct {
	Glyph string
	Sets  int
}

// SetGlyph records the glyph.
func (i *MemoryIcon) SetGlyph(glyph string) error {
	i.Glyph = glyph
	i.Sets++
	return nil
}

// MemoryControl records the registered handler and allows simulating
// activations.
type MemoryControl struct {
	handler       func()
	Registrations int
}

// OnActivate registers the handler.
func (c *MemoryControl) OnActivate(handler func()) {
	c.handler = handler
	c.Registrations++
}

// Activate invokes the registered handler, if any.
func (c *MemoryControl) Activate() {
	if c.handler != nil {
		c.handler()
	}
}

// Registered reports whether a handler has been registered.
func (c *MemoryControl) Registered() bool {
	return c.handler != nil
}

// Compile-time check that Memory implements Document.
var _ Document = (*Memory)(nil)
