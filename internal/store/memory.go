package store

// Memory is an in-memory Store, primarily for tests.
type Memory struct {
	values map[string]string

	// SetErr, when non-nil, is returned by every Set call.
	SetErr error

	// Writes counts successful Set calls.
	Writes int
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{values: map[string]string{}}
}

// Get returns the stored value for key.
func (m *Memory) Get(key string) (string, bool, error) {
	v, ok := m.values[key]
	return v, ok, nil
}

// Set stores the value for key.
func (m *Memory) Set(key, value string) error {
	if m.SetErr != nil {
		return m.SetErr
	}
	m.values[key] = value
	m.Writes++
	return nil
}

// Compile-time check that both stores implement Store.
var (
	_ Store = (*FileStore)(nil)
	_ Store = (*Memory)(nil)
)
