package store

const modeKey = "useMockData"

// ModeStore holds the process-wide mock-mode flag. The flag is read from
// durable storage once at construction; every change goes through SetMock,
// which persists before updating the in-memory value, so the two can never
// diverge after a successful set.
type ModeStore struct {
	store *Store
	mock  bool
}

// NewModeStore loads the persisted flag. An absent flag defaults to mock
// mode (true).
func NewModeStore(s *Store) (*ModeStore, error) {
	value, ok, err := s.get(modeKey)
	if err != nil {
		return nil, err
	}
	mock := true
	if ok {
		mock = value == "true"
	}
	return &ModeStore{store: s, mock: mock}, nil
}

// Mock reports whether mock mode is active.
func (m *ModeStore) Mock() bool {
	return m.mock
}

// SetMock persists the flag and then updates the in-memory value. A failed
// persist surfaces and leaves the in-memory value untouched.
func (m *ModeStore) SetMock(mock bool) error {
	value := "false"
	if mock {
		value = "true"
	}
	if err := m.store.set(modeKey, value); err != nil {
		return err
	}
	m.mock = mock
	return nil
}
