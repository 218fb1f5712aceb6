package session

// Store defines the interface for durable session persistence.
type Store interface {
	// Load retrieves the persisted state, or (nil, nil) when absent.
	// A corrupt entry is reported as an error; callers treat it as absent.
	Load() (*State, error)

	// Save writes the state durably before the surrounding operation resolves
	Save(state *State) error

	// Clear removes the persisted entry entirely
	Clear() error
}
