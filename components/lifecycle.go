package components

// Lifecycle is the registry component attached to every tracked organism.
type Lifecycle struct {
	ID   string
	Kind Kind
	Day  int // day counter when the organism was registered
}
