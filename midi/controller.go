package midi

// Controller is a connected control surface.
type Controller interface {
	ID() string

	// Input events from the controller
	Events() <-chan Event

	// Output to the controller
	Send(status, data1, data2 uint8) error
	SendSysEx(data []byte) error

	// Lifecycle
	Close() error
}
