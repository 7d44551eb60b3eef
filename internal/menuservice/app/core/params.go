package core

// WaitTime bounds graceful shutdown and per-request timeouts, in seconds.
const WaitTime = 10

const (
	MinCustomerNameLen = 1
	MaxCustomerNameLen = 100
	MaxNotesLen        = 500
)

// ServiceParams are the CLI-level knobs of the menu service.
type ServiceParams struct {
	Port       int
	ConfigPath string
}
