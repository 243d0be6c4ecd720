package model

// ExecutableState tells whether the locator has run and what it found
type ExecutableState int

const (
	// ExecutableUnknown means the locator has not finished yet
	ExecutableUnknown ExecutableState = iota

	// ExecutableFound means Path holds an absolute path
	ExecutableFound

	// ExecutableMissing means every candidate was probed and none exists
	ExecutableMissing
)

// String returns the string representation of ExecutableState
func (s ExecutableState) String() string {
	switch s {
	case ExecutableUnknown:
		return "Unknown"
	case ExecutableFound:
		return "Found"
	case ExecutableMissing:
		return "Missing"
	default:
		return "Invalid"
	}
}

// Executable is the result of locating the target program
type Executable struct {
	State ExecutableState
	Path  string
}

// FoundExecutable returns a reference to an executable at path
func FoundExecutable(path string) Executable {
	return Executable{State: ExecutableFound, Path: path}
}

// MissingExecutable returns the explicit "not found" marker
func MissingExecutable() Executable {
	return Executable{State: ExecutableMissing}
}

// IsFound returns true if the executable has a usable path
func (e Executable) IsFound() bool {
	return e.State == ExecutableFound && e.Path != ""
}

// HelpState tells whether help text has been fetched
type HelpState int

const (
	HelpPending HelpState = iota
	HelpAvailable
	HelpUnavailable
)

// HelpText is the captured output of the help invocation
type HelpText struct {
	State HelpState
	Text  string
}

// AvailableHelp wraps fetched help output
func AvailableHelp(text string) HelpText {
	return HelpText{State: HelpAvailable, Text: text}
}

// UnavailableHelp marks help as fetched but empty or failed
func UnavailableHelp() HelpText {
	return HelpText{State: HelpUnavailable}
}
