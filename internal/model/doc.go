package model

// Package model defines the domain data shared across the app: the located
// executable, fetched help text, the session state machine and the exit
// outcome of a child process. Structures carry explicit tri-state values so
// the UI can render "not yet known" distinctly from "known to be absent".
