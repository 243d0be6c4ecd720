package session

// Package session supervises the single interactive child process of a
// view. The child runs on a pseudo-terminal sized to the terminal widget;
// output is relayed to the widget and typed input back to the child. The
// controller moves through Idle, Running and Exited, and only returns to
// Idle once the exit outcome has been acknowledged.
