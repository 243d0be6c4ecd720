// Package launcher sequences locating the program, fetching its help,
// offering an install and running a session. It holds everything the
// window renders so the UI only draws snapshots and forwards actions.
package launcher
