// Package ui contains the Fyne-based desktop user interface. It renders
// launcher snapshots: the install assistant while the program is missing,
// and the help pane, argument row and embedded terminal once it is found.
// All UI strings are localized via Localization.
package ui
