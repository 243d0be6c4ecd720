package argv

// Package argv implements the argument token editor: an ordered list of
// argv tokens edited through cursor-relative keystrokes on a row of text
// fields. The program name is held apart from the editable tokens, and
// every token carries a stable ID so the view can keep widget identity
// across splits and merges.
