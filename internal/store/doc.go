package store

// Package store persists the deck and display settings as a JSON document
// in the app config directory. Writes are atomic (temp file, then rename)
// and a missing or corrupt file always degrades to defaults. The Saver
// moves writing off the UI thread: callers enqueue immutable snapshots and
// the newest sequence always wins.
