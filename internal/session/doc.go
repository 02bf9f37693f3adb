package session

// Package session holds the state of the current window session: the live
// resolved media, the download-in-progress flag and the request sequence
// numbers used to drop stale results. It also runs the fetch workflow and
// defines the contracts the presentation layer implements.
