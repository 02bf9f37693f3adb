// Package download runs variant downloads for a session. Each click becomes a
// task that resolves or reuses media, streams the chosen variant into a
// temporary file and reports progress and completion through the session
// presenter.
package download
