package model

// Package model defines domain data structures used across the app: download
// variants, resolved media and stream handles, download requests and tasks,
// and user-facing feedback. Structures are plain values so the UI, the CLI and
// the background workers can share them without locking.
