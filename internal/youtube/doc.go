package youtube

// Package youtube validates video URLs and resolves them into the three
// download variants on top of github.com/kkdai/youtube/v2. It owns the stream
// handles it hands out: only this package knows how to open them.
