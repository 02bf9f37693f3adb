package session

import (
	"sync"

	"github.com/ytget/yt-downloader/internal/model"
)

// State is the single source of truth for one window session.
type State struct {
	mu sync.RWMutex

	media *model.ResolvedMedia
	live  bool // media backs the enabled buttons

	inFlight    int
	fetchSeq    uint64
	downloadSeq uint64
}

// NewState creates an empty session
func NewState() *State {
	return &State{}
}

// Media returns the live media, or nil when no fetch has succeeded or the
// latest one failed.
func (s *State) Media() *model.ResolvedMedia {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.live {
		return nil
	}
	return s.media
}

// LastMedia returns the most recent successfully resolved media, live or not.
func (s *State) LastMedia() *model.ResolvedMedia {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.media
}

// NextFetch reserves a fetch id; only the highest id may commit.
func (s *State) NextFetch() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fetchSeq++
	return s.fetchSeq
}

// CommitFetch replaces the live media if id is still the latest fetch.
func (s *State) CommitFetch(id uint64, media *model.ResolvedMedia) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id != s.fetchSeq || media == nil {
		return false
	}
	s.media = media
	s.live = true
	return true
}

// FailFetch detaches the live media from the buttons if id is the latest
// fetch. The media value itself is kept untouched.
func (s *State) FailFetch(id uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id != s.fetchSeq {
		return false
	}
	s.live = false
	return true
}

// BeginDownload marks a download as in progress and returns its id.
func (s *State) BeginDownload() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inFlight++
	s.downloadSeq++
	return s.downloadSeq
}

// EndDownload releases one in-progress mark.
func (s *State) EndDownload() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inFlight > 0 {
		s.inFlight--
	}
}

// IsLatestDownload reports whether id is the most recent download.
func (s *State) IsLatestDownload(id uint64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return id == s.downloadSeq
}

// InProgress reports whether any dispatched download is still running.
func (s *State) InProgress() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.inFlight > 0
}

// ActionsEnabled is true iff media is live and nothing is downloading.
func (s *State) ActionsEnabled() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.live && s.media != nil && s.inFlight == 0
}
