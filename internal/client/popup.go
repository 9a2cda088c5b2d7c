package client

import "mapnotes-api/internal/models"

// Tab identifies one pane of a record popup.
type Tab int

const (
	TabRead Tab = iota
	TabRoute
	TabWatch
	TabListen
)

// PopupState is the explicit UI state of one open record popup: the active
// tab and the active slide of the video carousel. It is owned by the
// presentation layer; the cache knows nothing about it.
type PopupState struct {
	ActiveTab   Tab
	ActiveSlide int

	videoCount int
	hasAudio   bool
}

// NewPopupState opens a popup on the Read tab with the first slide active.
func NewPopupState(loc models.ClientLocation) *PopupState {
	return &PopupState{
		ActiveTab:  TabRead,
		videoCount: len(loc.Videos),
		hasAudio:   loc.Audio != "",
	}
}

// TabAvailable reports whether the tab can be selected for this record.
// Watch needs at least one video, Listen needs an audio URL.
func (p *PopupState) TabAvailable(tab Tab) bool {
	switch tab {
	case TabWatch:
		return p.videoCount > 0
	case TabListen:
		return p.hasAudio
	default:
		return true
	}
}

// SelectTab activates the tab and reports whether the selection was valid.
// Selecting an unavailable tab leaves the state unchanged.
func (p *PopupState) SelectTab(tab Tab) bool {
	if !p.TabAvailable(tab) {
		return false
	}
	p.ActiveTab = tab
	return true
}

// NextSlide advances the carousel with wraparound and returns the index of
// the slide being left, so its playback can be paused.
func (p *PopupState) NextSlide() int {
	return p.step(1)
}

// PrevSlide steps the carousel back with wraparound and returns the index of
// the slide being left.
func (p *PopupState) PrevSlide() int {
	return p.step(-1)
}

func (p *PopupState) step(direction int) int {
	left := p.ActiveSlide
	if p.videoCount < 2 {
		return left
	}
	next := p.ActiveSlide + direction
	if next < 0 {
		next = p.videoCount - 1
	}
	if next >= p.videoCount {
		next = 0
	}
	p.ActiveSlide = next
	return left
}
