package controller

import (
	"github.com/pders01/poddeck/internal/catalog"
	"github.com/pders01/poddeck/internal/debuglog"
	"github.com/pders01/poddeck/internal/format"
	"github.com/pders01/poddeck/internal/placeholder"
)

// ModalContent is the detail modal's populated fields for the selected
// show. Seasons is nil when the show has no season breakdown.
type ModalContent struct {
	ShowID      string
	Cover       string
	Title       string
	Description string
	Updated     string
	GenrePills  []string
	Seasons     []catalog.SeasonDetail
}

type modalState struct {
	open        bool
	content     ModalContent
	lastFocused Focusable
	coverFailed bool
}

// OpenShow opens the detail modal for the given show id, recording
// focused as the element to restore focus to on close. A selection for
// an unknown id, or while the modal is already open, is dropped
// silently; it reports whether the modal opened.
func (c *Controller) OpenShow(id string, focused Focusable) bool {
	c.mu.Lock()
	if c.modal.open {
		c.mu.Unlock()
		return false
	}

	show, ok := c.cat.ShowByID(id)
	if !ok {
		c.mu.Unlock()
		debuglog.Debugf("selection ignored: unknown show id %q", id)
		return false
	}

	cover := show.Image
	if cover == "" {
		cover = placeholder.Image()
	}

	seasons, _ := c.cat.SeasonsFor(show.ID)

	c.modal = modalState{
		open: true,
		content: ModalContent{
			ShowID:      show.ID,
			Cover:       cover,
			Title:       show.Title,
			Description: show.Description,
			Updated:     format.UpdatedLabel(show.Updated),
			GenrePills:  c.cat.GenreTitles(show.Genres),
			Seasons:     seasons,
		},
		lastFocused: focused,
	}
	if focused != nil {
		focused.Blur()
	}
	c.mu.Unlock()
	c.notify()
	return true
}

// CloseModal closes the modal and restores focus to the element
// recorded at open time. Closing an already-closed modal is a no-op.
func (c *Controller) CloseModal() {
	c.mu.Lock()
	if !c.modal.open {
		c.mu.Unlock()
		return
	}
	focused := c.modal.lastFocused
	c.modal = modalState{}
	c.mu.Unlock()

	if focused != nil {
		focused.Focus()
	}
	c.notify()
}

// Modal returns the current modal content and whether the modal is open.
func (c *Controller) Modal() (ModalContent, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.modal.content, c.modal.open
}

// NotifyModalCoverError swaps the modal cover to the placeholder,
// exactly once per open; later failures while the placeholder is shown
// change nothing.
func (c *Controller) NotifyModalCoverError() {
	c.mu.Lock()
	if !c.modal.open || c.modal.coverFailed || c.modal.content.Cover == placeholder.Image() {
		c.mu.Unlock()
		return
	}
	c.modal.coverFailed = true
	c.modal.content.Cover = placeholder.Image()
	c.mu.Unlock()
	c.notify()
}
