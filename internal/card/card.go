// Package card implements the podcast preview card: a self-contained
// unit that renders a show summary from a flat set of string attributes
// and notifies subscribers when the card is selected.
package card

import (
	"github.com/pders01/poddeck/internal/placeholder"
)

// Attribute names the card observes. Values are plain strings; typed
// parsing happens once inside the card when a value changes.
const (
	AttrPid     = "pid"
	AttrID      = "id"
	AttrDataID  = "data-id"
	AttrTitle   = "title"
	AttrCover   = "cover"
	AttrGenres  = "genres"
	AttrSeasons = "seasons"
	AttrUpdated = "updated"
)

var observedAttributes = map[string]struct{}{
	AttrPid:     {},
	AttrID:      {},
	AttrDataID:  {},
	AttrTitle:   {},
	AttrCover:   {},
	AttrGenres:  {},
	AttrSeasons: {},
	AttrUpdated: {},
}

// SelectedEvent is emitted when the card is activated by click or
// keyboard. ID is resolved from pid, then id, then data-id.
type SelectedEvent struct {
	ID string
}

// Lifecycle is the card's reduced custom-element surface: insertion,
// removal and attribute observation as plain methods.
type Lifecycle interface {
	Mount()
	Unmount()
	OnAttributesChanged(name, oldValue, newValue string)
}

// PreviewCard renders one show summary. The zero value is not usable;
// construct with New.
type PreviewCard struct {
	attrs map[string]string
	view  viewState

	mounted     bool
	focused     bool
	coverFailed bool

	subscribers map[int]func(SelectedEvent)
	nextSub     int

	renders int
}

// viewState is the typed render model derived from the string
// attributes. Rebuilt in full on every attribute change.
type viewState struct {
	title        string
	cover        string
	genres       []string
	seasonsLabel string
	updatedLabel string
}

// New builds an unmounted card with the given initial attributes.
// Unknown attribute names are ignored.
func New(attrs map[string]string) *PreviewCard {
	p := &PreviewCard{
		attrs:       make(map[string]string, len(attrs)),
		subscribers: make(map[int]func(SelectedEvent)),
	}
	for name, value := range attrs {
		if _, ok := observedAttributes[name]; ok {
			p.attrs[name] = value
		}
	}
	p.render()
	return p
}

// Mount marks the card as inserted: interaction is enabled and content
// reflects the current attributes.
func (p *PreviewCard) Mount() {
	if p.mounted {
		return
	}
	p.mounted = true
	p.render()
}

// Unmount detaches the card. Subscribers are dropped so nothing retains
// a removed card, and interaction is disabled.
func (p *PreviewCard) Unmount() {
	p.mounted = false
	p.focused = false
	p.subscribers = make(map[int]func(SelectedEvent))
}

// Mounted reports whether the card is currently mounted.
func (p *PreviewCard) Mounted() bool { return p.mounted }

// SetAttribute updates one observed attribute. Setting an attribute to
// its current value is a no-op; any real change triggers a full
// re-render of the card's content.
func (p *PreviewCard) SetAttribute(name, value string) {
	if _, ok := observedAttributes[name]; !ok {
		return
	}
	old := p.attrs[name]
	if old == value {
		return
	}
	p.attrs[name] = value
	p.OnAttributesChanged(name, old, value)
}

// Attribute returns the current value of an attribute, empty when unset.
func (p *PreviewCard) Attribute(name string) string {
	return p.attrs[name]
}

// OnAttributesChanged re-renders the card. A changed cover clears the
// load-failure latch so the new source gets its own single fallback.
func (p *PreviewCard) OnAttributesChanged(name, _, _ string) {
	if name == AttrCover {
		p.coverFailed = false
	}
	p.render()
}

// Subscribe registers fn for selection events and returns a function
// that removes the subscription.
func (p *PreviewCard) Subscribe(fn func(SelectedEvent)) func() {
	id := p.nextSub
	p.nextSub++
	p.subscribers[id] = fn
	return func() { delete(p.subscribers, id) }
}

// Click activates the card as a primary click would.
func (p *PreviewCard) Click() {
	p.activate()
}

// HandleKey activates the card on Enter or Space while focused. It
// reports whether the key was consumed.
func (p *PreviewCard) HandleKey(key string) bool {
	if !p.focused {
		return false
	}
	switch key {
	case "enter", " ", "space":
		p.activate()
		return true
	}
	return false
}

// Focus gives the card keyboard focus.
func (p *PreviewCard) Focus() { p.focused = true }

// Blur removes keyboard focus.
func (p *PreviewCard) Blur() { p.focused = false }

// Focused reports whether the card has keyboard focus.
func (p *PreviewCard) Focused() bool { return p.focused }

// ResolveID returns the identifier a selection would carry: pid, then
// id, then data-id, first non-empty. Empty when none is set.
func (p *PreviewCard) ResolveID() string {
	for _, name := range []string{AttrPid, AttrID, AttrDataID} {
		if v := p.attrs[name]; v != "" {
			return v
		}
	}
	return ""
}

// AccessibleName is the card's exposed accessible label: the rendered
// title, or a generic fallback when no title is set.
func (p *PreviewCard) AccessibleName() string {
	if p.view.title != "" {
		return p.view.title
	}
	return "Podcast preview"
}

// CoverSource is the image the card currently shows: the cover
// attribute when set and not failed, otherwise the placeholder.
func (p *PreviewCard) CoverSource() string {
	return p.view.cover
}

// NotifyCoverError reports that the current cover failed to load. The
// card swaps to the placeholder exactly once; further failures while
// the placeholder is showing change nothing.
func (p *PreviewCard) NotifyCoverError() {
	if p.coverFailed || p.view.cover == placeholder.Image() {
		return
	}
	p.coverFailed = true
	p.render()
}

// GenrePills returns the rendered pill texts: up to four genres plus a
// single "+n" overflow pill, in input order.
func (p *PreviewCard) GenrePills() []string {
	return pills(p.view.genres)
}

// SeasonsLabel returns the rendered season count text.
func (p *PreviewCard) SeasonsLabel() string { return p.view.seasonsLabel }

// UpdatedLabel returns the rendered updated text.
func (p *PreviewCard) UpdatedLabel() string { return p.view.updatedLabel }

func (p *PreviewCard) activate() {
	if !p.mounted {
		return
	}
	id := p.ResolveID()
	if id == "" {
		return
	}
	ev := SelectedEvent{ID: id}
	for _, fn := range p.subscribers {
		fn(ev)
	}
}
