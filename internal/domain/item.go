package domain

// Feed is a parsed syndication feed
type Feed struct {
	Title       string
	Link        string
	Description string
	Items       []Item
}

// Item is a single feed entry. Title and EnclosureURL are optional in the
// wire format; an empty string means the field was absent.
type Item struct {
	Title        string
	EnclosureURL string
}

// Complete returns true if the item carries everything a download needs
func (i Item) Complete() bool {
	return i.Title != "" && i.EnclosureURL != ""
}

// Target pairs a resolved enclosure URL with the filename it will be
// written to. It is derived per item at the start of a download and has
// no identity beyond that download.
type Target struct {
	URL      string
	Filename string
}
