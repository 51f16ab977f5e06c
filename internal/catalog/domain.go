// internal/catalog/domain.go
package catalog

import (
	"fmt"
	"io"
	"strings"
)

// ItemType is the explicit discriminator naming an item's concrete kind.
// It is a fixed constant per variant, never derived from runtime type
// information, so grouping and filtering stay stable across refactors.
type ItemType string

const (
	TypeBook      ItemType = "Book"
	TypeAudioBook ItemType = "AudioBook"
)

// String returns the wire/display form of the type.
func (t ItemType) String() string {
	return string(t)
}

// IsValid reports whether t is one of the defined item types.
func (t ItemType) IsValid() bool {
	switch t {
	case TypeBook, TypeAudioBook:
		return true
	}
	return false
}

// ParseItemType converts a string to an ItemType, case-insensitively.
func ParseItemType(s string) (ItemType, error) {
	switch strings.ToLower(s) {
	case "book":
		return TypeBook, nil
	case "audiobook":
		return TypeAudioBook, nil
	}
	return "", fmt.Errorf("unknown item type %q", s)
}

// LibraryItem is the capability set every catalogue entry provides.
// The variant set is closed: Book and AudioBook are the only
// implementations, discriminated by Type.
type LibraryItem interface {
	ID() int
	Title() string
	Type() ItemType
	BasicInfo() string
	Display(w io.Writer)
}

// basicInfo is the shared summary prefix every variant extends.
func basicInfo(item LibraryItem) string {
	return fmt.Sprintf("#%d %q", item.ID(), item.Title())
}

// Book is a printed library item.
type Book struct {
	id     int
	title  string
	author string
	isbn   string
}

// NewBook creates a Book. Fields are fixed at construction; the catalogue
// performs no validation on them.
func NewBook(id int, title, author, isbn string) *Book {
	return &Book{id: id, title: title, author: author, isbn: isbn}
}

func (b *Book) ID() int        { return b.id }
func (b *Book) Title() string  { return b.title }
func (b *Book) Type() ItemType { return TypeBook }
func (b *Book) Author() string { return b.author }
func (b *Book) ISBN() string   { return b.isbn }

// BasicInfo returns a one-line summary including the author.
func (b *Book) BasicInfo() string {
	return fmt.Sprintf("%s by %s", basicInfo(b), b.author)
}

// Display writes a multi-line rendering of the book to w.
func (b *Book) Display(w io.Writer) {
	fmt.Fprintf(w, "Book #%d\n", b.id)
	fmt.Fprintf(w, "  Title:  %s\n", b.title)
	fmt.Fprintf(w, "  Author: %s\n", b.author)
	fmt.Fprintf(w, "  ISBN:   %s\n", b.isbn)
}

// AudioBook is a narrated library item.
type AudioBook struct {
	id            int
	title         string
	narrator      string
	lengthMinutes int
}

// NewAudioBook creates an AudioBook. Fields are fixed at construction.
func NewAudioBook(id int, title, narrator string, lengthMinutes int) *AudioBook {
	return &AudioBook{id: id, title: title, narrator: narrator, lengthMinutes: lengthMinutes}
}

func (a *AudioBook) ID() int            { return a.id }
func (a *AudioBook) Title() string      { return a.title }
func (a *AudioBook) Type() ItemType     { return TypeAudioBook }
func (a *AudioBook) Narrator() string   { return a.narrator }
func (a *AudioBook) LengthMinutes() int { return a.lengthMinutes }

// BasicInfo returns a one-line summary including narrator and length.
func (a *AudioBook) BasicInfo() string {
	return fmt.Sprintf("%s narrated by %s (%d min)", basicInfo(a), a.narrator, a.lengthMinutes)
}

// Display writes a multi-line rendering of the audio book to w.
func (a *AudioBook) Display(w io.Writer) {
	fmt.Fprintf(w, "AudioBook #%d\n", a.id)
	fmt.Fprintf(w, "  Title:    %s\n", a.title)
	fmt.Fprintf(w, "  Narrator: %s\n", a.narrator)
	fmt.Fprintf(w, "  Length:   %d min\n", a.lengthMinutes)
}

// Statistics summarises the catalogue's current contents. ByType contains
// only types actually present; its counts sum to Total.
type Statistics struct {
	Total  int              `json:"total"`
	ByType map[ItemType]int `json:"by_type"`
}

// ItemView is the JSON representation of a LibraryItem used by the HTTP
// surface and clients.
type ItemView struct {
	ID    int      `json:"id"`
	Type  ItemType `json:"type"`
	Title string   `json:"title"`
	Info  string   `json:"info"`
}

// ViewOf renders an item into its transport form.
func ViewOf(item LibraryItem) ItemView {
	return ItemView{
		ID:    item.ID(),
		Type:  item.Type(),
		Title: item.Title(),
		Info:  item.BasicInfo(),
	}
}

// ItemAddedEvent is recorded in the journal when an item enters the catalogue.
type ItemAddedEvent struct {
	ID    int      `json:"id"`
	Type  ItemType `json:"type"`
	Title string   `json:"title"`
}

// ItemRemovedEvent is recorded in the journal when an item is removed.
type ItemRemovedEvent struct {
	ID int `json:"id"`
}
