package ui

import (
	"fmt"

	"github.com/faizmokh/restoran/internal/restaurant"
)

// EntryProps are the attributes an EntryView renders.
type EntryProps struct {
	ID     int
	Name   string
	Rating int
}

// NewEntryProps validates and builds EntryProps.
func NewEntryProps(id int, name string, rating int) (EntryProps, error) {
	if id < 1 {
		return EntryProps{}, fmt.Errorf("entry props %d: %w", id, restaurant.ErrInvalidID)
	}
	return EntryProps{ID: id, Name: name, Rating: rating}, nil
}

// EntryView renders one restaurant row.
func EntryView(p EntryProps) string {
	name := p.Name
	if name == "" {
		name = Styles.Empty.Render("(unnamed)")
	}
	return fmt.Sprintf("%s %s %s",
		Styles.Muted.Render(fmt.Sprintf("#%d", p.ID)),
		name,
		Styles.Rating.Render(fmt.Sprintf("rating %d", p.Rating)),
	)
}

// CounterProps are the attributes a CounterView renders.
type CounterProps struct {
	Count int
}

// CounterView renders a count label.
func CounterView(p CounterProps) string {
	return fmt.Sprintf("Count: %d", p.Count)
}

// FlagProps are the attributes a FlagView renders.
type FlagProps struct {
	Complete bool
}

// FlagView renders the instructions completion flag.
func FlagView(p FlagProps) string {
	if p.Complete {
		return Styles.Flag.Render("Instructions: complete")
	}
	return Styles.Muted.Render("Instructions: not complete")
}
