package restaurant

// FilterByMinRating keeps entries rated at least minRating, preserving order.
func FilterByMinRating(entries []Entry, minRating int) ([]Entry, error) {
	var out []Entry
	for _, entry := range entries {
		if entry.Rating >= minRating {
			out = append(out, entry)
		}
	}
	if len(out) == 0 {
		return nil, ErrNoMatches
	}
	return out, nil
}

// FindByID looks up a single entry.
func FindByID(entries []Entry, id int) (Entry, error) {
	if id < 1 {
		return Entry{}, ErrInvalidID
	}
	for _, entry := range entries {
		if entry.ID == id {
			return entry, nil
		}
	}
	return Entry{}, ErrNotFound
}
