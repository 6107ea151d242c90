package restaurant

// WithInput returns a copy of s with PendingInput replaced by text.
func (s EditorState) WithInput(text string) EditorState {
	s.PendingInput = text
	return s
}

// Submit appends an entry named after the pending input and returns the new state.
//
// The id is len(Entries)+1, which only stays unique while entries are never removed.
// The pending input is left as is.
func (s EditorState) Submit() EditorState {
	next := make([]Entry, len(s.Entries), len(s.Entries)+1)
	copy(next, s.Entries)
	next = append(next, Entry{
		ID:     s.NextID(),
		Name:   s.PendingInput,
		Rating: 0,
	})
	s.Entries = next
	return s
}

// NextID reports the id the next submitted entry will receive.
func (s EditorState) NextID() int {
	return len(s.Entries) + 1
}
