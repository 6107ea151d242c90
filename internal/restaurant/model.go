package restaurant

// Entry is a single restaurant row shown by the editor.
type Entry struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Rating int    `json:"rating"`
}

// EditorState holds the text being typed and the ordered list of entries.
// Values are treated as immutable snapshots; operations return a new state.
type EditorState struct {
	PendingInput string
	Entries      []Entry
}

// SeedEntries returns the entries every session starts with.
func SeedEntries() []Entry {
	return []Entry{
		{ID: 1, Name: "Golden Harbor", Rating: 10},
		{ID: 2, Name: "Potbelly", Rating: 6},
		{ID: 3, Name: "Noodles and Company", Rating: 8},
	}
}

// NewEditorState returns the initial state with the seeded entries and an empty input.
func NewEditorState() EditorState {
	return EditorState{Entries: SeedEntries()}
}
