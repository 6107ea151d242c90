package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/faizmokh/restoran/internal/restaurant"
)

func TestListCommandPrintsSeededEntries(t *testing.T) {
	out := executeCommand(t, newListCommand())

	assertContains(t, out, "#1 Golden Harbor (rating 10)")
	assertContains(t, out, "#2 Potbelly (rating 6)")
	assertContains(t, out, "#3 Noodles and Company (rating 8)")
}

func TestListCommandFiltersByMinRating(t *testing.T) {
	out := executeCommand(t, newListCommand(), "--min-rating", "8")

	assertContains(t, out, "Golden Harbor")
	assertContains(t, out, "Noodles and Company")
	assertNotContains(t, out, "Potbelly")
}

func TestListCommandReportsNoMatches(t *testing.T) {
	out := executeCommand(t, newListCommand(), "--min-rating", "11")

	assertContains(t, out, "No restaurants found with rating 11 or above")
}

func TestListCommandJSON(t *testing.T) {
	out := executeCommand(t, newListCommand(), "--json", "--min-rating", "7")

	var got []restaurant.Entry
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("json.Unmarshal: %v\n%s", err, out)
	}
	if len(got) != 2 || got[0].ID != 1 || got[1].ID != 3 {
		t.Fatalf("entries = %#v, want ids 1 and 3", got)
	}
}

func TestShowCommandPrintsEntry(t *testing.T) {
	out := executeCommand(t, newShowCommand(), "2")

	assertContains(t, out, "#2 Potbelly (rating 6)")
}

func TestShowCommandRejectsUnknownID(t *testing.T) {
	tests := []struct {
		arg  string
		want error
	}{
		{arg: "42", want: restaurant.ErrNotFound},
		{arg: "0", want: restaurant.ErrInvalidID},
		{arg: "abc", want: restaurant.ErrInvalidID},
	}

	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			cmd := newShowCommand()
			buf := &bytes.Buffer{}
			cmd.SetOut(buf)
			cmd.SetErr(buf)
			cmd.SetArgs([]string{tt.arg})

			err := cmd.Execute()
			if !errors.Is(err, tt.want) {
				t.Fatalf("Execute() error = %v, want %v", err, tt.want)
			}
		})
	}
}
