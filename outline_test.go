package html2pdf

// Notes:
// - embedOutline success is covered by the integration tests, which print a
//   real PDF. Unit tests cover nesting and the error path.

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// ---------------------------------------------------------------------------
// TestClampPage - Estimate bounds
// ---------------------------------------------------------------------------

func TestClampPage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		page  int
		pages int
		want  int
	}{
		{"inside", 2, 5, 2},
		{"past end", 9, 5, 4},
		{"at end", 5, 5, 4},
		{"negative", -1, 5, 0},
		{"unknown page count", 9, 0, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := clampPage(tt.page, tt.pages); got != tt.want {
				t.Errorf("clampPage(%d, %d) = %d, want %d", tt.page, tt.pages, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestBuildOutline - Heading nesting
// ---------------------------------------------------------------------------

func TestBuildOutline(t *testing.T) {
	t.Parallel()

	headings := []Heading{
		{Title: "Preface", Level: 2, PageEstimate: 0},
		{Title: "Part One", Level: 1, PageEstimate: 0},
		{Title: "Setup", Level: 2, PageEstimate: 1},
		{Title: "", Level: 2, PageEstimate: 1},
		{Title: "Usage", Level: 2, PageEstimate: 7},
		{Title: "Part Two", Level: 1, PageEstimate: 3},
		{Title: "Glossary", Level: 2, PageEstimate: 4},
	}

	got := buildOutline(headings, 5)

	if len(got) != 3 {
		t.Fatalf("got %d roots, want 3: %+v", len(got), got)
	}

	if got[0].Title != "Preface" || got[0].Bold || len(got[0].Kids) != 0 {
		t.Errorf("root[0] = %+v, want plain Preface", got[0])
	}

	partOne := got[1]
	if partOne.Title != "Part One" || !partOne.Bold || partOne.PageFrom != 1 {
		t.Errorf("root[1] = %+v", partOne)
	}
	if len(partOne.Kids) != 2 {
		t.Fatalf("Part One has %d kids, want 2 (empty title skipped)", len(partOne.Kids))
	}
	if partOne.Kids[0].Title != "Setup" || partOne.Kids[0].PageFrom != 2 {
		t.Errorf("kid[0] = %+v", partOne.Kids[0])
	}
	if partOne.Kids[1].Title != "Usage" || partOne.Kids[1].PageFrom != 5 {
		t.Errorf("kid[1] = %+v, want page clamped to 5", partOne.Kids[1])
	}

	partTwo := got[2]
	if partTwo.Title != "Part Two" || partTwo.PageFrom != 4 {
		t.Errorf("root[2] = %+v", partTwo)
	}
	if len(partTwo.Kids) != 1 || partTwo.Kids[0].Title != "Glossary" {
		t.Errorf("Part Two kids = %+v", partTwo.Kids)
	}
}

func TestBuildOutline_Empty(t *testing.T) {
	t.Parallel()

	if got := buildOutline(nil, 3); len(got) != 0 {
		t.Errorf("buildOutline(nil) = %+v, want empty", got)
	}
	if got := buildOutline([]Heading{{Title: "", Level: 1}}, 3); len(got) != 0 {
		t.Errorf("untitled headings should be skipped, got %+v", got)
	}
}

// ---------------------------------------------------------------------------
// TestEmbedOutline - Error path
// ---------------------------------------------------------------------------

func TestEmbedOutline_NotAPDF(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "fake.pdf")
	if err := os.WriteFile(path, []byte("not a pdf"), 0o600); err != nil {
		t.Fatal(err)
	}

	err := embedOutline(path, []Heading{{Title: "A", Level: 1}})
	if !errors.Is(err, ErrOutline) {
		t.Errorf("error = %v, want ErrOutline", err)
	}
}

func TestPageCount_Missing(t *testing.T) {
	t.Parallel()

	if _, err := pageCount(filepath.Join(t.TempDir(), "nope.pdf")); err == nil {
		t.Error("expected error for missing file")
	}
}
