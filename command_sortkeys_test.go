package main

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

// Test sorting of rendered key lists
func TestRunSortKeys(t *testing.T) {
	input := "seq10/1\nseq2/2\n\nseq2/1\nseq2/1\nseq1/0\n"

	tests := []struct {
		name        string
		naturalSort bool
		unique      bool
		want        []string
	}{
		{
			name: "Canonical order",
			want: []string{"seq1/0", "seq10/1", "seq2/1", "seq2/1", "seq2/2"},
		},
		{
			name:        "Natural order, unique",
			naturalSort: true,
			unique:      true,
			want:        []string{"seq1/0", "seq2/1", "seq2/2", "seq10/1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			inFile := filepath.Join(dir, "keys.txt")
			if err := os.WriteFile(inFile, []byte(input), 0644); err != nil {
				t.Fatal(err)
			}

			outFile := filepath.Join(dir, "sorted.txt")
			if err := runSortKeys(inFile, outFile, tt.naturalSort, tt.unique); err != nil {
				t.Fatalf("runSortKeys() error = %v", err)
			}

			got := readLines(t, outFile)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("runSortKeys() wrote %v, want %v", got, tt.want)
			}
		})
	}
}

// A malformed line is an error naming the line number
func TestRunSortKeysMalformed(t *testing.T) {
	dir := t.TempDir()
	inFile := filepath.Join(dir, "keys.txt")
	if err := os.WriteFile(inFile, []byte("seq1/1\nseq2/2\nnot-a-key\n"), 0644); err != nil {
		t.Fatal(err)
	}

	err := runSortKeys(inFile, filepath.Join(dir, "sorted.txt"), false, false)
	if err == nil {
		t.Fatal("runSortKeys() with malformed input, want error")
	}
	if !strings.Contains(err.Error(), "line 3") {
		t.Errorf("error %q does not name the offending line", err.Error())
	}
}
