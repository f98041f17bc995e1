package scanner

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatal(err)
	}
}

func TestWalk(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{
		"b.mp4",
		"a.MP4",
		"notes.txt",
		"2024/sunday.mp4",
		".hidden.mp4",
		".cache/x.mp4",
	} {
		touch(t, filepath.Join(root, name))
	}

	got, err := Walk(root, []string{".mp4"})
	if err != nil {
		t.Fatalf("Walk() error = %v", err)
	}

	want := []string{
		filepath.Join(root, "2024", "sunday.mp4"),
		filepath.Join(root, "a.MP4"),
		filepath.Join(root, "b.mp4"),
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Walk() = %v, want %v", got, want)
	}

	all, err := Walk(root, nil)
	if err != nil {
		t.Fatalf("Walk() error = %v", err)
	}
	if len(all) != 4 {
		t.Errorf("Walk(nil) returned %d files, want 4: %v", len(all), all)
	}
}

func TestWalkMissingRoot(t *testing.T) {
	if _, err := Walk(filepath.Join(t.TempDir(), "missing"), nil); err == nil {
		t.Error("Walk() should fail for missing root")
	}
}

func TestHasExtension(t *testing.T) {
	tests := []struct {
		path string
		exts []string
		want bool
	}{
		{"a.mp4", []string{".mp4"}, true},
		{"a.MP4", []string{".mp4"}, true},
		{"a.mp3", []string{".MP3", ".mp4"}, true},
		{"a.wav", []string{".mp4"}, false},
		{"noext", []string{".mp4"}, false},
		{"anything", nil, true},
	}
	for _, tt := range tests {
		if got := HasExtension(tt.path, tt.exts); got != tt.want {
			t.Errorf("HasExtension(%q, %v) = %v, want %v", tt.path, tt.exts, got, tt.want)
		}
	}
}
