package pool

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatalf("failed to write fixture %s: %v", name, err)
		}
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		files         map[string]string
		subdirs       []string
		expectedNames []string
	}{
		"Filters By Extension": {
			files: map[string]string{
				"a.png":      "aaa",
				"b.png":      "bbb",
				"notes.txt":  "ignored",
				"thumb.jpeg": "ignored",
			},
			expectedNames: []string{"a.png", "b.png"},
		},
		"Extension Match Is Case Insensitive": {
			files: map[string]string{
				"upper.PNG": "upper",
				"mixed.Png": "mixed",
				"plain.png": "plain",
			},
			expectedNames: []string{"mixed.Png", "plain.png", "upper.PNG"},
		},
		"Skips Subdirectories": {
			files: map[string]string{
				"only.png": "only",
			},
			subdirs:       []string{"nested.png"},
			expectedNames: []string{"only.png"},
		},
		"Empty Pool": {
			files:         map[string]string{},
			expectedNames: nil,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			writeFiles(t, dir, test.files)
			for _, sub := range test.subdirs {
				if err := os.Mkdir(filepath.Join(dir, sub), 0755); err != nil {
					t.Fatalf("failed to create subdir: %v", err)
				}
			}

			images, err := Load(dir, ".png")
			if err != nil {
				t.Fatalf("Load returned unexpected error: %v", err)
			}

			names := make(map[string]bool, len(images))
			for _, img := range images {
				names[img.Name] = true
				if len(img.Hash) != 64 {
					t.Errorf("image %s has malformed hash %q", img.Name, img.Hash)
				}
			}
			if len(images) != len(test.expectedNames) {
				t.Fatalf("expected %d images, got %d", len(test.expectedNames), len(images))
			}
			for _, want := range test.expectedNames {
				if !names[want] {
					t.Errorf("expected %s in catalog, not found", want)
				}
			}
		})
	}
}

func TestLoadIdenticalContentSharesHash(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"copy1.png": "same bytes",
		"copy2.png": "same bytes",
		"other.png": "different bytes",
	})

	images, err := Load(dir, ".png")
	if err != nil {
		t.Fatalf("Load returned unexpected error: %v", err)
	}

	hashes := make(map[string]string)
	for _, img := range images {
		hashes[img.Name] = img.Hash
	}

	if hashes["copy1.png"] != hashes["copy2.png"] {
		t.Errorf("identical contents got different hashes: %s vs %s", hashes["copy1.png"], hashes["copy2.png"])
	}
	if hashes["copy1.png"] == hashes["other.png"] {
		t.Errorf("distinct contents got the same hash %s", hashes["copy1.png"])
	}
}

func TestLoadMissingDirectory(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "nope"), ".png")
	if err == nil {
		t.Fatal("expected an error for a missing pool directory, got nil")
	}
}
