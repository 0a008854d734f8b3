package rom

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTemp(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.rom")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	image := []byte{0xC3, 0x00, 0x10, 0xFF}
	path := writeTemp(t, image)

	memory := make([]byte, 0x10000)
	n, err := Load(path, memory)
	if err != nil {
		t.Fatal(err)
	}
	if n != len(image) {
		t.Errorf("expected %d bytes loaded, got %d", len(image), n)
	}
	for i, b := range image {
		if memory[i] != b {
			t.Errorf("memory[%d]: expected 0x%02X, got 0x%02X", i, b, memory[i])
		}
	}
	if memory[len(image)] != 0 {
		t.Errorf("memory past the image must stay zeroed")
	}
}

func TestLoadMissingFile(t *testing.T) {
	memory := make([]byte, 0x10000)
	if _, err := Load(filepath.Join(t.TempDir(), "nope.rom"), memory); err == nil {
		t.Errorf("expected an error for a missing file")
	}
}

func TestLoadEmptyFile(t *testing.T) {
	path := writeTemp(t, nil)
	memory := make([]byte, 0x10000)
	if _, err := Load(path, memory); err == nil {
		t.Errorf("expected an error for an empty file")
	}
}

func TestLoadOversizedImage(t *testing.T) {
	path := writeTemp(t, make([]byte, 0x10001))
	memory := make([]byte, 0x10000)
	if _, err := Load(path, memory); err == nil {
		t.Errorf("expected an error for an image larger than the address space")
	}
}
