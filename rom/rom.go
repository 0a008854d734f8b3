package rom

import (
	"fmt"
	"os"
)

// Load reads a raw program image and copies it verbatim into memory at
// address 0. There is no header, relocation, or checksum; the only bound
// is the address space itself. Returns the number of bytes loaded.
func Load(filename string, memory []byte) (int, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return 0, fmt.Errorf("unable to read ROM file: %w", err)
	}
	if len(data) == 0 {
		return 0, fmt.Errorf("ROM file %s is empty", filename)
	}
	if len(data) > len(memory) {
		return 0, fmt.Errorf("ROM file %s is %d bytes, larger than the %d-byte address space",
			filename, len(data), len(memory))
	}
	copy(memory, data)
	return len(data), nil
}
