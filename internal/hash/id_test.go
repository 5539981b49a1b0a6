package hash

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestID_EntryNames(t *testing.T) {
	tests := []struct {
		name string
		id   uint64
	}{
		{"korea.dat", 0x12b54b3accf626cb},
		{"japan.dat", 0x1f5145ffc6340101},
		{"english.dat", 0x4e3670c9bef33800},
		{"thailand.dat", 0x01e1d14173e28ebb},
		{"Ball.iff", 0x9abcb074a1a36637},
		{"data/korea/Ball.iff", 0x6dc7c77040462753},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.id, ID(tt.name))
		})
	}
}

// Bundle lookups are byte-exact, so names differing only in case get
// different IDs.
func TestID_CaseSensitive(t *testing.T) {
	require.Equal(t, uint64(0x3cb5bc7a62f263c6), ID("KOREA.DAT"))
	require.NotEqual(t, ID("korea.dat"), ID("KOREA.DAT"))
}

func TestID_Empty(t *testing.T) {
	require.Equal(t, uint64(0xef46db3751d8e999), ID(""))
}

func TestChecksum(t *testing.T) {
	require.Equal(t, uint32(0x51d8e999), Checksum(nil))
	require.Equal(t, uint32(0xdb678139), Checksum([]byte("test")))

	payload := []byte("\xbe\xc8\xb3\xe7\x00hello\x00")
	require.Equal(t, uint32(ID(string(payload))), Checksum(payload)) //nolint:gosec
}

func BenchmarkID(b *testing.B) {
	names := make([]string, 64)
	for i := range names {
		names[i] = fmt.Sprintf("data/region_%02d/Ball.iff", i)
	}

	b.ResetTimer()
	for i := 0; b.Loop(); i++ {
		ID(names[i%len(names)])
	}
}
