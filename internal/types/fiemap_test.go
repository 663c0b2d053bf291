package types

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

// The kernel reads and writes these structs in place, so their sizes and
// field offsets must match <linux/fiemap.h> exactly.
func TestRawStructLayout(t *testing.T) {
	assert.Equal(t, 32, SizeofRawFiemap)
	assert.Equal(t, 56, SizeofRawFiemapExtent)

	var fm RawFiemap
	assert.Equal(t, uintptr(0), unsafe.Offsetof(fm.Start))
	assert.Equal(t, uintptr(8), unsafe.Offsetof(fm.Length))
	assert.Equal(t, uintptr(16), unsafe.Offsetof(fm.Flags))
	assert.Equal(t, uintptr(20), unsafe.Offsetof(fm.MappedExtents))
	assert.Equal(t, uintptr(24), unsafe.Offsetof(fm.ExtentCount))

	var fe RawFiemapExtent
	assert.Equal(t, uintptr(0), unsafe.Offsetof(fe.Logical))
	assert.Equal(t, uintptr(8), unsafe.Offsetof(fe.Physical))
	assert.Equal(t, uintptr(16), unsafe.Offsetof(fe.Length))
	assert.Equal(t, uintptr(40), unsafe.Offsetof(fe.Flags))
}

func TestFSIocFiemapValue(t *testing.T) {
	// _IOWR('f', 11, struct fiemap) with a 32-byte struct.
	assert.Equal(t, uint32(0xC020660B), uint32(FSIocFiemap))
}

func TestExtentFlagNames(t *testing.T) {
	tests := []struct {
		name  string
		flags uint32
		want  []string
	}{
		{
			name:  "no flags",
			flags: 0,
			want:  nil,
		},
		{
			name:  "last only",
			flags: FiemapExtentLast,
			want:  []string{"last"},
		},
		{
			name:  "last and unwritten",
			flags: FiemapExtentLast | FiemapExtentUnwritten,
			want:  []string{"last", "unwritten"},
		},
		{
			name:  "shared",
			flags: FiemapExtentShared,
			want:  []string{"shared"},
		},
		{
			name:  "undocumented bit kept as hex",
			flags: FiemapExtentLast | 0x40000,
			want:  []string{"last", "0x40000"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtentFlagNames(tt.flags))
		})
	}
}
