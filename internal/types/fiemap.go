// Package types implements the on-wire data structures for the Linux
// FIEMAP ioctl interface.
// This package is based on include/uapi/linux/fiemap.h and the kernel
// documentation at Documentation/filesystems/fiemap.rst.
package types

import (
	"fmt"
	"unsafe"
)

// FSIocFiemap is the FS_IOC_FIEMAP ioctl request number.
// Computed as _IOWR('f', 11, struct fiemap) in <linux/fs.h>.
const FSIocFiemap = 0xC020660B

// FiemapMaxOffset requests mapping to the end of the file regardless of
// its size.
const FiemapMaxOffset = ^uint64(0)

// Fiemap request flags (fm_flags).
const (
	// FiemapFlagSync syncs the file data before mapping.
	FiemapFlagSync = 0x0001

	// FiemapFlagXattr maps the extended attribute tree instead of the
	// file data.
	FiemapFlagXattr = 0x0002

	// FiemapFlagCache requests caching of the extents.
	FiemapFlagCache = 0x0004
)

// Fiemap extent flags (fe_flags).
const (
	// FiemapExtentLast marks the last extent in a file. Its absence on
	// the final extent of a response means the filesystem has more
	// extents to report.
	FiemapExtentLast = 0x0001

	// FiemapExtentUnknown marks an extent whose data location is unknown.
	FiemapExtentUnknown = 0x0002

	// FiemapExtentDelalloc marks an extent whose location is still
	// pending. Implies FiemapExtentUnknown.
	FiemapExtentDelalloc = 0x0004

	// FiemapExtentEncoded marks data that cannot be read while the
	// filesystem is unmounted.
	FiemapExtentEncoded = 0x0008

	// FiemapExtentDataEncrypted marks data encrypted by the filesystem.
	FiemapExtentDataEncrypted = 0x0080

	// FiemapExtentNotAligned marks extent offsets that may not be block
	// aligned.
	FiemapExtentNotAligned = 0x0100

	// FiemapExtentDataInline marks data mixed with metadata. Implies
	// FiemapExtentNotAligned.
	FiemapExtentDataInline = 0x0200

	// FiemapExtentDataTail marks multiple files packed into one block.
	// Implies FiemapExtentNotAligned.
	FiemapExtentDataTail = 0x0400

	// FiemapExtentUnwritten marks space that is allocated but contains
	// no data yet (reads as zero).
	FiemapExtentUnwritten = 0x0800

	// FiemapExtentMerged marks extents merged together for a filesystem
	// without native extent support.
	FiemapExtentMerged = 0x1000

	// FiemapExtentShared marks space shared with other files.
	FiemapExtentShared = 0x2000
)

// RawFiemap mirrors struct fiemap from <linux/fiemap.h>. The kernel reads
// the request fields and writes MappedExtents, followed in memory by an
// array of RawFiemapExtent. Field order, widths, and the trailing reserved
// word are fixed by the kernel ABI and must not change.
type RawFiemap struct {
	// Start is the logical offset (inclusive) at which to start mapping. (in)
	Start uint64
	// Length is the logical length of the mapping being requested. (in)
	Length uint64
	// Flags holds FiemapFlag* values for the request. (in/out)
	Flags uint32
	// MappedExtents is the number of extents the kernel mapped. (out)
	MappedExtents uint32
	// ExtentCount is the capacity of the extent array that follows. (in)
	ExtentCount uint32

	reserved uint32
}

// RawFiemapExtent mirrors struct fiemap_extent from <linux/fiemap.h>.
// The reserved fields pad the struct to the 56 bytes the kernel writes.
type RawFiemapExtent struct {
	// Logical is the byte offset of the extent within the file.
	Logical uint64
	// Physical is the byte offset of the extent on the underlying device.
	Physical uint64
	// Length is the extent length in bytes.
	Length uint64

	reserved64 [2]uint64

	// Flags holds FiemapExtent* values for this extent.
	Flags uint32

	reserved [3]uint32
}

// Struct sizes fixed by the kernel ABI.
const (
	SizeofRawFiemap       = int(unsafe.Sizeof(RawFiemap{}))       // 32
	SizeofRawFiemapExtent = int(unsafe.Sizeof(RawFiemapExtent{})) // 56
)

// extentFlagNames maps each extent flag to the short name filefrag uses.
var extentFlagNames = []struct {
	flag uint32
	name string
}{
	{FiemapExtentLast, "last"},
	{FiemapExtentUnknown, "unknown"},
	{FiemapExtentDelalloc, "delalloc"},
	{FiemapExtentEncoded, "encoded"},
	{FiemapExtentDataEncrypted, "data_encrypted"},
	{FiemapExtentNotAligned, "not_aligned"},
	{FiemapExtentDataInline, "data_inline"},
	{FiemapExtentDataTail, "data_tail"},
	{FiemapExtentUnwritten, "unwritten"},
	{FiemapExtentMerged, "merged"},
	{FiemapExtentShared, "shared"},
}

// ExtentFlagNames renders an extent flag set as the short names filefrag
// prints, in flag-value order. Undocumented bits are kept as a hex literal
// so nothing is silently dropped.
func ExtentFlagNames(flags uint32) []string {
	var names []string
	for _, fn := range extentFlagNames {
		if flags&fn.flag != 0 {
			names = append(names, fn.name)
		}
		flags &^= fn.flag
	}
	if flags != 0 {
		names = append(names, fmt.Sprintf("0x%x", flags))
	}
	return names
}
