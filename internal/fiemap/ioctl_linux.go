//go:build linux

package fiemap

import (
	"os"
	"unsafe"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"

	"github.com/deploymenttheory/go-fiemap/internal/types"
)

// ioctlSource issues FS_IOC_FIEMAP against a single open file descriptor.
// One contiguous buffer holds the fiemap header followed by the extent
// array, exactly as the kernel expects; the buffer is reused and re-zeroed
// for every query.
type ioctlSource struct {
	f *os.File
	// buf is word-sized so the kernel structs inside it are 8-byte
	// aligned, which a plain byte slice would not guarantee.
	buf []uint64
}

func newIoctlSource(f *os.File) *ioctlSource {
	return &ioctlSource{f: f}
}

// QueryExtents implements ExtentSource over the real ioctl.
func (s *ioctlSource) QueryExtents(start, length uint64, maxExtents uint32, sync bool) ([]Extent, error) {
	words := (types.SizeofRawFiemap + int(maxExtents)*types.SizeofRawFiemapExtent) / 8
	if cap(s.buf) < words {
		s.buf = make([]uint64, words)
	}
	buf := s.buf[:words]
	for i := range buf {
		buf[i] = 0
	}

	hdr := (*types.RawFiemap)(unsafe.Pointer(&buf[0]))
	hdr.Start = start
	hdr.Length = length
	hdr.ExtentCount = maxExtents
	if sync {
		hdr.Flags = types.FiemapFlagSync
	}

	_, _, errno := unix.Syscall(unix.SYS_IOCTL, s.f.Fd(), types.FSIocFiemap, uintptr(unsafe.Pointer(&buf[0])))
	if errno != 0 {
		return nil, errors.Wrapf(errno, "ioctl FS_IOC_FIEMAP on %s", s.f.Name())
	}

	n := hdr.MappedExtents
	if n > maxExtents {
		// The kernel never writes past the capacity we declared; a larger
		// count here would mean garbage output.
		n = maxExtents
	}

	raw := unsafe.Slice(
		(*types.RawFiemapExtent)(unsafe.Pointer(uintptr(unsafe.Pointer(&buf[0]))+uintptr(types.SizeofRawFiemap))),
		int(n),
	)

	out := make([]Extent, n)
	for i := range raw {
		out[i] = Extent{
			Logical:  raw[i].Logical,
			Physical: raw[i].Physical,
			Length:   raw[i].Length,
			Flags:    raw[i].Flags,
		}
	}
	return out, nil
}
