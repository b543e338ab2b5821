package emulator

import (
	"encoding/binary"
	"io"
	"os"
)

// LoadImage reads a big-endian program image into memory: the first word
// is the load origin, every following word is stored contiguously from
// there. Later images may overwrite earlier ones; the last write wins.
// An image that would write past address 0xFFFF fails here, before
// execution ever starts.
func (emu *Emulator) LoadImage(reader io.Reader) (err error) {
	scratch := make([]byte, 2)

	if _, err = io.ReadFull(reader, scratch); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			err = ErrImageTruncated
		}
		return
	}

	addr := uint32(binary.BigEndian.Uint16(scratch))

	for {
		_, err = io.ReadFull(reader, scratch)
		if err == io.EOF {
			err = nil
			return
		} else if err == io.ErrUnexpectedEOF {
			err = ErrImageTruncated
			return
		} else if err != nil {
			return
		}

		if addr > 0xFFFF {
			err = ErrImageOverflow
			return
		}

		emu.Memory.Write(uint16(addr), binary.BigEndian.Uint16(scratch))
		addr++
	}
}

// LoadImageFile loads the program image at path, tagging any failure
// with the path.
func (emu *Emulator) LoadImageFile(path string) (err error) {
	file, err := os.Open(path)
	if err != nil {
		return &ErrImage{Path: path, Err: err}
	}
	defer file.Close()

	if err = emu.LoadImage(file); err != nil {
		err = &ErrImage{Path: path, Err: err}
	}

	return
}
