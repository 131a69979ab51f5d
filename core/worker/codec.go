package worker

import (
	"encoding/binary"
	"fmt"
	"io"
)

// ResultSize is the size of a result record on the wire.
const ResultSize = 8

// WriteResult writes v as a single native-endian IEEE-754 double.
func WriteResult(w io.Writer, v float64) error {
	return binary.Write(w, binary.NativeEndian, v)
}

// ReadResult reads exactly one result record. A worker that exits without
// writing produces io.EOF, a partial write io.ErrUnexpectedEOF.
func ReadResult(r io.Reader) (float64, error) {
	var v float64
	if err := binary.Read(r, binary.NativeEndian, &v); err != nil {
		return 0, fmt.Errorf("read: %w", err)
	}
	return v, nil
}
