package vm

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/waxwing-systems/lc3vm/internal/log"
)

// ErrObjectLoader is the sentinel wrapped by every error the loader returns.
var ErrObjectLoader = errors.New("loader error")

// ObjectCode is a parsed LC-3 object file: an origin address and the words
// to place starting there.
type ObjectCode struct {
	Orig Word
	Code []Word
}

// read parses the standard LC-3 object format out of b: a big-endian origin
// word followed by big-endian data words. It truncates at 0x10000 - origin
// words, since memory cannot hold more than that starting at origin; any
// object bytes beyond that bound are silently dropped rather than treated
// as an error.
func (obj *ObjectCode) read(b []byte) error {
	in := bytes.NewReader(b)

	if err := binary.Read(in, binary.BigEndian, &obj.Orig); err != nil {
		return fmt.Errorf("%w: %s", ErrObjectLoader, err)
	}

	max := int(uint32(0x10000) - uint32(obj.Orig))
	avail := in.Len() / 2

	n := avail
	if n > max {
		n = max
	}

	obj.Code = make([]Word, n)

	if n == 0 {
		return nil
	}

	if err := binary.Read(in, binary.BigEndian, obj.Code); err != nil && err != io.EOF {
		return fmt.Errorf("%w: %s", ErrObjectLoader, err)
	}

	return nil
}

// Loader copies parsed object code into a machine's memory.
type Loader struct {
	vm  *LC3
	log *log.Logger
}

// NewLoader returns a loader that writes into vm's memory.
func NewLoader(vm *LC3) *Loader {
	return &Loader{vm: vm, log: log.DefaultLogger()}
}

// Load parses b as an object file and stores its words into memory starting
// at the embedded origin, later words overwriting earlier ones at
// overlapping addresses when Load is called more than once. It returns the
// origin address and the number of words stored.
func (l *Loader) Load(b []byte) (Word, int, error) {
	var obj ObjectCode

	if err := obj.read(b); err != nil {
		return 0, 0, err
	}

	addr := obj.Orig

	for _, word := range obj.Code {
		l.vm.Mem.Write(addr, word)
		addr++
	}

	l.log.Debug("loaded image", log.String("origin", obj.Orig.String()), log.Any("words", len(obj.Code)))

	return obj.Orig, len(obj.Code), nil
}
