package vm

import (
	"encoding/binary"
	"testing"
)

func object(orig Word, words ...Word) []byte {
	buf := make([]byte, 0, 2*(len(words)+1))
	buf = binary.BigEndian.AppendUint16(buf, uint16(orig))

	for _, w := range words {
		buf = binary.BigEndian.AppendUint16(buf, uint16(w))
	}

	return buf
}

func TestLoaderRoundTrip(t *testing.T) {
	t.Parallel()

	machine := New()
	loader := NewLoader(machine)

	orig, n, err := loader.Load(object(0x3000, 0x1025, 0xf025, 0x0048))
	if err != nil {
		t.Fatalf("Load: %s", err)
	}

	if orig != 0x3000 || n != 3 {
		t.Fatalf("Load: got (%s, %d), want (0x3000, 3)", orig, n)
	}

	want := []Word{0x1025, 0xf025, 0x0048}
	for k, w := range want {
		if got := machine.Mem.Read(orig + Word(k)); got != w {
			t.Errorf("mem[%s] = %s, want %s", (orig + Word(k)).String(), got, w)
		}
	}
}

func TestLoaderLaterImageOverwrites(t *testing.T) {
	t.Parallel()

	machine := New()
	loader := NewLoader(machine)

	if _, _, err := loader.Load(object(0x3000, 0x1111, 0x2222)); err != nil {
		t.Fatalf("Load: %s", err)
	}

	if _, _, err := loader.Load(object(0x3000, 0x9999)); err != nil {
		t.Fatalf("Load: %s", err)
	}

	if got := machine.Mem.Read(0x3000); got != 0x9999 {
		t.Errorf("mem[0x3000] = %s, want 0x9999 (later image should overwrite)", got)
	}

	if got := machine.Mem.Read(0x3001); got != 0x2222 {
		t.Errorf("mem[0x3001] = %s, want 0x2222 (untouched by second image)", got)
	}
}

func TestLoaderTruncatesAtAddressSpaceEnd(t *testing.T) {
	t.Parallel()

	machine := New()
	loader := NewLoader(machine)

	orig := Word(0xfffe)
	_, n, err := loader.Load(object(orig, 0x1111, 0x2222, 0x3333))
	if err != nil {
		t.Fatalf("Load: %s", err)
	}

	if n != 2 {
		t.Fatalf("Load near top of address space stored %d words, want 2 (truncated at 0x10000)", n)
	}
}

func TestLoaderEmptyImageIsNoop(t *testing.T) {
	t.Parallel()

	machine := New()
	loader := NewLoader(machine)

	orig, n, err := loader.Load(object(0x3000))
	if err != nil {
		t.Fatalf("Load: %s", err)
	}

	if orig != 0x3000 || n != 0 {
		t.Fatalf("Load: got (%s, %d), want (0x3000, 0)", orig, n)
	}
}
