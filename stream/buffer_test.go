package stream

import (
	"encoding/binary"
	"testing"
)

const format = "\ngot\n%v\nwanted\n%v"

func makeChunk(body []byte, chunkType uint16, split bool) []byte {
	size := uint32(len(body))
	if split {
		size |= splitSizeBit
	}
	header := make([]byte, chunkHeaderSize)
	binary.LittleEndian.PutUint32(header[0:4], size)
	binary.LittleEndian.PutUint16(header[4:6], chunkType)
	return append(header, body...)
}

// TestReassembleSplitChunksMergesSplitPair checks the core §4.G.1
// algorithm: a chunk flagged split has the next chunk's body appended
// directly after its own, the flag is cleared, and the result is one
// chunk instead of two.
func TestReassembleSplitChunksMergesSplitPair(t *testing.T) {
	data := append(makeChunk([]byte("AAA"), 0x0010, true), makeChunk([]byte("BB"), 0x0099, false)...)

	out := ReassembleSplitChunks(data)

	size := binary.LittleEndian.Uint32(out[0:4])
	typ := binary.LittleEndian.Uint16(out[4:6])
	body := out[chunkHeaderSize : chunkHeaderSize+int(size)]

	if size&splitSizeBit != 0 {
		t.Errorf("expected the split bit to be cleared after reassembly")
	}
	if got, want := string(body), "AAABB"; got != want {
		t.Errorf(format, got, want)
	}
	if got, want := typ, uint16(0x0010); got != want {
		t.Errorf(format, got, want)
	}
	if got, want := len(out), chunkHeaderSize+5; got != want {
		t.Errorf(format, got, want)
	}
}

// TestReassembleSplitChunksLeavesUnsplitChunksAlone checks that ordinary,
// non-split chunks pass through unchanged and in order.
func TestReassembleSplitChunksLeavesUnsplitChunksAlone(t *testing.T) {
	data := append(makeChunk([]byte("AAA"), 0x0010, false), makeChunk([]byte("BB"), 0x0099, false)...)

	out := ReassembleSplitChunks(data)
	if got, want := len(out), len(data); got != want {
		t.Errorf(format, got, want)
	}
	if string(out) != string(data) {
		t.Errorf("expected unsplit input to reassemble to itself")
	}
}

// TestReassembleSplitChunksChainsThreeWay checks that a split chain of
// more than two chunks (first two both flagged split) all merge into one.
func TestReassembleSplitChunksChainsThreeWay(t *testing.T) {
	data := makeChunk([]byte("A"), 0x10, true)
	data = append(data, makeChunk([]byte("B"), 0x10, true)...)
	data = append(data, makeChunk([]byte("C"), 0x10, false)...)

	out := ReassembleSplitChunks(data)
	size := binary.LittleEndian.Uint32(out[0:4])
	body := out[chunkHeaderSize : chunkHeaderSize+int(size)]
	if got, want := string(body), "ABC"; got != want {
		t.Errorf(format, got, want)
	}
	if got, want := len(out), chunkHeaderSize+3; got != want {
		t.Errorf(format, got, want)
	}
}
