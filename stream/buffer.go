package stream

import "encoding/binary"

// splitSizeBit marks a chunk's Size field as carrying the "more of this
// chunk follows in the next chunk record" flag. The wire format doesn't
// dedicate a separate field to it, so it rides in the size field's unused
// top bit the way the rest of the ChunkHeader.Size range never approaches
// (a real chunk body is always far smaller than 2^31 bytes).
const splitSizeBit = uint32(1) << 31

// Buffer is a contiguous, already-reassembled run of SI chunk bytes: no
// chunk in it has its split bit set, so every chunk's body is readable in
// one slice rather than needing to be stitched together from more than
// one record.
type Buffer struct {
	Data []byte
}

// Len reports the buffer's size in bytes, satisfying action.Buffer.
func (b *Buffer) Len() int { return len(b.Data) }

// DWord reads the little-endian 32-bit word at byte offset.
func (b *Buffer) DWord(offset int) uint32 { return binary.LittleEndian.Uint32(b.Data[offset:]) }

// LengthInDWords reports how many complete 32-bit words fit in the buffer.
func (b *Buffer) LengthInDWords() uint32 { return uint32(len(b.Data) / 4) }

// ReassembleSplitChunks scans data forward chunk by chunk. Whenever a
// chunk's split bit is set, the next chunk's body is spliced directly
// after the current chunk's body (growing it), the split bit is cleared,
// and scanning resumes after the consumed pair — producing a buffer with
// no split chunks left in it. Malformed input (a chunk claiming a size
// that runs past the end of data) stops reassembly at that point rather
// than panicking; the prefix reassembled so far is still returned.
func ReassembleSplitChunks(data []byte) []byte {
	out := make([]byte, 0, len(data))
	i := 0
	for i+chunkHeaderSize <= len(data) {
		rawSize := binary.LittleEndian.Uint32(data[i : i+4])
		split := rawSize&splitSizeBit != 0
		size := int(rawSize &^ splitSizeBit)
		chunkType := binary.LittleEndian.Uint16(data[i+4 : i+6])
		if i+chunkHeaderSize+size > len(data) {
			out = append(out, data[i:]...)
			break
		}
		body := data[i+chunkHeaderSize : i+chunkHeaderSize+size]
		next := i + chunkHeaderSize + size

		for split && next+chunkHeaderSize <= len(data) {
			nextRawSize := binary.LittleEndian.Uint32(data[next : next+4])
			nextSplit := nextRawSize&splitSizeBit != 0
			nextSize := int(nextRawSize &^ splitSizeBit)
			if next+chunkHeaderSize+nextSize > len(data) {
				break
			}
			body = append(body, data[next+chunkHeaderSize:next+chunkHeaderSize+nextSize]...)
			next += chunkHeaderSize + nextSize
			split = nextSplit
		}

		header := make([]byte, chunkHeaderSize)
		binary.LittleEndian.PutUint32(header[0:4], uint32(len(body)))
		binary.LittleEndian.PutUint16(header[4:6], chunkType)
		out = append(out, header...)
		out = append(out, body...)
		i = next
	}
	return out
}
