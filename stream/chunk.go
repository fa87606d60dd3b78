// Package stream implements the two ways scene data gets fed from an SI
// disk image into the presenter pipeline: loading a whole file into one
// contiguous buffer (for small, frequently-reused resources), or reading
// it incrementally from a background worker (for large media that
// shouldn't stall the frame loop).
package stream

import (
	"encoding/binary"

	"github.com/legoisland/sceneengine/svc"
)

// ChunkType identifies the payload format of a chunk body, per §6.1.
type ChunkType uint16

const (
	ChunkPalette    ChunkType = 0x0004
	ChunkDeltaWord  ChunkType = 0x0007
	ChunkPalette64  ChunkType = 0x000B
	ChunkDeltaByte  ChunkType = 0x000C
	ChunkBlackFrame ChunkType = 0x000D
	ChunkRLE        ChunkType = 0x000F
	ChunkRaw        ChunkType = 0x0010
	ChunkThumbnail  ChunkType = 0x0012
	ChunkFrame      ChunkType = 0xF1FA
)

// chunkHeaderSize is the on-disk size of a ChunkHeader: u32 size + u16 type.
const chunkHeaderSize = 6

// ChunkHeader is the envelope every chunk in an SI file begins with.
type ChunkHeader struct {
	Size uint32
	Type ChunkType
}

func parseChunkHeader(data []byte) (ChunkHeader, bool) {
	if len(data) < chunkHeaderSize {
		return ChunkHeader{}, false
	}
	return ChunkHeader{
		Size: binary.LittleEndian.Uint32(data[0:4]),
		Type: ChunkType(binary.LittleEndian.Uint16(data[4:6])),
	}, true
}

// FileHeader extends ChunkHeader with the stream-wide metadata found once
// at the start of an SI media object: frame count, frame dimensions, pixel
// depth, flags, and nominal playback speed.
type FileHeader struct {
	ChunkHeader
	Frames   uint16
	Width    uint16
	Height   uint16
	DepthBPP uint16
	Flags    uint16
	SpeedMS  uint32
}

const fileHeaderSize = chunkHeaderSize + 2 + 2 + 2 + 2 + 2 + 4

// ParseFileHeader reads a FileHeader from the start of data.
func ParseFileHeader(data []byte) (FileHeader, *svc.Error) {
	ch, ok := parseChunkHeader(data)
	if !ok || len(data) < fileHeaderSize {
		return FileHeader{}, svc.NewError(svc.InvalidParameters, "stream: truncated file header")
	}
	return FileHeader{
		ChunkHeader: ch,
		Frames:      binary.LittleEndian.Uint16(data[6:8]),
		Width:       binary.LittleEndian.Uint16(data[8:10]),
		Height:      binary.LittleEndian.Uint16(data[10:12]),
		DepthBPP:    binary.LittleEndian.Uint16(data[12:14]),
		Flags:       binary.LittleEndian.Uint16(data[14:16]),
		SpeedMS:     binary.LittleEndian.Uint32(data[16:20]),
	}, nil
}

// FrameHeader extends ChunkHeader with the per-frame metadata preceding a
// frame's subchunks.
type FrameHeader struct {
	ChunkHeader
	Subchunks      uint16
	DelayMS        uint16
	Reserved       uint16
	WidthOverride  uint16
	HeightOverride uint16
}

const frameHeaderSize = chunkHeaderSize + 2 + 2 + 2 + 2 + 2

// ParseFrameHeader reads a FrameHeader from the start of data.
func ParseFrameHeader(data []byte) (FrameHeader, *svc.Error) {
	ch, ok := parseChunkHeader(data)
	if !ok || len(data) < frameHeaderSize {
		return FrameHeader{}, svc.NewError(svc.InvalidParameters, "stream: truncated frame header")
	}
	return FrameHeader{
		ChunkHeader:    ch,
		Subchunks:      binary.LittleEndian.Uint16(data[6:8]),
		DelayMS:        binary.LittleEndian.Uint16(data[8:10]),
		Reserved:       binary.LittleEndian.Uint16(data[10:12]),
		WidthOverride:  binary.LittleEndian.Uint16(data[12:14]),
		HeightOverride: binary.LittleEndian.Uint16(data[14:16]),
	}, nil
}
