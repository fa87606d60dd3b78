package stream

import (
	"os"

	"github.com/legoisland/sceneengine/svc"
)

// RAMProvider loads an entire SI file into one allocation up front and
// reassembles any split chunks once, trading load-time latency for
// branch-free reads afterward — matching MxRAMStreamProvider.
type RAMProvider struct {
	buf *Buffer
}

// NewRAMProvider loads path in full and reassembles it.
func NewRAMProvider(path string) (*RAMProvider, *svc.Error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, svc.Wrap(err, svc.ResourceAllocation, "stream: loading "+path)
	}
	return &RAMProvider{buf: &Buffer{Data: ReassembleSplitChunks(raw)}}, nil
}

// FileSize reports the reassembled buffer's size in bytes.
func (p *RAMProvider) FileSize() uint32 { return uint32(p.buf.Len()) }

// StreamBuffersNum is always 1 for a RAM-backed provider: the whole
// resource lives in a single buffer.
func (p *RAMProvider) StreamBuffersNum() int32 { return 1 }

// LengthInDWords reports the buffer's size in 32-bit words.
func (p *RAMProvider) LengthInDWords() uint32 { return p.buf.LengthInDWords() }

// Buffer returns the provider's single, fully-reassembled buffer.
func (p *RAMProvider) Buffer() *Buffer { return p.buf }
