package stream

import (
	"os"
	"path/filepath"
	"testing"
)

// TestNewRAMProviderReassemblesOnLoad checks that loading a file with a
// split chunk pair produces a buffer where that chunk has already been
// merged, matching MxRAMStreamProvider::SetResourceToGet's load-then-
// reassemble sequence.
func TestNewRAMProviderReassemblesOnLoad(t *testing.T) {
	data := append(makeChunk([]byte("AAA"), 0x0010, true), makeChunk([]byte("BB"), 0x0099, false)...)
	path := filepath.Join(t.TempDir(), "test.si")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("unexpected error writing fixture: %v", err)
	}

	p, svcErr := NewRAMProvider(path)
	if svcErr != nil {
		t.Fatalf("unexpected error: %v", svcErr)
	}
	if got, want := p.StreamBuffersNum(), int32(1); got != want {
		t.Errorf(format, got, want)
	}
	if got, want := p.FileSize(), uint32(chunkHeaderSize+5); got != want {
		t.Errorf(format, got, want)
	}
}

// TestNewRAMProviderMissingFileFails checks that a missing resource
// surfaces as a ResourceAllocation error rather than panicking.
func TestNewRAMProviderMissingFileFails(t *testing.T) {
	_, svcErr := NewRAMProvider(filepath.Join(t.TempDir(), "does-not-exist.si"))
	if svcErr == nil {
		t.Fatalf("expected an error for a missing file")
	}
}
