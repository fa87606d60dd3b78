package lod

import (
	"image"
	"testing"
)

func TestSetColorDoesNotRequireTexture(t *testing.T) {
	m := NewMesh(0)
	m.SetColor(0.2, 0.4, 0.6, 1)
	if m.ColorR != 0.2 || m.ColorG != 0.4 || m.ColorB != 0.6 {
		t.Errorf(format, [3]float32{m.ColorR, m.ColorG, m.ColorB}, [3]float32{0.2, 0.4, 0.6})
	}
	if m.IsTextured {
		t.Errorf("expected SetColor alone to leave mesh untextured")
	}
}

func TestSetTextureResetsColor(t *testing.T) {
	m := NewMesh(0)
	m.SetColor(0.2, 0.4, 0.6, 0.5)
	tex := image.NewRGBA(image.Rect(0, 0, 2, 2))
	m.SetTexture(tex)
	if !m.IsTextured {
		t.Errorf("expected IsTextured after SetTexture")
	}
	if m.ColorR != 1 || m.ColorG != 1 || m.ColorB != 1 || m.Alpha != 1 {
		t.Errorf("expected SetTexture to reset colour to opaque white, got %+v", m)
	}
}

func TestSetTextureKeepColorPreservesColor(t *testing.T) {
	m := NewMesh(0)
	m.SetColor(0.2, 0.4, 0.6, 0.5)
	tex := image.NewRGBA(image.Rect(0, 0, 2, 2))
	m.SetTextureKeepColor(tex)
	if m.ColorR != 0.2 || m.ColorG != 0.4 || m.ColorB != 0.6 || m.Alpha != 0.5 {
		t.Errorf("expected SetTextureKeepColor to preserve colour, got %+v", m)
	}
}

func TestSetTextureNilUnsets(t *testing.T) {
	m := NewMesh(0)
	m.SetTexture(image.NewRGBA(image.Rect(0, 0, 2, 2)))
	m.SetTexture(nil)
	if m.IsTextured {
		t.Errorf("expected SetTexture(nil) to clear IsTextured")
	}
	if m.Texture() != nil {
		t.Errorf("expected SetTexture(nil) to clear the texture reference")
	}
}
