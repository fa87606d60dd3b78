// Copyright © 2013-2014 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package render

import "image"

// Texture is 2D image data mapped onto a Model's mesh faces. One or
// more Textures can be associated with a Model; when a mesh carries
// more than one, SetFaceRange says which faces each texture applies to.
type Texture interface {
	Name() string                         // Unique identifier set on creation.
	SetImage(img image.Image) Texture     // Replace image, ignore nil.
	SetRepeat(repeat bool) Texture        // Repeat the texture when UV > 1.
	SetFaceRange(f0, fn uint32) Texture   // First face, face count.
}

// =============================================================================

// texture is the default implementation of Texture.
type texture struct {
	name   string      // Unique name of the texture.
	img    image.Image // Texture data.
	tid    uint32      // Graphics card texture identifier.
	repeat bool        // Repeat the texture when UV greater than 1.

	// First face index and number of faces. Non-zero if this texture
	// only applies to particular faces of a multi-textured mesh.
	f0, fn uint32
}

// newTexture allocates space for a texture object.
func newTexture(name string) *texture { return &texture{name: name} }

func (t *texture) Name() string { return t.name }

func (t *texture) SetImage(img image.Image) Texture {
	if img != nil {
		t.img = img
	}
	return t
}

func (t *texture) SetRepeat(repeat bool) Texture {
	t.repeat = repeat
	return t
}

func (t *texture) SetFaceRange(f0, fn uint32) Texture {
	t.f0, t.fn = f0, fn
	return t
}
