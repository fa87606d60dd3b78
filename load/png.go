// Copyright © 2013-2016 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package load

import (
	"image"
	"image/png"
	"io"
)

// png loads and decodes a named PNG image from disk. Nil is returned
// if the expected image file is not found.
func (l *loader) png(name string) (pic image.Image, err error) {
	var file io.ReadCloser
	if file, err = l.getResource(l.dir[img], name+".png"); err == nil {
		defer file.Close()
		pic, err = png.Decode(file)
	}
	return pic, err
}
