/*
Copyright 2012 Google Inc.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

     http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package images finds and decodes the EXIF metadata of image files.
package images // import "exifwalk.org/pkg/images"

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"time"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	// cr2 sorts before tiff, so its longer header wins the sniff for
	// CR2 files.
	_ "github.com/nf/cr2"
	_ "golang.org/x/image/tiff"

	"go4.org/media/heif"

	"exifwalk.org/internal/magic"
	"exifwalk.org/pkg/exif"
	"exifwalk.org/pkg/media/raf"
)

// ErrUnsupported is returned by DecodeEXIF for files whose container
// format is not known to carry EXIF.
var ErrUnsupported = errors.New("images: unsupported container format")

// ErrNoDateTime is returned by Result.DateTime when no date tag decoded.
var ErrNoDateTime = errors.New("images: no EXIF date")

// EXIF tags read by Result.
const (
	TagOrientation      = 0x0112
	TagDateTime         = 0x0132
	TagDateTimeOriginal = 0x9003
)

const exifTimeLayout = "2006:01:02 15:04:05"

// Result is the EXIF found in an image file.
type Result struct {
	MIME string // as detected by the magic package
	Exif *exif.Exif
	Tags []exif.Tag

	// Width and Height are the dimensions of the image, or of the
	// embedded preview for raw files, or of the first TIFF directory for
	// TIFF-based raw files. They are zero when unknown.
	Width, Height int
}

// DecodeEXIF detects the container format of data, the whole file, and
// decodes the EXIF IFD0 and Sub-IFD it holds using d, which may be nil.
//
// JPEG and TIFF-based files (TIFF, CR2, ORF) are searched directly. For
// Fuji RAF files the embedded JPEG preview is used, and for HEIC files
// the EXIF item.
func DecodeEXIF(data []byte, d *exif.Decoder) (*Result, error) {
	res := &Result{MIME: magic.MIMEType(data)}
	var block []byte
	switch res.MIME {
	case magic.JPEG, magic.TIFF, magic.CR2, magic.ORF:
		block = data
		res.setBounds(data)
	case magic.RAF:
		h, err := raf.Parse(data)
		if err != nil {
			return nil, err
		}
		jpg, err := h.EmbeddedJPEG(data)
		if err != nil {
			return nil, err
		}
		block = jpg
		res.setBounds(jpg)
	case magic.HEIC:
		f := heif.Open(bytes.NewReader(data))
		raw, err := f.EXIF()
		if err != nil {
			return nil, fmt.Errorf("images: reading HEIC EXIF item: %w", err)
		}
		block = raw
		if it, err := f.PrimaryItem(); err == nil {
			res.Width, res.Height, _ = it.VisualDimensions()
		}
	case "":
		return nil, ErrUnsupported
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, res.MIME)
	}

	x, err := exif.Locate(block)
	if err != nil {
		return nil, err
	}
	tags, err := x.TagsWith(d)
	if err != nil {
		return nil, err
	}
	res.Exif = x
	res.Tags = tags
	return res, nil
}

// setBounds sets the dimensions from the image header in b, if any
// registered image decoder recognizes it.
func (r *Result) setBounds(b []byte) {
	conf, _, err := image.DecodeConfig(bytes.NewReader(b))
	if err != nil {
		return
	}
	r.Width, r.Height = conf.Width, conf.Height
}

// Tag returns the first successfully decoded tag with the given ID.
func (r *Result) Tag(id uint16) (exif.Tag, bool) {
	for _, t := range r.Tags {
		if t.ID == id && t.Err == nil {
			return t, true
		}
	}
	return exif.Tag{}, false
}

// Orientation returns the EXIF orientation, from 1 to 8. It is 1 (upright)
// when the tag is missing or invalid.
func (r *Result) Orientation() int {
	t, ok := r.Tag(TagOrientation)
	if !ok {
		return 1
	}
	v, ok := t.Value.(exif.Short)
	if !ok || v < 1 || v > 8 {
		return 1
	}
	return int(v)
}

// DateTime returns the original date of the image (DateTimeOriginal),
// falling back to the EXIF DateTime tag when the former is missing or
// unparsable. EXIF dates carry no time zone; the result is in UTC.
func (r *Result) DateTime() (time.Time, error) {
	err := ErrNoDateTime
	for _, id := range []uint16{TagDateTimeOriginal, TagDateTime} {
		t, ok := r.Tag(id)
		if !ok {
			continue
		}
		s, ok := t.Value.(exif.ASCII)
		if !ok {
			continue
		}
		var tm time.Time
		tm, err = time.Parse(exifTimeLayout, string(s))
		if err != nil {
			continue
		}
		return tm, nil
	}
	return time.Time{}, err
}

// The FlipDirection type is used by Transform to indicate in which
// direction to flip an image.
type FlipDirection int

// FlipVertical and FlipHorizontal are two possible FlipDirections
// values to indicate in which direction an image will be flipped.
const (
	FlipVertical FlipDirection = 1 << iota
	FlipHorizontal
)

func (d FlipDirection) String() string {
	switch d {
	case 0:
		return "none"
	case FlipVertical:
		return "vertical"
	case FlipHorizontal:
		return "horizontal"
	}
	return "vertical+horizontal"
}

// Transform returns how to display an image with the given EXIF
// orientation upright: first rotate it by angle degrees counter clockwise,
// then flip it.
func Transform(orientation int) (angle int, flip FlipDirection) {
	switch orientation {
	case 2:
		flip = FlipHorizontal
	case 3:
		angle = 180
	case 4:
		angle = 180
		flip = FlipHorizontal
	case 5:
		angle = -90
		flip = FlipHorizontal
	case 6:
		angle = -90
	case 7:
		angle = 90
		flip = FlipHorizontal
	case 8:
		angle = 90
	}
	return angle, flip
}
