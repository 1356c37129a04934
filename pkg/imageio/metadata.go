package imageio

import (
	exif "github.com/dsoprea/go-exif/v3"
)

// Metadata is the non-pixel data carried alongside a frame between
// decode and encode.
type Metadata struct {
	// EXIF is the raw TIFF-structured payload of the APP1 segment,
	// without the "Exif\x00\x00" prefix.
	EXIF []byte
	// ICC is the assembled color profile.
	ICC []byte
	// Orientation is the parsed EXIF orientation (1..8), or 0 when
	// absent.
	Orientation int
}

// StripPolicy selects which metadata classes an encode discards.
// -strip sets both; -thumbnail keeps the color profile.
type StripPolicy struct {
	EXIF bool
	ICC  bool
}

// apply returns the metadata that survives the policy.
func (m Metadata) apply(p StripPolicy) Metadata {
	out := m
	if p.EXIF {
		out.EXIF = nil
		out.Orientation = 0
	}
	if p.ICC {
		out.ICC = nil
	}
	return out
}

// extractMetadata pulls EXIF and ICC out of the encoded input. JPEG is
// scanned segment-wise; every other container falls back to a raw EXIF
// search, which finds the payload in TIFF and most WebP files too.
func extractMetadata(data []byte, format Format) Metadata {
	var md Metadata
	if format == FormatJPEG {
		md.EXIF, md.ICC = extractJPEGMetadata(data)
	}
	if md.EXIF == nil {
		if raw, err := exif.SearchAndExtractExif(data); err == nil {
			md.EXIF = raw
		}
	}
	md.Orientation = exifOrientation(md.EXIF)
	return md
}

// exifOrientation parses the Orientation tag out of a raw EXIF
// payload. Returns 0 when the payload is missing or unreadable.
func exifOrientation(rawExif []byte) int {
	if rawExif == nil {
		return 0
	}
	entries, _, err := exif.GetFlatExifData(rawExif, nil)
	if err != nil {
		return 0
	}
	for _, entry := range entries {
		if entry.TagName != "Orientation" {
			continue
		}
		if vals, ok := entry.Value.([]uint16); ok && len(vals) > 0 {
			o := int(vals[0])
			if o >= 1 && o <= 8 {
				return o
			}
		}
	}
	return 0
}
