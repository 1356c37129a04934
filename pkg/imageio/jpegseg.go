package imageio

import (
	"bytes"
	"fmt"
)

// JPEG segment plumbing: metadata lives in APP1 (EXIF) and APP2 (ICC)
// marker segments between the SOI marker and the scan data. Decoding
// pulls those payloads out so operations can carry them; encoding
// splices them back into the freshly compressed stream.

var (
	exifHeader = []byte("Exif\x00\x00")
	iccHeader  = []byte("ICC_PROFILE\x00")
)

// extractJPEGMetadata scans the segment list of a JPEG byte stream and
// returns the raw EXIF payload (TIFF header onward) and the
// concatenated ICC profile, either of which may be nil.
func extractJPEGMetadata(data []byte) (exifData, iccData []byte) {
	if len(data) < 4 || data[0] != 0xFF || data[1] != 0xD8 {
		return nil, nil
	}
	// ICC profiles can span several APP2 segments, ordered by a
	// sequence byte. Collect then concatenate in order.
	iccChunks := map[int][]byte{}
	iccTotal := 0

	i := 2
	for i+4 <= len(data) {
		if data[i] != 0xFF {
			i++
			continue
		}
		marker := data[i+1]
		if marker == 0xDA || marker == 0xD9 {
			break
		}
		segLen := int(data[i+2])<<8 | int(data[i+3])
		if segLen < 2 || i+2+segLen > len(data) {
			break
		}
		payload := data[i+4 : i+2+segLen]
		switch marker {
		case 0xE1:
			if exifData == nil && bytes.HasPrefix(payload, exifHeader) {
				exifData = payload[len(exifHeader):]
			}
		case 0xE2:
			if bytes.HasPrefix(payload, iccHeader) && len(payload) >= len(iccHeader)+2 {
				seq := int(payload[len(iccHeader)])
				total := int(payload[len(iccHeader)+1])
				iccChunks[seq] = payload[len(iccHeader)+2:]
				if total > iccTotal {
					iccTotal = total
				}
			}
		}
		i += 2 + segLen
	}

	if len(iccChunks) > 0 {
		var buf bytes.Buffer
		for seq := 1; seq <= iccTotal; seq++ {
			buf.Write(iccChunks[seq])
		}
		iccData = buf.Bytes()
	}
	return exifData, iccData
}

// maximum marker segment payload once the header bytes are accounted for
const iccChunkSize = 65535 - 2 - len("ICC_PROFILE\x00") - 2

// injectJPEGMetadata rebuilds a JPEG stream with APP1/APP2 metadata
// segments inserted directly after SOI. Nil payloads are skipped.
func injectJPEGMetadata(jpg, exifData, iccData []byte) ([]byte, error) {
	if len(jpg) < 2 || jpg[0] != 0xFF || jpg[1] != 0xD8 {
		return nil, fmt.Errorf("not a JPEG stream")
	}
	if exifData == nil && iccData == nil {
		return jpg, nil
	}

	var buf bytes.Buffer
	buf.Write(jpg[:2])

	if exifData != nil {
		segLen := 2 + len(exifHeader) + len(exifData)
		if segLen > 65535 {
			return nil, fmt.Errorf("EXIF payload too large for an APP1 segment")
		}
		buf.Write([]byte{0xFF, 0xE1, byte(segLen >> 8), byte(segLen)})
		buf.Write(exifHeader)
		buf.Write(exifData)
	}

	if iccData != nil {
		chunks := (len(iccData) + iccChunkSize - 1) / iccChunkSize
		if chunks > 255 {
			return nil, fmt.Errorf("ICC profile too large")
		}
		for seq := 1; seq <= chunks; seq++ {
			start := (seq - 1) * iccChunkSize
			end := start + iccChunkSize
			if end > len(iccData) {
				end = len(iccData)
			}
			chunk := iccData[start:end]
			segLen := 2 + len(iccHeader) + 2 + len(chunk)
			buf.Write([]byte{0xFF, 0xE2, byte(segLen >> 8), byte(segLen)})
			buf.Write(iccHeader)
			buf.Write([]byte{byte(seq), byte(chunks)})
			buf.Write(chunk)
		}
	}

	buf.Write(jpg[2:])
	return buf.Bytes(), nil
}
