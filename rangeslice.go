package menuscrape

import "strings"

// RangeMarkers delimit the region of interest in a serialized page body.
type RangeMarkers struct {
	// Start is required; the slice begins at its first occurrence.
	Start string

	// End is optional; the slice stops at its first occurrence after Start,
	// or at end of body if absent.
	End string
}

// SliceRange returns body[start:end) where start is the first occurrence of
// the start marker and end the first occurrence of the end marker after it.
// Returns EMARKERNOTFOUND if the start marker is absent.
func SliceRange(body string, m RangeMarkers) (string, error) {
	if m.Start == "" {
		return "", Errorf(EINVALID, "start marker required")
	}
	start := strings.Index(body, m.Start)
	if start < 0 {
		return "", Errorf(EMARKERNOTFOUND, "start marker %q not found", m.Start)
	}

	end := len(body)
	if m.End != "" {
		if i := strings.Index(body[start:], m.End); i >= 0 {
			end = start + i
		}
	}
	return body[start:end], nil
}
