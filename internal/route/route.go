// Package route carries the selected item between screens as a path string
// and decodes it back into a typed parameter.
package route

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Screen identifies a destination.
type Screen int

const (
	ScreenList Screen = iota
	ScreenDetail
)

func (s Screen) String() string {
	switch s {
	case ScreenList:
		return "list"
	case ScreenDetail:
		return "detail"
	default:
		return fmt.Sprintf("screen(%d)", int(s))
	}
}

const (
	// ListPath is the start destination.
	ListPath = "characters"
	// DetailPattern documents the detail destination; the segment after the
	// slash is the decimal item id.
	DetailPattern = "character_detail/{characterId}"

	detailPrefix = "character_detail/"
)

var (
	// ErrInvalidItemID is returned when a path segment is not a positive
	// decimal integer.
	ErrInvalidItemID = errors.New("invalid item id")
	// ErrUnknownRoute is returned for paths matching no destination.
	ErrUnknownRoute = errors.New("unknown route")
)

// Route is a decoded destination. Param holds the raw path segment for
// parameterized destinations.
type Route struct {
	Screen Screen
	Path   string
	Param  string
}

// List returns the listing destination.
func List() Route {
	return Route{Screen: ScreenList, Path: ListPath}
}

// Detail returns the detail destination for id.
func Detail(id int) Route {
	seg := FormatItemID(id)
	return Route{Screen: ScreenDetail, Path: detailPrefix + seg, Param: seg}
}

// DetailPath formats the detail path for id.
func DetailPath(id int) string {
	return detailPrefix + FormatItemID(id)
}

// SegmentPath builds a detail path from an undecoded segment, such as a
// command line argument. Match still accepts it; ItemID reports whether
// the segment is a valid id.
func SegmentPath(segment string) string {
	return detailPrefix + segment
}

// FormatItemID serializes id in decimal ASCII digits.
func FormatItemID(id int) string {
	return strconv.Itoa(id)
}

// ParseItemID decodes a path segment into a positive item id. Anything other
// than ASCII digits (signs, spaces, empty) is rejected.
func ParseItemID(segment string) (int, error) {
	if segment == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidItemID)
	}
	for i := 0; i < len(segment); i++ {
		if segment[i] < '0' || segment[i] > '9' {
			return 0, fmt.Errorf("%w: %q", ErrInvalidItemID, segment)
		}
	}
	id, err := strconv.Atoi(segment)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: out of range", ErrInvalidItemID, segment)
	}
	if id < 1 {
		return 0, fmt.Errorf("%w: %q: must be positive", ErrInvalidItemID, segment)
	}
	return id, nil
}

// ItemID decodes the route parameter.
func (r Route) ItemID() (int, error) {
	if r.Screen != ScreenDetail {
		return 0, fmt.Errorf("%w: %s route has no item id", ErrInvalidItemID, r.Screen)
	}
	return ParseItemID(r.Param)
}

// Match decodes path into a Route. A detail path with a malformed segment
// still matches; the error surfaces from ItemID so the detail screen can
// show it.
func Match(path string) (Route, error) {
	path = strings.Trim(path, "/")
	switch {
	case path == ListPath:
		return List(), nil
	case strings.HasPrefix(path, detailPrefix):
		seg := strings.TrimPrefix(path, detailPrefix)
		if strings.Contains(seg, "/") {
			return Route{}, fmt.Errorf("%w: %q", ErrUnknownRoute, path)
		}
		return Route{Screen: ScreenDetail, Path: path, Param: seg}, nil
	default:
		return Route{}, fmt.Errorf("%w: %q", ErrUnknownRoute, path)
	}
}
