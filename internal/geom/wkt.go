package geom

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ParseFlatWKT reads outline pixels from WKT. POINT, MULTIPOINT and
// LINESTRING are accepted; every vertex becomes one FlatPoint.
// MULTIPOINT may wrap each tuple in its own parentheses.
func ParseFlatWKT(wkt string) ([]FlatPoint, error) {
	s := strings.TrimSpace(wkt)
	if s == "" {
		return nil, errors.New("wkt: empty")
	}
	up := strings.ToUpper(s)
	switch {
	case strings.HasPrefix(up, "MULTIPOINT"), strings.HasPrefix(up, "POINT"), strings.HasPrefix(up, "LINESTRING"):
	default:
		return nil, fmt.Errorf("wkt: unsupported type %q", strings.Fields(up)[0])
	}
	i := strings.Index(s, "(")
	j := strings.LastIndex(s, ")")
	if i < 0 || j <= i {
		return nil, errors.New("wkt: missing coordinate block")
	}
	block := strings.NewReplacer("(", " ", ")", " ").Replace(s[i+1 : j])

	var out []FlatPoint
	for _, tup := range strings.Split(block, ",") {
		parts := strings.Fields(tup)
		if len(parts) < 2 {
			continue
		}
		x, err1 := strconv.ParseFloat(parts[0], 64)
		y, err2 := strconv.ParseFloat(parts[1], 64)
		if err1 != nil || err2 != nil {
			continue
		}
		out = append(out, FlatPoint{X: x, Y: y})
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("wkt: %w", ErrNoRecords)
	}
	return out, nil
}
