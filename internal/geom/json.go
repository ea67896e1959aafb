package geom

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// ReadFlatJSON reads outline pixels either as {"points":[{"x":..,"y":..}]}
// or as a bare array of the same objects.
func ReadFlatJSON(r io.Reader) ([]FlatPoint, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("json: %w", err)
	}
	data = bytes.TrimSpace(data)
	var pts []FlatPoint
	if len(data) > 0 && data[0] == '[' {
		err = json.Unmarshal(data, &pts)
	} else {
		var doc struct {
			Points []FlatPoint `json:"points"`
		}
		err = json.Unmarshal(data, &doc)
		pts = doc.Points
	}
	if err != nil {
		return nil, fmt.Errorf("json: %w", err)
	}
	if len(pts) == 0 {
		return nil, fmt.Errorf("json: %w", ErrNoRecords)
	}
	return pts, nil
}
