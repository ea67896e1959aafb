package geom

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ReadKML extracts Placemark > Point coordinates together with the
// ExtendedData entry named "value". KML coordinates are "lon,lat[,alt]";
// altitude is ignored.
func ReadKML(r io.Reader) ([]GeoDataPoint, error) {
	type kmlData struct {
		Name  string `xml:"name,attr"`
		Value string `xml:"value"`
	}
	type kmlPoint struct {
		Coordinates string `xml:"coordinates"`
	}
	type kmlPlacemark struct {
		Point *kmlPoint `xml:"Point"`
		Data  []kmlData `xml:"ExtendedData>Data"`
	}
	type kmlDoc struct {
		Placemarks []kmlPlacemark `xml:"Document>Placemark"`
		Bare       []kmlPlacemark `xml:"Placemark"`
	}

	var doc kmlDoc
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("kml: %w", err)
	}
	var out []GeoDataPoint
	for _, pm := range append(doc.Placemarks, doc.Bare...) {
		if pm.Point == nil {
			continue
		}
		value, ok := 0.0, false
		for _, d := range pm.Data {
			if d.Name != ValueProperty {
				continue
			}
			v, err := strconv.ParseFloat(strings.TrimSpace(d.Value), 64)
			if err == nil {
				value, ok = v, true
			}
		}
		if !ok {
			continue
		}
		// coordinates may hold several tuples separated by whitespace
		for _, tuple := range strings.Fields(pm.Point.Coordinates) {
			vals := strings.Split(tuple, ",")
			if len(vals) < 2 {
				continue
			}
			lon, err1 := strconv.ParseFloat(strings.TrimSpace(vals[0]), 64)
			lat, err2 := strconv.ParseFloat(strings.TrimSpace(vals[1]), 64)
			if err1 != nil || err2 != nil {
				continue
			}
			out = append(out, GeoDataPoint{Lat: lat, Lng: lon, Value: value})
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("kml: %w", ErrNoRecords)
	}
	return out, nil
}
