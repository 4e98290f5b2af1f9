/*
SPDX-License-Identifier: Apache-2.0
*/

// Package geo implements the geo-fence containment test for harvest zone
// boundaries.
package geo

import "github.com/dhanush-adi/TraceAyur/internal/model"

// Contains reports whether point lies inside the polygon using the standard
// ray-casting test: walk the edges pairwise with wraparound and toggle the
// inside flag each time a horizontal ray from the point crosses an edge.
// A point exactly on an edge has an implementation-defined result, which is
// inherent to ray casting and kept as-is. Polygons with fewer than three
// vertices contain nothing.
func Contains(point model.GeoPoint, polygon []model.GeoPoint) bool {
	if len(polygon) < 3 {
		return false
	}

	inside := false
	for i, j := 0, len(polygon)-1; i < len(polygon); j, i = i, i+1 {
		crossesLat := (polygon[i].Latitude > point.Latitude) != (polygon[j].Latitude > point.Latitude)
		if !crossesLat {
			continue
		}
		edgeLon := (polygon[j].Longitude-polygon[i].Longitude)*
			(point.Latitude-polygon[i].Latitude)/
			(polygon[j].Latitude-polygon[i].Latitude) +
			polygon[i].Longitude
		if point.Longitude < edgeLon {
			inside = !inside
		}
	}
	return inside
}
