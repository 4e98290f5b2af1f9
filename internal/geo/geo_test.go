/*
SPDX-License-Identifier: Apache-2.0
*/

package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dhanush-adi/TraceAyur/internal/model"
)

func square() []model.GeoPoint {
	return []model.GeoPoint{
		{Latitude: 0, Longitude: 0},
		{Latitude: 0, Longitude: 10},
		{Latitude: 10, Longitude: 10},
		{Latitude: 10, Longitude: 0},
	}
}

func TestContainsInside(t *testing.T) {
	assert.True(t, Contains(model.GeoPoint{Latitude: 5, Longitude: 5}, square()))
	assert.True(t, Contains(model.GeoPoint{Latitude: 9.9, Longitude: 0.1}, square()))
}

func TestContainsOutside(t *testing.T) {
	assert.False(t, Contains(model.GeoPoint{Latitude: 20, Longitude: 20}, square()))
	assert.False(t, Contains(model.GeoPoint{Latitude: -5, Longitude: 5}, square()))
	assert.False(t, Contains(model.GeoPoint{Latitude: 5, Longitude: 15}, square()))
}

func TestContainsDegeneratePolygon(t *testing.T) {
	point := model.GeoPoint{Latitude: 5, Longitude: 5}

	assert.False(t, Contains(point, nil))
	assert.False(t, Contains(point, square()[:1]))
	assert.False(t, Contains(point, square()[:2]))
}

func TestContainsConcavePolygon(t *testing.T) {
	// L-shape: the notch between lat 5..10, lon 5..10 is outside.
	lShape := []model.GeoPoint{
		{Latitude: 0, Longitude: 0},
		{Latitude: 0, Longitude: 10},
		{Latitude: 5, Longitude: 10},
		{Latitude: 5, Longitude: 5},
		{Latitude: 10, Longitude: 5},
		{Latitude: 10, Longitude: 0},
	}

	assert.True(t, Contains(model.GeoPoint{Latitude: 2, Longitude: 2}, lShape))
	assert.True(t, Contains(model.GeoPoint{Latitude: 8, Longitude: 2}, lShape))
	assert.False(t, Contains(model.GeoPoint{Latitude: 8, Longitude: 8}, lShape))
}

func TestContainsHarvestZoneBoundary(t *testing.T) {
	boundary := []model.GeoPoint{
		{Latitude: 15.2993, Longitude: 74.1240},
		{Latitude: 15.3593, Longitude: 74.1840},
		{Latitude: 15.2393, Longitude: 74.2440},
		{Latitude: 15.1793, Longitude: 74.1640},
	}

	assert.True(t, Contains(model.GeoPoint{Latitude: 15.27, Longitude: 74.18}, boundary))
	assert.False(t, Contains(model.GeoPoint{Latitude: 15.27, Longitude: 74.01}, boundary))
	assert.False(t, Contains(model.GeoPoint{Latitude: 20, Longitude: 80}, boundary))
}
