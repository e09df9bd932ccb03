package domain

// Route is an ordered sequence of coordinates describing a path from origin
// to destination. Once resolved (fetched or synthesized) it is immutable for
// the lifetime of a render; the completed prefix is a derived view of it.
type Route []Coordinates

// Bounds is the smallest viewport box containing a set of points.
type Bounds struct {
	SouthWest Coordinates `json:"south_west"`
	NorthEast Coordinates `json:"north_east"`
}

// FitBounds computes the bounding box of the given points.
// Returns false when points is empty.
func FitBounds(points []Coordinates) (Bounds, bool) {
	if len(points) == 0 {
		return Bounds{}, false
	}
	b := Bounds{SouthWest: points[0], NorthEast: points[0]}
	for _, p := range points[1:] {
		if p.Lat < b.SouthWest.Lat {
			b.SouthWest.Lat = p.Lat
		}
		if p.Lng < b.SouthWest.Lng {
			b.SouthWest.Lng = p.Lng
		}
		if p.Lat > b.NorthEast.Lat {
			b.NorthEast.Lat = p.Lat
		}
		if p.Lng > b.NorthEast.Lng {
			b.NorthEast.Lng = p.Lng
		}
	}
	return b, true
}

// Center returns the midpoint of the bounds.
func (b Bounds) Center() Coordinates {
	return Coordinates{
		Lat: (b.SouthWest.Lat + b.NorthEast.Lat) / 2,
		Lng: (b.SouthWest.Lng + b.NorthEast.Lng) / 2,
	}
}
