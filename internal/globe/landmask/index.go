package landmask

import "math"

// DefaultTolerance absorbs the gap between integer-degree mask samples and
// the continuous longitudes dots are placed at.
const DefaultTolerance = 0.5

// Index answers land queries against a finished Mask.
type Index struct {
	mask      *Mask
	tolerance float64
}

// NewIndex wraps mask. A non-positive tolerance selects DefaultTolerance.
func NewIndex(mask *Mask, tolerance float64) *Index {
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}
	return &Index{mask: mask, tolerance: tolerance}
}

// Tolerance returns the longitude distance, in degrees, below which a query
// matches a land sample.
func (x *Index) Tolerance() float64 {
	return x.tolerance
}

// IsLand reports whether (lon, lat) is on land. The latitude is rounded to
// its bucket; an empty or missing bucket is ocean. Within the bucket the
// nearest longitude wins (first one on ties) and the query is land when it
// lies closer than the tolerance. Longitudes are compared around the 360°
// wrap, so lon and lon±360 always agree.
func (x *Index) IsLand(lon, lat float64) bool {
	if x.mask == nil {
		return false
	}

	bucket := x.mask.Bucket(int(math.Round(lat)))
	if len(bucket) == 0 {
		return false
	}

	lon = wrapLon(lon)
	best := math.Inf(1)
	for _, l := range bucket {
		if d := lonDistance(lon, float64(l)); d < best {
			best = d
		}
	}
	return best < x.tolerance
}

// wrapLon normalizes lon into [-180, 180).
func wrapLon(lon float64) float64 {
	lon = math.Mod(lon+180, 360)
	if lon < 0 {
		lon += 360
	}
	return lon - 180
}

func lonDistance(a, b float64) float64 {
	d := math.Abs(a - b)
	if d > 180 {
		d = 360 - d
	}
	return d
}
