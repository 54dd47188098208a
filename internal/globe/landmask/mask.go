// Package landmask turns a raster world map into a per-latitude set of land
// longitudes and answers "is this coordinate on land" against it.
package landmask

const (
	// MinLat and MaxLat bound the latitude buckets.
	MinLat = -90
	MaxLat = 90

	// MinLon and MaxLon bound the stored longitudes. Both meridians are kept,
	// so a scan row holds GridWidth pixels.
	MinLon = -180
	MaxLon = 180

	// GridWidth and GridHeight describe the one-pixel-per-degree scan grid.
	GridWidth  = MaxLon - MinLon + 1
	GridHeight = MaxLat - MinLat + 1
)

// Mask maps each integer latitude to the unordered longitudes classified as
// land. It is never mutated after the sampler returns it, so any number of
// readers may share it.
type Mask struct {
	buckets [GridHeight][]int16
}

// Bucket returns the land longitudes recorded for lat in scan order.
// Latitudes outside [-90, 90] have no bucket. The slice must not be modified.
func (m *Mask) Bucket(lat int) []int16 {
	if lat < MinLat || lat > MaxLat {
		return nil
	}
	return m.buckets[lat-MinLat]
}

// LandCount returns the total number of land samples.
func (m *Mask) LandCount() int {
	n := 0
	for _, b := range m.buckets {
		n += len(b)
	}
	return n
}

// EmptyLatitudes returns how many latitude buckets hold no land.
func (m *Mask) EmptyLatitudes() int {
	n := 0
	for _, b := range m.buckets {
		if len(b) == 0 {
			n++
		}
	}
	return n
}

func (m *Mask) add(lat, lon int) {
	i := lat - MinLat
	m.buckets[i] = append(m.buckets[i], int16(lon))
}
