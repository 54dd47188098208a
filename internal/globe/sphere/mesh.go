package sphere

import (
	gomath "math"

	"github.com/Faultbox/dotglobe/pkg/math"
)

var worldUp = math.Vec3{X: 0, Y: 1, Z: 0}

// Disc is a flat regular polygon lying on the sphere surface and facing away
// from the centre.
type Disc struct {
	Center   math.Vec3
	Normal   math.Vec3
	Vertices []math.Vec3 // triangle list, world space
}

// NewDisc builds a disc of the given radius centred on center with its face
// turned outward along the sphere normal. Each segment is one triangle fanned
// from the centre.
func NewDisc(center math.Vec3, radius float32, segments int) Disc {
	n := center.Normalize()
	if n == (math.Vec3{}) {
		n = math.Vec3{Z: 1}
	}

	// Same basis as an object turned with lookAt: local +Z follows the
	// normal, +X stays horizontal. At the poles the normal is nudged off the
	// up axis so the cross product does not vanish.
	right := worldUp.Cross(n)
	if right.Length() == 0 {
		n.Z += 0.0001
		n = n.Normalize()
		right = worldUp.Cross(n)
	}
	right = right.Normalize()
	up := n.Cross(right)

	rim := make([]math.Vec3, segments+1)
	for s := 0; s <= segments; s++ {
		a := 2 * gomath.Pi * float64(s) / float64(segments)
		cos := float32(gomath.Cos(a)) * radius
		sin := float32(gomath.Sin(a)) * radius
		rim[s] = center.Add(right.Scale(cos)).Add(up.Scale(sin))
	}

	verts := make([]math.Vec3, 0, segments*3)
	for s := 0; s < segments; s++ {
		verts = append(verts, rim[s], rim[s+1], center)
	}

	return Disc{Center: center, Normal: n, Vertices: verts}
}

// Mesh is an indexed triangle mesh with per-vertex normals.
type Mesh struct {
	Positions []float32 // xyz per vertex
	Normals   []float32 // xyz per vertex
	Indices   []uint32
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Positions) / 3
}

// UVSphere builds a latitude/longitude sphere. widthSegments split the
// equator, heightSegments split a meridian. Vertex layout follows Projector.
func UVSphere(radius float32, widthSegments, heightSegments int) *Mesh {
	m := &Mesh{}
	grid := make([][]uint32, heightSegments+1)
	var index uint32

	for iy := 0; iy <= heightSegments; iy++ {
		v := float64(iy) / float64(heightSegments)
		row := make([]uint32, widthSegments+1)

		for ix := 0; ix <= widthSegments; ix++ {
			u := float64(ix) / float64(widthSegments)

			nx := -gomath.Cos(u*2*gomath.Pi) * gomath.Sin(v*gomath.Pi)
			ny := gomath.Cos(v * gomath.Pi)
			nz := gomath.Sin(u*2*gomath.Pi) * gomath.Sin(v*gomath.Pi)

			m.Positions = append(m.Positions,
				radius*float32(nx), radius*float32(ny), radius*float32(nz))
			m.Normals = append(m.Normals, float32(nx), float32(ny), float32(nz))

			row[ix] = index
			index++
		}
		grid[iy] = row
	}

	for iy := 0; iy < heightSegments; iy++ {
		for ix := 0; ix < widthSegments; ix++ {
			a := grid[iy][ix+1]
			b := grid[iy][ix]
			c := grid[iy+1][ix]
			d := grid[iy+1][ix+1]

			// The pole rows collapse to a point; skip their degenerate halves.
			if iy != 0 {
				m.Indices = append(m.Indices, a, b, d)
			}
			if iy != heightSegments-1 {
				m.Indices = append(m.Indices, b, c, d)
			}
		}
	}

	return m
}
