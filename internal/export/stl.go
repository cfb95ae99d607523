package export

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"geosphere/internal/geodesic"
	"geosphere/internal/mathutil"
)

const stlTriangleSize = 4*3*4 + 2 // normal + 3 vertices as float32, plus attribute count

// WriteSTL writes the mesh in binary STL. STL stores bare triangle
// soup, so vertex sharing is lost on write and rebuilt on read.
func WriteSTL(w io.Writer, m *geodesic.Mesh) error {
	var header [80]byte
	copy(header[:], fmt.Sprintf("geosphere r=%g f=%d", m.Radius, m.Frequency))
	if _, err := w.Write(header[:]); err != nil {
		return fmt.Errorf("export: write stl header: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(len(m.Faces))); err != nil {
		return fmt.Errorf("export: write stl count: %w", err)
	}

	buf := make([]byte, stlTriangleSize)
	for i, f := range m.Faces {
		n := m.FaceNormal(i)
		putVec3(buf[0:], n)
		putVec3(buf[12:], m.Vertices[f[0]])
		putVec3(buf[24:], m.Vertices[f[1]])
		putVec3(buf[36:], m.Vertices[f[2]])
		buf[48], buf[49] = 0, 0
		if _, err := w.Write(buf); err != nil {
			return fmt.Errorf("export: write stl triangle %d: %w", i, err)
		}
	}
	return nil
}

func putVec3(b []byte, v mathutil.Vec3) {
	binary.LittleEndian.PutUint32(b[0:], math.Float32bits(float32(v[0])))
	binary.LittleEndian.PutUint32(b[4:], math.Float32bits(float32(v[1])))
	binary.LittleEndian.PutUint32(b[8:], math.Float32bits(float32(v[2])))
}

// ReadSTL parses binary STL, welding bit-identical vertices back into
// a shared vertex buffer. Radius and Frequency are unknown for loaded
// meshes and stay zero.
func ReadSTL(r io.Reader) (*geodesic.Mesh, error) {
	var header struct {
		H    [80]byte
		NTri uint32
	}
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("export: read stl header: %w", err)
	}

	m := &geodesic.Mesh{}
	vertIndex := make(map[[3]float32]int)
	buf := make([]byte, stlTriangleSize)

	for i := 0; i < int(header.NTri); i++ {
		if _, err := io.ReadFull(r, buf); err != nil {
			return nil, fmt.Errorf("export: read stl triangle %d: %w", i, err)
		}
		var face geodesic.Face
		for k := 0; k < 3; k++ {
			// Skip the 12-byte normal; vertices follow.
			off := 12 + 12*k
			var vert [3]float32
			for c := 0; c < 3; c++ {
				vert[c] = math.Float32frombits(binary.LittleEndian.Uint32(buf[off+4*c:]))
			}
			id, ok := vertIndex[vert]
			if !ok {
				id = len(m.Vertices)
				vertIndex[vert] = id
				m.Vertices = append(m.Vertices, mathutil.Vec3{
					float64(vert[0]), float64(vert[1]), float64(vert[2]),
				})
			}
			face[k] = id
		}
		m.Faces = append(m.Faces, face)
	}

	return m, nil
}
