package export

import (
	"fmt"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"geosphere/internal/geodesic"
)

// SaveGLTF writes the mesh as a glTF 2.0 asset with a single
// triangle primitive.
func SaveGLTF(path string, m *geodesic.Mesh) error {
	doc := gltf.NewDocument()

	positions := make([][3]float32, len(m.Vertices))
	for i, v := range m.Vertices {
		positions[i] = [3]float32{float32(v[0]), float32(v[1]), float32(v[2])}
	}
	indices := make([]uint32, 0, len(m.Faces)*3)
	for _, f := range m.Faces {
		indices = append(indices, uint32(f[0]), uint32(f[1]), uint32(f[2]))
	}

	posAccessor := modeler.WritePosition(doc, positions)
	idxAccessor := modeler.WriteIndices(doc, indices)

	doc.Meshes = []*gltf.Mesh{{
		Name: "geosphere",
		Primitives: []*gltf.Primitive{{
			Indices: gltf.Index(idxAccessor),
			Attributes: map[string]int{
				gltf.POSITION: posAccessor,
			},
		}},
	}}
	doc.Nodes = []*gltf.Node{{Name: "geosphere", Mesh: gltf.Index(0)}}
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, 0)

	if err := gltf.Save(doc, path); err != nil {
		return fmt.Errorf("export: save gltf %s: %w", path, err)
	}
	return nil
}
