package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"geosphere/internal/geodesic"
)

func TestWriteSTLSize(t *testing.T) {
	mesh, err := geodesic.Generate(1.5, 2)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteSTL(&buf, mesh))
	require.Equal(t, 84+mesh.FaceCount()*stlTriangleSize, buf.Len())
}

func TestSTLRoundTrip(t *testing.T) {
	mesh, err := geodesic.Generate(1.5, 3)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteSTL(&buf, mesh))

	loaded, err := ReadSTL(&buf)
	require.NoError(t, err)

	// Welding on bit-identical float32 coordinates restores the shared
	// vertex buffer exactly.
	require.Equal(t, mesh.FaceCount(), loaded.FaceCount())
	require.Equal(t, mesh.VertexCount(), loaded.VertexCount())
	require.Equal(t, mesh.EdgeCount(), loaded.EdgeCount())
	require.NoError(t, loaded.Validate())

	for i, v := range loaded.Vertices {
		require.InDelta(t, mesh.Vertices[i].Len(), v.Len(), 1e-6, "vertex %d", i)
	}
}

func TestReadSTLTruncated(t *testing.T) {
	mesh, err := geodesic.Generate(1, 1)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteSTL(&buf, mesh))

	_, err = ReadSTL(bytes.NewReader(buf.Bytes()[:buf.Len()-10]))
	require.Error(t, err)
}
