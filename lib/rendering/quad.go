package rendering

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

const f32 = 4

// QuadVertices returns the corners of a unit square centered at the origin,
// in the winding the indices expect.
func QuadVertices() []mgl32.Vec3 {
	return []mgl32.Vec3{
		{0.5, 0.5, 0},   // top right
		{0.5, -0.5, 0},  // bottom right
		{-0.5, -0.5, 0}, // bottom left
		{-0.5, 0.5, 0},  // top left
	}
}

// QuadIndices describes the two triangles covering the quad.
func QuadIndices() []uint32 {
	return []uint32{
		0, 1, 3,
		1, 2, 3,
	}
}

// Flatten unpacks vertex vectors into the tightly packed float array the
// vertex buffer upload wants.
func Flatten(vs []mgl32.Vec3) []float32 {
	out := make([]float32, 0, len(vs)*3)
	for _, v := range vs {
		out = append(out, v.X(), v.Y(), v.Z())
	}
	return out
}

// Quad owns the three GL objects of the uploaded geometry.
type Quad struct {
	VAO uint32
	VBO uint32
	IBO uint32

	numIndices int32
}

// UploadQuad allocates the vertex buffer, index buffer and vertex array for
// the quad and uploads the static data. Leaves no array bound.
func UploadQuad() *Quad {
	vertices := Flatten(QuadVertices())
	indices := QuadIndices()

	q := &Quad{numIndices: int32(len(indices))}

	gl.GenVertexArrays(1, &q.VAO)
	gl.GenBuffers(1, &q.VBO)
	gl.GenBuffers(1, &q.IBO)

	gl.BindVertexArray(q.VAO)

	gl.BindBuffer(gl.ARRAY_BUFFER, q.VBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*f32, gl.Ptr(vertices), gl.STATIC_DRAW)

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, q.IBO)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)

	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*f32, 0)
	gl.EnableVertexAttribArray(0)

	// the attribute pointer has registered the VBO, so it can be unbound;
	// the element buffer is part of the VAO state and must stay bound
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	return q
}

// Draw issues the indexed draw call for the quad.
func (q *Quad) Draw() {
	gl.BindVertexArray(q.VAO)
	gl.DrawElementsWithOffset(gl.TRIANGLES, q.numIndices, gl.UNSIGNED_INT, 0)
}

// Release deletes the GL objects. Optional on exit, the driver cleans up
// with the context anyway.
func (q *Quad) Release() {
	gl.DeleteVertexArrays(1, &q.VAO)
	gl.DeleteBuffers(1, &q.VBO)
	gl.DeleteBuffers(1, &q.IBO)
}
