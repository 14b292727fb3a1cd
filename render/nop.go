package render

import "github.com/go-gl/mathgl/mgl64"

// Nop issues handles and draws nothing
type Nop struct {
	next Handle
}

var _ Renderer = (*Nop)(nil)

func (n *Nop) Create(Geometry, Material) Handle {
	n.next++
	return n.next
}

func (n *Nop) Destroy(Handle)                   {}
func (n *Nop) SetTransform(Handle, mgl64.Mat4)  {}
func (n *Nop) SetParam(Handle, string, float64) {}
func (n *Nop) SetColor(Handle, RGB)             {}
