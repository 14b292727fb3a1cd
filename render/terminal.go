package render

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/marble-sandbox/parameter"
	"github.com/lixenwraith/marble-sandbox/vmath"
)

const (
	cellsPerMeter = parameter.ViewCellsPerUnit
	rowsPerMeter  = parameter.ViewCellsPerUnit * parameter.ViewAspect
	hudRows       = parameter.HUDRows
)

var (
	styleHUD      = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	styleGaugeOn  = tcell.StyleDefault.Foreground(tcell.NewRGBColor(90, 220, 255)).Background(tcell.ColorBlack)
	styleBanner   = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.NewRGBColor(255, 210, 60)).Bold(true)
	styleMenuItem = tcell.StyleDefault.Foreground(tcell.NewRGBColor(200, 200, 200)).Background(tcell.ColorBlack)
)

type item struct {
	geom   Geometry
	mat    Material
	color  RGB
	pos    mgl64.Vec3
	axes   [3]mgl64.Vec3 // Unit columns of the rotation
	half   mgl64.Vec3    // Column lengths: radius or half extents
	params map[string]float64
}

func (it *item) marble() bool {
	_, ok := it.params[parameter.ParamActive]
	return ok
}

// top is the highest world Y the item reaches
func (it *item) top() float64 {
	if it.geom == GeometrySphere {
		return it.pos.Y() + it.half.X()
	}
	var ext float64
	for i := 0; i < 3; i++ {
		ext += math.Abs(it.axes[i].Y()) * it.half[i]
	}
	return it.pos.Y() + ext
}

// Terminal draws a top-down projection of the scene with a HUD
type Terminal struct {
	mu     sync.Mutex
	screen tcell.Screen
	next   Handle
	items  map[Handle]*item
}

var (
	_ Renderer  = (*Terminal)(nil)
	_ Presenter = (*Terminal)(nil)
)

func NewTerminal(screen tcell.Screen) *Terminal {
	return &Terminal{screen: screen, items: make(map[Handle]*item)}
}

func (t *Terminal) Create(geom Geometry, mat Material) Handle {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.next++
	t.items[t.next] = &item{
		geom:   geom,
		mat:    mat,
		color:  mat.Color,
		axes:   [3]mgl64.Vec3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}},
		half:   mgl64.Vec3{1, 1, 1},
		params: make(map[string]float64),
	}
	return t.next
}

func (t *Terminal) Destroy(h Handle) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.items, h)
}

// SetTransform splits a T·R·S matrix into position, axes and scale
func (t *Terminal) SetTransform(h Handle, m mgl64.Mat4) {
	t.mu.Lock()
	defer t.mu.Unlock()
	it, ok := t.items[h]
	if !ok {
		return
	}
	it.pos = m.Col(3).Vec3()
	for i := 0; i < 3; i++ {
		col := m.Col(i).Vec3()
		l := col.Len()
		it.half[i] = l
		if l > vmath.Epsilon {
			it.axes[i] = col.Mul(1 / l)
		}
	}
}

func (t *Terminal) SetParam(h Handle, name string, value float64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if it, ok := t.items[h]; ok {
		it.params[name] = value
	}
}

func (t *Terminal) SetColor(h Handle, c RGB) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if it, ok := t.items[h]; ok {
		it.color = c
	}
}

// projection maps world XZ to cells around the camera focus
type projection struct {
	cx, cy int
	focus  mgl64.Vec3
	rot    mgl64.Quat // World to view, forward becomes -Z (screen up)
	inv    mgl64.Quat
}

func newProjection(w, h int, v View) projection {
	p := projection{cx: w / 2, cy: hudRows + (h-hudRows)/2, focus: v.Camera, rot: mgl64.QuatIdent(), inv: mgl64.QuatIdent()}
	if v.Chase {
		p.rot = vmath.QuatYaw(-v.Yaw)
		p.inv = vmath.QuatYaw(v.Yaw)
	}
	return p
}

func (p projection) toCell(world mgl64.Vec3) (int, int) {
	off := p.rot.Rotate(world.Sub(p.focus))
	x := p.cx + int(math.Round(off.X()*cellsPerMeter))
	y := p.cy + int(math.Round(off.Z()*rowsPerMeter))
	return x, y
}

// toWorld returns the world XZ point at the center of a cell, at height y
func (p projection) toWorld(x, y int, height float64) mgl64.Vec3 {
	off := mgl64.Vec3{float64(x-p.cx) / cellsPerMeter, 0, float64(y-p.cy) / rowsPerMeter}
	w := p.inv.Rotate(off).Add(p.focus)
	return mgl64.Vec3{w.X(), height, w.Z()}
}

// Present draws the scene then the HUD and flushes the screen
func (t *Terminal) Present(v View) {
	t.mu.Lock()
	defer t.mu.Unlock()

	s := t.screen
	s.Clear()
	w, h := s.Size()
	if w <= 0 || h <= hudRows {
		s.Show()
		return
	}

	if v.Menu {
		t.drawMenu(w, h, v)
		s.Show()
		return
	}

	proj := newProjection(w, h, v)
	for _, it := range t.sorted() {
		switch it.geom {
		case GeometrySphere:
			t.drawSphere(w, h, proj, it)
		case GeometryBox:
			t.drawBox(w, h, proj, it)
		}
	}

	t.drawHUD(w, h, v)
	if v.Complete {
		msg := " LEVEL COMPLETE "
		drawText(s, (w-len(msg))/2, h/2, styleBanner, msg)
	}
	s.Show()
}

// sorted orders items lowest top first, marbles above everything
func (t *Terminal) sorted() []*item {
	list := make([]*item, 0, len(t.items))
	for _, it := range t.items {
		if it.geom == GeometryLight {
			continue
		}
		list = append(list, it)
	}
	sort.SliceStable(list, func(i, j int) bool {
		mi, mj := list[i].marble(), list[j].marble()
		if mi != mj {
			return mj
		}
		return list[i].top() < list[j].top()
	})
	return list
}

func (t *Terminal) drawSphere(w, h int, p projection, it *item) {
	r := it.half.X()
	cx, cy := p.toCell(it.pos)
	rx := int(math.Ceil(r * cellsPerMeter))
	ry := int(math.Ceil(r * rowsPerMeter))

	glyph := '●'
	if it.marble() {
		glyph = 'o'
		if it.params[parameter.ParamActive] > 0 {
			glyph = '@'
		}
	}
	style := tcell.StyleDefault.Foreground(toColor(it.color)).Background(tcell.ColorBlack)

	if rx == 0 || ry == 0 {
		setCell(t.screen, w, h, cx, cy, glyph, style)
		return
	}
	for dy := -ry; dy <= ry; dy++ {
		for dx := -rx; dx <= rx; dx++ {
			nx := float64(dx) / cellsPerMeter
			nz := float64(dy) / rowsPerMeter
			if nx*nx+nz*nz > r*r {
				continue
			}
			setCell(t.screen, w, h, cx+dx, cy+dy, glyph, style)
		}
	}
	setCell(t.screen, w, h, cx, cy, glyph, style.Bold(true))
}

// drawBox fills cells whose center falls inside the box footprint
func (t *Terminal) drawBox(w, h int, p projection, it *item) {
	reach := it.half.Len()
	cx, cy := p.toCell(it.pos)
	rx := int(math.Ceil(reach * cellsPerMeter))
	ry := int(math.Ceil(reach * rowsPerMeter))

	shade := vmath.Clamp(0.6+0.05*(it.top()-p.focus.Y()), 0.35, 1)
	style := tcell.StyleDefault.Background(toColor(Scale(it.color, shade)))

	for y := max(cy-ry, hudRows); y <= min(cy+ry, h-1); y++ {
		for x := max(cx-rx, 0); x <= min(cx+rx, w-1); x++ {
			wp := p.toWorld(x, y, it.pos.Y())
			if !insideFootprint(it, wp) {
				continue
			}
			t.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

// insideFootprint reports whether the vertical line through wp crosses the box
func insideFootprint(it *item, wp mgl64.Vec3) bool {
	d := wp.Sub(it.pos)
	lo, hi := math.Inf(-1), math.Inf(1)
	for i := 0; i < 3; i++ {
		h := it.half[i]
		if h <= vmath.Epsilon {
			return false
		}
		o := d.Dot(it.axes[i])
		dir := it.axes[i].Y()
		if math.Abs(dir) < vmath.Epsilon {
			if math.Abs(o) > h {
				return false
			}
			continue
		}
		t1, t2 := (-h-o)/dir, (h-o)/dir
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		lo, hi = math.Max(lo, t1), math.Min(hi, t2)
		if lo > hi {
			return false
		}
	}
	return true
}

func (t *Terminal) drawHUD(w, h int, v View) {
	s := t.screen
	for x := 0; x < w; x++ {
		s.SetContent(x, 0, ' ', nil, styleHUD)
		s.SetContent(x, 1, ' ', nil, styleHUD)
	}

	camera := "overview"
	if v.Chase {
		camera = "chase"
	}
	head := fmt.Sprintf(" %s | score %d | %s | %s", v.Level, v.Score, v.Controlled, camera)
	drawText(s, 0, 0, styleHUD, head)

	var flags []string
	if v.TimeScale > 0 && v.TimeScale < 1 {
		flags = append(flags, fmt.Sprintf("x%.2f", v.TimeScale))
	}
	if v.Rewinding {
		flags = append(flags, "REWIND")
	}
	if v.Grappling {
		flags = append(flags, "GRAPPLE")
	}
	flags = append(flags, v.Effects...)

	// Flags first; gauges clip on narrow terminals
	x := 1
	if len(flags) > 0 {
		x = drawText(s, x, 1, styleHUD, strings.Join(flags, " ")+" ")
	}
	x = drawGauge(s, x, 1, "chg", v.Charge)
	x = drawGauge(s, x, 1, "jmp", v.JumpCharge)
	x = drawGauge(s, x, 1, "mag", v.MagnetPower)
	drawGauge(s, x, 1, "foc", v.FocusEnergy)

	if v.Description != "" {
		drawText(s, 1, h-1, styleHUD, v.Description)
	}
}

// drawGauge renders a five cell bar and returns the next column
func drawGauge(s tcell.Screen, x, y int, label string, value float64) int {
	x = drawText(s, x, y, styleHUD, label+" ")
	filled := int(math.Round(vmath.Clamp(value, 0, 1) * 5))
	for i := 0; i < 5; i++ {
		r, st := '·', styleHUD
		if i < filled {
			r, st = '█', styleGaugeOn
		}
		s.SetContent(x, y, r, nil, st)
		x++
	}
	return x + 1
}

func (t *Terminal) drawMenu(w, h int, v View) {
	s := t.screen
	title := "MARBLE SANDBOX"
	drawText(s, (w-len(title))/2, 1, styleBanner, title)
	for i, name := range v.Levels {
		y := 3 + i
		if y >= h {
			break
		}
		drawText(s, 2, y, styleMenuItem, fmt.Sprintf("%d. %s", i+1, name))
	}
}

// drawText writes a string and returns the column after it
func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) int {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
	return x
}

func setCell(s tcell.Screen, w, h, x, y int, r rune, style tcell.Style) {
	if x < 0 || x >= w || y < hudRows || y >= h {
		return
	}
	s.SetContent(x, y, r, nil, style)
}

func toColor(c RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
