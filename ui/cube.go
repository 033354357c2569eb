package ui

import (
	"math"

	"portfolio-arcade/cube"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

// pixelUnit converts the cube's pixel float offset to world units. The cube
// spans two world units, drawn at about 200 pixels.
const pixelUnit = 0.01

var cubeCorners = [8]mgl32.Vec3{
	{-1, -1, -1}, {1, -1, -1}, {1, 1, -1}, {-1, 1, -1},
	{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1},
}

// cubeFaces lists corner indexes counter-clockwise as seen from outside.
var cubeFaces = [6][4]int{
	{4, 5, 6, 7}, // front
	{1, 0, 3, 2}, // back
	{5, 1, 2, 6}, // right
	{0, 4, 7, 3}, // left
	{7, 6, 2, 3}, // top
	{0, 1, 5, 4}, // bottom
}

var faceColors = [6]rl.Color{
	{R: 0, G: 255, B: 65, A: 230},
	{R: 0, G: 212, B: 255, A: 230},
	{R: 255, G: 20, B: 147, A: 230},
	{R: 255, G: 215, B: 0, A: 230},
	{R: 155, G: 89, B: 255, A: 230},
	{R: 255, G: 140, B: 0, A: 230},
}

// cubeView draws the cube into an offscreen texture the size of its widget.
type cubeView struct {
	target rl.RenderTexture2D
	width  int32
	height int32
	loaded bool
	camera rl.Camera3D
	bounds rl.Rectangle
}

func newCubeView() *cubeView {
	return &cubeView{
		camera: rl.Camera3D{
			Position:   rl.NewVector3(0, 0, 6),
			Target:     rl.NewVector3(0, 0, 0),
			Up:         rl.NewVector3(0, 1, 0),
			Fovy:       45,
			Projection: rl.CameraPerspective,
		},
	}
}

func (v *cubeView) ensureTarget(w, h int32) {
	if v.loaded && v.width == w && v.height == h {
		return
	}
	v.unload()
	v.target = rl.LoadRenderTexture(w, h)
	v.width, v.height = w, h
	v.loaded = true
}

func (v *cubeView) render(t cube.Transform, rect rl.Rectangle) {
	v.ensureTarget(int32(rect.Width), int32(rect.Height))

	var corners [8]rl.Vector3
	for i, c := range cubeCorners {
		p := t.Apply(c, pixelUnit)
		corners[i] = rl.NewVector3(p.X(), p.Y(), p.Z())
	}

	rl.BeginTextureMode(v.target)
	rl.ClearBackground(background)
	rl.BeginMode3D(v.camera)
	for i, face := range cubeFaces {
		a, b, c, d := corners[face[0]], corners[face[1]], corners[face[2]], corners[face[3]]
		rl.DrawTriangle3D(a, b, c, faceColors[i])
		rl.DrawTriangle3D(a, c, d, faceColors[i])
	}
	for _, face := range cubeFaces {
		for k := range face {
			rl.DrawLine3D(corners[face[k]], corners[face[(k+1)%4]], rl.Black)
		}
	}
	rl.EndMode3D()
	rl.EndTextureMode()

	v.bounds = v.project(corners, rect)
}

// project returns the screen box around the projected corners.
func (v *cubeView) project(corners [8]rl.Vector3, rect rl.Rectangle) rl.Rectangle {
	minX, minY := float32(math.MaxFloat32), float32(math.MaxFloat32)
	maxX, maxY := float32(-math.MaxFloat32), float32(-math.MaxFloat32)
	for _, c := range corners {
		p := rl.GetWorldToScreenEx(c, v.camera, v.width, v.height)
		minX, minY = min(minX, p.X), min(minY, p.Y)
		maxX, maxY = max(maxX, p.X), max(maxY, p.Y)
	}
	return rl.Rectangle{X: rect.X + minX, Y: rect.Y + minY, Width: maxX - minX, Height: maxY - minY}
}

func (v *cubeView) draw(rect rl.Rectangle) {
	if !v.loaded {
		return
	}
	// render textures are stored upside down
	src := rl.Rectangle{X: 0, Y: 0, Width: float32(v.width), Height: -float32(v.height)}
	rl.DrawTextureRec(v.target.Texture, src, rl.Vector2{X: rect.X, Y: rect.Y}, rl.White)
}

func (v *cubeView) unload() {
	if v.loaded {
		rl.UnloadRenderTexture(v.target)
		v.loaded = false
	}
}
