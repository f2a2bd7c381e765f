package component

import "github.com/jakecoffman/cp"

// Transform is the camera's world transform. Translation is the world point
// at the centre of the viewport; Z is carried through untouched.
type Transform struct {
	Translation cp.Vector
	Z           float64
}

var TransformComponent = NewComponent[Transform]()
