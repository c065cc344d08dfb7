package component

import (
	"github.com/jakecoffman/cp"

	"github.com/milk9111/wallkick/common"
)

// PhysicsBody links an entity to level geometry. Body is nil for static
// solids, whose Rect never changes.
type PhysicsBody struct {
	Body *cp.Body
	Rect common.Rect
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]("physics_body")
