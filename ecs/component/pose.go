package component

import "github.com/milk9111/photosticky/anim"

// Pose is what the renderer draws for a sticker. It trails the logical
// transform through springs and keyframe sequences.
type Pose struct {
	X        anim.Spring
	Y        anim.Spring
	Size     anim.Spring
	Rotation *anim.Sequence // degrees
	Opacity  *anim.Sequence

	// Held is true while a drag is in progress; position then follows the
	// finger exactly instead of springing.
	Held bool
}

var PoseComponent = NewComponent[Pose]()
