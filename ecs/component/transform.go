package component

import "github.com/milk9111/photosticky/sticker"

// TransformComponent stores the authoritative logical placement of a sticker.
// Only the gesture system writes it; everything else reads.
var TransformComponent = NewComponent[sticker.Transform]()
