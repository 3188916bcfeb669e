package component

// RenderLayer is used to sort draw order and hit-test priority deterministically.
type RenderLayer struct {
	Index int
}

var RenderLayerComponent = NewComponent[RenderLayer]()
