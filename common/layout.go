package common

const (
	BaseWidth  = 480
	BaseHeight = 720

	// CanvasWidth/CanvasHeight are the logical photo canvas dimensions.
	CanvasWidth  = 320
	CanvasHeight = 400

	CanvasTop = 48
)
