package component

// TTL destroys its entity after Frames update ticks. Used for transient
// entities such as status toasts.
type TTL struct {
	Frames int
}

var TTLComponent = NewComponent[TTL]()

// Toast is a short status line shown over the canvas.
type Toast struct {
	Text  string
	Error bool
}

var ToastComponent = NewComponent[Toast]()
