package rendering

// OpKind identifies a recorded drawing operation.
type OpKind int

const (
	OpRect OpKind = iota
	OpTexture
)

// DrawOp is one recorded drawing command.
type DrawOp struct {
	Kind     OpKind
	Rect     Rect
	Paint    Paint
	Texture  *Texture
	Position Offset
	Tint     Color
}

// DisplayList is an immutable list of drawing operations.
// It can be replayed onto any Canvas implementation.
type DisplayList struct {
	ops  []DrawOp
	size Size
}

// Paint replays the recorded operations onto the provided canvas.
func (d *DisplayList) Paint(canvas Canvas) {
	for _, op := range d.ops {
		switch op.Kind {
		case OpRect:
			canvas.DrawRect(op.Rect, op.Paint)
		case OpTexture:
			canvas.DrawTexture(op.Texture, op.Position, op.Tint)
		}
	}
}

// Ops returns a copy of the recorded operations.
func (d *DisplayList) Ops() []DrawOp {
	ops := make([]DrawOp, len(d.ops))
	copy(ops, d.ops)
	return ops
}

// Size returns the size recorded when the display list was created.
func (d *DisplayList) Size() Size {
	return d.size
}

// PictureRecorder records drawing commands into a display list.
type PictureRecorder struct {
	ops       []DrawOp
	recording bool
	size      Size
}

// BeginRecording starts a new recording session.
func (r *PictureRecorder) BeginRecording(size Size) Canvas {
	r.ops = r.ops[:0]
	r.recording = true
	r.size = size
	return &recordingCanvas{recorder: r}
}

// EndRecording finishes the recording and returns a display list.
func (r *PictureRecorder) EndRecording() *DisplayList {
	if !r.recording {
		return &DisplayList{size: r.size}
	}
	r.recording = false
	ops := make([]DrawOp, len(r.ops))
	copy(ops, r.ops)
	return &DisplayList{
		ops:  ops,
		size: r.size,
	}
}

func (r *PictureRecorder) append(op DrawOp) {
	if !r.recording {
		return
	}
	r.ops = append(r.ops, op)
}

type recordingCanvas struct {
	recorder *PictureRecorder
}

func (c *recordingCanvas) DrawRect(rect Rect, paint Paint) {
	c.recorder.append(DrawOp{Kind: OpRect, Rect: rect, Paint: paint})
}

func (c *recordingCanvas) DrawTexture(texture *Texture, position Offset, tint Color) {
	if texture == nil {
		return
	}
	c.recorder.append(DrawOp{Kind: OpTexture, Texture: texture, Position: position, Tint: tint})
}
