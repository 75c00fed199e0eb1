package rendering

import "testing"

func TestPictureRecorderReplay(t *testing.T) {
	var rec PictureRecorder
	canvas := rec.BeginRecording(Size{Width: 10, Height: 10})
	icon := NewTexture("port", 8, 8)
	canvas.DrawRect(RectFromLTWH(0, 0, 10, 10), DefaultPaint())
	canvas.DrawTexture(icon, Offset{X: 1, Y: 1}, ColorRed)
	canvas.DrawTexture(nil, Offset{}, ColorRed)
	list := rec.EndRecording()

	ops := list.Ops()
	if len(ops) != 2 {
		t.Fatalf("ops = %d, want 2", len(ops))
	}
	if ops[1].Kind != OpTexture || ops[1].Texture != icon || ops[1].Tint != ColorRed {
		t.Errorf("unexpected texture op %+v", ops[1])
	}

	var replay PictureRecorder
	list.Paint(replay.BeginRecording(list.Size()))
	if got := len(replay.EndRecording().Ops()); got != 2 {
		t.Errorf("replayed ops = %d, want 2", got)
	}
}
