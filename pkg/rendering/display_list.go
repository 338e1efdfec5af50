package rendering

import "github.com/mkaudio-company/mkgraphic/pkg/graphics"

// DisplayList is an immutable list of drawing operations.
// It can be replayed onto any Canvas implementation.
type DisplayList struct {
	ops    []displayOp
	extent graphics.Extent
}

// Paint replays the recorded operations onto the provided canvas.
func (d *DisplayList) Paint(canvas Canvas) {
	for _, op := range d.ops {
		op.execute(canvas)
	}
}

// Len returns the number of recorded operations.
func (d *DisplayList) Len() int {
	return len(d.ops)
}

// Extent returns the size recorded when the display list was created.
func (d *DisplayList) Extent() graphics.Extent {
	return d.extent
}

// PictureRecorder records drawing commands into a display list.
type PictureRecorder struct {
	ops       []displayOp
	recording bool
	extent    graphics.Extent
}

// BeginRecording starts a new recording session.
func (r *PictureRecorder) BeginRecording(extent graphics.Extent) Canvas {
	r.ops = r.ops[:0]
	r.recording = true
	r.extent = extent
	return &recordingCanvas{recorder: r, extent: extent}
}

// EndRecording finishes the recording and returns a display list.
func (r *PictureRecorder) EndRecording() *DisplayList {
	if !r.recording {
		return &DisplayList{extent: r.extent}
	}
	r.recording = false
	ops := make([]displayOp, len(r.ops))
	copy(ops, r.ops)
	return &DisplayList{ops: ops, extent: r.extent}
}

func (r *PictureRecorder) append(op displayOp) {
	if !r.recording {
		return
	}
	r.ops = append(r.ops, op)
}

type displayOp interface {
	execute(canvas Canvas)
}

type recordingCanvas struct {
	recorder *PictureRecorder
	extent   graphics.Extent
}

func (c *recordingCanvas) Save() {
	c.recorder.append(opSave{})
}

func (c *recordingCanvas) Restore() {
	c.recorder.append(opRestore{})
}

func (c *recordingCanvas) Translate(dx, dy float32) {
	c.recorder.append(opTranslate{dx: dx, dy: dy})
}

func (c *recordingCanvas) ClipRect(rect graphics.Rect) {
	c.recorder.append(opClipRect{rect: rect})
}

func (c *recordingCanvas) Clear(color graphics.Color) {
	c.recorder.append(opClear{color: color})
}

func (c *recordingCanvas) DrawRect(rect graphics.Rect, paint Paint) {
	c.recorder.append(opRect{rect: rect, paint: paint})
}

func (c *recordingCanvas) DrawRoundRect(rect graphics.Rect, radius float32, paint Paint) {
	c.recorder.append(opRoundRect{rect: rect, radius: radius, paint: paint})
}

func (c *recordingCanvas) DrawCircle(center graphics.Point, radius float32, paint Paint) {
	c.recorder.append(opCircle{center: center, radius: radius, paint: paint})
}

func (c *recordingCanvas) DrawLine(start, end graphics.Point, paint Paint) {
	c.recorder.append(opLine{start: start, end: end, paint: paint})
}

func (c *recordingCanvas) DrawText(layout *TextLayout, position graphics.Point, paint Paint) {
	c.recorder.append(opText{layout: layout, position: position, paint: paint})
}

func (c *recordingCanvas) Extent() graphics.Extent {
	return c.extent
}

type opSave struct{}

func (opSave) execute(canvas Canvas) {
	canvas.Save()
}

type opRestore struct{}

func (opRestore) execute(canvas Canvas) {
	canvas.Restore()
}

type opTranslate struct {
	dx, dy float32
}

func (op opTranslate) execute(canvas Canvas) {
	canvas.Translate(op.dx, op.dy)
}

type opClipRect struct {
	rect graphics.Rect
}

func (op opClipRect) execute(canvas Canvas) {
	canvas.ClipRect(op.rect)
}

type opClear struct {
	color graphics.Color
}

func (op opClear) execute(canvas Canvas) {
	canvas.Clear(op.color)
}

type opRect struct {
	rect  graphics.Rect
	paint Paint
}

func (op opRect) execute(canvas Canvas) {
	canvas.DrawRect(op.rect, op.paint)
}

type opRoundRect struct {
	rect   graphics.Rect
	radius float32
	paint  Paint
}

func (op opRoundRect) execute(canvas Canvas) {
	canvas.DrawRoundRect(op.rect, op.radius, op.paint)
}

type opCircle struct {
	center graphics.Point
	radius float32
	paint  Paint
}

func (op opCircle) execute(canvas Canvas) {
	canvas.DrawCircle(op.center, op.radius, op.paint)
}

type opLine struct {
	start, end graphics.Point
	paint      Paint
}

func (op opLine) execute(canvas Canvas) {
	canvas.DrawLine(op.start, op.end, op.paint)
}

type opText struct {
	layout   *TextLayout
	position graphics.Point
	paint    Paint
}

func (op opText) execute(canvas Canvas) {
	canvas.DrawText(op.layout, op.position, op.paint)
}
