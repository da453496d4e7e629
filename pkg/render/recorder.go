// pkg/render/recorder.go
package render

import "image/color"

// OpKind: тип записанной операции рисования
type OpKind int

const (
	OpFill OpKind = iota
	OpRect
	OpCircle
	OpTriangle
	OpLine
)

// Op: одна записанная операция. Сравнима через ==.
type Op struct {
	Kind  OpKind
	Args  [6]float32
	Width float32
	Color color.RGBA
}

// Recorder: Canvas, который ничего не рисует, а запоминает вызовы.
// Нужен для проверки порядка и детерминированности отрисовки без GPU.
type Recorder struct {
	Ops []Op
}

func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}

// Count возвращает число операций указанного типа.
func (r *Recorder) Count(kind OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

func (r *Recorder) Fill(clr color.Color) {
	r.add(Op{Kind: OpFill, Color: toRGBA(clr)})
}

func (r *Recorder) FillRect(x, y, width, height float32, clr color.Color) {
	r.add(Op{Kind: OpRect, Args: [6]float32{x, y, width, height}, Color: toRGBA(clr)})
}

func (r *Recorder) FillCircle(cx, cy, radius float32, clr color.Color) {
	r.add(Op{Kind: OpCircle, Args: [6]float32{cx, cy, radius}, Color: toRGBA(clr)})
}

func (r *Recorder) FillTriangle(x1, y1, x2, y2, x3, y3 float32, clr color.Color) {
	r.add(Op{Kind: OpTriangle, Args: [6]float32{x1, y1, x2, y2, x3, y3}, Color: toRGBA(clr)})
}

func (r *Recorder) StrokeLine(x1, y1, x2, y2, width float32, clr color.Color) {
	r.add(Op{Kind: OpLine, Args: [6]float32{x1, y1, x2, y2}, Width: width, Color: toRGBA(clr)})
}

func (r *Recorder) add(op Op) {
	r.Ops = append(r.Ops, op)
}

func toRGBA(clr color.Color) color.RGBA {
	return color.RGBAModel.Convert(clr).(color.RGBA)
}
