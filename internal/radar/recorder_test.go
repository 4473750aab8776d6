package radar

// recorder is a Canvas that captures draw calls by name.
type recorder struct {
	size  float64
	calls []drawCall
}

type drawCall struct {
	op    string
	x, y  float64
	r     float64
	paint Paint
}

func newRecorder(size float64) *recorder {
	return &recorder{size: size}
}

func (r *recorder) Size() float64 { return r.size }

func (r *recorder) Fade(alpha float64) {
	r.calls = append(r.calls, drawCall{op: "fade", paint: Paint{Alpha: alpha}})
}

func (r *recorder) StrokeCircle(cx, cy, rad, width float64, p Paint) {
	r.calls = append(r.calls, drawCall{op: "strokeCircle", x: cx, y: cy, r: rad, paint: p})
}

func (r *recorder) FillCircle(cx, cy, rad float64, p Paint) {
	r.calls = append(r.calls, drawCall{op: "fillCircle", x: cx, y: cy, r: rad, paint: p})
}

func (r *recorder) StrokeLine(x0, y0, x1, y1, width float64, p Paint) {
	r.calls = append(r.calls, drawCall{op: "line", x: x0, y: y0, paint: p})
}

func (r *recorder) FillWedge(cx, cy, rad, fromDeg, toDeg float64, inner, outer Paint) {
	r.calls = append(r.calls, drawCall{op: "wedge", x: fromDeg, y: toDeg, r: rad, paint: outer})
}

func (r *recorder) count(op string) int {
	n := 0
	for _, c := range r.calls {
		if c.op == op {
			n++
		}
	}
	return n
}

func (r *recorder) first(op string) (drawCall, bool) {
	for _, c := range r.calls {
		if c.op == op {
			return c, true
		}
	}
	return drawCall{}, false
}
