package backend

import (
	"github.com/accntech/sharprinter/pkg/types"
)

// Call is one recorded backend call.
type Call struct {
	Op   string
	Args []interface{}
}

// Recorder keeps every call it receives. Fail makes a named operation
// return an error instead, which is how tests exercise failure paths with
// a real backend.
type Recorder struct {
	Calls    []Call
	failures map[string]error
}

var _ types.Backend = (*Recorder)(nil)

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{failures: make(map[string]error)}
}

// Fail makes every later call to op return err.
func (r *Recorder) Fail(op string, err error) *Recorder {
	if r.failures == nil {
		r.failures = make(map[string]error)
	}
	r.failures[op] = err
	return r
}

// Ops returns the recorded operation names in call order.
func (r *Recorder) Ops() []string {
	ops := make([]string, len(r.Calls))
	for i, c := range r.Calls {
		ops[i] = c.Op
	}
	return ops
}

// Lines returns the text of every EmitTextLine call.
func (r *Recorder) Lines() []string {
	var lines []string
	for _, c := range r.Calls {
		if c.Op == "EmitTextLine" {
			lines = append(lines, c.Args[0].(string))
		}
	}
	return lines
}

func (r *Recorder) record(op string, args ...interface{}) error {
	r.Calls = append(r.Calls, Call{Op: op, Args: args})
	return r.failures[op]
}

func (r *Recorder) Initialize(model string) error { return r.record("Initialize", model) }
func (r *Recorder) OpenConnection(conn string) error { return r.record("OpenConnection", conn) }
func (r *Recorder) CloseConnection() error { return r.record("CloseConnection") }
func (r *Recorder) Release() error { return r.record("Release") }
func (r *Recorder) FeedLines(count int) error { return r.record("FeedLines", count) }
func (r *Recorder) CutPaper(distance int) error { return r.record("CutPaper", distance) }

func (r *Recorder) EmitTextLine(text string, align types.HAlign, size types.TextSize) error {
	return r.record("EmitTextLine", text, align, size)
}

func (r *Recorder) EmitBarcode(data string, cfg types.BarcodeConfig) error {
	return r.record("EmitBarcode", data, cfg)
}

func (r *Recorder) EmitImage(path, label string, scale types.ScaleMode) error {
	return r.record("EmitImage", path, label, scale)
}

func (r *Recorder) OpenCashDrawer(pin types.DrawerPin, onMs, offMs int) error {
	return r.record("OpenCashDrawer", pin, onMs, offMs)
}
