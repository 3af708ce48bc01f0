package events

import "github.com/atomicstack/hintnav/internal/logging"

type HintTracer struct{}

var Hint = HintTracer{}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

func (HintTracer) Show(kind string, count int) {
	logging.Trace("hint.show", map[string]interface{}{"kind": kind, "count": count})
}

func (HintTracer) NoTargets(kind string) {
	logging.Trace("hint.no-targets", map[string]interface{}{"kind": kind})
}

func (HintTracer) Narrow(input string, matching int) {
	logging.Trace("hint.narrow", map[string]interface{}{"input": input, "matching": matching})
}

func (HintTracer) Activate(label, widget string, row int, err error) {
	payload := map[string]interface{}{"label": label, "widget": widget}
	if row >= 0 {
		payload["row"] = row
	}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("hint.activate", payload)
}

func (HintTracer) Cancel(input string) {
	logging.Trace("hint.cancel", map[string]interface{}{"input": input})
}

func (HintTracer) NoMatch(input, key string) {
	logging.Trace("hint.no-match", map[string]interface{}{"input": input, "key": key})
}

func (HintTracer) Stale(widget string, row int, err error) {
	logging.Trace("hint.stale", map[string]interface{}{"widget": widget, "row": row, "error": errString(err)})
}
