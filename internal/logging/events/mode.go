package events

import "github.com/atomicstack/hintnav/internal/logging"

type ModeTracer struct{}

type KeyTracer struct{}

type FocusTracer struct{}

var (
	Mode  = ModeTracer{}
	Key   = KeyTracer{}
	Focus = FocusTracer{}
)

func (ModeTracer) Transition(from, to string) {
	logging.Trace("mode.transition", map[string]interface{}{"from": from, "to": to})
}

func (KeyTracer) PassThrough(mode, key string, textFocus bool) {
	logging.Trace("key.pass", map[string]interface{}{"mode": mode, "key": key, "textFocus": textFocus})
}

func (KeyTracer) Binding(key string) {
	logging.Trace("key.binding", map[string]interface{}{"key": key})
}

func (FocusTracer) DefocusScheduled(from string) {
	logging.Trace("focus.defocus.scheduled", map[string]interface{}{"from": from})
}

func (FocusTracer) Defocus(target string, err error) {
	payload := map[string]interface{}{"target": target}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("focus.defocus", payload)
}
