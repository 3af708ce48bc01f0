package events

import "github.com/atomicstack/hintnav/internal/logging"

type SearchTracer struct{}

type BindingTracer struct{}

type CommandTracer struct{}

type ActionTracer struct{}

var (
	Search  = SearchTracer{}
	Binding = BindingTracer{}
	Command = CommandTracer{}
	Action  = ActionTracer{}
)

func (SearchTracer) Open() {
	logging.Trace("search.open", nil)
}

func (SearchTracer) Query(query string, matches int) {
	logging.Trace("search.query", map[string]interface{}{"query": query, "matches": matches})
}

func (SearchTracer) Jump(widget, query string) {
	logging.Trace("search.jump", map[string]interface{}{"widget": widget, "query": query})
}

func (SearchTracer) Close() {
	logging.Trace("search.close", nil)
}

func (BindingTracer) Reload(path string, count int) {
	logging.Trace("binding.reload", map[string]interface{}{"path": path, "count": count})
}

func (BindingTracer) ReloadError(path string, err error) {
	logging.Trace("binding.reload.error", map[string]interface{}{"path": path, "error": errString(err)})
}

func (ActionTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("action.error", map[string]interface{}{"error": err.Error()})
}

func (ActionTracer) Success(info string) {
	logging.Trace("action.success", map[string]interface{}{"info": info})
}

func (CommandTracer) Queue(id, label string) {
	logging.Trace("command.queue", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Skip(id, label string) {
	logging.Trace("command.skip", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) NoOp(id, label string) {
	logging.Trace("command.noop", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Result(id, label, msgType string) {
	logging.Trace("command.result", map[string]interface{}{"id": id, "label": label, "msg": msgType})
}
