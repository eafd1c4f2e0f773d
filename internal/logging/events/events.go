package events

import "github.com/mfletcher/duolist/internal/logging"

type AppTracer struct{}

type FilterTracer struct{}

type WidgetTracer struct{}

var (
	App    = AppTracer{}
	Filter = FilterTracer{}
	Widget = WidgetTracer{}
)

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Submit(field string, count int) {
	logging.Trace("app.submit", map[string]interface{}{"field": field, "chosen": count})
}

func (AppTracer) Cancel(field string) {
	logging.Trace("app.cancel", map[string]interface{}{"field": field})
}

func (AppTracer) Reload(path string, count int) {
	logging.Trace("app.reload", map[string]interface{}{"path": path, "items": count})
}

func (FilterTracer) Applied(listID, query string, shown int) {
	logging.Trace("filter.apply", map[string]interface{}{
		"list":  listID,
		"query": query,
		"shown": shown,
	})
}

func (FilterTracer) Cleared(listID string) {
	logging.Trace("filter.clear", map[string]interface{}{"list": listID})
}

func (FilterTracer) Cursor(listID string, pos int) {
	logging.Trace("filter.cursor", map[string]interface{}{"list": listID, "cursor": pos})
}

func (FilterTracer) WordBackspace(listID, query string) {
	logging.Trace("filter.word-backspace", map[string]interface{}{"list": listID, "query": query})
}

func (WidgetTracer) Move(fromID, toID string, values []string) {
	logging.Trace("widget.move", map[string]interface{}{
		"from":   fromID,
		"to":     toID,
		"values": values,
	})
}

func (WidgetTracer) MoveAll(fromID, toID string, count int) {
	logging.Trace("widget.move-all", map[string]interface{}{
		"from":  fromID,
		"to":    toID,
		"count": count,
	})
}

func (WidgetTracer) Highlight(listID string, index int) {
	logging.Trace("widget.highlight", map[string]interface{}{"list": listID, "index": index})
}

func (WidgetTracer) UnknownList(listID string) {
	logging.Trace("widget.unknown-list", map[string]interface{}{"list": listID})
}

func (WidgetTracer) Sorted(listID string) {
	logging.Trace("widget.sorted", map[string]interface{}{"list": listID})
}
