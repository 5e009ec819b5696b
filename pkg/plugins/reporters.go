package plugins

import (
	"context"
	"encoding/json"
	"os"

	"github.com/pakt-build/pakt/pkg/logging"
	"github.com/pakt-build/pakt/pkg/types"
)

const (
	LogReporterName  = "log-reporter"
	JSONReporterName = "json-reporter"
)

// LogReporter forwards build events to the structured logger
type LogReporter struct{}

func (r *LogReporter) Report(ctx context.Context, event types.Event) error {
	logger := logging.GetLogger("plugins.log-reporter")
	logger.Info().
		Str("event", event.Type).
		Fields(event.Fields).
		Msg(event.Message)
	return nil
}

// JSONReporter writes build events as JSON lines to stdout
type JSONReporter struct{}

func (r *JSONReporter) Report(ctx context.Context, event types.Event) error {
	return json.NewEncoder(os.Stdout).Encode(event)
}

func init() {
	MustRegister(&types.Plugin{
		PluginName: LogReporterName,
		Reporter:   &LogReporter{},
	})
	MustRegister(&types.Plugin{
		PluginName: JSONReporterName,
		Reporter:   &JSONReporter{},
	})
}
