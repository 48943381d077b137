package notify

import (
	"github.com/nanodraw/nanodraw/internal/consts"
	"github.com/nanodraw/nanodraw/internal/modules/logs"
)

// LogSink is the default notification collaborator: generation lifecycle
// events end up in the structured log. The browser page gets its toasts from
// the HTTP response instead.
type LogSink struct{}

func (s *LogSink) Update(event int, data interface{}) {
	switch event {
	case consts.EventGenerateLoading:
		logs.Logger.Info().Interface("data", data).Msg("generation started")
	case consts.EventGenerateSucceed:
		logs.Logger.Info().Interface("data", data).Msg("generation succeeded")
	case consts.EventGenerateFailed:
		logs.Logger.Warn().Interface("data", data).Msg("generation failed")
	default:
		logs.Logger.Info().Int("event", event).Interface("data", data).Msg("notification")
	}
}
