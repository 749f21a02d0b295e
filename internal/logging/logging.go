package logging

import (
	"log/slog"
	"os"
	"strings"
)

// Config installs a JSON handler as the default logger, with the level and
// message keys renamed for log collectors.
func Config() {
	jsonHandler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == "level" {
				return slog.Attr{
					Key:   "severity",
					Value: slog.StringValue(strings.ToLower(a.Value.String())),
				}
			}

			if a.Key == "msg" {
				return slog.Attr{
					Key:   "message",
					Value: a.Value,
				}
			}

			return a
		},
	})

	slog.SetDefault(slog.New(jsonHandler))
}
