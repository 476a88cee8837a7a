// Package logfields holds the slog keys shared by every package so that log
// lines stay greppable.
package logfields

import "log/slog"

const (
	KeyComponent = "component"
	KeyEvent     = "event"
	KeyFrame     = "frame"
	KeyDate      = "date"
	KeyText      = "text"
	KeyLang      = "lang"
	KeyMessage   = "message_id"
	KeyPattern   = "pattern"
	KeyPath      = "path"
	KeyError     = "error"
)

func Component(name string) slog.Attr { return slog.String(KeyComponent, name) }
func Event(name string) slog.Attr     { return slog.String(KeyEvent, name) }
func Frame(d string) slog.Attr        { return slog.String(KeyFrame, d) }
func Date(d string) slog.Attr         { return slog.String(KeyDate, d) }
func Text(s string) slog.Attr         { return slog.String(KeyText, s) }
func Lang(l string) slog.Attr         { return slog.String(KeyLang, l) }
func Pattern(p string) slog.Attr      { return slog.String(KeyPattern, p) }
func Path(p string) slog.Attr         { return slog.String(KeyPath, p) }

func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
