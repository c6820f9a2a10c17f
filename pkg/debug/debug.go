// Package debug builds the logger used by the command line tools.
package debug

import (
	"fmt"
	"io"
	"reflect"
	"runtime"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
)

// NewLogger returns a console logger writing to w. With verbose set it logs
// at debug level and stamps every line with the time and caller.
func NewLogger(w io.Writer, verbose bool) zerolog.Logger {
	colorize := !color.NoColor
	out := zerolog.ConsoleWriter{Out: w, NoColor: !colorize, PartsExclude: []string{zerolog.TimestampFieldName}}
	l := zerolog.New(out).Level(zerolog.InfoLevel)
	if verbose {
		l = l.Level(zerolog.DebugLevel).
			Hook(TimeHook{}).
			Hook(CallerHook{WithColor: colorize})
	}
	return l
}

// skipFrames reads the caller skip count zerolog keeps on an event.
func skipFrames(e *zerolog.Event) int {
	v := reflect.ValueOf(e).Elem()
	field := v.FieldByName("skipFrame")
	if field.IsValid() && field.CanAddr() {
		return int(field.Int())
	}
	return 0
}

type TimeHook struct {
	Format string
}

func (t TimeHook) Run(e *zerolog.Event, _ zerolog.Level, _ string) {
	format := t.Format
	if format == "" {
		format = "15:04:05.0000"
	}
	e.Str("at", time.Now().Format(format))
}

type CallerHook struct {
	WithColor bool
}

func (c CallerHook) Run(e *zerolog.Event, _ zerolog.Level, _ string) {
	pc, file, line, ok := runtime.Caller(skipFrames(e) + 3)
	if !ok {
		return
	}
	pkg, _ := SplitFuncName(runtime.FuncForPC(pc).Name())
	e.Str("caller", FormatCaller(pkg, file, line, c.WithColor))
}

// SplitFuncName splits a runtime function name such as
// "github.com/walteh/golily/pkg/indent.(*engine).line" into its package path
// and the rest.
func SplitFuncName(name string) (pkg, function string) {
	lastSlash := max(strings.LastIndexByte(name, '/'), 0)
	firstDot := strings.IndexByte(name[lastSlash:], '.') + lastSlash
	if firstDot < lastSlash {
		return name, ""
	}

	pkg = name[:firstDot]
	function = name[firstDot+1:]
	return pkg, function
}

func FormatCaller(pkg, path string, number int, colorize bool) string {
	p := path[strings.LastIndexByte(path, '/')+1:]
	pkg = strings.TrimPrefix(pkg, "github.com/walteh/golily/")
	if colorize {
		p = color.New(color.Bold).Sprint(p)
		num := color.New(color.FgHiRed, color.Bold).Sprintf("%d", number)
		sep := color.New(color.Faint).Sprint(":")
		return fmt.Sprintf("%s%s%s%s%s", pkg, sep, p, sep, num)
	}
	return fmt.Sprintf("%s:%s:%d", pkg, p, number)
}
