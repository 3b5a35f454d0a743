package aprsobj

// Message classes for dw_printf.
// Rather than terminal colours, each class now picks a charmbracelet/log level.
// There is no separate text_color_set() call: the class is the first
// argument of every dw_printf(class, format, ...).

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

type dw_color_e int

const (
	DW_COLOR_INFO    dw_color_e = iota /* black */
	DW_COLOR_ERROR                     /* red */
	DW_COLOR_REC                       /* green */
	DW_COLOR_DECODED                   /* blue */
	DW_COLOR_XMIT                      /* magenta */
	DW_COLOR_DEBUG                     /* dark_green */
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "aprsobj",
})

// SetLogger replaces the package logger.  Commands use this to pick the
// level and output; tests use it to capture or silence output.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(os.Stderr)
	}
	logger = l
}

// Logger returns the package logger.
func Logger() *log.Logger {
	return logger
}

func dw_printf(class dw_color_e, format string, a ...any) {
	var msg = strings.TrimRight(fmt.Sprintf(format, a...), "\n")

	switch class {
	case DW_COLOR_ERROR:
		logger.Error(msg)
	case DW_COLOR_DEBUG:
		logger.Debug(msg)
	case DW_COLOR_XMIT:
		logger.Info(msg, "dir", "xmit")
	case DW_COLOR_REC, DW_COLOR_DECODED:
		logger.Info(msg, "dir", "rec")
	default:
		logger.Info(msg)
	}
}
