package utils

import (
	"errors"
	"fmt"
)

func AppendfNoEscape(buf []byte, format string, v ...any) []byte {
	return fmt.Appendf(buf, format, v...)
}

func SprintfNoEscape(format string, v ...any) string {
	buf := getLogBuf()
	defer returnLogBuf(buf)
	buf = fmt.Appendf(buf, format, v...)
	return string(buf)
}

// ErrorfNoEscape formats an error without wrapping. Use fmt.Errorf when %w is needed
func ErrorfNoEscape(format string, v ...any) error {
	return errors.New(SprintfNoEscape(format, v...))
}
