package utils

import (
	"errors"
	"io"
	"os"
)

// SafeClose closes c and logs the error if any. io.EOF and os.ErrClosed are ignored.
func SafeClose(c io.Closer) {
	if c == nil {
		return
	}
	if err := c.Close(); err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, os.ErrClosed) {
		Logger().Warn("failed to close", ErrLog(err))
	}
}
