// Package clipboard
package clipboard

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// Write clears the system clipboard, then sets it to text. Errors are
// reported to the caller for status display; nothing here is fatal.
func Write(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("clipboard not supported on this platform")
	}
	if err := clipboard.WriteAll(""); err != nil {
		return fmt.Errorf("clear clipboard: %w", err)
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("set clipboard: %w", err)
	}
	return nil
}
