package impl

import (
	"fmt"

	"github.com/visionex-project/visiondetect/pkg/utils"
)

// Mode selects how the returned annotations are scanned.
type Mode string

const (
	// Prints every annotation with its position.
	ModeText Mode = "text"
	// Returns the annotation that follows the word "ISBN".
	ModeISBN Mode = "isbn"
	// Looks for lottery numbers. Matching is off unless enabled with WithLottoMatching.
	ModeLotto Mode = "lotto"
)

// Modes lists every supported mode in help order.
var Modes = []Mode{ModeText, ModeISBN, ModeLotto}

// UnsupportedCommands are analysis commands mentioned in the help text that this client does not implement.
var UnsupportedCommands = []string{"faces", "labels", "landmarks", "logos", "safe-search", "properties", "web", "crop"}

func ParseMode(command string) (Mode, error) {
	mode := Mode(command)
	if utils.Contains(Modes, mode) {
		return mode, nil
	}
	if utils.Contains(UnsupportedCommands, command) {
		return "", &UsageError{Message: fmt.Sprintf("%q is not supported by this client", command)}
	}
	return "", &UsageError{Message: fmt.Sprintf("unknown command %q", command)}
}
