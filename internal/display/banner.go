package display

import (
	"fmt"
	"os"

	"github.com/backmassage/m4vify/internal/term"
)

// PrintBanner prints the startup banner; colored when colors are enabled.
func PrintBanner() {
	if term.Enabled() {
		fmt.Fprint(os.Stdout, term.Cyan)
	}
	fmt.Fprint(os.Stdout, `            _  _         _  __
 _ __ ___  | || |__   __(_)/ _|_   _
| '_ `+"`"+` _ \ | || |\ \ / /| | |_| | | |
| | | | | ||__   _|\ V / | |  _| |_| |
|_| |_| |_|   |_|   \_/  |_|_|  \__, |
                                |___/
`)
	if term.Enabled() {
		fmt.Fprintln(os.Stdout, term.NC)
	}
}
