package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/gucio32/morsekit/pkg/generator"
)

// progressBar redraws a one-line bar on w after every played symbol.
func progressBar(w io.Writer, width int) generator.ProgressFunc {
	return func(done, total int) {
		if total <= 0 {
			return
		}
		filled := width * done / total
		fmt.Fprintf(w, "\r[%s%s] %d/%d", strings.Repeat("#", filled), strings.Repeat("-", width-filled), done, total)
		if done >= total {
			fmt.Fprintln(w)
		}
	}
}
