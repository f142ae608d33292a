// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/docbridge/internal/keymap"
)

// PromptResolver returns a resolver that asks on out for a content key and
// reads the answer from in. The known keys are listed with the prompt; an
// empty answer skips the document.
func PromptResolver(in io.Reader, out io.Writer) keymap.Resolver {
	reader := bufio.NewReader(in)
	return keymap.ResolverFunc(func(filename string) (string, bool) {
		fmt.Fprintf(out, "  Available keys: %s\n", strings.Join(keymap.KnownKeys(), ", "))
		fmt.Fprintf(out, "  Enter content key for %s (or press Enter to skip): ", filename)
		line, _ := reader.ReadString('\n')
		key := strings.TrimSpace(line)
		return key, key != ""
	})
}
