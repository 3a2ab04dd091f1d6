package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/dori/gestor/internal/store"
	"github.com/spf13/cobra"
)

// promptConfirm asks on out and reads the answer from in. Anything but y or
// yes declines, including end of input.
func promptConfirm(in io.Reader, out io.Writer) store.Confirm {
	reader := bufio.NewReader(in)
	return func(prompt string) bool {
		fmt.Fprintf(out, "%s (y/N) ", prompt)
		line, _ := reader.ReadString('\n')
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return true
		}
		return false
	}
}

// confirmer returns store.Yes for --force and a stdin prompt otherwise
func confirmer(cmd *cobra.Command) store.Confirm {
	if force, _ := cmd.Flags().GetBool("force"); force {
		return store.Yes
	}
	return promptConfirm(cmd.InOrStdin(), cmd.OutOrStdout())
}
