//go:build !linux

package main

import "golang.design/x/clipboard"

// copyToClipboard writes text to the system clipboard
func copyToClipboard(text string) error {
	if err := clipboard.Init(); err != nil {
		return err
	}
	clipboard.Write(clipboard.FmtText, []byte(text))
	return nil
}
