//go:build !unix && !tinygo

package main

import "os"

// Runtime-level stderr (panics) is not captured without Dup2.
func redirectStdIO(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	os.Stdout = f
	os.Stderr = f
	return nil
}
