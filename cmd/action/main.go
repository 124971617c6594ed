package main

import (
	"errors"
	"fmt"
	"os"
)

// GateFailureError means every file was evaluated but the violation counts
// exceeded the configured thresholds.
type GateFailureError struct {
	Message string
}

func (e *GateFailureError) Error() string {
	return e.Message
}

func main() {
	if err := execute(); err != nil {
		var gate *GateFailureError
		if !errors.As(err, &gate) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
