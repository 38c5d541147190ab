// internal/transport/stdin.go
package transport

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"go-hex-defense/internal/command"
)

// ReadLines feeds every line of r into inbound until r is exhausted or ctx
// is cancelled. Malformed lines are dropped; the reader keeps going.
func ReadLines(ctx context.Context, r io.Reader, inbound *command.Inbound, logger *log.Logger) error {
	if logger == nil {
		logger = log.Default()
	}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		line := scanner.Text()
		if err := inbound.SubmitLine(line); err != nil && !errors.Is(err, command.ErrEmpty) {
			logger.Printf("stdin: %v", err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read commands: %w", err)
	}
	return nil
}
