package device

import (
	"context"
	"fmt"
	"os/exec"

	"spendwise/internal/domain/export"
)

// CommandShareSink hands an exported file to an external command, e.g.
// xdg-open or a custom upload script. An empty command means this device
// cannot share.
type CommandShareSink struct {
	command string
}

func NewCommandShareSink(command string) *CommandShareSink {
	return &CommandShareSink{command: command}
}

// IsAvailable reports whether the share command is configured and resolvable
// on PATH.
func (s *CommandShareSink) IsAvailable(_ context.Context) bool {
	if s.command == "" {
		return false
	}
	_, err := exec.LookPath(s.command)
	return err == nil
}

// Share invokes the command with the file path as its only argument. The
// MIME type is exposed through the environment for scripts that need it.
func (s *CommandShareSink) Share(ctx context.Context, uri string, opts export.ShareOptions) error {
	cmd := exec.CommandContext(ctx, s.command, uri)
	cmd.Env = append(cmd.Environ(), "SHARE_MIME_TYPE="+opts.MimeType)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("share command %s failed: %w: %s", s.command, err, out)
	}
	return nil
}
