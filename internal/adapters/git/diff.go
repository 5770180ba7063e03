// Package git sources changed file paths from a git repository.
package git

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"go.trai.ch/ripple/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ChangeSource = (*DiffSource)(nil)

// DiffSource implements ports.ChangeSource using the git CLI.
type DiffSource struct {
	log ports.Logger
}

// NewDiffSource creates a new DiffSource.
func NewDiffSource(log ports.Logger) *DiffSource {
	return &DiffSource{log: log}
}

// ChangedFiles returns every path that differs between the working tree and
// the baseline ref, plus untracked files, so newly added packages are picked
// up before their first commit. Rename detection is disabled: a rename
// differs from the baseline on both sides, and collapsing it into the
// destination would hide the change from the source package. Git already
// reports repository-relative paths with "/" separators on every platform.
func (s *DiffSource) ChangedFiles(ctx context.Context, root, baseline string) ([]string, error) {
	diffed, err := s.run(ctx, root, "diff", "--name-only", "--no-renames", baseline)
	if err != nil {
		return nil, zerr.With(err, "baseline", baseline)
	}

	untracked, err := s.run(ctx, root, "ls-files", "--others", "--exclude-standard")
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(diffed)+len(untracked))
	paths := make([]string, 0, len(diffed)+len(untracked))
	for _, p := range append(diffed, untracked...) {
		if p == "" {
			continue
		}
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		paths = append(paths, p)
	}

	return paths, nil
}

// run executes a git subcommand in the repository root and returns its
// output split into lines.
func (s *DiffSource) run(ctx context.Context, root string, args ...string) ([]string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = root

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		wrapped := zerr.With(zerr.Wrap(err, "git command failed"), "args", strings.Join(args, " "))
		return nil, zerr.With(wrapped, "stderr", strings.TrimSpace(stderr.String()))
	}

	// Git warns on stderr even when it succeeds, e.g. about embedded
	// repositories. Surface those instead of swallowing them.
	if msg := strings.TrimSpace(stderr.String()); msg != "" {
		s.log.Warn(msg)
	}

	out := strings.TrimSpace(stdout.String())
	if out == "" {
		return nil, nil
	}
	return strings.Split(out, "\n"), nil
}
