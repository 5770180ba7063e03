package git_test

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/ripple/internal/adapters/git"
)

type nopLogger struct{}

func (nopLogger) Info(string) {}
func (nopLogger) Warn(string) {}
func (nopLogger) Error(error) {}

// runGit executes git in dir with a fixed identity so the tests work on
// bare CI machines.
func runGit(t *testing.T, dir string, args ...string) {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(),
		"GIT_AUTHOR_NAME=test", "GIT_AUTHOR_EMAIL=test@example.com",
		"GIT_COMMITTER_NAME=test", "GIT_COMMITTER_EMAIL=test@example.com",
	)
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, "git %v: %s", args, out)
}

func initRepo(t *testing.T) string {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}
	dir := t.TempDir()
	runGit(t, dir, "init", "--initial-branch=main")
	return dir
}

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	full := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o750))
	require.NoError(t, os.WriteFile(full, []byte(content), 0o600))
}

func TestChangedFiles(t *testing.T) {
	dir := initRepo(t)
	writeFile(t, dir, "packages/a/index.ts", "export {}\n")
	writeFile(t, dir, "README.md", "hello\n")
	runGit(t, dir, "add", ".")
	runGit(t, dir, "commit", "-m", "initial")

	// Modify a tracked file and add an untracked one.
	writeFile(t, dir, "packages/a/index.ts", "export const x = 1\n")
	writeFile(t, dir, "packages/b/index.ts", "export {}\n")

	source := git.NewDiffSource(nopLogger{})
	paths, err := source.ChangedFiles(context.Background(), dir, "HEAD")
	require.NoError(t, err)

	slices.Sort(paths)
	require.Equal(t, []string{
		"packages/a/index.ts",
		"packages/b/index.ts",
	}, paths)
}

func TestChangedFiles_RenameReportsBothSides(t *testing.T) {
	dir := initRepo(t)
	writeFile(t, dir, "packages/a/x.ts", "export {}\n")
	runGit(t, dir, "add", ".")
	runGit(t, dir, "commit", "-m", "initial")

	// A rename out of a package changes both packages: the source loses
	// the file, the destination gains it. git mv does not create the
	// destination directory, so make it first.
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "packages", "b"), 0o750))
	runGit(t, dir, "mv", "packages/a/x.ts", "packages/b/x.ts")

	source := git.NewDiffSource(nopLogger{})
	paths, err := source.ChangedFiles(context.Background(), dir, "HEAD")
	require.NoError(t, err)

	slices.Sort(paths)
	require.Equal(t, []string{
		"packages/a/x.ts",
		"packages/b/x.ts",
	}, paths)
}

func TestChangedFiles_NoChanges(t *testing.T) {
	dir := initRepo(t)
	writeFile(t, dir, "README.md", "hello\n")
	runGit(t, dir, "add", ".")
	runGit(t, dir, "commit", "-m", "initial")

	source := git.NewDiffSource(nopLogger{})
	paths, err := source.ChangedFiles(context.Background(), dir, "HEAD")
	require.NoError(t, err)
	require.Empty(t, paths)
}

func TestChangedFiles_BadBaseline(t *testing.T) {
	dir := initRepo(t)
	writeFile(t, dir, "README.md", "hello\n")
	runGit(t, dir, "add", ".")
	runGit(t, dir, "commit", "-m", "initial")

	source := git.NewDiffSource(nopLogger{})
	_, err := source.ChangedFiles(context.Background(), dir, "no-such-ref")
	require.Error(t, err)
}
