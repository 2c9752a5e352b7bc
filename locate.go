package ignorefile

import (
	"bufio"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

const (
	// IgnoreFileName is the pattern file looked for at each level.
	IgnoreFileName = ".gitignore"

	// repoMarkerName is the directory that marks a repository root and
	// bounds the upward scan.
	repoMarkerName = ".git"
)

// Locate walks upward from start one directory at a time and returns
// the path of the first ignore file found. The scan stops without a
// result when a level contains a repository-root marker directory, or
// when the filesystem root is reached.
//
// The returned path names the file itself; the rule set built from it
// is rooted at the file's parent directory, which is not necessarily
// start.
func Locate(start string) (string, bool) {
	dir := filepath.Clean(start)

	for {
		candidate := filepath.Join(dir, IgnoreFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}

		if info, err := os.Stat(filepath.Join(dir, repoMarkerName)); err == nil && info.IsDir() {
			return "", false
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// Load reads the ignore file at path and compiles it into a RuleSet
// rooted at the file's parent directory. Read failures surface as an
// io *Error, invalid patterns as a compile *Error; both abort with no
// partial result.
func Load(path string) (*RuleSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, newIOError(path, err)
	}
	defer func() { _ = f.Close() }()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, newIOError(path, err)
	}

	rs, err := FromLines(lines, filepath.Dir(path))
	if err != nil {
		var e *Error
		if errors.As(err, &e) {
			e.Path = path
		}
		return nil, err
	}
	return rs, nil
}

// LocateAndLoad finds the ignore file governing start and compiles it.
// The second return is false when no governing file exists or when
// loading or compiling fails; failures are logged at debug level
// rather than returned, since callers treat both cases as "no rules
// apply".
func LocateAndLoad(start string) (*RuleSet, bool) {
	path, ok := Locate(start)
	if !ok {
		return nil, false
	}

	rs, err := Load(path)
	if err != nil {
		slog.Debug("skipping unloadable ignore file",
			slog.String("path", path),
			slog.String("error", err.Error()))
		return nil, false
	}
	return rs, true
}
