package commands

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/leapstack-labs/silisk/internal/cli/output"
	"github.com/leapstack-labs/silisk/pkg/parser"
)

// watchDebounce is how long check --watch waits for writes to settle.
const watchDebounce = 100 * time.Millisecond

// CheckOptions holds options for the check command.
type CheckOptions struct {
	Watch   bool
	Workers int
}

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	opts := &CheckOptions{}
	cmd := &cobra.Command{
		Use:   "check [paths...]",
		Short: "Check that SQL files parse",
		Long: `Parse every *.sql file under the given paths as a script of
';'-terminated statements and report the result per file.

Directories are walked recursively. Files are parsed concurrently.
The command exits non-zero if any file fails to parse.`,
		Example: `  # Check the current directory
  silisk check

  # Check specific files and directories
  silisk check schema.sql queries/

  # Keep checking as files change
  silisk check --watch queries/`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{"."}
			}
			return runCheck(cmd, args, opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.Watch, "watch", "w", false, "Re-check files when they change")
	cmd.Flags().IntVar(&opts.Workers, "workers", 0, "Number of files parsed in parallel (default from config)")

	return cmd
}

// fileResult is the outcome of checking one file.
type fileResult struct {
	Path       string
	Statements int
	Err        error
}

func runCheck(cmd *cobra.Command, paths []string, opts *CheckOptions) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer

	workers := opts.Workers
	if workers <= 0 {
		workers = cmdCtx.Cfg.Workers
	}

	files, err := collectSQLFiles(paths)
	if err != nil {
		return err
	}
	if len(files) == 0 && !opts.Watch {
		return fmt.Errorf("no .sql files found in %s", strings.Join(paths, ", "))
	}
	cmdCtx.Logger.Debug("checking files", "count", len(files), "workers", workers)

	results, err := checkFiles(cmd.Context(), files, cmdCtx.ParserConfig(), workers)
	if err != nil {
		return err
	}
	failed := renderResults(r, results)

	if opts.Watch {
		return watchPaths(cmd.Context(), paths, cmdCtx.Logger, func(changed []string) {
			renderResults(r, checkSequential(changed, cmdCtx.ParserConfig()))
		})
	}

	if failed > 0 {
		r.Info("%d of %d files failed", failed, len(results))
		return ErrReported
	}
	return nil
}

// collectSQLFiles expands paths into a sorted, de-duplicated list of .sql files.
// Explicitly named files are kept whatever their extension.
func collectSQLFiles(paths []string) ([]string, error) {
	var files []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("failed to stat %s: %w", p, err)
		}
		if !info.IsDir() {
			files = append(files, p)
			continue
		}
		err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && isSQLFile(path) {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to walk %s: %w", p, err)
		}
	}
	slices.Sort(files)
	return slices.Compact(files), nil
}

func isSQLFile(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".sql")
}

// checkFile parses one file as a script.
func checkFile(path string, cfg parser.Config) fileResult {
	data, err := os.ReadFile(path) //nolint:gosec // paths come from the user
	if err != nil {
		return fileResult{Path: path, Err: fmt.Errorf("failed to read file: %w", err)}
	}
	stmts, err := parser.ParseScript(string(data), cfg)
	return fileResult{Path: path, Statements: len(stmts), Err: err}
}

// checkFiles parses files concurrently with at most workers goroutines.
// Results keep the order of files.
func checkFiles(ctx context.Context, files []string, cfg parser.Config, workers int) ([]fileResult, error) {
	results := make([]fileResult, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, path := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = checkFile(path, cfg)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func checkSequential(files []string, cfg parser.Config) []fileResult {
	results := make([]fileResult, 0, len(files))
	for _, path := range files {
		results = append(results, checkFile(path, cfg))
	}
	return results
}

// renderResults prints one line or diagnostic per file and returns the
// number of failures.
func renderResults(r *output.Renderer, results []fileResult) int {
	failed := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
			r.FileDiagnostic(res.Path, res.Err)
			continue
		}
		r.Success(res.Path, res.Statements)
	}
	return failed
}

// watchPaths re-runs onChange with the .sql files written or created under
// paths, batching events that arrive within watchDebounce. It returns when
// ctx is cancelled.
func watchPaths(ctx context.Context, paths []string, logger *slog.Logger, onChange func([]string)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	scope := watchScope{files: make(map[string]struct{})}
	for _, p := range paths {
		isDir, err := watchDirRecursive(watcher, p)
		if err != nil {
			return fmt.Errorf("failed to watch %s: %w", p, err)
		}
		if isDir {
			scope.dirs = append(scope.dirs, filepath.Clean(p))
		} else {
			scope.files[filepath.Clean(p)] = struct{}{}
		}
	}
	logger.Info("watching for changes", "paths", paths)

	pending := make(map[string]struct{})
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if scope.inDir(event.Name) {
						_, _ = watchDirRecursive(watcher, event.Name)
					}
					continue
				}
			}
			if !scope.includes(event.Name) {
				continue
			}
			logger.Debug("file changed", "file", event.Name, "op", event.Op.String())
			pending[event.Name] = struct{}{}
			fire = time.After(watchDebounce)

		case <-fire:
			fire = nil
			changed := make([]string, 0, len(pending))
			for path := range pending {
				changed = append(changed, path)
			}
			clear(pending)
			slices.Sort(changed)
			onChange(changed)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("watcher error", "error", err)
		}
	}
}

// watchScope decides which changed files check --watch re-checks.
// A named file is watched through its parent directory, so siblings in
// that directory must be filtered out.
type watchScope struct {
	dirs  []string
	files map[string]struct{}
}

// includes reports whether path was named explicitly or is a .sql file
// under one of the watched directories.
func (s watchScope) includes(path string) bool {
	path = filepath.Clean(path)
	if _, ok := s.files[path]; ok {
		return true
	}
	return isSQLFile(path) && s.inDir(path)
}

// inDir reports whether path lies under one of the watched directories.
func (s watchScope) inDir(path string) bool {
	for _, dir := range s.dirs {
		rel, err := filepath.Rel(dir, filepath.Clean(path))
		if err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			return true
		}
	}
	return false
}

// watchDirRecursive adds a directory and all subdirectories to the watcher
// and reports whether path was a directory. A plain file is watched through
// its parent directory.
func watchDirRecursive(watcher *fsnotify.Watcher, path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	if !info.IsDir() {
		return false, watcher.Add(filepath.Dir(path))
	}
	return true, filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return watcher.Add(p)
		}
		return nil
	})
}
