package i18n

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"maps"
	"os"
	"path"
	"path/filepath"
)

// TranslationAdapter interface defines how translations are loaded
type TranslationAdapter interface {
	Load(ctx context.Context) (map[string]map[string]any, error)
}

// MapAdapter is a simple adapter that uses an in-memory map as the translation source
type MapAdapter struct {
	Data map[string]map[string]any
}

// Load implements the TranslationAdapter interface
func (a *MapAdapter) Load(_ context.Context) (map[string]map[string]any, error) {
	if a.Data == nil {
		return make(map[string]map[string]any), nil
	}
	return a.Data, nil
}

// MultiAdapter merges several sources. Later sources override keys of
// earlier ones, so a site catalog can be layered over the default catalog.
type MultiAdapter []TranslationAdapter

// Load implements the TranslationAdapter interface
func (a MultiAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	all := make(map[string]map[string]any)
	for _, src := range a {
		if src == nil {
			continue
		}
		translations, err := src.Load(ctx)
		if err != nil {
			return nil, err
		}
		merge(all, translations)
	}
	return all, nil
}

// FileAdapter loads translations from a single file.
type FileAdapter struct {
	parser Parser
	path   string
}

// NewFileAdapter creates a new FileAdapter instance
// Returns nil if parser is nil or path is empty
func NewFileAdapter(parser Parser, path string) *FileAdapter {
	if parser == nil || path == "" {
		return nil
	}
	return &FileAdapter{parser: parser, path: path}
}

// Load implements the TranslationAdapter interface
func (a *FileAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	if a.parser == nil {
		return nil, fmt.Errorf("parser is nil")
	}
	if a.path == "" {
		return nil, fmt.Errorf("file path is empty")
	}

	content, err := readFile(ctx, os.ReadFile, a.path)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, errors.Join(ErrLoadingFileCancelled, err)
		}
		return nil, errors.Join(ErrFailedToReadFile, err)
	}
	if len(content) == 0 {
		return nil, fmt.Errorf("translation file '%s' is empty", a.path)
	}

	translations, err := a.parser.Parse(ctx, string(content))
	if err != nil {
		return nil, errors.Join(ErrFailedToParseFile, err)
	}
	if translations == nil {
		return nil, fmt.Errorf("parser returned nil translations for file '%s'", a.path)
	}
	return translations, nil
}

// DirectoryAdapter loads and merges every file in a directory whose
// extension the parser supports.
type DirectoryAdapter struct {
	parser Parser
	path   string
}

// NewDirectoryAdapter creates a new DirectoryAdapter instance
// Returns nil if parser is nil or path is empty
func NewDirectoryAdapter(parser Parser, path string) *DirectoryAdapter {
	if parser == nil || path == "" {
		return nil
	}
	return &DirectoryAdapter{parser: parser, path: path}
}

// Load implements the TranslationAdapter interface. A file that fails to
// parse fails the whole load.
func (a *DirectoryAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	if a.parser == nil {
		return nil, fmt.Errorf("parser is nil")
	}
	if a.path == "" {
		return nil, fmt.Errorf("directory path is empty")
	}

	info, err := os.Stat(a.path)
	if err != nil {
		return nil, errors.Join(ErrFailedToAccessDirectory, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("path '%s' is not a directory", a.path)
	}

	entries, err := os.ReadDir(a.path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadDirectory, err)
	}

	all := make(map[string]map[string]any)
	for _, entry := range entries {
		if entry.IsDir() || !a.parser.SupportsFileExtension(filepath.Ext(entry.Name())) {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, errors.Join(ErrContextCancelledDuringProcessing, err)
		}
		translations, err := NewFileAdapter(a.parser, filepath.Join(a.path, entry.Name())).Load(ctx)
		if err != nil {
			return nil, err
		}
		merge(all, translations)
	}

	if len(all) == 0 {
		return nil, fmt.Errorf("no valid translation files found in directory '%s'", a.path)
	}
	return all, nil
}

// EmbeddedFsAdapter is an adapter that uses Go's embed.FS as the translation source
type EmbeddedFsAdapter struct {
	parser Parser
	fs     embed.FS
	dir    string // Directory in the embedded filesystem
}

// NewEmbeddedFsAdapter creates a new EmbeddedFsAdapter instance
// Returns nil if parser is nil or dir is empty
func NewEmbeddedFsAdapter(parser Parser, fs embed.FS, dir string) *EmbeddedFsAdapter {
	if parser == nil || dir == "" {
		return nil
	}
	return &EmbeddedFsAdapter{parser: parser, fs: fs, dir: dir}
}

// Load implements the TranslationAdapter interface
func (a *EmbeddedFsAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingTranslationsCancelled, err)
	}

	entries, err := a.fs.ReadDir(a.dir)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadEmbeddedDirectory, err)
	}

	all := make(map[string]map[string]any)
	for _, entry := range entries {
		if entry.IsDir() || !a.parser.SupportsFileExtension(path.Ext(entry.Name())) {
			continue
		}

		// embed.FS paths always use forward slashes.
		name := path.Join(a.dir, entry.Name())
		content, err := readFile(ctx, a.fs.ReadFile, name)
		if err != nil {
			if ctx.Err() != nil {
				return nil, errors.Join(ErrLoadingEmbeddedFileCancelled, err)
			}
			return nil, errors.Join(ErrFailedToReadEmbeddedFile, err)
		}
		if len(content) == 0 {
			return nil, fmt.Errorf("embedded translation file '%s' is empty", name)
		}

		translations, err := a.parser.Parse(ctx, string(content))
		if err != nil {
			return nil, errors.Join(ErrFailedToParseEmbeddedFile, err)
		}
		merge(all, translations)
	}

	if len(all) == 0 {
		return nil, fmt.Errorf("no valid translation files found in embedded directory '%s'", a.dir)
	}
	return all, nil
}

// readFile runs read in a goroutine so a cancelled context returns promptly.
func readFile(ctx context.Context, read func(string) ([]byte, error), name string) ([]byte, error) {
	type result struct {
		content []byte
		err     error
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	done := make(chan result, 1)
	go func() {
		content, err := read(name)
		done <- result{content, err}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case r := <-done:
		return r.content, r.err
	}
}

func merge(dst, src map[string]map[string]any) {
	for lang, translations := range src {
		if dst[lang] == nil {
			dst[lang] = make(map[string]any, len(translations))
		}
		maps.Copy(dst[lang], translations)
	}
}
