package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"fern/internal/ast"
	"fern/internal/diag"
	"fern/internal/project"
	"fern/internal/source"
	"fern/internal/trace"
)

// SourceExt is the extension of Fern source files.
const SourceExt = ".fern"

// DirOptions configures ParseDir.
type DirOptions struct {
	MaxDiagnostics int
	// Jobs limits concurrent workers; <= 0 means GOMAXPROCS.
	Jobs int
	// Cache, если не nil, используется для пропуска неизменённых файлов.
	// Cached files come back without a Program.
	Cache *DiskCache
	// Progress receives per-file events; may be nil.
	Progress ProgressSink
}

// FileResult содержит результат разбора одного файла
type FileResult struct {
	Path    string        // путь как в FileSet
	FileID  source.FileID // ID файла в FileSet
	Program *ast.Program  // nil при ошибке или попадании в кэш
	Defs    []DefSummary
	Bag     *diag.Bag
	Cached  bool
	Elapsed time.Duration
}

// ListSourceFiles возвращает отсортированный список всех *.fern файлов в директории
func ListSourceFiles(dir string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			// скрытые каталоги (.git, .cache) пропускаем
			if path != dir && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasSuffix(path, SourceExt) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Сортируем для детерминированного порядка
	sort.Strings(files)
	return files, nil
}

// ParseDir parses every source file under dir concurrently. Results are in
// sorted path order regardless of Jobs. A file that fails to load yields an
// IO diagnostic in its own Bag rather than an error; the returned error is
// reserved for directory walking and cancellation.
func ParseDir(ctx context.Context, dir string, opts DirOptions) (*source.FileSet, []FileResult, error) {
	span, ctx := trace.Start(ctx, trace.ScopeRun, "parse-dir")
	defer span.End("")

	files, err := ListSourceFiles(dir)
	if err != nil {
		return nil, nil, err
	}
	span.Attr("files", strconv.Itoa(len(files)))

	fileSet := source.NewFileSetWithBase(dir)
	if len(files) == 0 {
		return fileSet, nil, nil
	}

	for _, path := range files {
		emit(opts.Progress, Event{File: path, Stage: StageLoad, Status: StatusQueued})
	}

	// Загрузка последовательная: FileSet не потокобезопасен
	loadSpan, _ := trace.Start(ctx, trace.ScopePhase, "load")
	fileIDs := make([]source.FileID, len(files))
	loadErrors := make([]error, len(files))
	failed := 0
	for i, path := range files {
		fileIDs[i], loadErrors[i] = fileSet.Load(path)
		if loadErrors[i] != nil {
			failed++
			// пустой виртуальный файл, чтобы диагностике было к чему привязаться
			fileIDs[i] = fileSet.AddVirtual(path, nil)
		}
	}
	loadSpan.Attr("failed", strconv.Itoa(failed)).End("")

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Результаты (индексы уникальны для каждой горутины, мьютекс не нужен)
	results := make([]FileResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			start := time.Now()
			fileSpan, fileCtx := trace.Start(gctx, trace.ScopeFile, path)

			if loadErrors[i] != nil {
				bag := diag.NewBag(opts.MaxDiagnostics)
				bag.Add(diag.NewError(diag.IOLoadFileError, fileIDs[i], source.Span{},
					"failed to load "+path+": "+loadErrors[i].Error()))
				results[i] = FileResult{Path: path, FileID: fileIDs[i], Bag: bag, Elapsed: time.Since(start)}
				fileSpan.End("load error")
				emit(opts.Progress, Event{File: path, Stage: StageLoad, Status: StatusError, Err: loadErrors[i]})
				return nil
			}

			results[i] = processFile(fileCtx, fileSet, fileIDs[i], path, opts)
			results[i].Path = path
			results[i].Elapsed = time.Since(start)

			status := StatusDone
			if results[i].Bag.HasErrors() {
				status = StatusError
			}
			stage := StageParse
			if results[i].Cached {
				stage = StageCache
			}
			fileSpan.End(string(status))
			emit(opts.Progress, Event{
				File:    path,
				Stage:   stage,
				Status:  status,
				Defs:    len(results[i].Defs),
				Elapsed: results[i].Elapsed,
			})
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}

// processFile runs lex+parse for one loaded file, consulting the cache first.
func processFile(ctx context.Context, fileSet *source.FileSet, id source.FileID, path string, opts DirOptions) FileResult {
	file := fileSet.Get(id)

	var key project.Digest
	if opts.Cache != nil {
		key = KeyFor(file)
		cacheSpan, _ := trace.Start(ctx, trace.ScopePhase, "cache")
		var cached CachedResult
		ok, err := opts.Cache.Get(key, &cached)
		switch {
		case err != nil:
			cacheSpan.End("error: " + err.Error())
		case ok:
			bag := diag.NewBag(opts.MaxDiagnostics)
			for _, d := range cached.restore(id) {
				bag.Add(d)
			}
			cacheSpan.Attr("defs", strconv.Itoa(len(cached.Defs))).End("hit")
			return FileResult{FileID: id, Defs: cached.Defs, Bag: bag, Cached: true}
		default:
			cacheSpan.End("miss")
		}
	}

	emit(opts.Progress, Event{File: path, Stage: StageParse, Status: StatusWorking})
	res := parseFile(ctx, fileSet, id, ParseOptions{MaxDiagnostics: opts.MaxDiagnostics})
	out := FileResult{
		FileID:  id,
		Program: res.Program,
		Defs:    res.Defs(),
		Bag:     res.Bag,
	}

	if opts.Cache != nil {
		payload := &CachedResult{
			Path:        file.Path,
			Defs:        out.Defs,
			Diagnostics: append([]diag.Diagnostic(nil), res.Bag.Items()...),
		}
		if err := opts.Cache.Put(key, payload); err != nil {
			// кэш необязателен: ошибка записи не ломает результат
			trace.Point(ctx, trace.ScopeFile, "cache-write", err.Error())
		}
	}
	return out
}
