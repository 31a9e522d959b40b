package driver

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"testing"

	"github.com/vmihailenco/msgpack/v5"

	"fern/internal/ast"
	"fern/internal/diag"
	"fern/internal/observ"
	"fern/internal/parser"
	"fern/internal/project"
)

func writeSource(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParseSourceModes(t *testing.T) {
	tests := []struct {
		name string
		mode Mode
		src  string
		want string
	}{
		{"type", ModeType, "A -> B", "(-> A B)"},
		{"term", ModeTerm, "f x", "(app f x)"},
		{"kind", ModeKind, "* -> *", "(-> * *)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ParseSource(context.Background(), "x.fern", []byte(tt.src), ParseOptions{Mode: tt.mode})
			if res.Err != nil {
				t.Fatalf("unexpected error: %v", res.Err)
			}
			if res.Node == nil || res.Program != nil {
				t.Fatalf("expected Node only, got node=%v program=%v", res.Node, res.Program)
			}
			if got := ast.String(res.Node); got != tt.want {
				t.Fatalf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestParseSourceProgram(t *testing.T) {
	src := "type Id = λa : *. a\n\ndef id : forall a : *. a -> a = λx : a. x\n"
	timer := observ.NewTimer()
	res := ParseSource(context.Background(), "prog.fern", []byte(src), ParseOptions{Timer: timer})
	if res.Err != nil || res.Bag.HasErrors() {
		t.Fatalf("unexpected error: %v", res.Err)
	}
	defs := res.Defs()
	want := []DefSummary{{Name: "Id", Kind: "type", Line: 1}, {Name: "id", Kind: "def", Line: 3}}
	if len(defs) != len(want) {
		t.Fatalf("defs = %+v", defs)
	}
	for i := range want {
		if defs[i] != want[i] {
			t.Errorf("def %d = %+v, want %+v", i, defs[i], want[i])
		}
	}
	if phases := timer.Report().Phases; len(phases) != 2 || phases[0].Name != "lex" || phases[1].Name != "parse" {
		t.Fatalf("unexpected phases %+v", phases)
	}
}

func TestParseSourceError(t *testing.T) {
	res := ParseSource(context.Background(), "bad.fern", []byte("def x : A = (f"), ParseOptions{})
	if res.Err == nil {
		t.Fatalf("expected parse error")
	}
	if res.Err.Kind != parser.TokenMismatch {
		t.Fatalf("kind = %v", res.Err.Kind)
	}
	if res.Program != nil {
		t.Fatalf("program must be nil on error")
	}
	items := res.Bag.Items()
	if len(items) != 1 || items[0].Code != diag.SynTokenMismatch {
		t.Fatalf("unexpected diagnostics %+v", items)
	}
	if items[0].File != res.File.ID {
		t.Fatalf("diagnostic bound to file %d, want %d", items[0].File, res.File.ID)
	}
}

func TestParseMissingFile(t *testing.T) {
	_, err := Parse(context.Background(), filepath.Join(t.TempDir(), "missing.fern"), ParseOptions{})
	if err == nil {
		t.Fatalf("expected load error")
	}
}

func TestParseModeNames(t *testing.T) {
	for name, want := range map[string]Mode{"": ModeProgram, "program": ModeProgram, "type": ModeType, "term": ModeTerm, "kind": ModeKind} {
		got, err := ParseMode(name)
		if err != nil || got != want {
			t.Errorf("ParseMode(%q) = %v, %v", name, got, err)
		}
	}
	if _, err := ParseMode("module"); err == nil {
		t.Errorf("expected error for unknown mode")
	}
}

func TestTokenizeSource(t *testing.T) {
	res := TokenizeSource("t.fern", []byte("λx. x"), 0)
	if res.Bag.HasErrors() {
		t.Fatalf("unexpected diagnostics")
	}
	// λ x . x EOF
	if len(res.Tokens) != 5 {
		t.Fatalf("got %d tokens: %v", len(res.Tokens), res.Tokens)
	}
}

func TestListSourceFilesSkipsHidden(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "b.fern", "")
	writeSource(t, dir, "a.fern", "")
	writeSource(t, dir, "sub/c.fern", "")
	writeSource(t, dir, ".cache/d.fern", "")
	writeSource(t, dir, "notes.txt", "")

	files, err := ListSourceFiles(dir)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{
		filepath.Join(dir, "a.fern"),
		filepath.Join(dir, "b.fern"),
		filepath.Join(dir, "sub", "c.fern"),
	}
	if len(files) != len(want) {
		t.Fatalf("files = %v", files)
	}
	for i := range want {
		if files[i] != want[i] {
			t.Errorf("files[%d] = %q, want %q", i, files[i], want[i])
		}
	}
}

func populate(t *testing.T, dir string) {
	t.Helper()
	writeSource(t, dir, "a.fern", "def a : A = x\n")
	writeSource(t, dir, "b.fern", "def b : A = (x\n")
	writeSource(t, dir, "c.fern", "type C = A\ndef c : C = y\n")
}

func TestParseDirDeterministic(t *testing.T) {
	dir := t.TempDir()
	populate(t, dir)

	for _, jobs := range []int{1, 4} {
		_, results, err := ParseDir(context.Background(), dir, DirOptions{Jobs: jobs})
		if err != nil {
			t.Fatalf("jobs=%d: %v", jobs, err)
		}
		if len(results) != 3 {
			t.Fatalf("jobs=%d: got %d results", jobs, len(results))
		}
		names := []string{filepath.Base(results[0].Path), filepath.Base(results[1].Path), filepath.Base(results[2].Path)}
		if names[0] != "a.fern" || names[1] != "b.fern" || names[2] != "c.fern" {
			t.Fatalf("jobs=%d: order %v", jobs, names)
		}
		if results[0].Bag.HasErrors() || results[2].Bag.HasErrors() {
			t.Fatalf("jobs=%d: unexpected errors", jobs)
		}
		if !results[1].Bag.HasErrors() || results[1].Program != nil {
			t.Fatalf("jobs=%d: b.fern should fail", jobs)
		}
		if len(results[2].Defs) != 2 || results[2].Program == nil {
			t.Fatalf("jobs=%d: c.fern defs %+v", jobs, results[2].Defs)
		}
	}
}

func TestParseDirLoadError(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "ok.fern", "def a : A = x\n")
	if err := os.Symlink(filepath.Join(dir, "nowhere"), filepath.Join(dir, "broken.fern")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	fs, results, err := ParseDir(context.Background(), dir, DirOptions{Jobs: 2})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results", len(results))
	}
	broken := results[0]
	if filepath.Base(broken.Path) != "broken.fern" {
		t.Fatalf("unexpected order: %s", broken.Path)
	}
	items := broken.Bag.Items()
	if len(items) != 1 || items[0].Code != diag.IOLoadFileError {
		t.Fatalf("unexpected diagnostics %+v", items)
	}
	if fs.Get(items[0].File).Path == "" {
		t.Fatalf("load diagnostic must point at a registered file")
	}
	if results[1].Bag.HasErrors() {
		t.Fatalf("ok.fern should parse")
	}
}

func TestParseDirEmpty(t *testing.T) {
	fs, results, err := ParseDir(context.Background(), t.TempDir(), DirOptions{})
	if err != nil || fs == nil || len(results) != 0 {
		t.Fatalf("got fs=%v results=%v err=%v", fs, results, err)
	}
}

func TestParseDirProgress(t *testing.T) {
	dir := t.TempDir()
	populate(t, dir)

	var (
		mu     sync.Mutex
		events []Event
	)
	sink := SinkFunc(func(evt Event) {
		mu.Lock()
		events = append(events, evt)
		mu.Unlock()
	})
	if _, _, err := ParseDir(context.Background(), dir, DirOptions{Jobs: 2, Progress: sink}); err != nil {
		t.Fatal(err)
	}

	final := map[string]Status{}
	queued := 0
	for _, evt := range events {
		if evt.Status == StatusQueued {
			queued++
			continue
		}
		if evt.Status == StatusDone || evt.Status == StatusError {
			final[filepath.Base(evt.File)] = evt.Status
		}
	}
	if queued != 3 {
		t.Fatalf("expected 3 queued events, got %d", queued)
	}
	want := map[string]Status{"a.fern": StatusDone, "b.fern": StatusError, "c.fern": StatusDone}
	for name, st := range want {
		if final[name] != st {
			t.Errorf("%s final status = %q, want %q", name, final[name], st)
		}
	}
}

func TestParseDirCache(t *testing.T) {
	dir := t.TempDir()
	populate(t, dir)
	cache, err := NewDiskCache(filepath.Join(t.TempDir(), "cache"))
	if err != nil {
		t.Fatal(err)
	}

	_, first, err := ParseDir(context.Background(), dir, DirOptions{Jobs: 2, Cache: cache})
	if err != nil {
		t.Fatal(err)
	}
	for _, r := range first {
		if r.Cached {
			t.Fatalf("%s: cold run must not hit the cache", r.Path)
		}
	}

	fs, second, err := ParseDir(context.Background(), dir, DirOptions{Jobs: 2, Cache: cache})
	if err != nil {
		t.Fatal(err)
	}
	for i, r := range second {
		if !r.Cached {
			t.Fatalf("%s: warm run should hit the cache", r.Path)
		}
		if r.Program != nil {
			t.Fatalf("%s: cached result carries no tree", r.Path)
		}
		if len(r.Defs) != len(first[i].Defs) || r.Bag.Len() != first[i].Bag.Len() {
			t.Fatalf("%s: cached result differs", r.Path)
		}
		for _, d := range r.Bag.Items() {
			if d.File != r.FileID || fs.Get(d.File).Path == "" {
				t.Fatalf("%s: diagnostic not rebound", r.Path)
			}
		}
	}
	if second[1].Bag.Items()[0].Code != diag.SynTokenMismatch {
		t.Fatalf("cached diagnostic lost its code")
	}

	if err := cache.DropAll(); err != nil {
		t.Fatal(err)
	}
	_, third, err := ParseDir(context.Background(), dir, DirOptions{Cache: cache})
	if err != nil {
		t.Fatal(err)
	}
	for _, r := range third {
		if r.Cached {
			t.Fatalf("%s: cache should be empty after DropAll", r.Path)
		}
	}
}

func TestDiskCacheSchemaMismatch(t *testing.T) {
	cache, err := NewDiskCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	res := ParseSource(context.Background(), "k.fern", []byte("def a : A = x"), ParseOptions{})
	key := KeyFor(res.File)

	var out CachedResult
	if ok, err := cache.Get(key, &out); ok || err != nil {
		t.Fatalf("empty cache: ok=%v err=%v", ok, err)
	}
	if err := cache.Put(key, &CachedResult{Path: "k.fern", Defs: res.Defs()}); err != nil {
		t.Fatal(err)
	}
	if ok, err := cache.Get(key, &out); !ok || err != nil || out.Defs[0].Name != "a" {
		t.Fatalf("round trip: ok=%v err=%v out=%+v", ok, err, out)
	}

	// запись со старой схемой считается промахом
	stale := &CachedResult{Path: "k.fern"}
	if err := cache.Put(key, stale); err != nil {
		t.Fatal(err)
	}
	rewriteSchema(t, cache, key, diskCacheSchemaVersion+1)
	if ok, err := cache.Get(key, &out); ok || err != nil {
		t.Fatalf("stale entry: ok=%v err=%v", ok, err)
	}
	if out.Path != "" {
		t.Fatalf("stale entry must be cleared, got %+v", out)
	}
}

func rewriteSchema(t *testing.T, c *DiskCache, key project.Digest, schema uint16) {
	t.Helper()
	raw, err := msgpack.Marshal(&CachedResult{Schema: schema, Path: "k.fern"})
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(c.pathFor(key), raw, 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestNilDiskCache(t *testing.T) {
	var c *DiskCache
	if err := c.Put(KeyFor(TokenizeSource("n", nil, 0).File), &CachedResult{}); err != nil {
		t.Fatal(err)
	}
	if c.Dir() != "" || c.DropAll() != nil {
		t.Fatalf("nil cache must be inert")
	}
}

func TestSummarizeOrder(t *testing.T) {
	res := ParseSource(context.Background(), "s.fern", []byte("def z : A = x\ndef y : A = x\ntype X = A"), ParseOptions{})
	defs := res.Defs()
	names := make([]string, len(defs))
	for i, d := range defs {
		names[i] = d.Name
	}
	if sort.StringsAreSorted(names) {
		t.Fatalf("summary must keep source order, got %v", names)
	}
	if names[0] != "z" || defs[2].Kind != "type" {
		t.Fatalf("unexpected summary %+v", defs)
	}
}

func TestParseDirTestdata(t *testing.T) {
	root := filepath.Join("..", "..", "testdata")
	_, results, err := ParseDir(context.Background(), root, DirOptions{Jobs: 3})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) == 0 {
		t.Fatalf("no testdata found under %s", root)
	}
	for _, r := range results {
		wantErr := filepath.Base(filepath.Dir(r.Path)) == "errors"
		if got := r.Bag.HasErrors(); got != wantErr {
			t.Errorf("%s: HasErrors = %v, want %v", r.Path, got, wantErr)
		}
	}
}
