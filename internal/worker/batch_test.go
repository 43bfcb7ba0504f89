package worker

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gracobjo/sentencias/internal/model"
)

// fakeAnalyzer fails on paths containing "roto" and records concurrency
type fakeAnalyzer struct {
	active  atomic.Int32
	maxSeen atomic.Int32
}

func (f *fakeAnalyzer) AnalyzeFile(ctx context.Context, path string) (*model.DocumentAnalysis, error) {
	n := f.active.Add(1)
	defer f.active.Add(-1)
	for {
		max := f.maxSeen.Load()
		if n <= max || f.maxSeen.CompareAndSwap(max, n) {
			break
		}
	}
	if strings.Contains(path, "roto") {
		return nil, errors.New("unreadable document")
	}
	return &model.DocumentAnalysis{
		ID:        filepath.Base(path),
		Processed: true,
	}, nil
}

func TestProcessFilesOrderAndIsolation(t *testing.T) {
	paths := []string{"a.txt", "roto.txt", "b.txt", "c.txt"}
	b := NewBatchProcessor(&fakeAnalyzer{}, 3)

	results := b.ProcessFiles(context.Background(), paths)
	if len(results) != len(paths) {
		t.Fatalf("got %d results, want %d", len(results), len(paths))
	}
	for i, r := range results {
		if r.Path != paths[i] {
			t.Errorf("result %d path = %q, want %q", i, r.Path, paths[i])
		}
		if r.Analysis == nil {
			t.Fatalf("result %d has nil analysis", i)
		}
	}

	broken := results[1]
	if broken.Err == nil {
		t.Error("broken document reported no error")
	}
	if broken.Analysis.Error == "" || broken.Analysis.Processed {
		t.Errorf("broken document analysis = %+v", broken.Analysis)
	}
	if results[0].Err != nil || results[2].Err != nil || results[3].Err != nil {
		t.Error("healthy documents affected by the broken one")
	}
}

func TestProcessFilesEmpty(t *testing.T) {
	b := NewBatchProcessor(&fakeAnalyzer{}, 2)
	if got := b.ProcessFiles(context.Background(), nil); len(got) != 0 {
		t.Errorf("got %d results for empty input", len(got))
	}
}

func TestProcessDirFiltersUnsupported(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"s1.txt", "s2.html", "imagen.png", "notas.md"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0o755); err != nil {
		t.Fatal(err)
	}

	paths, err := ListDocuments(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) != 3 {
		t.Fatalf("listed %d documents, want 3: %v", len(paths), paths)
	}
	for _, p := range paths {
		if strings.HasSuffix(p, ".png") {
			t.Errorf("unsupported file listed: %s", p)
		}
	}
}

func TestReadPathsFromFile(t *testing.T) {
	list := filepath.Join(t.TempDir(), "docs.lst")
	content := "a.txt\n\n# comentario\nb.txt\na.txt\n"
	if err := os.WriteFile(list, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	paths, err := ReadPathsFromFile(list)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"a.txt", "b.txt"}
	if len(paths) != len(want) {
		t.Fatalf("paths = %v, want %v", paths, want)
	}
	for i := range want {
		if paths[i] != want[i] {
			t.Errorf("paths[%d] = %q, want %q", i, paths[i], want[i])
		}
	}
}

func TestConcurrencyBounded(t *testing.T) {
	analyzer := &fakeAnalyzer{}
	b := NewBatchProcessor(analyzer, 2)

	paths := make([]string, 20)
	for i := range paths {
		paths[i] = filepath.Join("docs", "s", "doc.txt")
	}
	results := b.ProcessFiles(context.Background(), paths)

	if len(results) != len(paths) {
		t.Fatalf("got %d results, want %d", len(results), len(paths))
	}
	if max := analyzer.maxSeen.Load(); max > 2 {
		t.Errorf("observed %d concurrent analyses, limit is 2", max)
	}
}

// Corpora far exceed the pool's channel buffers. context.Background has a
// nil Done channel, so this also covers the non-cancellable path.
func TestProcessFilesLargeCorpus(t *testing.T) {
	b := NewBatchProcessor(&fakeAnalyzer{}, 2)

	paths := make([]string, 60)
	for i := range paths {
		paths[i] = filepath.Join("docs", fmt.Sprintf("sentencia_%03d.txt", i))
	}
	results := b.ProcessFiles(context.Background(), paths)

	if len(results) != len(paths) {
		t.Fatalf("got %d results, want %d", len(results), len(paths))
	}
	for i, r := range results {
		if r.Path != paths[i] {
			t.Fatalf("result %d path = %q, want %q", i, r.Path, paths[i])
		}
	}
}

func TestProcessFilesCancellation(t *testing.T) {
	analyzer := &fakeAnalyzer{}
	b := NewBatchProcessor(analyzer, 2)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	paths := make([]string, 40)
	for i := range paths {
		paths[i] = filepath.Join("docs", "doc.txt")
	}
	results := b.ProcessFiles(ctx, paths)

	// An already-cancelled context must return promptly with whatever
	// subset completed, never hang on submission.
	if len(results) > len(paths) {
		t.Fatalf("got %d results for %d paths", len(results), len(paths))
	}
}
