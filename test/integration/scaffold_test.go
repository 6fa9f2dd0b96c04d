package integration

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/BeepBoopVictor/project-scaffolder/internal/config"
	"github.com/BeepBoopVictor/project-scaffolder/internal/engine"
	"github.com/BeepBoopVictor/project-scaffolder/internal/fsops"
	"github.com/BeepBoopVictor/project-scaffolder/internal/planner"
)

const projectTree = `# python service skeleton
src/
  main.py
  utils/
    helpers.py
  api/          # http handlers
    routes.py
tests/
  test_main.py
README.md
.gitignore
`

// newEngine builds an engine on the real filesystem, the way the CLI does.
func newEngine() *engine.Engine {
	return engine.New(fsops.NewRealFS())
}

func build(t *testing.T, req *engine.BuildRequest) *engine.BuildResult {
	t.Helper()
	result, err := newEngine().Build(context.Background(), req)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	return result
}

func TestScaffold_FullLifecycle(t *testing.T) {
	base := t.TempDir()

	// Resolve and pre-create the destination as the CLI would.
	dest, err := config.ResolveDest(filepath.Join(base, "proj"))
	if err != nil {
		t.Fatalf("ResolveDest: %v", err)
	}
	if err := config.EnsureDest(dest); err != nil {
		t.Fatalf("EnsureDest: %v", err)
	}

	req := &engine.BuildRequest{
		SpecText:    projectTree,
		DestRoot:    dest,
		IndentSize:  2,
		CreateFiles: true,
	}

	// 1. Dry-run first: predicts everything, writes nothing.
	dryReq := *req
	dryReq.DryRun = true
	dryResult := build(t, &dryReq)

	entries, err := os.ReadDir(dest)
	if err != nil {
		t.Fatalf("readdir: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("dry-run wrote entries: %v", entries)
	}
	for _, r := range dryResult.Results {
		if r.Action != engine.ActionDryRun || !r.Created {
			t.Errorf("%s: dry-run action=%s created=%v, want predicted creation", r.Path, r.Action, r.Created)
		}
	}

	// 2. Real run: materializes the same targets the dry-run listed.
	result := build(t, req)
	if len(result.Targets) != len(dryResult.Targets) {
		t.Fatalf("real run planned %d targets, dry-run %d", len(result.Targets), len(dryResult.Targets))
	}
	for _, target := range result.Targets {
		info, err := os.Stat(target.Path)
		if err != nil {
			t.Fatalf("stat %s: %v", target.Path, err)
		}
		if info.IsDir() != (target.Kind == planner.KindDir) {
			t.Errorf("%s: kind mismatch on disk", target.Path)
		}
	}

	s := engine.Summarize(result.Results)
	if s.DirsCreated != 4 || s.FilesCreated != 6 {
		t.Errorf("summary = %+v, want 4 dirs and 6 files created", s)
	}

	// 3. Re-run: idempotent, everything already exists.
	again := build(t, req)
	for _, r := range again.Results {
		if r.Action != engine.ActionExists {
			t.Errorf("%s: second run action = %s, want exists", r.Path, r.Action)
		}
	}

	// 4. Force run: files flagged overwritten, content untouched.
	readme := filepath.Join(dest, "README.md")
	if err := os.WriteFile(readme, []byte("# proj\n"), 0644); err != nil {
		t.Fatalf("write readme: %v", err)
	}
	forceReq := *req
	forceReq.Force = true
	forced := build(t, &forceReq)
	for _, r := range forced.Results {
		if r.Kind == planner.KindFile && r.Action != engine.ActionOverwritten {
			t.Errorf("%s: force action = %s, want overwritten", r.Path, r.Action)
		}
	}
	content, err := os.ReadFile(readme)
	if err != nil {
		t.Fatalf("read readme: %v", err)
	}
	if string(content) != "# proj\n" {
		t.Errorf("force changed content: %q", content)
	}
}

func TestScaffold_DirsOnly(t *testing.T) {
	dest := t.TempDir()
	req := &engine.BuildRequest{
		SpecText:    projectTree,
		DestRoot:    dest,
		IndentSize:  2,
		CreateFiles: false,
	}

	result := build(t, req)
	for _, r := range result.Results {
		switch r.Kind {
		case planner.KindDir:
			if r.Action != engine.ActionCreated {
				t.Errorf("%s: dir action = %s, want created", r.Path, r.Action)
			}
		case planner.KindFile:
			if r.Action != engine.ActionSkipped {
				t.Errorf("%s: file action = %s, want skipped", r.Path, r.Action)
			}
			if _, err := os.Lstat(r.Path); !os.IsNotExist(err) {
				t.Errorf("%s: skipped file exists on disk", r.Path)
			}
		}
	}
}

func TestScaffold_MessyIndentation(t *testing.T) {
	dest := t.TempDir()

	// Hand-written tree with a skipped level and an odd indent; both
	// attach to the nearest open directory instead of failing.
	tree := "lib/\n      deep.rb\n   sibling.rb\n"
	req := &engine.BuildRequest{
		SpecText:    tree,
		DestRoot:    dest,
		IndentSize:  2,
		CreateFiles: true,
	}

	result := build(t, req)

	wantPaths := []string{
		filepath.Join(dest, "lib"),
		filepath.Join(dest, "lib", "deep.rb"),
		filepath.Join(dest, "lib", "sibling.rb"),
	}
	if len(result.Targets) != len(wantPaths) {
		t.Fatalf("got %d targets, want %d", len(result.Targets), len(wantPaths))
	}
	for i, want := range wantPaths {
		if result.Targets[i].Path != want {
			t.Errorf("target[%d] = %s, want %s", i, result.Targets[i].Path, want)
		}
	}
}
