package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/avl/scenario"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := rootCommand(&options{})
	var out strings.Builder
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append(args, "--color=false"))
	err := cmd.Execute()
	return out.String(), err
}

func TestRunDefaultSets(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "avl")
	defer teardown()
	//
	out, err := execute(t, "run")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, s := range scenario.Defaults() {
		if !strings.Contains(out, "=== "+s.Name+" ===") {
			t.Errorf("output is missing scenario %q", s.Name)
		}
	}
	if strings.Contains(out, "Is balanced: false") {
		t.Errorf("trace reports an unbalanced tree")
	}
}

func TestRunAdHocKeysWithStats(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "avl")
	defer teardown()
	//
	out, err := execute(t, "run", "1", "2", "3", "2", "--stats")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "RR imbalance at 1, left rotation\nTree: 2 -> 1 -> 3\n") {
		t.Errorf("expected RR rotation in trace, have:\n%s", out)
	}
	if !strings.HasSuffix(out, "inserted: 3, duplicates: 1, rotations: LL=0 LR=0 RR=1 RL=0\n") {
		t.Errorf("expected statistics at end of output, have:\n%s", out)
	}
}

func TestRunShow(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "avl")
	defer teardown()
	//
	out, err := execute(t, "3", "1", "2", "--show", "--annotate=false", "--width", "40")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasSuffix(out, "Is balanced: true\n\n2\n├─L 1\n└─R 3\n") {
		t.Errorf("expected drawn tree at end of output, have:\n%s", out)
	}
}

func TestDotAndHTML(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "avl")
	defer teardown()
	//
	dir := t.TempDir()
	name := filepath.Join(dir, "sets.yaml")
	doc := "scenarios:\n  - name: a\n    keys: [1]\n  - name: zig-zag\n    keys: [12, 3, 9]\n"
	if err := os.WriteFile(name, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	out, err := execute(t, "dot", "--file", name, "--set", "zig-zag")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(out, "strict digraph {") || !strings.Contains(out, "12") {
		t.Errorf("expected DOT output for zig-zag, have:\n%s", out)
	}
	out, err = execute(t, "html", "--file", name, "--set", "zig-zag")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(out, `<ul class="avl-tree"><li data-height="2" data-balance="0"><span class="key">9</span>`) {
		t.Errorf("unexpected HTML output:\n%s", out)
	}
}

func TestInvalidInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "avl")
	defer teardown()
	//
	if _, err := execute(t, "run", "1", "x"); !errors.Is(err, scenario.ErrInvalidScenario) {
		t.Errorf("expected ErrInvalidScenario for non-integer key, have %v", err)
	}
	if _, err := execute(t, "dot", "--set", "nope"); !errors.Is(err, scenario.ErrInvalidScenario) {
		t.Errorf("expected ErrInvalidScenario for unknown set, have %v", err)
	}
}
