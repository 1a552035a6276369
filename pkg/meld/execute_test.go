package meld

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type fakeCopier struct {
	copied string
	err    error
}

func (f *fakeCopier) Copy(text string) error {
	f.copied = text
	return f.err
}

type fakeCounter struct {
	count int
	err   error
}

func (f *fakeCounter) Name() string { return "fake" }

func (f *fakeCounter) CountString(input string) (int, error) {
	return f.count, f.err
}

func TestRun_WritesOutputFile(t *testing.T) {
	root := buildSampleDir(t)
	output := filepath.Join(t.TempDir(), "out", "artifact.txt")

	args := Arguments{Directory: root, Output: output}
	if err := Run(args, nil, nil, nil); err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read artifact: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "Directory Structure:") || !strings.Contains(out, "File: main.py") {
		t.Errorf("artifact incomplete:\n%s", out)
	}
}

func TestRun_MissingDirectory(t *testing.T) {
	args := Arguments{Directory: filepath.Join(t.TempDir(), "absent")}
	if err := Run(args, nil, nil, nil); err == nil {
		t.Error("Run() on a missing directory should fail")
	}
}

func TestRun_NotADirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "file.txt", "x\n")

	args := Arguments{Directory: filepath.Join(dir, "file.txt")}
	if err := Run(args, nil, nil, nil); err == nil {
		t.Error("Run() on a regular file should fail")
	}
}

func TestRun_CopiesArtifact(t *testing.T) {
	root := buildSampleDir(t)
	output := filepath.Join(t.TempDir(), "artifact.txt")
	copier := &fakeCopier{}

	args := Arguments{Directory: root, Output: output, CopyToClipboard: true}
	if err := Run(args, copier, nil, nil); err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	if copier.copied != string(data) {
		t.Error("clipboard content differs from the written artifact")
	}
}

func TestRun_ClipboardFailureIsFatal(t *testing.T) {
	root := buildSampleDir(t)
	copier := &fakeCopier{err: errors.New("no display")}

	args := Arguments{
		Directory:       root,
		Output:          filepath.Join(t.TempDir(), "artifact.txt"),
		CopyToClipboard: true,
	}
	if err := Run(args, copier, nil, nil); err == nil {
		t.Error("Run() should surface clipboard failures")
	}
}

func TestRun_TokenCountFailureIsNotFatal(t *testing.T) {
	root := buildSampleDir(t)
	counter := &fakeCounter{err: errors.New("encoder offline")}

	args := Arguments{
		Directory:   root,
		Output:      filepath.Join(t.TempDir(), "artifact.txt"),
		CountTokens: true,
	}
	if err := Run(args, nil, counter, nil); err != nil {
		t.Errorf("Run() must not fail on token counting errors, got: %v", err)
	}
}

func TestRun_ExcludePatternsApplied(t *testing.T) {
	root := buildSampleDir(t)
	output := filepath.Join(t.TempDir(), "artifact.txt")

	args := Arguments{Directory: root, Output: output, ExcludePatterns: []string{"utils/"}}
	if err := Run(args, nil, nil, nil); err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "helper.py") {
		t.Error("caller-supplied exclusion pattern was not applied")
	}
}
