package meld

import (
	"strings"
	"testing"
)

func TestMergeFiles_RecordFormat(t *testing.T) {
	root := buildSampleDir(t)

	m := NewMelder(nil, nil)
	merged, err := m.MergeFiles(root)
	if err != nil {
		t.Fatalf("MergeFiles() error: %v", err)
	}

	record := "\n==========\nFile: main.py\n==========\nprint('Hello')\n\n"
	if !strings.Contains(merged, record) {
		t.Errorf("merged content missing record %q in:\n%s", record, merged)
	}
}

func TestMergeFiles_TraversalOrder(t *testing.T) {
	root := buildSampleDir(t)

	m := NewMelder(nil, nil)
	merged, err := m.MergeFiles(root)
	if err != nil {
		t.Fatalf("MergeFiles() error: %v", err)
	}

	mainIdx := strings.Index(merged, "File: main.py")
	testIdx := strings.Index(merged, "File: test.py")
	helperIdx := strings.Index(merged, "File: helper.py")
	if mainIdx < 0 || testIdx < 0 || helperIdx < 0 {
		t.Fatalf("missing records in:\n%s", merged)
	}
	if !(mainIdx < testIdx && testIdx < helperIdx) {
		t.Errorf("records out of lexicographic traversal order: main=%d test=%d helper=%d",
			mainIdx, testIdx, helperIdx)
	}
}

func TestMergeFiles_IgnoreFileNeverMerged(t *testing.T) {
	root := buildSampleDir(t)

	m := NewMelder(nil, nil)
	merged, err := m.MergeFiles(root)
	if err != nil {
		t.Fatalf("MergeFiles() error: %v", err)
	}

	if strings.Contains(merged, "File: .gitignore") {
		t.Error("the ignore file's content must not be merged")
	}
	if strings.Contains(merged, "*.pyc") {
		t.Error("ignore file patterns leaked into the merged content")
	}
}

func TestMergeFiles_SkipsUnreadable(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "readme.txt", "hello\n")
	writeFile(t, root, "blob.bin", "\x00\x01\x02binary")
	writeFile(t, root, "bad_utf8.txt", string([]byte{0xff, 0xfe, 0xfd}))

	m := NewMelder(nil, nil)
	merged, err := m.MergeFiles(root)
	if err != nil {
		t.Fatalf("MergeFiles() error: %v", err)
	}

	if !strings.Contains(merged, "File: readme.txt") {
		t.Error("readable file missing from merged content")
	}
	if strings.Contains(merged, "File: blob.bin") || strings.Contains(merged, "File: bad_utf8.txt") {
		t.Errorf("unreadable files leaked into merged content:\n%s", merged)
	}

	statuses := map[string]FileStatus{}
	for _, r := range m.Reports() {
		statuses[r.Name] = r.Status
	}
	if statuses["readme.txt"] != FileIncluded {
		t.Errorf("readme.txt status = %v, want %v", statuses["readme.txt"], FileIncluded)
	}
	if statuses["blob.bin"] != FileSkippedUnreadable {
		t.Errorf("blob.bin status = %v, want %v", statuses["blob.bin"], FileSkippedUnreadable)
	}
	if statuses["bad_utf8.txt"] != FileSkippedUnreadable {
		t.Errorf("bad_utf8.txt status = %v, want %v", statuses["bad_utf8.txt"], FileSkippedUnreadable)
	}
}

func TestMergeFiles_ExcludedDirectoryReported(t *testing.T) {
	root := buildSampleDir(t)

	m := NewMelder([]string{"utils/"}, nil)
	merged, err := m.MergeFiles(root)
	if err != nil {
		t.Fatalf("MergeFiles() error: %v", err)
	}

	if strings.Contains(merged, "File: helper.py") {
		t.Error("file inside excluded directory leaked into merged content")
	}

	foundDir := false
	for _, r := range m.Reports() {
		if r.Name == "utils/" {
			foundDir = true
			if r.Status != FileExcluded {
				t.Errorf("utils/ status = %v, want %v", r.Status, FileExcluded)
			}
		}
		if r.Name == "helper.py" {
			t.Error("descendant of excluded directory was visited")
		}
	}
	if !foundDir {
		t.Error("excluded directory missing from reports")
	}
}

func TestMergeFiles_ContentVerbatim(t *testing.T) {
	root := t.TempDir()
	content := "line one\n\tindented\ntrailing spaces   \nlast line without newline"
	writeFile(t, root, "exact.txt", content)

	m := NewMelder(nil, nil)
	merged, err := m.MergeFiles(root)
	if err != nil {
		t.Fatalf("MergeFiles() error: %v", err)
	}

	want := "\n==========\nFile: exact.txt\n==========\n" + content + "\n"
	if merged != want {
		t.Errorf("MergeFiles() = %q, want %q", merged, want)
	}
}

func TestIsTextContent(t *testing.T) {
	cases := []struct {
		name    string
		content []byte
		want    bool
	}{
		{"empty", nil, true},
		{"plain ascii", []byte("hello world\n"), true},
		{"multibyte utf8", []byte("こんにちは\n"), true},
		{"null byte", []byte{'a', 0, 'b'}, false},
		{"invalid utf8", []byte{0xff, 0xfe, 0xfd}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := isTextContent(tc.content); got != tc.want {
				t.Errorf("isTextContent(%v) = %v, want %v", tc.content, got, tc.want)
			}
		})
	}
}
