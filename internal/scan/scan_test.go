package scan

import (
	"os"
	"path/filepath"
	"testing"
)

func TestScan_AllRootsMissing(t *testing.T) {
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	os.Chdir(dir)
	defer os.Chdir(origDir)

	stats := Scan(DefaultRoots(), DefaultPatterns())
	if len(stats) != len(DefaultPatterns()) {
		t.Fatalf("got %d metrics, want %d", len(stats), len(DefaultPatterns()))
	}
	for metric, n := range stats {
		if n != 0 {
			t.Errorf("%s = %d, want 0 when every root is missing", metric, n)
		}
	}
}

func TestScan_CountsByGlob(t *testing.T) {
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	os.Chdir(dir)
	defer os.Chdir(origDir)

	os.MkdirAll(filepath.Join(dir, "src", "Controller"), 0o755)
	os.WriteFile(filepath.Join(dir, "src", "index.php"), []byte("<?php\n"), 0o644)
	os.WriteFile(filepath.Join(dir, "src", "Controller", "UserController.php"), []byte("<?php\n"), 0o644)
	os.WriteFile(filepath.Join(dir, "src", "notes.txt"), []byte("notes\n"), 0o644)

	stats := Scan([]string{"src"}, []Pattern{{Metric: "TotalSourceFiles", Glob: "*.php"}})
	if stats["TotalSourceFiles"] != 2 {
		t.Errorf("TotalSourceFiles = %d, want 2", stats["TotalSourceFiles"])
	}
}

func TestScan_KeywordRestriction(t *testing.T) {
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	os.Chdir(dir)
	defer os.Chdir(origDir)

	os.MkdirAll(filepath.Join(dir, "src"), 0o755)
	os.WriteFile(filepath.Join(dir, "src", "legacy.php"),
		[]byte("<?php\n$r = mysql_query(\"SELECT 1\");\n"), 0o644)
	os.WriteFile(filepath.Join(dir, "src", "modern.php"),
		[]byte("<?php\n// nothing legacy here\n"), 0o644)

	stats := Scan([]string{"src"}, []Pattern{
		{Metric: "LegacyQueryFiles", Glob: "*.php", Keyword: "mysql_query("},
	})
	if stats["LegacyQueryFiles"] != 1 {
		t.Errorf("LegacyQueryFiles = %d, want 1", stats["LegacyQueryFiles"])
	}
}

func TestScan_FileCountedOncePerMetric(t *testing.T) {
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	os.Chdir(dir)
	defer os.Chdir(origDir)

	os.MkdirAll(filepath.Join(dir, "src"), 0o755)
	// Keyword appears twice; the file still counts once.
	os.WriteFile(filepath.Join(dir, "src", "legacy.php"),
		[]byte("mysql_query(\"a\"); mysql_query(\"b\");\n"), 0o644)

	stats := Scan([]string{"src"}, []Pattern{
		{Metric: "LegacyQueryFiles", Glob: "*.php", Keyword: "mysql_query("},
	})
	if stats["LegacyQueryFiles"] != 1 {
		t.Errorf("LegacyQueryFiles = %d, want 1", stats["LegacyQueryFiles"])
	}
}

func TestScan_OverlappingRoots(t *testing.T) {
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	os.Chdir(dir)
	defer os.Chdir(origDir)

	os.MkdirAll(filepath.Join(dir, "src", "Service"), 0o755)
	os.WriteFile(filepath.Join(dir, "src", "index.php"), []byte("<?php\n"), 0o644)
	os.WriteFile(filepath.Join(dir, "src", "Service", "Mailer.php"), []byte("<?php\n"), 0o644)

	// One root contains the other, and one is repeated outright.
	stats := Scan([]string{"src", "src/Service", "src"}, []Pattern{
		{Metric: "TotalSourceFiles", Glob: "*.php"},
	})
	if stats["TotalSourceFiles"] != 2 {
		t.Errorf("TotalSourceFiles = %d, want 2 (files under overlapping roots count once)", stats["TotalSourceFiles"])
	}
}

func TestScan_MultipleRoots(t *testing.T) {
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	os.Chdir(dir)
	defer os.Chdir(origDir)

	os.MkdirAll(filepath.Join(dir, "templates", "user"), 0o755)
	os.WriteFile(filepath.Join(dir, "templates", "base.html.twig"), []byte("{% block body %}{% endblock %}\n"), 0o644)
	os.WriteFile(filepath.Join(dir, "templates", "user", "show.html.twig"), []byte("{{ user.name }}\n"), 0o644)

	// "tests" root is absent and must not cause an error.
	stats := Scan([]string{"templates", "tests"}, []Pattern{
		{Metric: "TemplateFiles", Glob: "*.twig"},
		{Metric: "TestFiles", Glob: "*Test.php"},
	})
	if stats["TemplateFiles"] != 2 {
		t.Errorf("TemplateFiles = %d, want 2", stats["TemplateFiles"])
	}
	if stats["TestFiles"] != 0 {
		t.Errorf("TestFiles = %d, want 0", stats["TestFiles"])
	}
}
