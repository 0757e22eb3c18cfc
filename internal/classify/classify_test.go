package classify

import (
	"testing"
)

func TestClassify_SingleController(t *testing.T) {
	counts := Classify([]string{"src/Controller/UserController.php"})
	if counts[CategoryController] != 1 {
		t.Errorf("Controller = %d, want 1", counts[CategoryController])
	}
	if counts[CategoryEntity] != 0 {
		t.Errorf("Entity = %d, want 0", counts[CategoryEntity])
	}
}

func TestClassify_Overlap(t *testing.T) {
	// A path containing both "Controller" and "Test" counts in both
	// categories; counts may sum to more than the number of paths.
	counts := Classify([]string{"tests/Controller/UserControllerTest.php"})
	if counts[CategoryController] != 1 {
		t.Errorf("Controller = %d, want 1", counts[CategoryController])
	}
	if counts[CategoryTest] != 1 {
		t.Errorf("Test = %d, want 1", counts[CategoryTest])
	}
}

func TestClassify_Empty(t *testing.T) {
	counts := Classify(nil)
	if len(counts) != len(Categories()) {
		t.Fatalf("got %d categories, want %d", len(counts), len(Categories()))
	}
	for cat, n := range counts {
		if n != 0 {
			t.Errorf("%s = %d, want 0 for empty input", cat, n)
		}
	}
}

func TestClassify_OrderIndependent(t *testing.T) {
	paths := []string{
		"src/Controller/UserController.php",
		"src/Entity/User.php",
		"templates/user/show.html.twig",
		"assets/app.js",
		"config/services.yaml",
	}
	reversed := make([]string, len(paths))
	for i, p := range paths {
		reversed[len(paths)-1-i] = p
	}

	a := Classify(paths)
	b := Classify(reversed)
	for _, cat := range Categories() {
		if a[cat] != b[cat] {
			t.Errorf("%s: %d != %d (classification must be order-independent)", cat, a[cat], b[cat])
		}
	}
}

func TestClassify_CountBounds(t *testing.T) {
	paths := []string{
		"src/Controller/UserController.php",
		"src/Controller/AdminController.php",
		"src/Service/UserService.php",
	}
	counts := Classify(paths)
	for cat, n := range counts {
		if n > len(paths) {
			t.Errorf("%s = %d, must never exceed number of paths (%d)", cat, n, len(paths))
		}
	}
	if counts[CategoryController] != 2 {
		t.Errorf("Controller = %d, want 2", counts[CategoryController])
	}
}

func TestClassify_CaseSensitive(t *testing.T) {
	counts := Classify([]string{"src/controller/user.php"})
	if counts[CategoryController] != 0 {
		t.Errorf("Controller = %d, want 0 (matching is case-sensitive)", counts[CategoryController])
	}
}

func TestClassify_Suffixes(t *testing.T) {
	counts := Classify([]string{
		"templates/base.html.twig",
		"config/packages/doctrine.yaml",
		"assets/styles/app.scss",
	})
	if counts[CategoryTemplate] != 1 {
		t.Errorf("Template = %d, want 1", counts[CategoryTemplate])
	}
	if counts[CategoryConfig] != 1 {
		t.Errorf("Config = %d, want 1", counts[CategoryConfig])
	}
	if counts[CategoryFrontend] != 1 {
		t.Errorf("Frontend = %d, want 1", counts[CategoryFrontend])
	}
}
