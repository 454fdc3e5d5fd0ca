package modules

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFeatureModulesDoNotImportSiblingModules(t *testing.T) {
	t.Parallel()

	entries, err := filepath.Glob(filepath.Join("*", "*.go"))
	if err != nil {
		t.Fatalf("glob module files: %v", err)
	}
	fset := token.NewFileSet()
	for _, file := range entries {
		parsed, err := parser.ParseFile(fset, file, nil, parser.ImportsOnly)
		if err != nil {
			t.Fatalf("parse imports for %s: %v", file, err)
		}
		for _, imp := range parsed.Imports {
			path := strings.Trim(imp.Path.Value, "\"")
			if strings.Contains(path, "/internal/services/web/modules/") {
				t.Fatalf("file %s imports sibling module path %q", file, path)
			}
		}
	}
}

func TestFeatureModulesDoNotImportSessionBackends(t *testing.T) {
	t.Parallel()

	entries, err := filepath.Glob(filepath.Join("*", "*.go"))
	if err != nil {
		t.Fatalf("glob module files: %v", err)
	}
	forbidden := []string{
		"/internal/services/web/storage",
		"/internal/services/web/principal/jwtsession",
		"modernc.org/sqlite",
		"github.com/golang-jwt/jwt",
	}
	fset := token.NewFileSet()
	for _, file := range entries {
		parsed, err := parser.ParseFile(fset, file, nil, parser.ImportsOnly)
		if err != nil {
			t.Fatalf("parse imports for %s: %v", file, err)
		}
		for _, imp := range parsed.Imports {
			path := strings.Trim(imp.Path.Value, "\"")
			for _, prefix := range forbidden {
				if strings.Contains(path, prefix) {
					t.Fatalf("file %s imports session backend %q; read auth state through module.ResolveState", file, path)
				}
			}
		}
	}
}

func TestFeatureModulesFollowTemplate(t *testing.T) {
	t.Parallel()

	requiredFiles := []string{"module.go", "routes.go", "handlers.go", "service.go", "module_test.go"}
	for _, file := range requiredFiles {
		path := filepath.Join("landing", file)
		if _, err := os.Stat(path); err != nil {
			t.Fatalf("module %q missing required file %q: %v", "landing", file, err)
		}
	}
}
