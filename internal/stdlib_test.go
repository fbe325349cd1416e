package stdlib_test

import (
	"go/parser"
	"go/token"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

const modulePath = "github.com/comalice/primality"

// The predicate and its helpers must build from the standard library alone;
// third-party modules are only allowed in tests, testutil and benchmarks.
func TestStdlibOnlyCore(t *testing.T) {
	var files []string
	for _, pattern := range []string{"../*.go", "isqrt/*.go"} {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			t.Fatalf("glob %s: %v", pattern, err)
		}
		files = append(files, matches...)
	}
	if len(files) == 0 {
		t.Fatal("no core source files found")
	}

	fset := token.NewFileSet()
	for _, fn := range files {
		if strings.HasSuffix(fn, "_test.go") {
			continue
		}
		f, err := parser.ParseFile(fset, fn, nil, parser.ImportsOnly)
		if err != nil {
			t.Fatalf("parse %s: %v", fn, err)
		}
		for _, imp := range f.Imports {
			path, err := strconv.Unquote(imp.Path.Value)
			if err != nil {
				t.Fatalf("%s: bad import %s", fn, imp.Path.Value)
			}
			if strings.HasPrefix(path, modulePath+"/internal/") {
				continue
			}
			first, _, _ := strings.Cut(path, "/")
			if strings.Contains(first, ".") {
				t.Errorf("%s imports non-stdlib package %s", fn, path)
			}
		}
	}
}
