package catalog

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lumapictures/nukecli/pkgs/errors"
)

// testCatalog builds a catalog with no exclusions, failing the test on error.
func testCatalog(t *testing.T, names ...string) *Catalog {
	t.Helper()
	c, err := New(names, nil)
	if err != nil {
		t.Fatalf("New(%v) failed: %v", names, err)
	}
	return c
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name      string
		catalog   []string
		candidate string
		want      string
		wantKind  string
	}{
		{
			name:      "exact match",
			catalog:   []string{"Blur", "Grade", "Merge"},
			candidate: "Grade",
			want:      "Grade",
		},
		{
			name:      "exact match beats case-insensitive alternative",
			catalog:   []string{"Blur", "blur"},
			candidate: "blur",
			want:      "blur",
		},
		{
			name:      "version suffix picks highest version",
			catalog:   []string{"Blur", "Blur2", "Grade"},
			candidate: "Blur",
			want:      "Blur2",
		},
		{
			name:      "case-insensitive version suffix",
			catalog:   []string{"Blur", "Blur2", "Grade"},
			candidate: "blur",
			want:      "Blur2",
		},
		{
			name:      "case-insensitive exact",
			catalog:   []string{"ScanlineRender", "Scene"},
			candidate: "scene",
			want:      "Scene",
		},
		{
			name:      "unique partial match",
			catalog:   []string{"Blur", "Grade", "Merge"},
			candidate: "gr",
			want:      "Grade",
		},
		{
			name:      "partial match anchors at the name start",
			catalog:   []string{"ScanlineRender", "Grade"},
			candidate: "render",
			wantKind:  errors.ErrNoMatch,
		},
		{
			name:      "ambiguous partial match",
			catalog:   []string{"ScanlineRender", "Scene", "Grade"},
			candidate: "sc",
			wantKind:  errors.ErrAmbiguousMatch,
		},
		{
			name:      "no match at any tier",
			catalog:   []string{"Blur", "Grade"},
			candidate: "zdepth",
			wantKind:  errors.ErrNoMatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := testCatalog(t, tt.catalog...)
			got, err := c.Resolve(tt.candidate)

			if tt.wantKind != "" {
				if err == nil {
					t.Fatalf("Resolve(%q) = %q, want %s error", tt.candidate, got, tt.wantKind)
				}
				if !errors.IsKind(err, tt.wantKind) {
					t.Fatalf("Resolve(%q) error = %v, want kind %s", tt.candidate, err, tt.wantKind)
				}
				return
			}

			if err != nil {
				t.Fatalf("Resolve(%q) failed: %v", tt.candidate, err)
			}
			if got != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.candidate, got, tt.want)
			}
		})
	}
}

func TestResolveAmbiguousListsCandidates(t *testing.T) {
	c := testCatalog(t, "ScanlineRender", "Scene", "Switch")

	_, err := c.Resolve("s")
	if err == nil {
		t.Fatal("Resolve(\"s\") succeeded, want ambiguous-match error")
	}

	cerr, ok := err.(*errors.CompileError)
	if !ok {
		t.Fatalf("error type = %T, want *errors.CompileError", err)
	}
	raw, ok := cerr.GetContext("matches")
	if !ok {
		t.Fatal("ambiguous-match error carries no matches context")
	}
	matches, ok := raw.([]string)
	if !ok {
		t.Fatalf("matches context type = %T, want []string", raw)
	}
	want := []string{"ScanlineRender", "Scene", "Switch"}
	if diff := cmp.Diff(want, matches); diff != "" {
		t.Errorf("candidate list mismatch (-want +got):\n%s", diff)
	}
}

func TestNewAppliesExclusions(t *testing.T) {
	c, err := New(
		[]string{"Blur", "exrReader", "exrWriter", "Grade", "Blur"},
		DefaultExclusions,
	)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	want := []string{"Blur", "Grade"}
	if diff := cmp.Diff(want, c.Names()); diff != "" {
		t.Errorf("catalog names mismatch (-want +got):\n%s", diff)
	}

	if _, err := c.Resolve("exrReader"); !errors.IsKind(err, errors.ErrNoMatch) {
		t.Errorf("excluded class resolved, want NO_MATCH, got %v", err)
	}
}

func TestNewRejectsBadExclusionPattern(t *testing.T) {
	_, err := New([]string{"Blur"}, []string{"["})
	if !errors.IsKind(err, errors.ErrCatalogLoad) {
		t.Errorf("New with invalid pattern: error = %v, want CATALOG_LOAD_ERROR", err)
	}
}
