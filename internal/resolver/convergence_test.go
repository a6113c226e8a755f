package resolver_test

import (
	"strings"
	"testing"

	"golang.org/x/tools/txtar"
)

// TestResolverConvergenceFixtures drives the resolver against multi-pass
// fixed-point fixtures stored as txtar archives, the format the Go
// toolchain's own compiler tests use for bundling source + expected-output
// pairs (spec §4.5.2 "fixed-point pass", exercised here instead of asserted
// purely from hand-written Go cases).
func TestResolverConvergenceFixtures(t *testing.T) {
	archive, err := txtar.ParseFile("testdata/convergence.txtar")
	if err != nil {
		t.Fatalf("failed to parse convergence.txtar: %v", err)
	}

	cases := map[string]string{}
	sources := map[string]string{}
	for _, f := range archive.Files {
		name := strings.TrimSuffix(f.Name, ".myre")
		name = strings.TrimSuffix(name, ".expect")
		switch {
		case strings.HasSuffix(f.Name, ".myre"):
			sources[name] = string(f.Data)
		case strings.HasSuffix(f.Name, ".expect"):
			cases[name] = strings.TrimSpace(string(f.Data))
		}
	}

	for name, src := range sources {
		name, src := name, src
		t.Run(name, func(t *testing.T) {
			want, ok := cases[name]
			if !ok {
				t.Fatalf("no .expect entry for %q", name)
			}
			_, _, _, sink := resolve(t, src)
			if want == "OK" {
				if sink.HasErrors() {
					t.Fatalf("unexpected errors: %v", sink.All())
				}
				return
			}
			found := false
			for _, d := range sink.All() {
				if string(d.Code) == want {
					found = true
				}
			}
			if !found {
				t.Fatalf("expected diagnostic code %q, got %v", want, sink.All())
			}
		})
	}
}
