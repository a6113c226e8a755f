package parser_test

import (
	"strings"
	"testing"

	"golang.org/x/tools/txtar"
)

// TestParserRecoveryFixtures drives the parser's panic-mode synchronization
// (spec §4.3.3) against malformed-input fixtures bundled as txtar archives,
// grounded on the same source+expected-output archive format the Go
// toolchain's own compiler test suites use.
func TestParserRecoveryFixtures(t *testing.T) {
	archive, err := txtar.ParseFile("testdata/recovery.txtar")
	if err != nil {
		t.Fatalf("failed to parse recovery.txtar: %v", err)
	}

	sources := map[string]string{}
	wants := map[string]string{}
	for _, f := range archive.Files {
		switch {
		case strings.HasSuffix(f.Name, ".myre"):
			sources[strings.TrimSuffix(f.Name, ".myre")] = string(f.Data)
		case strings.HasSuffix(f.Name, ".expect"):
			wants[strings.TrimSuffix(f.Name, ".expect")] = strings.TrimSpace(string(f.Data))
		}
	}

	for name, src := range sources {
		name, src := name, src
		t.Run(name, func(t *testing.T) {
			want, ok := wants[name]
			if !ok {
				t.Fatalf("no .expect entry for %q", name)
			}
			_, sink := parseSource(t, src)
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
