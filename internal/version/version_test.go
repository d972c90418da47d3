package version

import (
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestVersion_DefaultValues(t *testing.T) {
	if Version == "" {
		t.Error("Version should have a default value")
	}
}

func TestBanner_OptionalFields(t *testing.T) {
	origCommit, origDate := GitCommit, BuildDate
	t.Cleanup(func() { GitCommit, BuildDate = origCommit, origDate })

	GitCommit, BuildDate = "", ""
	if got := Banner(false); got != "quill "+Version+"\n" {
		t.Errorf("Banner() = %q", got)
	}

	GitCommit, BuildDate = "abc123", "2024-01-15T10:30:00Z"
	got := Banner(false)
	if !strings.Contains(got, "commit: abc123\n") || !strings.Contains(got, "built:  2024-01-15T10:30:00Z\n") {
		t.Errorf("Banner() = %q", got)
	}
}

func TestColored_KeepsSuffixAndPlainFallback(t *testing.T) {
	orig, origNoColor := Version, color.NoColor
	t.Cleanup(func() { Version, color.NoColor = orig, origNoColor })
	color.NoColor = true

	Version = "1.2.3-rc1"
	if got := Colored(); got != "1.2.3-rc1" {
		t.Errorf("Colored() = %q", got)
	}
	Version = "nightly"
	if got := Colored(); got != "nightly" {
		t.Errorf("Colored() = %q", got)
	}
}
