package shell

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/msto63/dsh/internal/namespace"
	"github.com/msto63/dsh/internal/output"
	"github.com/msto63/dsh/pkg/log"
)

func testProvider() *namespace.MemoryProvider {
	return namespace.NewMemory().
		AddGroup("/g1").
		AddGroup("/g1/g2").
		AddDataset("/g1/d1", "42").
		AddDataset("/data", "7 8 9").
		AddLink("/toroot", "/").
		AddLink("/tog2", "/g1/g2").
		SetAttr("/g1", "units", "m/s").
		SetAttr("/g1", "origin", "sensor-3")
}

func newTestShell(t *testing.T, provider namespace.Provider) (*Shell, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	printer := output.NewPrinter(&buf, output.Styles{}).WithWidthFunc(func() int { return 80 })
	logger := log.NewWithConfig(log.Config{Level: log.LevelError, Output: io.Discard})
	return New(provider, printer, Options{Logger: logger}), &buf
}

func TestCdChangesWorkingGroup(t *testing.T) {
	sh, _ := newTestShell(t, testProvider())

	if outcome := sh.Execute("cd g1"); outcome != KeepRunning {
		t.Fatalf("outcome = %v, want KeepRunning", outcome)
	}
	if got := sh.WorkingGroup().String(); got != "/g1" {
		t.Errorf("working group = %s, want /g1", got)
	}

	sh.Execute("cd g2")
	if got := sh.WorkingGroup().String(); got != "/g1/g2" {
		t.Errorf("working group = %s, want /g1/g2", got)
	}

	sh.Execute("cd ../..")
	if !sh.WorkingGroup().IsRoot() {
		t.Errorf("working group = %s, want /", sh.WorkingGroup())
	}
}

func TestCdWithoutArgsGoesToRoot(t *testing.T) {
	sh, _ := newTestShell(t, testProvider())
	sh.Execute("cd /g1/g2")
	sh.Execute("cd")
	if !sh.WorkingGroup().IsRoot() {
		t.Errorf("working group = %s, want /", sh.WorkingGroup())
	}
}

func TestCdIntoDatasetFailsAtomically(t *testing.T) {
	sh, buf := newTestShell(t, testProvider())
	sh.Execute("cd g1")

	sh.Execute("cd d1")
	if got := sh.WorkingGroup().String(); got != "/g1" {
		t.Errorf("working group changed to %s after failed cd", got)
	}
	if !strings.Contains(buf.String(), "not a group") {
		t.Errorf("output %q does not report a non-group target", buf.String())
	}
}

func TestCdFollowsLinks(t *testing.T) {
	sh, _ := newTestShell(t, testProvider())
	sh.Execute("cd tog2")
	if got := sh.WorkingGroup().String(); got != "/g1/g2" {
		t.Errorf("working group = %s, want /g1/g2", got)
	}
}

func TestCdUnknownChild(t *testing.T) {
	sh, buf := newTestShell(t, testProvider())
	sh.Execute("cd nope")
	if !sh.WorkingGroup().IsRoot() {
		t.Errorf("working group changed after failed cd")
	}
	if !strings.Contains(buf.String(), "not found") {
		t.Errorf("output %q does not report the missing child", buf.String())
	}
}

func TestPwd(t *testing.T) {
	sh, buf := newTestShell(t, testProvider())
	sh.Execute("cd /g1")
	buf.Reset()
	sh.Execute("pwd")
	if got := strings.TrimSpace(buf.String()); got != "/g1" {
		t.Errorf("pwd printed %q, want /g1", got)
	}
}

func TestLsGroup(t *testing.T) {
	sh, buf := newTestShell(t, testProvider())
	sh.Execute("ls g1")
	out := buf.String()
	if !strings.Contains(out, "g2/") {
		t.Errorf("listing %q misses group entry g2/", out)
	}
	if !strings.Contains(out, "d1") {
		t.Errorf("listing %q misses dataset entry d1", out)
	}
}

func TestLsKeepsStoreOrder(t *testing.T) {
	sh, buf := newTestShell(t, testProvider())
	sh.Execute("ls")
	out := buf.String()
	if strings.Index(out, "g1") > strings.Index(out, "data") {
		t.Errorf("listing %q reordered entries; store order has g1 before data", out)
	}
}

func TestLsSortsByName(t *testing.T) {
	sh, buf := newTestShell(t, testProvider())
	sh.Execute("ls --name")
	out := buf.String()
	if strings.Index(out, "data") > strings.Index(out, "g1") {
		t.Errorf("listing %q not sorted by name", out)
	}
}

func TestLsLongShowsValues(t *testing.T) {
	sh, buf := newTestShell(t, testProvider())
	sh.Execute("ls -l g1")
	out := buf.String()
	if !strings.Contains(out, "42") {
		t.Errorf("long listing %q misses the dataset value", out)
	}
	if !strings.Contains(out, "group") {
		t.Errorf("long listing %q misses the kind column", out)
	}
}

func TestLsLongNoValue(t *testing.T) {
	sh, buf := newTestShell(t, testProvider())
	sh.Execute("ls -l --no-value g1")
	if strings.Contains(buf.String(), "42") {
		t.Errorf("long listing %q shows a value despite --no-value", buf.String())
	}
}

func TestLsLongShowsLinkTarget(t *testing.T) {
	sh, buf := newTestShell(t, testProvider())
	sh.Execute("ls -l")
	if !strings.Contains(buf.String(), "-> /g1/g2") {
		t.Errorf("long listing %q misses the link target", buf.String())
	}
}

func TestLsDatasetListsItself(t *testing.T) {
	sh, buf := newTestShell(t, testProvider())
	sh.Execute("ls /g1/d1")
	if !strings.Contains(buf.String(), "d1") {
		t.Errorf("listing %q misses the dataset itself", buf.String())
	}
}

func TestCat(t *testing.T) {
	sh, buf := newTestShell(t, testProvider())
	sh.Execute("cat /g1/d1")
	if got := strings.TrimSpace(buf.String()); got != "42" {
		t.Errorf("cat printed %q, want 42", got)
	}
}

func TestCatRejectsGroup(t *testing.T) {
	sh, buf := newTestShell(t, testProvider())
	sh.Execute("cat /g1")
	if !strings.Contains(buf.String(), "not a dataset") {
		t.Errorf("output %q does not reject the group", buf.String())
	}
}

func TestAttrListsAll(t *testing.T) {
	sh, buf := newTestShell(t, testProvider())
	sh.Execute("attr /g1")
	out := buf.String()
	if !strings.Contains(out, "units") || !strings.Contains(out, "m/s") {
		t.Errorf("attr output %q misses units attribute", out)
	}
	if !strings.Contains(out, "origin") {
		t.Errorf("attr output %q misses origin attribute", out)
	}
}

func TestAttrNamedMissingReportsInline(t *testing.T) {
	sh, buf := newTestShell(t, testProvider())
	sh.Execute("attr /g1 units nope")
	out := buf.String()
	if !strings.Contains(out, "m/s") {
		t.Errorf("attr output %q misses the found attribute", out)
	}
	if !strings.Contains(out, "error") {
		t.Errorf("attr output %q does not flag the missing attribute", out)
	}
}

func TestFindByName(t *testing.T) {
	sh, buf := newTestShell(t, testProvider())
	sh.Execute("find -r ^d")
	out := buf.String()
	if !strings.Contains(out, "data") {
		t.Errorf("find output %q misses data", out)
	}
	if !strings.Contains(out, "g1/d1") {
		t.Errorf("find output %q misses nested match g1/d1", out)
	}
}

func TestFindByAttribute(t *testing.T) {
	sh, buf := newTestShell(t, testProvider())
	sh.Execute("find -r @units")
	if !strings.Contains(buf.String(), "g1/") {
		t.Errorf("find output %q misses the attributed group", buf.String())
	}
}

func TestFindNoMatches(t *testing.T) {
	sh, buf := newTestShell(t, testProvider())
	sh.Execute("find zzz")
	if !strings.Contains(buf.String(), "no matches") {
		t.Errorf("find output %q does not report the empty result", buf.String())
	}
}

func TestHelpListsCommands(t *testing.T) {
	sh, buf := newTestShell(t, testProvider())
	sh.Execute("help")
	out := buf.String()
	for _, name := range []string{"cd", "ls", "pwd", "cat", "attr", "find", "help", "exit"} {
		if !strings.Contains(out, name) {
			t.Errorf("help output misses command %s", name)
		}
	}
}

func TestHelpFlagShortCircuits(t *testing.T) {
	sh, buf := newTestShell(t, testProvider())
	sh.Execute("cd g1 --help")
	if !strings.Contains(buf.String(), "usage: cd") {
		t.Errorf("output %q is not the cd usage text", buf.String())
	}
	if !sh.WorkingGroup().IsRoot() {
		t.Errorf("--help still changed the working group")
	}
}

func TestExitOutcome(t *testing.T) {
	sh, _ := newTestShell(t, testProvider())
	if outcome := sh.Execute("exit"); outcome != ExitSuccess {
		t.Errorf("outcome = %v, want ExitSuccess", outcome)
	}
}

func TestUnknownCommand(t *testing.T) {
	sh, buf := newTestShell(t, testProvider())
	if outcome := sh.Execute("frobnicate"); outcome != KeepRunning {
		t.Errorf("outcome = %v, want KeepRunning", outcome)
	}
	if !strings.Contains(buf.String(), "unknown command") {
		t.Errorf("output %q does not report the unknown command", buf.String())
	}
}

func TestEmptyLineIsNoop(t *testing.T) {
	sh, buf := newTestShell(t, testProvider())
	sh.Execute("   ")
	if buf.Len() != 0 {
		t.Errorf("blank line produced output %q", buf.String())
	}
}
