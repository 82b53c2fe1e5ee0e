package out_test

import (
	"context"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	out "lifeagent/internal/modules/notify/adapter/out"
	"lifeagent/internal/modules/notify/domain"
)

func TestPluginPresenterWithStderrPlugin(t *testing.T) {
	if testing.Short() {
		t.Skip("builds the notify-stderr plugin")
	}
	presenter := out.NewPluginPresenter(buildStderrPlugin(t), nil)
	defer presenter.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := presenter.Present(ctx, domain.Event{Source: "test", Title: "Time to focus", Message: "back to work"}); err != nil {
		t.Fatalf("present: %v", err)
	}
	if err := presenter.Present(ctx, domain.Event{Source: "test", Title: " ", Message: "no title"}); err == nil {
		t.Fatalf("expected plugin to decline an empty title")
	}
	// a declined event must not tear down the plugin process
	if err := presenter.Present(ctx, domain.Event{Source: "test", Title: "Tab reminder", Message: "again"}); err != nil {
		t.Fatalf("present after decline: %v", err)
	}
}

func TestPluginPresenterMissingBinary(t *testing.T) {
	t.Parallel()
	presenter := out.NewPluginPresenter(filepath.Join(t.TempDir(), "missing"), nil)
	defer presenter.Close()
	if err := presenter.Present(context.Background(), domain.Event{Source: "test", Title: "t", Message: "m"}); err == nil {
		t.Fatalf("expected start failure for a missing binary")
	}
}

func buildStderrPlugin(t *testing.T) string {
	t.Helper()
	binPath := filepath.Join(t.TempDir(), "notify-stderr")
	cmd := exec.Command("go", "build", "-o", binPath, "./plugins/notify-stderr")
	cmd.Dir = repositoryRoot(t)
	if output, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("build notify-stderr plugin: %v\n%s", err, string(output))
	}
	return binPath
}

func repositoryRoot(t *testing.T) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatalf("runtime caller failed")
	}
	return filepath.Clean(filepath.Join(filepath.Dir(file), "../../../../../"))
}
