package systems

import (
	"bytes"
	"errors"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/automoto/spritewalk/assets"
	"github.com/automoto/spritewalk/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })
	return &buf
}

func TestUpdateSheetReloadKeepsSheetOnBadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sheet.png")
	if err := os.WriteFile(path, []byte("not a png"), 0o644); err != nil {
		t.Fatal(err)
	}

	watcher := &assets.SheetWatcher{
		Events: make(chan string, 1),
		Errors: make(chan error, 1),
	}
	sheet := assets.NewSheet(nil)
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSprite(e, sheet, path, watcher)

	logs := captureLog(t)
	watcher.Events <- path
	UpdateSheetReload(e)

	if sheet.Image() != nil {
		t.Error("sheet replaced by a file that failed to load")
	}
	if len(watcher.Events) != 0 {
		t.Error("reload event not consumed")
	}
	if !strings.Contains(logs.String(), "Could not reload sprite sheet") {
		t.Errorf("log = %q, want a reload warning", logs.String())
	}
}

func TestUpdateSheetReloadLogsWatcherErrors(t *testing.T) {
	watcher := &assets.SheetWatcher{
		Events: make(chan string, 1),
		Errors: make(chan error, 1),
	}
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSprite(e, assets.NewSheet(nil), "sheet.png", watcher)

	logs := captureLog(t)
	watcher.Errors <- errors.New("queue overflow")
	UpdateSheetReload(e)

	if !strings.Contains(logs.String(), "queue overflow") {
		t.Errorf("log = %q, want the watcher error", logs.String())
	}
}

func TestUpdateSheetReloadWithoutWatcher(t *testing.T) {
	sheet := assets.NewSheet(nil)
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSprite(e, sheet, "", nil)

	UpdateSheetReload(e)

	if sheet.Image() != nil {
		t.Error("sheet changed without a watcher")
	}
}
