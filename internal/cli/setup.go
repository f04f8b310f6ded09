// Package cli wires configuration, file system and UI together and runs a
// fix-components pass. It bridges the cobra commands to the materializer.
package cli

import (
	"fmt"

	"github.com/jobtrackai/fix-components/internal/config"
	"github.com/jobtrackai/fix-components/internal/materialize"
	"github.com/jobtrackai/fix-components/internal/system"
	"github.com/jobtrackai/fix-components/internal/ui"
)

// RunContext holds all dependencies needed for a run
type RunContext struct {
	Config *config.Config
	UI     *ui.UI
	FS     system.FileSystemManager
	// Root is the absolute directory component paths are written under
	Root string
}

// NewRunContext loads configuration and creates a RunContext writing to disk
func NewRunContext(configFile string) (*RunContext, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return NewRunContextWithOptions(cfg, ui.New())
}

// NewRunContextWithOptions creates a RunContext from an already loaded config
func NewRunContextWithOptions(cfg *config.Config, uiInstance *ui.UI) (*RunContext, error) {
	fs, err := system.NewFileSystem(cfg.Root)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize file system: %w", err)
	}

	return &RunContext{
		Config: cfg,
		UI:     uiInstance,
		FS:     fs,
		Root:   fs.Root(),
	}, nil
}

// RunFix writes specs under the context root and returns the per-file report.
// Individual file failures are reported, not returned; the error is only set
// when the run could not start. A nil report means the user cancelled.
func RunFix(ctx *RunContext, specs []materialize.FileSpec) (materialize.Report, error) {
	ctx.UI.Header("Fixing components")
	ctx.UI.Infof("Target directory: %s", ctx.Root)
	if path := ctx.Config.FilePath(); path != "" {
		ctx.UI.Infof("Configuration file: %s", path)
	}

	m := materialize.New(ctx.FS, ctx.UI)

	if ctx.Config.Confirm {
		proceed, err := confirmOverwrite(ctx, m, specs)
		if err != nil {
			return nil, err
		}
		if !proceed {
			ctx.UI.Info("Cancelled, nothing was written")
			return nil, nil
		}
	}

	return m.Run(specs), nil
}

// confirmOverwrite asks before replacing files whose content would change
func confirmOverwrite(ctx *RunContext, m *materialize.Materializer, specs []materialize.FileSpec) (bool, error) {
	planned, err := m.Plan(specs)
	if err != nil {
		ctx.UI.Warningf("Could not inspect existing files: %v", err)
		proceed, err := ctx.UI.PromptYesNo("Write components anyway?", false)
		if err != nil {
			return false, fmt.Errorf("failed to prompt: %w", err)
		}
		return proceed, nil
	}

	overwrites := materialize.CountStatus(planned, materialize.PlanOverwrite)
	if overwrites == 0 {
		return true, nil
	}

	for _, p := range planned {
		if p.Status == materialize.PlanOverwrite {
			ctx.UI.Warningf("Will overwrite %s", p.Path)
		}
	}

	if ctx.UI.IsNonInteractive() {
		ctx.UI.Info("Non-interactive mode, keeping existing files")
	}

	proceed, err := ctx.UI.PromptYesNo(fmt.Sprintf("Overwrite %d existing file(s)?", overwrites), false)
	if err != nil {
		return false, fmt.Errorf("failed to prompt: %w", err)
	}
	return proceed, nil
}
