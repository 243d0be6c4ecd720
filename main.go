package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"pkt.systems/psi"
	"pkt.systems/pslog"

	"github.com/ytget/dlshell/internal/config"
	"github.com/ytget/dlshell/internal/launcher"
	"github.com/ytget/dlshell/internal/platform"
	"github.com/ytget/dlshell/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID     = "com.ytget.dlshell"
	EnvPrefix = "DLSHELL"
)

func main() {
	psi.Run(submain)
}

func submain(ctx context.Context) int {
	logger := pslog.LoggerFromEnv(
		pslog.WithEnvWriter(os.Stderr),
		pslog.WithEnvOptions(pslog.Options{Mode: pslog.ModeConsole}),
	)
	ctx = pslog.ContextWithLogger(ctx, logger)
	log.SetOutput(pslog.LogLogger(logger).Writer())
	log.SetFlags(0)

	root := newRootCmd(viper.New())
	root.SetArgs(os.Args[1:])

	if err := root.ExecuteContext(ctx); err != nil {
		pslog.Ctx(ctx).With("err", err).Error("dlshell command failed")
		return 1
	}
	return 0
}

func newRootCmd(v *viper.Viper) *cobra.Command {
	root := &cobra.Command{
		Use:           config.AppName,
		Short:         "Graphical shell around a media download CLI",
		SilenceErrors: true,
		SilenceUsage:  true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGUI(cmd.Context(), overridesFrom(v))
		},
	}

	flags := root.PersistentFlags()
	flags.String("program", "", "program to locate and run (default youtube-dl)")
	flags.String("help-flag", "", "flag passed to the program to print its help")
	flags.String("data-dir", "", "directory holding downloaded executables")
	flags.String("workdir", "", "working directory for started processes")
	if err := v.BindPFlags(flags); err != nil {
		panic(fmt.Sprintf("bind flags: %v", err))
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	root.AddCommand(newDoctorCmd(v))
	root.AddCommand(newVersionCmd())

	return root
}

// overridesFrom collects flag and environment values that beat saved preferences
func overridesFrom(v *viper.Viper) config.Overrides {
	return config.Overrides{
		Program:  v.GetString("program"),
		HelpFlag: v.GetString("help-flag"),
		DataDir:  v.GetString("data-dir"),
		WorkDir:  v.GetString("workdir"),
	}
}

func newSettings(a fyne.App, overrides config.Overrides) *config.Settings {
	settings := config.NewSettings(a)
	settings.SetOverrides(overrides)
	return settings
}

func runGUI(ctx context.Context, overrides config.Overrides) error {
	logger := pslog.Ctx(ctx)
	logger.Info("dlshell starting", "version", version)

	a := app.NewWithID(AppID)
	a.Settings().SetTheme(ui.NewShellTheme())

	settings := newSettings(a, overrides)
	dataDir := settings.GetDataDirectory()
	if err := platform.CreateDirectoryIfNotExists(dataDir); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	workDir := settings.GetWorkingDirectory()
	if err := platform.CreateDirectoryIfNotExists(workDir); err != nil {
		logger.Warn("working directory unavailable", "dir", workDir, "err", err)
	}

	l := launcher.NewDefault(launcher.Options{
		Program:     settings.GetProgram(),
		HelpFlag:    settings.GetHelpFlag(),
		HelpTimeout: settings.GetHelpTimeout(),
		DataDir:     dataDir,
		WorkDir:     workDir,
		Logger:      logger,
	})

	w := a.NewWindow(config.AppName)
	w.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	root := ui.NewRootUI(ctx, w, settings, l)
	root.Start()

	go func() {
		<-ctx.Done()
		fyne.Do(a.Quit)
	}()

	w.ShowAndRun()
	l.Shutdown()
	logger.Info("dlshell stopped")
	return nil
}
