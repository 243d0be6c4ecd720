package main

import (
	"fmt"
	"io"
	"runtime"

	"fyne.io/fyne/v2/app"
	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"pkt.systems/pslog"

	"github.com/ytget/dlshell/internal/download"
	"github.com/ytget/dlshell/internal/platform"
)

func newDoctorCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Show where the program is looked up and how to install it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := pslog.Ctx(cmd.Context())

			settings := newSettings(app.NewWithID(AppID), overridesFrom(v))
			program := settings.GetProgram()
			dataDir := settings.GetDataDirectory()
			logger.Info("doctor start", "program", program, "data_dir", dataDir)

			return printDoctor(cmd.OutOrStdout(), program, platform.NewLocator(dataDir), runtime.GOOS)
		},
	}
}

// printDoctor writes every lookup candidate, the resolved executable and the
// install offer for a missing program
func printDoctor(w io.Writer, program string, locator *platform.Locator, goos string) error {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("SOURCE"), bold.Sprint("PATH"), bold.Sprint("STATUS"))
	for _, p := range locator.Probe(program) {
		status := color.YellowString("missing")
		switch {
		case p.Err != nil:
			status = color.RedString("error: %v", p.Err)
		case p.Found:
			status = color.GreenString("found")
		}
		tbl.AddRow(p.Source, p.Path, status)
	}
	if _, err := fmt.Fprintln(w, tbl); err != nil {
		return err
	}

	exe, err := locator.Find(program)
	if err != nil {
		_, err = fmt.Fprintf(w, "\n%s %v\n", bold.Sprint("Lookup failed:"), err)
		return err
	}
	if exe.IsFound() {
		_, err = fmt.Fprintf(w, "\n%s %s\n", bold.Sprint("Using:"), exe.Path)
		return err
	}

	offer := download.OfferFor(program, goos)
	switch offer.Kind {
	case download.OfferDownload:
		_, err = fmt.Fprintf(w, "\n%s %s is not installed, it can be downloaded from %s\n", bold.Sprint("Missing:"), program, offer.URL)
	case download.OfferInstallPage:
		_, err = fmt.Fprintf(w, "\n%s %s is not installed, see %s\n", bold.Sprint("Missing:"), program, offer.URL)
	default:
		_, err = fmt.Fprintf(w, "\n%s %s is not installed, install it manually\n", bold.Sprint("Missing:"), program)
	}
	return err
}
