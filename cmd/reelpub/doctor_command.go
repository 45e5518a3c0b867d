package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"reelpub/internal/deps"
	"reelpub/internal/preflight"
)

func newDoctorCommand(ctx *commandContext) *cobra.Command {
	var manual bool

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check configuration, files and external tools",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			problems := 0

			printSection(out, "Configuration", colorize)
			configMessage := ctx.configPath
			if !ctx.configExists {
				configMessage += " (not found; using defaults)"
			}
			fmt.Fprintln(out, renderStatusLine("Config file", statusInfo, configMessage, colorize))
			fmt.Fprintln(out, renderStatusLine("Upload output format", statusInfo, cfg.Uploader.OutputFormat, colorize))
			fmt.Fprintln(out, renderStatusLine("Media probe", statusInfo, yesNo(cfg.Uploader.Probe), colorize))
			fmt.Fprintln(out, renderStatusLine("Embed host", statusInfo, cfg.Linker.EmbedHost, colorize))
			fmt.Fprintln(out)

			mode := preflight.ModeAutomated
			if manual {
				mode = preflight.ModeManual
			}
			printSection(out, "Files", colorize)
			for _, result := range preflight.RunAll(cfg, mode) {
				if !result.Passed {
					problems++
				}
				fmt.Fprintln(out, renderStatusLine(result.Name, checkKind(result.Passed, false), result.Detail, colorize))
			}
			fmt.Fprintln(out)

			printSection(out, "External tools", colorize)
			for _, status := range deps.CheckBinaries(deps.Requirements(cfg, !manual)) {
				message := status.Command
				if status.Detail != "" {
					message = status.Detail
				}
				if !status.Available && status.Optional {
					message += " (optional)"
				}
				if !status.Available && !status.Optional {
					problems++
				}
				fmt.Fprintln(out, renderStatusLine(status.Name, checkKind(status.Available, status.Optional), message, colorize))
			}

			if problems > 0 {
				return fmt.Errorf("doctor found %d problem(s)", problems)
			}
			fmt.Fprintln(out)
			fmt.Fprintln(out, "All checks passed")
			return nil
		},
	}
	cmd.Flags().BoolVar(&manual, "manual", false, "Check only what manual publishing needs")
	return cmd
}
