package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"reelpub/internal/config"
	"reelpub/internal/deps"
	"reelpub/internal/fileutil"
	"reelpub/internal/linker"
	"reelpub/internal/preflight"
)

func newConfigCommand(ctx *commandContext) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Create and check the reelpub configuration",
	}
	configCmd.AddCommand(newConfigInitCommand())
	configCmd.AddCommand(newConfigValidateCommand(ctx))
	return configCmd
}

func newConfigInitCommand() *cobra.Command {
	var targetPath string
	var user bool
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a sample reelpub.toml for this presentation project",
		Long: "init writes ./" + config.ProjectConfigFile + ", which reelpub reads before the user-level\n" +
			"config. Use --user to write the user-level file instead, or --path for any location.",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := configInitTarget(targetPath, user)
			if err != nil {
				return err
			}

			exists, err := fileutil.Exists(target)
			if err != nil {
				return fmt.Errorf("check %s: %w", target, err)
			}
			if exists && !force {
				return fmt.Errorf("%s already exists; pass --force to replace it", target)
			}
			if err := config.CreateSample(target); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Wrote %s\n", target)
			fmt.Fprintln(out, "Next:")
			fmt.Fprintf(out, "  1. Point paths.credentials_file at your OAuth client secrets (or export %s)\n", config.EnvCredentialsFile)
			fmt.Fprintln(out, "  2. Check paths.target_artifact and linker.anchor match your presentation source")
			fmt.Fprintln(out, "  3. Run `reelpub config validate`, then `reelpub doctor`")
			return nil
		},
	}
	cmd.Flags().StringVarP(&targetPath, "path", "p", "", "Write the config to this path")
	cmd.Flags().BoolVar(&user, "user", false, "Write the user-level config instead of ./"+config.ProjectConfigFile)
	cmd.Flags().BoolVar(&force, "force", false, "Replace an existing config file")
	return cmd
}

func configInitTarget(pathFlag string, user bool) (string, error) {
	switch {
	case strings.TrimSpace(pathFlag) != "":
		return config.ExpandPath(strings.TrimSpace(pathFlag))
	case user:
		return config.DefaultConfigPath()
	default:
		return config.ExpandPath(config.ProjectConfigFile)
	}
}

// newConfigValidateCommand loads the config and checks the settings that only
// show up as failures mid-run: credentials, the upload CLI and the anchor.
func newConfigValidateCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:         "validate",
		Short:       "Load the config and check credentials, uploader and target anchor",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}
			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)

			source := ctx.configPath
			if !ctx.configExists {
				source += " (not found; defaults in use)"
			}
			fmt.Fprintln(out, renderStatusLine("Config file", statusOK, source, colorize))

			if err := preflight.CheckCredentials(cfg.Paths.CredentialsFile); err != nil {
				fmt.Fprintln(out, renderStatusLine("Client secrets", statusWarn, err.Error()+" (manual publishing still works)", colorize))
			} else {
				fmt.Fprintln(out, renderStatusLine("Client secrets", statusOK, cfg.Paths.CredentialsFile, colorize))
			}

			uploader := deps.CheckBinaries([]deps.Requirement{{Name: "Upload CLI", Command: cfg.Uploader.Binary}})[0]
			if uploader.Available {
				fmt.Fprintln(out, renderStatusLine("Upload CLI", statusOK, uploader.Command+" ("+cfg.Uploader.OutputFormat+" output)", colorize))
			} else {
				fmt.Fprintln(out, renderStatusLine("Upload CLI", statusWarn, uploader.Detail, colorize))
			}

			return reportTargetAnchor(out, cfg, colorize)
		},
	}
}

// reportTargetAnchor fails when the configured anchor cannot be found, since
// every link would then abort.
func reportTargetAnchor(out io.Writer, cfg *config.Config, colorize bool) error {
	l := linker.New(linker.Options{Host: cfg.Linker.EmbedHost, Marker: cfg.Linker.Marker, Anchor: cfg.Linker.Anchor})
	if err := l.Verify(cfg.Paths.TargetArtifact); err != nil {
		fmt.Fprintln(out, renderStatusLine("Target anchor", statusError, err.Error(), colorize))
		return fmt.Errorf("target check failed: %w", err)
	}
	fmt.Fprintln(out, renderStatusLine("Target anchor", statusOK, cfg.Paths.TargetArtifact, colorize))
	fmt.Fprintln(out, "Configuration valid")
	return nil
}
