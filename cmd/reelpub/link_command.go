package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"reelpub/internal/config"
	"reelpub/internal/linker"
	"reelpub/internal/logging"
	"reelpub/internal/publish"
	"reelpub/internal/registry"
)

type linkOptions struct {
	target       string
	dryRun       bool
	allowUnknown bool
}

func newLinkCommand(ctx *commandContext) *cobra.Command {
	var registryPath string
	var targetPath string
	var opts linkOptions

	cmd := &cobra.Command{
		Use:   "link",
		Short: "Patch the presentation source with IDs from the registry file",
		RunE: func(cmd *cobra.Command, args []string) error {
			scope, err := ctx.newRunScope(cmd, "link")
			if err != nil {
				return err
			}

			source, err := pathOrDefault(registryPath, scope.cfg.Paths.RegistryFile)
			if err != nil {
				return err
			}
			if opts.target, err = pathOrDefault(targetPath, scope.cfg.Paths.TargetArtifact); err != nil {
				return err
			}

			results, err := registry.Load(source)
			if err != nil {
				if errors.Is(err, registry.ErrNotFound) {
					return fmt.Errorf("%w; run `reelpub publish` first", err)
				}
				return err
			}
			scope.logger.Info("registry loaded", logging.String("path", source), logging.Int("entries", len(results)))
			return linkResults(cmd, scope, results, opts)
		},
	}
	cmd.Flags().StringVar(&registryPath, "registry", "", "Registry file to read (default from config)")
	cmd.Flags().StringVar(&targetPath, "target", "", "Presentation source to patch (default from config)")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Print the patched source instead of writing it")
	cmd.Flags().BoolVar(&opts.allowUnknown, "allow-unknown", false, "Accept registry filenames that are not in the catalog")
	return cmd
}

// linkPlan is a validated link: the key registry is built and the target is
// known to be patchable, but nothing has been written yet.
type linkPlan struct {
	linker   *linker.Linker
	registry linker.Registry
	opts     linkOptions
	preview  string
	change   linker.Change
}

// prepareLink builds the key registry and patches the target in memory.
// Collisions, a missing target and a missing anchor all fail here.
func prepareLink(scope *runScope, results []publish.Result, opts linkOptions) (*linkPlan, error) {
	cfg := scope.cfg
	l := linker.New(linker.Options{
		Host:   cfg.Linker.EmbedHost,
		Marker: cfg.Linker.Marker,
		Anchor: cfg.Linker.Anchor,
		Strict: !opts.allowUnknown,
	})

	reg, err := l.BuildRegistry(results)
	if err != nil {
		logging.ErrorWithContext(scope.logger, "registry rejected", "link_registry_invalid",
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "fix the registry file so each video maps to one key"),
		)
		return nil, err
	}

	preview, change, err := l.Preview(opts.target, reg)
	if err != nil {
		logging.ErrorWithContext(scope.logger, "link failed", "link_failed",
			logging.Error(err),
			logging.String("target", opts.target),
			logging.String(logging.FieldImpact, "presentation source left unchanged"),
		)
		return nil, err
	}
	return &linkPlan{linker: l, registry: reg, opts: opts, preview: preview, change: change}, nil
}

// apply writes the plan, or prints it for a dry run.
func (p *linkPlan) apply(cmd *cobra.Command, scope *runScope) error {
	out := cmd.OutOrStdout()
	if p.opts.dryRun {
		fmt.Fprint(out, p.preview)
		if !strings.HasSuffix(p.preview, "\n") {
			fmt.Fprintln(out)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Dry run: %s\n", describeChange(p.change))
		return nil
	}

	change, err := p.linker.PatchFile(scope.ctx, p.opts.target, p.registry)
	if err != nil {
		logging.ErrorWithContext(scope.logger, "link failed", "link_failed",
			logging.Error(err),
			logging.String("target", p.opts.target),
			logging.String(logging.FieldImpact, "presentation source left unchanged"),
		)
		return err
	}
	scope.logger.Info("target linked",
		logging.String("target", p.opts.target),
		logging.Bool("inserted", change.Inserted),
		logging.Int("replaced", change.Replaced),
	)
	fmt.Fprintf(out, "Updated %s: %s\n", p.opts.target, describeChange(change))
	return nil
}

func linkResults(cmd *cobra.Command, scope *runScope, results []publish.Result, opts linkOptions) error {
	plan, err := prepareLink(scope, results, opts)
	if err != nil {
		return err
	}
	return plan.apply(cmd, scope)
}

func describeChange(change linker.Change) string {
	if !change.Changed() {
		return "already up to date"
	}
	parts := make([]string, 0, 2)
	if change.Inserted {
		parts = append(parts, "inserted video ID block")
	}
	if change.Replaced > 0 {
		noun := "references"
		if change.Replaced == 1 {
			noun = "reference"
		}
		parts = append(parts, fmt.Sprintf("rewrote %d video %s", change.Replaced, noun))
	}
	return strings.Join(parts, ", ")
}

func pathOrDefault(flagValue, fallback string) (string, error) {
	value := strings.TrimSpace(flagValue)
	if value == "" {
		return fallback, nil
	}
	expanded, err := config.ExpandPath(value)
	if err != nil {
		return "", fmt.Errorf("resolve path %q: %w", value, err)
	}
	return expanded, nil
}
