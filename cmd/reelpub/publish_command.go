package main

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"reelpub/internal/catalog"
	"reelpub/internal/config"
	"reelpub/internal/deps"
	"reelpub/internal/fileutil"
	"reelpub/internal/logging"
	"reelpub/internal/media/ffprobe"
	"reelpub/internal/preflight"
	"reelpub/internal/publish"
	"reelpub/internal/registry"
	"reelpub/internal/services"
	"reelpub/internal/services/ytupload"
)

const credentialsHelp = `To create OAuth credentials for the upload CLI:
  1. Go to https://console.developers.google.com/
  2. Create a project and enable the YouTube Data API v3
  3. Create OAuth 2.0 client credentials
  4. Download the client secrets JSON to %s
     (or point paths.credentials_file / $%s at it)`

func newPublishCommand(ctx *commandContext) *cobra.Command {
	var manual bool
	var noLink bool
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Publish every catalog video and record the assigned IDs",
		Long: "Publish uploads each catalog video through the upload CLI (or collects IDs\n" +
			"interactively with --manual), saves the registry file and links the IDs\n" +
			"into the presentation source.",
		RunE: func(cmd *cobra.Command, args []string) error {
			scope, err := ctx.newRunScope(cmd, "publish")
			if err != nil {
				return err
			}
			if dryRun {
				return printPublishPlan(cmd.OutOrStdout(), scope.cfg, manual)
			}
			return runPublish(cmd, scope, manual, noLink)
		},
	}
	cmd.Flags().BoolVar(&manual, "manual", false, "Prompt for video IDs instead of running the upload CLI")
	cmd.Flags().BoolVar(&noLink, "no-link", false, "Skip patching the presentation source")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show what would be published without uploading or writing")
	return cmd
}

func runPublish(cmd *cobra.Command, scope *runScope, manual, noLink bool) error {
	cfg := scope.cfg
	out := cmd.OutOrStdout()
	colorize := shouldColorize(out)

	publisher, err := buildPublisher(cmd, scope, manual)
	if err != nil {
		return err
	}

	entries := catalog.Build()
	scope.logger.Info("publish started",
		logging.Bool("manual", manual),
		logging.Int("videos", len(entries)),
	)

	if manual {
		fmt.Fprintf(out, "Upload each video at %s, then enter the ID from its URL.\n", catalog.DefaultUploadURL)
		fmt.Fprintln(out, "Example: https://www.youtube.com/watch?v=dQw4w9WgXcQ -> dQw4w9WgXcQ")
		fmt.Fprintln(out)
	}

	report := publish.Run(scope.ctx, publisher, entries, publish.Observer{
		Started: func(i, total int, entry catalog.AssetEntry) {
			if !manual {
				fmt.Fprintf(out, "[%d/%d] Uploading %s (%s)\n", i+1, total, entry.Label, entry.Filename)
			}
		},
		Finished: func(i, total int, outcome publish.Outcome) {
			if outcome.OK() {
				fmt.Fprintln(out, renderStatusLine(outcome.Entry.Label, statusOK, outcome.Result.ExternalID, colorize))
				return
			}
			fmt.Fprintln(out, renderStatusLine(outcome.Entry.Label, statusError, outcomeReason(outcome.Err), colorize))
			logging.WarnWithContext(logging.WithContext(services.WithAsset(scope.ctx, outcome.Entry.Filename), scope.logger),
				"video skipped", publishEventType(outcome.Err),
				logging.Error(outcome.Err),
				logging.String(logging.FieldErrorHint, publishHint(outcome.Err)),
				logging.String(logging.FieldImpact, "video is left out of the registry"),
			)
		},
	})

	if report.Err != nil {
		logging.ErrorWithContext(scope.logger, "publish aborted", "publish_aborted", logging.Error(report.Err))
		return fmt.Errorf("publish aborted: %w", report.Err)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, renderOutcomeTable(report))
	fmt.Fprintf(out, "Published %d of %d videos\n", report.Succeeded(), len(entries))
	scope.logger.Info("publish finished",
		logging.Int("succeeded", report.Succeeded()),
		logging.Int("failed", report.Failed()),
	)

	if report.Succeeded() == 0 {
		return errors.New("no videos were published; registry left unchanged")
	}

	results := report.Results()

	// Validate the link before saving; a failing link leaves both files untouched.
	var plan *linkPlan
	if !noLink {
		if plan, err = prepareLink(scope, results, linkOptions{target: cfg.Paths.TargetArtifact}); err != nil {
			return fmt.Errorf("link check failed, registry not saved: %w", err)
		}
	}

	if err := registry.Save(scope.ctx, cfg.Paths.RegistryFile, results); err != nil {
		return fmt.Errorf("save registry: %w", err)
	}
	fmt.Fprintf(out, "Saved %d video IDs to %s\n", len(results), cfg.Paths.RegistryFile)

	if plan == nil {
		fmt.Fprintln(out, "Skipping link step; run `reelpub link` to update the presentation.")
		return nil
	}
	return plan.apply(cmd, scope)
}

func buildPublisher(cmd *cobra.Command, scope *runScope, manual bool) (publish.Publisher, error) {
	cfg := scope.cfg
	if manual {
		return publish.NewManual(cmd.InOrStdin(), cmd.OutOrStdout()), nil
	}

	if err := preflight.CheckCredentials(cfg.Paths.CredentialsFile); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), credentialsHelp+"\n", cfg.Paths.CredentialsFile, config.EnvCredentialsFile)
		return nil, err
	}
	if missing := deps.MissingRequired(deps.CheckBinaries(deps.Requirements(cfg, true))); len(missing) > 0 {
		names := make([]string, 0, len(missing))
		for _, m := range missing {
			names = append(names, fmt.Sprintf("%s (%s)", m.Name, m.Command))
		}
		return nil, services.Wrap(services.ErrConfiguration, "publish", "check dependencies",
			"missing "+strings.Join(names, ", "), nil)
	}

	logger := scope.logger
	client, err := ytupload.New(cfg.Uploader.Binary, cfg.Paths.CredentialsFile, cfg.Uploader.TimeoutSeconds,
		ytupload.WithOutputMode(cfg.Uploader.OutputFormat),
		ytupload.WithLegacyFallbackHook(func(stdout string) {
			logging.WarnWithContext(logger, "upload output had no tagged video id; used last token", "upload_output_untagged",
				logging.String(logging.FieldErrorHint, "make the upload CLI print video_id=<id> or set uploader.output_format"),
				logging.String(logging.FieldImpact, "a trailing log line would be recorded as the video id"),
			)
		}),
	)
	if err != nil {
		return nil, err
	}

	opts := []publish.AutomatedOption{publish.WithLogger(scope.base)}
	if cfg.Uploader.Probe {
		opts = append(opts, publish.WithProber(ffprobe.NewInspector(cfg.Uploader.FFprobeBinary, cfg.Uploader.ProbeTimeoutSeconds, nil)))
	}
	return publish.NewAutomated(cfg.AssetPath, client, opts...), nil
}

func printPublishPlan(w io.Writer, cfg *config.Config, manual bool) error {
	mode := "automated"
	if manual {
		mode = "manual"
	}
	fmt.Fprintf(w, "Dry run (%s); nothing will be uploaded or written.\n\n", mode)

	client, err := ytupload.New(cfg.Uploader.Binary, cfg.Paths.CredentialsFile, cfg.Uploader.TimeoutSeconds)
	if err != nil {
		return err
	}
	rows := [][]string{}
	for i, entry := range catalog.Build() {
		path := cfg.AssetPath(entry.Filename)
		present, _ := fileutil.Exists(path)
		row := []string{fmt.Sprintf("%d", i+1), entry.Label, displayPath(path), yesNo(present)}
		if !manual {
			row = append(row, cfg.Uploader.Binary+" "+strings.Join(quoteArgs(client.Args(ytupload.Request{
				FilePath:     path,
				Title:        entry.Title,
				Tags:         entry.Tags,
				CategoryCode: entry.Category.Code,
				Privacy:      entry.Visibility.String(),
			})), " "))
		}
		rows = append(rows, row)
	}
	columns := []column{
		{Header: "#", Align: alignRight},
		{Header: "Video"},
		{Header: "File"},
		{Header: "Present"},
	}
	if !manual {
		columns = append(columns, column{Header: "Command (description omitted)", MaxWidth: 60})
	}
	fmt.Fprintln(w, renderTable(columns, rows))
	fmt.Fprintf(w, "Registry: %s\nTarget:   %s\n", cfg.Paths.RegistryFile, cfg.Paths.TargetArtifact)
	return nil
}

func renderOutcomeTable(report publish.Report) string {
	rows := make([][]string, 0, len(report.Outcomes))
	for _, o := range report.Outcomes {
		status, detail := "published", o.Result.ExternalID
		if !o.OK() {
			status, detail = "skipped", outcomeReason(o.Err)
		}
		rows = append(rows, []string{o.Entry.Label, o.Entry.Filename, status, detail, o.Duration.Round(time.Millisecond).String()})
	}
	return renderTable([]column{
		{Header: "Video"},
		{Header: "File"},
		{Header: "Status"},
		{Header: "Video ID / Reason", MaxWidth: 60},
		{Header: "Took", Align: alignRight},
	}, rows)
}

func outcomeReason(err error) string {
	var uploadErr *ytupload.UploadError
	switch {
	case err == nil:
		return ""
	case errors.Is(err, services.ErrAssetNotFound):
		return "file not found"
	case errors.As(err, &uploadErr) && uploadErr.Diagnostic != "":
		return "upload failed: " + firstLine(uploadErr.Diagnostic)
	default:
		return err.Error()
	}
}

func publishEventType(err error) string {
	if errors.Is(err, services.ErrAssetNotFound) {
		return "asset_not_found"
	}
	return "upload_failed"
}

func publishHint(err error) string {
	if errors.Is(err, services.ErrAssetNotFound) {
		return "place the file in paths.videos_dir and re-run publish"
	}
	if errors.Is(err, services.ErrTimeout) {
		return "raise uploader.timeout_seconds or check the network"
	}
	return "check the upload CLI output in the log file"
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		return s[:idx]
	}
	return s
}

func quoteArgs(args []string) []string {
	out := make([]string, len(args))
	for i, a := range args {
		if a == "" || strings.ContainsAny(a, " \t'\"") {
			out[i] = "'" + strings.ReplaceAll(a, "'", `'\''`) + "'"
			continue
		}
		out[i] = a
	}
	return out
}
