package main

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"reelpub/internal/catalog"
	"reelpub/internal/config"
	"reelpub/internal/fileutil"
	"reelpub/internal/linker"
)

func newCatalogCommand(ctx *commandContext) *cobra.Command {
	catalogCmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect the video catalog",
	}
	catalogCmd.AddCommand(newCatalogListCommand())
	catalogCmd.AddCommand(newCatalogInstructionsCommand(ctx))
	return catalogCmd
}

// catalogRow is the JSON view of one entry with its derived key.
type catalogRow struct {
	Key string `json:"key"`
	catalog.AssetEntry
}

func newCatalogListCommand() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:         "list",
		Short:       "List the videos in publish order",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			entries := catalog.Build()
			if jsonOutput {
				rows := make([]catalogRow, 0, len(entries))
				for _, entry := range entries {
					rows = append(rows, catalogRow{Key: linker.NormalizeKey(entry.Filename), AssetEntry: entry})
				}
				return writeJSON(cmd, rows)
			}

			rows := make([][]string, 0, len(entries))
			for i, entry := range entries {
				rows = append(rows, []string{
					strconv.Itoa(i + 1),
					linker.NormalizeKey(entry.Filename),
					entry.Filename,
					entry.Title,
					fmt.Sprintf("%s (%s)", entry.Category.Name, entry.Category.Code),
					catalog.DisplayVisibility(entry.Visibility),
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]column{
				{Header: "#", Align: alignRight},
				{Header: "Key"},
				{Header: "File"},
				{Header: "Title", MaxWidth: 48},
				{Header: "Category"},
				{Header: "Visibility"},
			}, rows))
			return nil
		},
	}
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output JSON")
	return cmd
}

func newCatalogInstructionsCommand(ctx *commandContext) *cobra.Command {
	var outputPath string
	var format string

	cmd := &cobra.Command{
		Use:   "instructions",
		Short: "Write the manual upload instructions document",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			target := strings.TrimSpace(outputPath)
			if target == "" {
				target = cfg.Paths.InstructionsFile
			} else if target, err = config.ExpandPath(target); err != nil {
				return fmt.Errorf("resolve output path: %w", err)
			}
			encoding := instructionsFormat(format, target)

			entries := catalog.Build()
			doc := catalog.RenderInstructions(entries, catalog.InstructionOptions{
				UploadURL: catalog.DefaultUploadURL,
				VideosDir: displayPath(cfg.Paths.VideosDir),
			})
			var buf bytes.Buffer
			if err := doc.Encode(&buf, encoding); err != nil {
				return err
			}
			err = fileutil.WithLock(cmd.Context(), target, func() error {
				return fileutil.WriteFileAtomic(target, buf.Bytes(), fileutil.FileMode(target, 0o644))
			})
			if err != nil {
				return fmt.Errorf("write instructions: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Wrote manual upload instructions to %s\n\n", target)
			fmt.Fprintln(out, "Videos to upload:")
			for i, entry := range entries {
				fmt.Fprintf(out, "\n%d. %s\n", i+1, entry.Filename)
				fmt.Fprintf(out, "   Title: %s\n", entry.Title)
				fmt.Fprintf(out, "   Privacy: %s\n", catalog.DisplayVisibility(entry.Visibility))
				fmt.Fprintf(out, "   Tags: %s\n", previewTags(entry.Tags, 3))
			}
			fmt.Fprintln(out)
			fmt.Fprintln(out, "Next steps:")
			fmt.Fprintf(out, "1. Go to %s\n", doc.UploadURL)
			fmt.Fprintln(out, "2. Upload each video with the provided metadata")
			fmt.Fprintf(out, "3. Set all videos to '%s'\n", catalog.DisplayVisibility(catalog.VisibilityUnlisted))
			fmt.Fprintln(out, "4. Copy the video IDs from the URLs")
			fmt.Fprintln(out, "5. Run: reelpub publish --manual")
			return nil
		},
	}
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Destination for the instructions document")
	cmd.Flags().StringVar(&format, "format", "", "Output format: json or yaml (default from file extension)")
	return cmd
}

// instructionsFormat picks the explicit format or infers one from the path.
func instructionsFormat(explicit, path string) string {
	if explicit = strings.ToLower(strings.TrimSpace(explicit)); explicit != "" {
		return explicit
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return catalog.FormatYAML
	default:
		return catalog.FormatJSON
	}
}

func previewTags(tags []string, limit int) string {
	if len(tags) <= limit {
		return strings.Join(tags, ", ")
	}
	return strings.Join(tags[:limit], ", ") + "..."
}

// displayPath shortens paths under the working directory for operator output.
func displayPath(path string) string {
	if !filepath.IsAbs(path) {
		return path
	}
	wd, err := filepath.Abs(".")
	if err != nil {
		return path
	}
	rel, err := filepath.Rel(wd, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return rel
}
