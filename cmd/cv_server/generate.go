package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Naiitikk/cv-creator/internal/config"
	"github.com/Naiitikk/cv-creator/internal/document"
	"github.com/Naiitikk/cv-creator/internal/export"
	"github.com/Naiitikk/cv-creator/internal/generation"
	"github.com/Naiitikk/cv-creator/internal/llm"
	"github.com/Naiitikk/cv-creator/internal/observability"
	"github.com/Naiitikk/cv-creator/internal/types"
)

var (
	generateInput   string
	generateOutput  string
	generateVerbose bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a CV from a request file and export it as a PDF",
	Long:  "Reads a CV request from a JSON file, generates the summary, experience bullets, and skill list, renders the chosen theme, and writes a paginated A4 PDF.",
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&generateInput, "input", "i", "", "Path to the CV request JSON file (required)")
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "Output PDF path (defaults to <FirstName>_<LastName>_CV.pdf)")
	generateCmd.Flags().BoolVarP(&generateVerbose, "verbose", "v", false, "Print intermediate results")

	if err := generateCmd.MarkFlagRequired("input"); err != nil {
		panic(fmt.Sprintf("failed to mark input flag as required: %v", err))
	}

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(_ *cobra.Command, _ []string) error {
	cfg := config.FromEnv()
	if cfg.APIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	data, err := os.ReadFile(generateInput)
	if err != nil {
		return fmt.Errorf("failed to read request file: %w", err)
	}

	var req types.CVRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return fmt.Errorf("failed to parse request file: %w", err)
	}
	if err := req.Validate(); err != nil {
		return err
	}

	printer := observability.NewPrinter(os.Stdout)
	if generateVerbose {
		printer.PrintRequest(&req)
	}

	ctx := context.Background()

	client, err := llm.NewClient(ctx, llm.DefaultConfig().WithModel(cfg.Model), cfg.APIKey)
	if err != nil {
		return fmt.Errorf("failed to create completion client: %w", err)
	}
	defer client.Close()

	generator := generation.New(client).WithTimeout(cfg.GenerationTimeout())
	content, err := generator.GenerateSections(ctx, &req)
	if err != nil {
		return fmt.Errorf("failed to generate CV content: %w", err)
	}
	if generateVerbose {
		printer.PrintGeneratedContent(content)
	}

	doc := document.Merge(&req, content)
	if generateVerbose {
		printer.PrintDocument(doc)
	}

	html, err := doc.RenderHTML()
	if err != nil {
		return fmt.Errorf("failed to render document: %w", err)
	}

	raster, err := export.CaptureHTML(ctx, html)
	if err != nil {
		return fmt.Errorf("failed to rasterize document: %w", err)
	}

	bands := export.Paginate(raster)
	var pdf bytes.Buffer
	if err := export.AssemblePDF(bands, &pdf); err != nil {
		return fmt.Errorf("failed to assemble PDF: %w", err)
	}

	out := generateOutput
	if out == "" {
		out = export.Filename(doc.FirstName, doc.LastName)
	}
	if dir := filepath.Dir(out); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(out, pdf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}

	if generateVerbose {
		printer.PrintExportResult(out, len(bands), pdf.Len())
	} else {
		_, _ = fmt.Fprintf(os.Stdout, "Wrote %s (%d pages)\n", out, len(bands))
	}

	return nil
}
