package cli

import (
	"fmt"
	"time"

	"github.com/vinaykagithapu/portfolio/internal/usecase"
)

// ExportReport summarizes one static export run.
type ExportReport struct {
	out       *Output
	startTime time.Time
	outputDir string
}

func NewExportReport(out *Output, outputDir string) *ExportReport {
	return &ExportReport{
		out:       out,
		startTime: time.Now(),
		outputDir: outputDir,
	}
}

func (r *ExportReport) Render(result usecase.ExportOutput) {
	duration := time.Since(r.startTime)

	if result.Error != nil {
		r.out.PrintError("Export failed after %s", formatDuration(duration))
		r.out.PrintError("%v", result.Error)
		return
	}

	r.out.PrintSuccess("%d pages rendered", len(result.Pages))
	for _, f := range result.Pages {
		r.out.PrintFile(fmt.Sprintf("%s %s", f.Path, r.out.Gray(formatBytes(f.Bytes))))
	}

	r.out.PrintSuccess("%d assets written", len(result.Assets))
	for _, f := range result.Assets {
		r.out.PrintFile(fmt.Sprintf("%s %s", f.Path, r.out.Gray(formatBytes(f.Bytes))))
	}

	r.out.PrintSuccess("Export complete in %s", formatDuration(duration))
	if r.outputDir != "" {
		r.out.PrintStep("", "%s", r.out.Gray("Output: "+r.outputDir))
	}
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%.0fms", float64(d)/float64(time.Millisecond))
	}
	return fmt.Sprintf("%.1fs", float64(d)/float64(time.Second))
}

func formatBytes(n int) string {
	switch {
	case n < 1024:
		return fmt.Sprintf("%d B", n)
	case n < 1024*1024:
		return fmt.Sprintf("%.1f kB", float64(n)/1024)
	}
	return fmt.Sprintf("%.1f MB", float64(n)/(1024*1024))
}
