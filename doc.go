// Package incidentreport compiles incident report narratives written in a
// restricted markdown dialect into a fixed-template document, and keeps a
// rich-text editing surface synchronized with the canonical markdown value.
//
// # Quick Start
//
// Create a service, generate a report, and close when done:
//
//	svc, err := incidentreport.NewService()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer svc.Close()
//
//	result, err := svc.Generate(ctx, incidentreport.ReportFields{
//	    PreparedDate: "2024-03-15",
//	    Employee:     incidentreport.Employee{Name: "Dana Reyes"},
//	    Details:      "# Summary\n\n1. First finding",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("report.pdf", result.PDF, 0644)
//
// The result contains the assembled document model (result.Document), the
// intermediate HTML (result.HTML), and the PDF bytes (result.PDF). Use
// GenerateHTML to skip PDF rendering.
//
// # Generation Pipeline
//
//  1. Narrative compilation: markdown lines are classified into blocks and
//     inline runs, then mapped 1:1 to styled rendered blocks. Malformed
//     markdown degrades to literal paragraph text; compilation never fails.
//  2. Template assembly: rendered blocks and the remaining report fields
//     are placed into the fixed section layout (tables, narrative boxes,
//     signatories). Missing fields render as placeholders.
//  3. Serialization: the assembled document is rendered to HTML and then
//     to PDF via headless Chrome (go-rod).
//
// # Editor Synchronization
//
// SyncController keeps one rich-text editing surface consistent with an
// externally-owned markdown string, suppressing the echo of external
// content replacements so they never re-emit as local edits:
//
//	ctrl := incidentreport.NewSyncController(surface, converter, func(md string) {
//	    form.SetNarrative(md)
//	})
//	ctrl.Mount(initialMarkdown)
//
// # Configuration
//
// Use functional options to customize the service:
//
//	svc, err := incidentreport.NewService(
//	    incidentreport.WithTimeout(2*time.Minute),
//	    incidentreport.WithTheme(theme),
//	    incidentreport.WithLogoURL("https://example.com/logo.png"),
//	)
package incidentreport
