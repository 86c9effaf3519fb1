package incidentreport

import (
	"context"
	"fmt"
	"strings"

	"github.com/alnah/go-incidentreport/internal/dateutil"
)

// Fixed placeholder strings for missing optional data.
const (
	noAttachmentsText = "No attachments"
	noneSelectedText  = "None selected"
	notSelectedText   = "Not selected"
)

// documentHeading titles the assembled report.
const documentHeading = "Incident Report"

// LogoFetcher retrieves the organization logotype for the title block.
// Implementations may fetch over HTTP, read from disk, or return embedded
// bytes. The fetch is best-effort: any error falls back to the wordmark.
type LogoFetcher interface {
	FetchLogo(ctx context.Context) (*Logo, error)
}

// Assembler places compiled narratives and report fields into the fixed
// document template. Assembly is pure and re-entrant apart from the single
// best-effort logotype fetch; it is safe to use one Assembler across
// concurrent generation requests.
type Assembler struct {
	theme   *Theme
	fetcher LogoFetcher
}

// NewAssembler creates an Assembler. A nil theme selects DefaultTheme; a
// nil fetcher skips the logotype and always uses the wordmark fallback.
func NewAssembler(theme *Theme, fetcher LogoFetcher) *Assembler {
	if theme == nil {
		theme = DefaultTheme()
	}
	return &Assembler{theme: theme, fetcher: fetcher}
}

// AssembleReport builds one immutable ReportDocument from the field set.
// Missing optional fields render as fixed placeholders; assembly itself
// never fails. The logotype is fetched once per call and silently replaced
// by the wordmark when unavailable.
func (a *Assembler) AssembleReport(ctx context.Context, fields ReportFields) *ReportDocument {
	doc := &ReportDocument{
		Title: a.titleBlock(ctx, fields),
	}

	doc.Sections = append(doc.Sections,
		Section{Title: SectionEmployeeDetails, Kind: SectionTable, Table: a.employeeTable(fields.Employee)},
		Section{Title: SectionDescription, Kind: SectionTable, Table: a.descriptionTable(fields.Incident)},
		Section{Title: SectionIncidentDetails, Kind: SectionNarrative, Blocks: compileMarkdown(fields.Details, a.theme)},
	)

	// Optional narratives are included only when non-empty.
	if strings.TrimSpace(fields.Findings) != "" {
		doc.Sections = append(doc.Sections,
			Section{Title: SectionFindings, Kind: SectionNarrative, Blocks: compileMarkdown(fields.Findings, a.theme)})
	}
	if strings.TrimSpace(fields.PolicyViolation) != "" {
		doc.Sections = append(doc.Sections,
			Section{Title: SectionPolicyViolation, Kind: SectionNarrative, Blocks: compileMarkdown(fields.PolicyViolation, a.theme)})
	}

	doc.Sections = append(doc.Sections,
		Section{Title: SectionAttachments, Kind: SectionNarrative, Blocks: a.attachmentBlocks(fields.Attachments)},
		Section{Title: SectionImpact, Kind: SectionNarrative, Blocks: a.impactBlocks(fields.Impact)},
		Section{Title: SectionSignatories, Kind: SectionTable, Table: a.signatoriesTable(fields)},
	)

	return doc
}

// titleBlock fetches the logotype once, falling back to the wordmark.
// Fetch failure is recovered here and never surfaced to the caller.
func (a *Assembler) titleBlock(ctx context.Context, fields ReportFields) TitleBlock {
	block := TitleBlock{Heading: documentHeading}

	if a.fetcher != nil {
		if logo, err := a.fetcher.FetchLogo(ctx); err == nil && logo != nil && len(logo.Data) > 0 {
			block.Logo = logo
			return block
		}
	}

	wordmark := fields.Organization
	if wordmark == "" {
		wordmark = documentHeading
	}
	block.Wordmark = []Run{{Text: wordmark, Bold: true, Color: a.theme.AccentColor}}
	return block
}

// employeeTable builds the Employee Details key/value table.
func (a *Assembler) employeeTable(e Employee) *Table {
	return &Table{Rows: []Row{
		keyValueRow("Name", e.Name),
		keyValueRow("Employee ID", e.ID),
		keyValueRow("Position", e.Position),
		keyValueRow("Department", e.Department),
	}}
}

// descriptionTable builds the What/Location/Time table.
func (a *Assembler) descriptionTable(in IncidentCore) *Table {
	timeValue := dateutil.FormatDateTime(in.Date, in.Clock)
	return &Table{Rows: []Row{
		keyValueRow("What happened", in.What),
		keyValueRow("Location", in.Location),
		{Cells: []Cell{
			{Lines: []string{"Time"}, Header: true},
			{Lines: []string{timeValue}, Muted: timeValue == dateutil.NotSpecified},
		}},
	}}
}

// attachmentBlocks renders one numbered line per attachment, or the
// "No attachments" placeholder for an empty list.
func (a *Assembler) attachmentBlocks(attachments []Attachment) []RenderedBlock {
	if len(attachments) == 0 {
		return []RenderedBlock{a.mutedBlock(noAttachmentsText)}
	}

	blocks := make([]RenderedBlock, 0, len(attachments))
	for i, att := range attachments {
		n := i + 1
		name := att.NameOrLink
		if name == "" {
			name = fmt.Sprintf("Attachment %d", n)
		}
		line := fmt.Sprintf("%d. %s", n, name)
		if att.Description != "" {
			line += " — " + att.Description
		}
		blocks = append(blocks, RenderedBlock{
			Runs:       []Run{{Text: line}},
			Size:       a.theme.BaseSize,
			Color:      a.theme.BaseColor,
			SpaceAfter: listSpaceAfter,
		})
	}
	return blocks
}

// impactBlocks renders the "Impacted Parties" line.
func (a *Assembler) impactBlocks(impact Impact) []RenderedBlock {
	label := Run{Text: "Impacted Parties: ", Bold: true}

	if len(impact.Categories) == 0 {
		return []RenderedBlock{{
			Runs:       []Run{label, {Text: noneSelectedText, Italic: true, Color: a.theme.MutedColor}},
			Size:       a.theme.BaseSize,
			Color:      a.theme.BaseColor,
			SpaceAfter: paragraphSpaceAfter,
		}}
	}

	parts := make([]string, 0, len(impact.Categories))
	for _, category := range impact.Categories {
		if category == OthersCategory && impact.OtherDetail != "" {
			category = fmt.Sprintf("%s (%s)", OthersCategory, impact.OtherDetail)
		}
		parts = append(parts, category)
	}

	return []RenderedBlock{{
		Runs:       []Run{label, {Text: strings.Join(parts, ", ")}},
		Size:       a.theme.BaseSize,
		Color:      a.theme.BaseColor,
		SpaceAfter: paragraphSpaceAfter,
	}}
}

// signatoriesTable builds the two-role signature grid. The prepared-by
// date line always carries the prepared date; an absent attested-by role
// renders the "Not selected" placeholder and leaves its date line blank.
func (a *Assembler) signatoriesTable(fields ReportFields) *Table {
	preparedCell := signatoryCell(fields.PreparedBy)

	attestedCell := Cell{Lines: []string{notSelectedText}, Muted: true}
	attestedDate := ""
	if fields.AttestedBy != nil {
		attestedCell = signatoryCell(*fields.AttestedBy)
	}

	return &Table{Rows: []Row{
		{Cells: []Cell{
			{Lines: []string{"Prepared by"}, Header: true},
			{Lines: []string{"Attested by"}, Header: true},
		}},
		{Cells: []Cell{preparedCell, attestedCell}},
		{Cells: []Cell{
			{Lines: []string{dateutil.FormatDate(fields.PreparedDate)}},
			{Lines: []string{attestedDate}},
		}},
	}}
}

// signatoryCell renders a name/position pair, with per-line placeholders
// for missing values.
func signatoryCell(s Signatory) Cell {
	name := s.Name
	if name == "" {
		name = dateutil.NotSpecified
	}
	lines := []string{name}
	if s.Position != "" {
		lines = append(lines, s.Position)
	}
	return Cell{Lines: lines}
}

// keyValueRow builds a shaded header cell plus a value cell, substituting
// the muted "Not specified" placeholder for a missing value.
func keyValueRow(key, value string) Row {
	cell := Cell{Lines: []string{value}}
	if value == "" {
		cell = Cell{Lines: []string{dateutil.NotSpecified}, Muted: true}
	}
	return Row{Cells: []Cell{{Lines: []string{key}, Header: true}, cell}}
}

// mutedBlock renders a muted italic placeholder line.
func (a *Assembler) mutedBlock(text string) RenderedBlock {
	return RenderedBlock{
		Runs:       []Run{{Text: text, Italic: true, Color: a.theme.MutedColor}},
		Size:       a.theme.BaseSize,
		Color:      a.theme.MutedColor,
		SpaceAfter: paragraphSpaceAfter,
	}
}
