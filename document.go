package incidentreport

// Section titles in their fixed document order.
const (
	SectionEmployeeDetails = "Employee Details"
	SectionDescription     = "Description of Incident"
	SectionIncidentDetails = "Incident Details"
	SectionFindings        = "Findings"
	SectionPolicyViolation = "Policy Violation"
	SectionAttachments     = "Attachments"
	SectionImpact          = "Impact"
	SectionSignatories     = "Signatories"
)

// Logo is a fetched organization logotype image.
type Logo struct {
	Data []byte
	MIME string
}

// TitleBlock heads the assembled document. Logo is nil when the logotype
// fetch failed; Wordmark then carries the literal styled fallback.
type TitleBlock struct {
	Heading  string
	Logo     *Logo
	Wordmark []Run
}

// SectionKind distinguishes key/value tables from narrative boxes.
type SectionKind int

const (
	SectionTable SectionKind = iota
	SectionNarrative
)

// Cell is one table cell. Header cells get the theme's shading fill and
// accent text color; Muted cells render their lines in muted italics.
type Cell struct {
	Lines  []string
	Header bool
	Muted  bool
}

// Row is one table row.
type Row struct {
	Cells []Cell
}

// Table is a key/value or signatory grid.
type Table struct {
	Rows []Row
}

// Section is one titled unit of the document: either a table or a
// narrative box wrapping rendered blocks.
type Section struct {
	Title  string
	Kind   SectionKind
	Table  *Table
	Blocks []RenderedBlock
}

// ReportDocument is the fully assembled output artifact, ready for
// serialization. It is constructed fresh per generation request and never
// mutated after being handed to the caller.
type ReportDocument struct {
	Title    TitleBlock
	Sections []Section
}

// Section returns the first section with the given title, or nil.
func (d *ReportDocument) Section(title string) *Section {
	for i := range d.Sections {
		if d.Sections[i].Title == title {
			return &d.Sections[i]
		}
	}
	return nil
}
