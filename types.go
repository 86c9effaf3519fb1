package incidentreport

// Run is a contiguous span of text sharing one visual style within a
// rendered block or a document title. An empty Color inherits the block's
// color.
type Run struct {
	Text   string
	Bold   bool
	Italic bool
	Color  string
}

// RenderedBlock is a target-ready paragraph: styled runs plus resolved
// visual attributes. Blocks are produced 1:1 from classified markdown
// lines, in source order, with no reordering or merging.
type RenderedBlock struct {
	Runs        []Run
	Size        float64 // points
	Color       string  // default run color
	Indent      float64 // points, left indent
	SpaceBefore float64 // points
	SpaceAfter  float64 // points
	Bullet      bool    // leading glyph is supplied by the target renderer
}

// Text returns the block's runs joined into one plain string.
// Styling is discarded; used for placeholder checks and assertions.
func (b RenderedBlock) Text() string {
	var out string
	for _, r := range b.Runs {
		out += r.Text
	}
	return out
}

// Employee identifies the employee the report concerns.
// Record lookup happens outside this library; these are display values.
type Employee struct {
	Name       string
	ID         string
	Position   string
	Department string
}

// IncidentCore holds the what/where/when of the incident.
// Date is YYYY-MM-DD and Clock is HH:MM; both render as placeholders when
// missing.
type IncidentCore struct {
	What     string
	Location string
	Date     string
	Clock    string
}

// Attachment is one supporting item referenced by the report.
type Attachment struct {
	NameOrLink  string
	Description string
}

// Impact records which parties the incident affected.
type Impact struct {
	Categories  []string
	OtherDetail string
}

// OthersCategory is the impact category expanded with free text, rendered
// as `Others (<detail>)` when OtherDetail is non-empty.
const OthersCategory = "Others"

// Signatory is a name/position pair for a signature slot.
type Signatory struct {
	Name     string
	Position string
}

// ReportFields is the complete field set for one report generation.
// Field completeness is the caller's concern: the assembler renders a
// fixed placeholder for anything missing and never rejects the input.
type ReportFields struct {
	Organization    string // wordmark fallback when the logotype is unavailable
	PreparedDate    string // YYYY-MM-DD
	Employee        Employee
	Incident        IncidentCore
	Details         string // markdown narrative
	Findings        string // markdown narrative, section omitted when empty
	PolicyViolation string // markdown narrative, section omitted when empty
	Attachments     []Attachment
	Impact          Impact
	PreparedBy      Signatory
	AttestedBy      *Signatory // nil renders the "Not selected" placeholder
}
