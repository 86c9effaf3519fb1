package incidentreport

// NativeContent is the editing surface's own content representation.
// The controller never inspects it; only the ContentConverter does.
type NativeContent any

// Surface is the rich-text editing surface capability.
// LoadContent with silent=true replaces the surface content without the
// surface reporting the replacement as a user edit of its own.
type Surface interface {
	Content() NativeContent
	LoadContent(content NativeContent, silent bool)
}

// ContentConverter is the markdown round-trip converter pair.
// ToNative("") yields an empty-equivalent native content, and ToMarkdown of
// that content yields "" (the empty round trip is idempotent).
type ContentConverter interface {
	ToNative(markdown string) NativeContent
	ToMarkdown(content NativeContent) string
}

// Deferrer schedules a function to run after the current scheduling turn.
// The default runs the function as soon as the triggering call returns,
// which is correct for surfaces that emit their replacement echoes
// synchronously. Surfaces with asynchronous echoes inject a deferrer tied
// to their own event loop.
type Deferrer func(fn func())

// SyncController keeps one editing surface consistent with an
// externally-owned markdown value. The markdown string is always the
// canonical representation; the surface's native content is transient.
//
// The controller is single-goroutine and cooperative: all methods must be
// called from the surface's event dispatch context.
type SyncController struct {
	surface  Surface
	conv     ContentConverter
	onChange func(markdown string)
	deferFn  Deferrer

	lastKnown   string
	suppressing bool
}

// SyncOption configures a SyncController.
type SyncOption func(*SyncController)

// WithDeferrer overrides how suppression-window clearing is scheduled.
func WithDeferrer(d Deferrer) SyncOption {
	return func(c *SyncController) {
		c.deferFn = d
	}
}

// NewSyncController creates a controller for one editing surface instance.
// onChange receives each new canonical markdown value produced by a local
// edit; it is never invoked as a result of SetExternalValue.
func NewSyncController(surface Surface, conv ContentConverter, onChange func(string), opts ...SyncOption) *SyncController {
	c := &SyncController{
		surface:  surface,
		conv:     conv,
		onChange: onChange,
		deferFn:  func(fn func()) { fn() },
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Mount loads the initial canonical value into the surface without
// emitting a change notification.
func (c *SyncController) Mount(initial string) {
	c.lastKnown = initial
	c.surface.LoadContent(c.conv.ToNative(initial), true)
}

// HandleSurfaceEdit processes one local edit reported by the surface.
// Edits arriving inside a suppression window are dropped, not queued:
// they are echoes of an external content replacement, not user input.
func (c *SyncController) HandleSurfaceEdit(content NativeContent) {
	if c.suppressing {
		return
	}
	md := c.conv.ToMarkdown(content)
	c.lastKnown = md
	if c.onChange != nil {
		c.onChange(md)
	}
}

// SetExternalValue applies a new canonical value supplied by the caller,
// such as the result of an AI-enhancement round trip. A value equal to the
// last known one is ignored. The replacement opens a suppression window so
// that the load's own echo never re-emits as a local edit; the window
// closes after the current scheduling turn via the deferrer.
func (c *SyncController) SetExternalValue(markdown string) {
	if markdown == c.lastKnown {
		return
	}

	c.suppressing = true
	c.lastKnown = markdown
	c.surface.LoadContent(c.conv.ToNative(markdown), true)
	c.deferFn(func() {
		c.suppressing = false
	})
}

// LastKnownValue returns the canonical markdown value the controller
// currently mirrors.
func (c *SyncController) LastKnownValue() string {
	return c.lastKnown
}

// Suppressing reports whether the controller is inside a suppression
// window. Exposed for tests of the re-entrancy contract.
func (c *SyncController) Suppressing() bool {
	return c.suppressing
}
