package deal

// DiagnosticTag classifies why the resolver fell back or overrode a
// deal-supplied time.
type DiagnosticTag string

const (
	// TAG_OUTSIDE_HOURS: the deal's explicit start/end fell outside the
	// restaurant's operating hours.
	TAG_OUTSIDE_HOURS DiagnosticTag = "OUTSIDE_HOURS"
	// TAG_POLICY_OVERRIDE: the deal supplied its own open/close but the
	// restaurant's hours win by policy.
	TAG_POLICY_OVERRIDE DiagnosticTag = "POLICY_OVERRIDE"
	// TAG_INVALID_START_TIME / TAG_INVALID_END_TIME: no usable deal time
	// info at all; restaurant hours used.
	TAG_INVALID_START_TIME DiagnosticTag = "INVALID_START_TIME"
	TAG_INVALID_END_TIME   DiagnosticTag = "INVALID_END_TIME"
)

// Diagnostic is a non-fatal observability record emitted by the resolver.
// It never changes the resolved value.
type Diagnostic struct {
	DealID        string
	Tag           DiagnosticTag
	FallbackValue string
}
