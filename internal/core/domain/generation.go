package domain

// GenerationKind tags the outcome of a single external model call.
type GenerationKind int

// Generation outcomes.
const (
	// GenerationWellFormed carries the model's output text.
	GenerationWellFormed GenerationKind = iota

	// GenerationUnexpectedShape means the call succeeded but the payload
	// was not a generation result. It contributes an empty string.
	GenerationUnexpectedShape

	// GenerationTransportFailure means the call itself failed.
	// It aborts the whole external attempt.
	GenerationTransportFailure
)

// String returns a short name for logging.
func (k GenerationKind) String() string {
	switch k {
	case GenerationWellFormed:
		return "well_formed"
	case GenerationUnexpectedShape:
		return "unexpected_shape"
	case GenerationTransportFailure:
		return "transport_failure"
	default:
		return "unknown"
	}
}

// Generation is the tagged result of one model call.
type Generation struct {
	// Kind selects the variant.
	Kind GenerationKind

	// Text is set for GenerationWellFormed.
	Text string

	// Err is set for GenerationTransportFailure.
	Err error
}

// WellFormed returns a generation carrying text.
func WellFormed(text string) Generation {
	return Generation{Kind: GenerationWellFormed, Text: text}
}

// UnexpectedShape returns a generation for a payload of the wrong shape.
func UnexpectedShape() Generation {
	return Generation{Kind: GenerationUnexpectedShape}
}

// TransportFailure returns a generation for a failed call.
func TransportFailure(err error) Generation {
	return Generation{Kind: GenerationTransportFailure, Err: err}
}

// Failed reports whether the generation aborts the external attempt.
// Unknown kinds abort like transport failures.
func (g Generation) Failed() bool {
	return g.Kind != GenerationWellFormed && g.Kind != GenerationUnexpectedShape
}

// Contribution returns the text this generation adds to the output.
func (g Generation) Contribution() string {
	if g.Kind == GenerationWellFormed {
		return g.Text
	}
	return ""
}
