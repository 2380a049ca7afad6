package progress

// Step identifies one position in the submission flow. The five stage values
// between StepIdle and StepComplete form the fixed progress sequence shown to
// the user.
type Step int

const (
	StepIdle Step = iota
	StepUploading
	StepExtracting
	StepAnalyzing
	StepTailoring
	StepGenerating
	StepComplete
	StepError
)

var stepNames = map[Step]string{
	StepIdle:       "idle",
	StepUploading:  "uploading",
	StepExtracting: "extracting",
	StepAnalyzing:  "analyzing",
	StepTailoring:  "tailoring",
	StepGenerating: "generating",
	StepComplete:   "complete",
	StepError:      "error",
}

func (s Step) String() string {
	if name, ok := stepNames[s]; ok {
		return name
	}
	return "unknown"
}

// Terminal reports whether the step ends the flow without further automatic
// transitions.
func (s Step) Terminal() bool {
	return s == StepComplete || s == StepError
}

// InFlight reports whether a request is outstanding at this step.
func (s Step) InFlight() bool {
	return s >= StepUploading && s <= StepGenerating
}

// Stages returns the fixed ordered stage list in display order.
func Stages() []Step {
	return []Step{StepUploading, StepExtracting, StepAnalyzing, StepTailoring, StepGenerating}
}

// Label returns the user-facing description for a stage.
func (s Step) Label() string {
	switch s {
	case StepUploading:
		return "Uploading resume"
	case StepExtracting:
		return "Extracting content"
	case StepAnalyzing:
		return "Analyzing job description"
	case StepTailoring:
		return "Tailoring resume"
	case StepGenerating:
		return "Generating PDF"
	default:
		return s.String()
	}
}
