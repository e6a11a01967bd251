package nbcss

// Document is the notebook being exported. Pipeline steps pass it through
// without inspecting it.
type Document any

// Transformer is one pre-processing step of the export pipeline.
type Transformer interface {
	Transform(doc Document, res Resources) (Document, Resources)
}

// StepFunc is the body of an activatable step.
type StepFunc func(doc Document, res Resources) (Document, Resources)

// Activatable is the on/off switch shared by pipeline steps. It is set once
// at construction and does not change afterwards.
type Activatable struct {
	enabled bool
}

// NewActivatable returns a switch in the given state.
func NewActivatable(enabled bool) Activatable {
	return Activatable{enabled: enabled}
}

// Enabled reports whether the step runs.
func (a Activatable) Enabled() bool {
	return a.enabled
}

// Call runs step when enabled and otherwise returns doc and res untouched.
func (a Activatable) Call(doc Document, res Resources, step StepFunc) (Document, Resources) {
	if !a.enabled {
		return doc, res
	}
	return step(doc, res)
}
