package message

// Override names accepted in an Overrides map.
const (
	OverrideMin    = "min"
	OverrideMax    = "max"
	OverrideRange  = "range"
	OverrideExact  = "exact"
	OverrideHint   = "hint"
	OverrideDetail = "detail"
	OverrideDays   = "days"
	OverrideMonth  = "month"
	OverrideNumber = "number"
)

// Overrides maps an override name to a custom template. A present entry
// replaces the catalog template while keeping the standard arguments.
type Overrides map[string]string

// Apply returns m with the template registered under name, if any.
func (o Overrides) Apply(name string, m Message) Message {
	if tmpl, ok := o[name]; ok && tmpl != "" {
		m.Template = tmpl
	}
	return m
}

// Clone returns an independent copy.
func (o Overrides) Clone() Overrides {
	if o == nil {
		return nil
	}
	out := make(Overrides, len(o))
	for k, v := range o {
		out[k] = v
	}
	return out
}
