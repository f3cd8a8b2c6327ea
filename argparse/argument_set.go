package argparse

// ArgumentSet is the ordered collection of declarations attached to a parser.
type ArgumentSet []*Argument

// FirstDuplicatedLabel returns the first label owned by more than one
// declaration. Long and short labels share one namespace.
func (s ArgumentSet) FirstDuplicatedLabel() (string, bool) {
	seen := make(map[string]struct{}, len(s)*2)
	for _, arg := range s {
		for _, label := range arg.Labels() {
			if _, ok := seen[label]; ok {
				return label, true
			}
			seen[label] = struct{}{}
		}
	}
	return "", false
}

// Validate returns a DeclarationError naming the first duplicated label.
func (s ArgumentSet) Validate() error {
	if label, dup := s.FirstDuplicatedLabel(); dup {
		return &DeclarationError{Type: ErrorTypeDuplicateLabel, Label: label, Argument: s.owner(label)}
	}
	return nil
}

// owner returns the last declaration owning label.
func (s ArgumentSet) owner(label string) *Argument {
	for i := len(s) - 1; i >= 0; i-- {
		for _, l := range s[i].Labels() {
			if l == label {
				return s[i]
			}
		}
	}
	return nil
}

// filter returns the declarations with the given style, preserving order.
func (s ArgumentSet) filter(style Style) []*Argument {
	var out []*Argument
	for _, arg := range s {
		if arg.style == style {
			out = append(out, arg)
		}
	}
	return out
}
