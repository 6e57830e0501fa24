package xmldom

import "strings"

// ProcessingInstruction holds a target and optional data; the content
// between <? and ?> is preserved verbatim when unmodified.
type ProcessingInstruction struct {
	parent Node

	target string
	data   string
	raw    *string // captured verbatim "<?target data?>" text; nil once modified

	precedingWS string
	followingWS string

	modified bool
}

// NewProcessingInstruction constructs an editor-created PI.
func NewProcessingInstruction(target, data string) *ProcessingInstruction {
	return &ProcessingInstruction{target: target, data: data, modified: true}
}

func (p *ProcessingInstruction) Kind() NodeKind { return ProcessingInstructionNode }
func (p *ProcessingInstruction) Parent() Node { return p.parent }
func (p *ProcessingInstruction) Modified() bool { return p.modified }
func (p *ProcessingInstruction) setParent(n Node) { p.parent = n }
func (p *ProcessingInstruction) clearModified() { p.modified = false }

func (p *ProcessingInstruction) PrecedingWhitespace() string { return p.precedingWS }
func (p *ProcessingInstruction) SetPrecedingWhitespace(ws string) error {
	if err := validateWhitespace(ws); err != nil {
		return err
	}
	p.precedingWS = ws
	return nil
}

func (p *ProcessingInstruction) FollowingWhitespace() string { return p.followingWS }
func (p *ProcessingInstruction) SetFollowingWhitespace(ws string) error {
	if err := validateWhitespace(ws); err != nil {
		return err
	}
	p.followingWS = ws
	return nil
}

// Target returns the PI target name (the token immediately after "<?").
func (p *ProcessingInstruction) Target() string { return p.target }

// Data returns the PI's data string (everything after the target and its
// separating whitespace, up to but not including "?>").
func (p *ProcessingInstruction) Data() string { return p.data }

// SetTarget and SetData replace the target/data and mark the node
// modified, so emission reconstructs "<?target data?>" instead of
// emitting a captured verbatim form.
func (p *ProcessingInstruction) SetTarget(s string) error {
	if !ValidName(s) {
		return &InvalidXMLError{Op: "set-pi-target", Msg: "invalid PI target: " + s}
	}
	p.target = s
	p.modified = true
	p.raw = nil
	return nil
}

func (p *ProcessingInstruction) SetData(s string) {
	p.data = s
	p.modified = true
	p.raw = nil
}

// reconstruct renders "<?target data?>", omitting the separating space
// when data is empty.
func (p *ProcessingInstruction) reconstruct() string {
	var b strings.Builder
	b.WriteString("<?")
	b.WriteString(p.target)
	if p.data != "" {
		b.WriteByte(' ')
		b.WriteString(p.data)
	}
	b.WriteString("?>")
	return b.String()
}
