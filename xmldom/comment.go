package xmldom

// Comment holds the verbatim bytes between <!-- and -->.
type Comment struct {
	parent Node

	content string

	precedingWS string
	followingWS string

	modified bool
}

// NewComment constructs an editor-created comment.
func NewComment(content string) *Comment {
	return &Comment{content: content, modified: true}
}

func (c *Comment) Kind() NodeKind { return CommentNode }
func (c *Comment) Parent() Node { return c.parent }
func (c *Comment) Modified() bool { return c.modified }
func (c *Comment) setParent(p Node) { c.parent = p }
func (c *Comment) clearModified() { c.modified = false }

func (c *Comment) PrecedingWhitespace() string { return c.precedingWS }
func (c *Comment) SetPrecedingWhitespace(ws string) error {
	if err := validateWhitespace(ws); err != nil {
		return err
	}
	c.precedingWS = ws
	return nil
}

func (c *Comment) FollowingWhitespace() string { return c.followingWS }
func (c *Comment) SetFollowingWhitespace(ws string) error {
	if err := validateWhitespace(ws); err != nil {
		return err
	}
	c.followingWS = ws
	return nil
}

// Content returns the raw comment body (the bytes between <!-- and -->).
func (c *Comment) Content() string { return c.content }

// SetContent replaces the comment body and marks the node modified.
func (c *Comment) SetContent(s string) {
	c.content = s
	c.modified = true
}
