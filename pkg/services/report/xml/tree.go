package xml

import "encoding/xml"

// element is a node of the markup tree. A node carries either text or children.
type element struct {
	XMLName  xml.Name
	Attrs    []xml.Attr `xml:",any,attr"`
	Text     string     `xml:",chardata"`
	Children []*element `xml:",any"`
}

func newElement(name string) *element {
	return &element{XMLName: xml.Name{Local: name}}
}

// add appends a child element and returns it.
func (e *element) add(name string) *element {
	child := newElement(name)
	e.Children = append(e.Children, child)
	return child
}

// addText appends a child element holding text.
func (e *element) addText(name, text string) *element {
	child := e.add(name)
	child.Text = text
	return child
}

func (e *element) attr(name, value string) *element {
	e.Attrs = append(e.Attrs, xml.Attr{Name: xml.Name{Local: name}, Value: value})
	return e
}
