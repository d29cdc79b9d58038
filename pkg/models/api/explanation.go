package api

// ExplanationDoc is the external description of an explanation, read from
// YAML, JSON or TOML files and from HTTP request bodies.
type ExplanationDoc struct {
	Owner    string     `json:"owner" mapstructure:"owner"`
	Language string     `json:"language" mapstructure:"language"`
	Country  string     `json:"country" mapstructure:"country"`
	Title    string     `json:"title" mapstructure:"title"`
	Chunks   []ChunkDoc `json:"chunks" mapstructure:"chunks" validate:"dive"`
}

// ChunkDoc describes one chunk. Type selects which of Text/Args, Image or
// Data is read. Context is a symbolic name or a decimal code; empty means NEUTRAL.
type ChunkDoc struct {
	Type    string   `json:"type" mapstructure:"type" validate:"required,oneof=text image data"`
	Context string   `json:"context" mapstructure:"context"`
	Group   string   `json:"group" mapstructure:"group"`
	Rule    string   `json:"rule" mapstructure:"rule"`
	Tags    []string `json:"tags" mapstructure:"tags"`

	// Text is literal text and is never translated. Without Text the chunk is
	// the (group, rule) translation with Args substituted.
	Text string `json:"text" mapstructure:"text" validate:"excluded_with=Args"`
	Args []any  `json:"args" mapstructure:"args"`

	Image *ImageDoc `json:"image" mapstructure:"image" validate:"required_if=Type image"`
	Data  *DataDoc  `json:"data" mapstructure:"data" validate:"required_if=Type data"`
}

type ImageDoc struct {
	URL     string `json:"url" mapstructure:"url" validate:"required"`
	Caption string `json:"caption" mapstructure:"caption"`
}

type DataKind string

const (
	DataSingle   DataKind = "single"
	DataOneDim   DataKind = "one_dim"
	DataTwoDim   DataKind = "two_dim"
	DataThreeDim DataKind = "three_dim"
)

// DataDoc is a typed data container. Single data uses Value; one-dimensional
// data lists scalars in Values; two- and three-dimensional data list rows of
// two or three members.
type DataDoc struct {
	Kind       DataKind       `json:"kind" mapstructure:"kind" validate:"required,oneof=single one_dim two_dim three_dim"`
	Dimensions []DimensionDoc `json:"dimensions" mapstructure:"dimensions" validate:"required,min=1,max=3,dive"`
	Value      any            `json:"value" mapstructure:"value"`
	Values     []any          `json:"values" mapstructure:"values"`
}

const DimensionTypeDate = "date"

// DimensionDoc names a dimension. Type "date" parses the dimension's values
// as dates (2006-01-02 or RFC 3339).
type DimensionDoc struct {
	Name string `json:"name" mapstructure:"name" validate:"required"`
	Unit string `json:"unit" mapstructure:"unit"`
	Type string `json:"type" mapstructure:"type" validate:"omitempty,oneof=date"`
}
