package domain

import "reflect"

// ContentKind enumerates the chunk payload variants.
type ContentKind int

const (
	KindText ContentKind = iota
	KindImage
	KindSingleData
	KindOneDimData
	KindTwoDimData
	KindThreeDimData
)

var contentKindNames = [...]string{
	KindText:         "text",
	KindImage:        "image",
	KindSingleData:   "single_data",
	KindOneDimData:   "one_dim_data",
	KindTwoDimData:   "two_dim_data",
	KindThreeDimData: "three_dim_data",
}

func (k ContentKind) String() string {
	if k >= 0 && int(k) < len(contentKindNames) {
		return contentKindNames[k]
	}
	return "unknown"
}

// Content is the closed set of chunk payloads: Text, *ImageData and the four data containers.
type Content interface {
	Kind() ContentKind
	cloneContent() Content
}

// DataContent is implemented by SingleData, OneDimData, TwoDimData and ThreeDimData.
type DataContent interface {
	Content
	// Dimensions returns copies of the container's dimensions in slot order.
	Dimensions() []Dimension
	// SetDimensions replaces all dimensions at once; the count must match the container arity.
	SetDimensions(dims ...Dimension) error
	CloneData() DataContent
	validate() error
}

// ValidateData reports whether d satisfies its container invariants. It catches
// zero-value containers that bypassed the constructors.
func ValidateData(d DataContent) error {
	if isNil(d) {
		return NewError(ErrMissingArgument, "data content is required")
	}
	return d.validate()
}

// Text is a free-text payload.
type Text string

func (Text) Kind() ContentKind { return KindText }

func (t Text) cloneContent() Content { return t }

func (t Text) String() string { return string(t) }

// ImageData references an image resource with an optional caption.
type ImageData struct {
	URL     string
	Caption string
}

// NewImageData validates the reference and returns a new record.
func NewImageData(url, caption string) (*ImageData, error) {
	if url == "" {
		return nil, NewError(ErrMissingArgument, "image url is required")
	}
	return &ImageData{URL: url, Caption: caption}, nil
}

func (*ImageData) Kind() ContentKind { return KindImage }

func (i *ImageData) Clone() *ImageData {
	return &ImageData{URL: i.URL, Caption: i.Caption}
}

func (i *ImageData) cloneContent() Content { return i.Clone() }

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

func typeName(v any) string {
	return reflect.TypeOf(v).String()
}
