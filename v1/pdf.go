package v1

import "context"

// PdfPageSize names a standard page size for newly added pages
type PdfPageSize string

const (
	PdfPageSizeA4     PdfPageSize = "a4"
	PdfPageSizeA5     PdfPageSize = "a5"
	PdfPageSizeLetter PdfPageSize = "letter"
	PdfPageSizeLegal  PdfPageSize = "legal"
)

// IsValid checks if the page size is a valid value
func (s PdfPageSize) IsValid() bool {
	switch s {
	case PdfPageSizeA4, PdfPageSizeA5, PdfPageSizeLetter, PdfPageSizeLegal:
		return true
	}
	return false
}

// String returns the string representation of the page size
func (s PdfPageSize) String() string {
	return string(s)
}

// PdfImageFormat names the encoding of an image extracted from or placed
// into a PDF page
type PdfImageFormat string

const (
	PdfImageFormatPng  PdfImageFormat = "png"
	PdfImageFormatJpeg PdfImageFormat = "jpeg"
	PdfImageFormatTiff PdfImageFormat = "tiff"
)

// IsValid checks if the image format is a valid value
func (f PdfImageFormat) IsValid() bool {
	switch f {
	case PdfImageFormatPng, PdfImageFormatJpeg, PdfImageFormatTiff:
		return true
	}
	return false
}

// String returns the string representation of the image format
func (f PdfImageFormat) String() string {
	return string(f)
}

// Pdf is the PDF namespace of the host API, a factory for PDF instances.
type Pdf interface {
	// New creates an empty in-memory document.
	New(ctx context.Context) (PdfInstance, error)

	// Open loads a document from a stored file.
	Open(ctx context.Context, file File) (PdfInstance, error)

	// Merge concatenates the given documents into a new one, in argument
	// order.
	Merge(ctx context.Context, instances ...PdfInstance) (PdfInstance, error)
}

// PdfInstance is an open PDF document held by the host.
type PdfInstance interface {
	PageCount() int

	// Page returns the zero-based page, or ErrNotFound when the index is
	// out of range.
	Page(index int) (PdfPage, error)

	Pages() []PdfPage

	// Append adds all pages of other to the end of this document.
	Append(ctx context.Context, other PdfInstance) error

	// AddPage appends an empty page of the given size.
	AddPage(ctx context.Context, size PdfPageSize) (PdfPage, error)

	// SaveTo writes the document into the target directory.
	SaveTo(ctx context.Context, dir FileDirectory, filename string) (File, error)
}

// PdfPage is one page of an open document.
type PdfPage interface {
	Index() int

	// Width and Height are in PDF points.
	Width() float64
	Height() float64

	// Rotate turns the page clockwise. Degrees must be a multiple of 90 or
	// the host fails with ErrInvalidInput.
	Rotate(ctx context.Context, degrees int) error

	// Images extracts the raster images placed on the page.
	Images(ctx context.Context) ([]PdfImage, error)

	// AddImage places an image on the page.
	AddImage(ctx context.Context, image PdfImage, placement PdfImagePlacement) error

	// ExtractText returns the text content of the page.
	ExtractText(ctx context.Context) (string, error)
}

// PdfImage is a raster image extracted from or placed into a page.
type PdfImage struct {
	Format PdfImageFormat
	Width  int
	Height int
	Data   []byte
}

// PdfImagePlacement positions an image on a page, in PDF points measured
// from the lower-left corner.
type PdfImagePlacement struct {
	X      float64 `validate:"gte=0"`
	Y      float64 `validate:"gte=0"`
	Width  float64 `validate:"gt=0"`
	Height float64 `validate:"gt=0"`
}
