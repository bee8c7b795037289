package pedid

import (
	"fmt"
	"io"

	"github.com/prequel-dev/pedid/internal/pkg/checksum"
	"github.com/prequel-dev/pedid/internal/pkg/descriptor"
	"github.com/prequel-dev/pedid/internal/pkg/header"
)

// DescriptorSize is the image size carried by one active descriptor.
type DescriptorSize struct {
	Block  int // 0 for the base block, 1+ for extensions
	Width  uint
	Height uint
}

// Report holds the sizes found in a blob.
type Report struct {
	WidthCm     uint8
	HeightCm    uint8
	Descriptors []DescriptorSize
}

// Lines renders the report one size per line, base block first.
func (r Report) Lines() []string {
	lines := make([]string, 0, 1+len(r.Descriptors))
	lines = append(lines, fmt.Sprintf("%d cm x %d cm", r.WidthCm, r.HeightCm))
	for _, d := range r.Descriptors {
		lines = append(lines, fmt.Sprintf("%d mm x %d mm", d.Width, d.Height))
	}
	return lines
}

// Reporter is a read-only Visitor that records sizes.
type Reporter struct {
	report Report
	block  int
}

func NewReporter() *Reporter {
	return &Reporter{}
}

func (r *Reporter) VisitBase(base []byte) error {
	hdr := header.Parse(base)
	r.report.WidthCm = hdr.WidthCm
	r.report.HeightCm = hdr.HeightCm
	return nil
}

func (r *Reporter) VisitDescriptor(desc []byte) error {
	d := descriptor.Timing(desc)
	if !d.Active() {
		return nil
	}
	r.report.Descriptors = append(r.report.Descriptors, DescriptorSize{
		Block:  r.block,
		Width:  d.Width(),
		Height: d.Height(),
	})
	return nil
}

func (r *Reporter) VisitBlockComplete([]byte) error {
	r.block++
	return nil
}

func (r *Reporter) Report() Report {
	return r.report
}

// Patcher is a Visitor that rewrites every size field in place and
// reseals each block's checksum.
type Patcher struct {
	dims     Dimensions
	widthCm  uint8
	heightCm uint8
}

// NewPatcher fails with ErrDimensionRange if 'dims' cannot be encoded.
func NewPatcher(dims Dimensions) (*Patcher, error) {
	if err := dims.Validate(); err != nil {
		return nil, err
	}

	wCm, hCm := dims.Centimeters()

	return &Patcher{
		dims:     dims,
		widthCm:  uint8(wCm),
		heightCm: uint8(hCm),
	}, nil
}

func (p *Patcher) VisitBase(base []byte) error {
	header.SetSizeCm(base, p.widthCm, p.heightCm)
	return nil
}

func (p *Patcher) VisitDescriptor(desc []byte) error {
	d := descriptor.Timing(desc)
	if d.Active() {
		d.SetSize(p.dims.Width, p.dims.Height)
	}
	return nil
}

func (p *Patcher) VisitBlockComplete(block []byte) error {
	checksum.Update(block)
	return nil
}

// Get reports the sizes recorded in the blob read from 'rdr'.
func Get(rdr io.Reader, optFuncs ...OptT) (Report, error) {
	r := NewReporter()
	if _, err := Process(rdr, r, optFuncs...); err != nil {
		return Report{}, err
	}
	return r.Report(), nil
}

// Set returns the blob read from 'rdr' with every size field set to 'dims'.
func Set(rdr io.Reader, dims Dimensions, optFuncs ...OptT) ([]byte, error) {
	p, err := NewPatcher(dims)
	if err != nil {
		return nil, err
	}
	return Process(rdr, p, optFuncs...)
}
