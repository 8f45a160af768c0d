package qr

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"time"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/yourorg/healthproof/pkg/proof"
)

const (
	DefaultSize   = 200
	DefaultMargin = 2
)

// EncodingError is returned when the barcode renderer rejects a payload.
type EncodingError struct {
	Text string
	Err  error
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("qr: encoding %q: %v", e.Text, e.Err)
}

func (e *EncodingError) Unwrap() error { return e.Err }

type Image struct {
	PNG  []byte
	Size int
}

func (i Image) DataURL() string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(i.PNG)
}

type Encoder struct {
	size   int
	margin int
	fg, bg color.Color
	level  qrcode.RecoveryLevel
	now    func() time.Time
}

type Option func(*Encoder)

// WithSize sets the rendered image edge in pixels.
func WithSize(px int) Option { return func(e *Encoder) { e.size = px } }

// WithMargin sets the quiet zone in modules.
func WithMargin(modules int) Option { return func(e *Encoder) { e.margin = modules } }

func WithColors(fg, bg color.Color) Option {
	return func(e *Encoder) { e.fg, e.bg = fg, bg }
}

func WithClock(now func() time.Time) Option { return func(e *Encoder) { e.now = now } }

func New(opts ...Option) *Encoder {
	e := &Encoder{
		size:   DefaultSize,
		margin: DefaultMargin,
		fg:     color.Black,
		bg:     color.White,
		level:  qrcode.Medium,
		now:    time.Now,
	}
	for _, o := range opts {
		o(e)
	}
	return e
}

// BuildPayload stamps the proof identifiers with the current time.
func (e *Encoder) BuildPayload(proofID, verificationKey, proofData string, network proof.NetworkInfo) Payload {
	return Payload{
		ProofID:         proofID,
		VerificationKey: verificationKey,
		ProofData:       proofData,
		Timestamp:       e.now().UnixMilli(),
		Network:         network,
	}
}

// FromResult is BuildPayload fed from a generated proof.
func (e *Encoder) FromResult(r proof.Result) Payload {
	return e.BuildPayload(r.ProofID, r.VerificationKey, r.ProofData, r.Network)
}

// RenderImage draws the payload text as a size x size PNG. Every call
// re-renders.
func (e *Encoder) RenderImage(ctx context.Context, p Payload) (Image, error) {
	if err := ctx.Err(); err != nil {
		return Image{}, err
	}

	text := EncodeText(p)
	bitmap, err := e.bitmap(p, text)
	if err != nil {
		return Image{}, err
	}

	modules := len(bitmap) + 2*e.margin
	if e.size < modules {
		return Image{}, &EncodingError{
			Text: text,
			Err:  fmt.Errorf("%dpx cannot hold %d modules", e.size, modules),
		}
	}

	img := image.NewPaletted(image.Rect(0, 0, e.size, e.size), color.Palette{e.bg, e.fg})
	for y := 0; y < e.size; y++ {
		my := y*modules/e.size - e.margin
		for x := 0; x < e.size; x++ {
			mx := x*modules/e.size - e.margin
			if my >= 0 && my < len(bitmap) && mx >= 0 && mx < len(bitmap) && bitmap[my][mx] {
				img.SetColorIndex(x, y, 1)
			}
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return Image{}, &EncodingError{Text: text, Err: err}
	}
	return Image{PNG: buf.Bytes(), Size: e.size}, nil
}

// RenderTerminal returns the payload as block characters for a terminal.
func (e *Encoder) RenderTerminal(p Payload) (string, error) {
	text := EncodeText(p)
	if err := p.validate(); err != nil {
		return "", &EncodingError{Text: text, Err: err}
	}
	q, err := qrcode.New(text, e.level)
	if err != nil {
		return "", &EncodingError{Text: text, Err: err}
	}
	return q.ToSmallString(false), nil
}

// bitmap returns the symbol modules without the library's own border.
func (e *Encoder) bitmap(p Payload, text string) ([][]bool, error) {
	if err := p.validate(); err != nil {
		return nil, &EncodingError{Text: text, Err: err}
	}
	q, err := qrcode.New(text, e.level)
	if err != nil {
		return nil, &EncodingError{Text: text, Err: err}
	}
	q.DisableBorder = true
	return q.Bitmap(), nil
}
