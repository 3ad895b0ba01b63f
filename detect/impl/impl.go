package impl

import (
	"context"
	"fmt"
	"log"
	"regexp"

	"cloud.google.com/go/vision/v2/apiv1/visionpb"

	"github.com/visionex-project/visiondetect/detect/impl/storage"
	"github.com/visionex-project/visiondetect/detect/impl/vision"
)

type Detector struct {
	vision vision.Client

	// Reads gs:// inputs. Nil when the input is a local file or a URL.
	storage storage.Client

	// Pattern used by the lotto mode. Nil keeps the lotto mode inert.
	lottoPattern *regexp.Regexp
}

// Result is what a mode extracted from the annotations.
type Result struct {
	Mode Mode
	// Human readable lines in output order.
	Lines []string
	// The extracted value. Only meaningful when Found is true.
	Value string
	Found bool
}

type Option func(*Detector)

func WithStorage(client storage.Client) Option {
	return func(d *Detector) {
		d.storage = client
	}
}

// WithLottoMatching enables matching LottoPattern in the lotto mode.
func WithLottoMatching(enabled bool) Option {
	return func(d *Detector) {
		if enabled {
			d.lottoPattern = LottoPattern
		} else {
			d.lottoPattern = nil
		}
	}
}

func New(visionClient vision.Client, opts ...Option) *Detector {
	d := &Detector{vision: visionClient}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Detect annotates the image at path and scans the annotations with the given mode.
func (d *Detector) Detect(ctx context.Context, mode Mode, path string) (Result, error) {
	if _, err := ParseMode(string(mode)); err != nil {
		return Result{Mode: mode}, err
	}

	response, err := d.Annotate(ctx, path)
	if err != nil {
		return Result{Mode: mode}, err
	}

	return d.Scan(mode, toAnnotationResponses(response))
}

// Scan applies the mode to responses that were already fetched.
func (d *Detector) Scan(mode Mode, responses []AnnotationResponse) (Result, error) {
	switch mode {
	case ModeText:
		return scanText(responses)
	case ModeISBN:
		return scanISBN(responses)
	case ModeLotto:
		return scanLotto(responses, d.lottoPattern)
	default:
		return Result{Mode: mode}, &UsageError{Message: fmt.Sprintf("unknown command %q", mode)}
	}
}

// Annotate sends the image at path to the OCR service and returns the raw response.
func (d *Detector) Annotate(ctx context.Context, path string) (*visionpb.BatchAnnotateImagesResponse, error) {
	image, err := d.loadImage(ctx, path)
	if err != nil {
		log.Printf("Failed to load image: %v", err)
		return nil, err
	}

	response, err := d.vision.BatchAnnotateImages(ctx, vision.TextDetectionRequest(image))
	if err != nil {
		log.Printf("Failed to detect text: %v", err)
		return nil, fmt.Errorf("failed to detect text: %w", err)
	}

	return response, nil
}

func firstRemoteError(responses []AnnotationResponse) error {
	for _, response := range responses {
		if response.HasError() {
			return &RemoteError{Message: response.Err}
		}
	}
	return nil
}
