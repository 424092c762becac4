package fetch

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/PuerkitoBio/goquery"
)

// Skeleton holds the raw HTML of the page skeleton so fresh documents can be parsed on demand.
type Skeleton struct {
	Location string
	HTML     []byte
}

// LoadSkeleton reads the page skeleton from a file path or an http(s) URL.
func LoadSkeleton(ctx context.Context, location string, opts *Options) (*Skeleton, error) {
	if location == "" {
		return nil, fmt.Errorf("skeleton location is empty")
	}

	if isURL(location) {
		result, err := URL(ctx, location, opts)
		if err != nil {
			return nil, err
		}
		return &Skeleton{Location: location, HTML: result.Body}, nil
	}

	data, err := os.ReadFile(location)
	if err != nil {
		return nil, &Error{
			URL:     location,
			Message: "failed to read skeleton",
			Cause:   err,
		}
	}
	return &Skeleton{Location: location, HTML: data}, nil
}

// Document parses a new, independent DOM from the skeleton.
func (s *Skeleton) Document() (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(s.HTML))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML skeleton %s: %w", s.Location, err)
	}
	return doc, nil
}

// RenderDocument serializes a document back to HTML.
func RenderDocument(doc *goquery.Document) (string, error) {
	html, err := doc.Html()
	if err != nil {
		return "", fmt.Errorf("failed to render document: %w", err)
	}
	return html, nil
}
