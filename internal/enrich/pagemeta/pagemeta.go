// Package pagemeta extracts poster-like metadata from a film's reference
// page (usually its IMDb URL). Fetch and Parse are split so parsing stays a
// pure function of the HTML and page URL.
package pagemeta

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// maxBody caps how much of a page is read.
const maxBody = 2 << 20

// Meta is the page metadata relevant to enrichment.
type Meta struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
}

// Fetch downloads pageURL with c.
func Fetch(ctx context.Context, c *http.Client, pageURL string) ([]byte, error) {
	if c == nil {
		return nil, errors.New("http client required")
	}
	if strings.TrimSpace(pageURL) == "" {
		return nil, errors.New("page url required")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "text/html")
	req.Header.Set("Accept-Language", "en-US,en;q=0.8")

	resp, err := c.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("page returned %d", resp.StatusCode)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return nil, fmt.Errorf("read page: %w", err)
	}
	if len(body) == 0 {
		return nil, errors.New("empty response body")
	}
	return body, nil
}

// Parse reads Open Graph and Twitter card tags from html. Relative image
// URLs are resolved against pageURL.
func Parse(html []byte, pageURL string) (Meta, error) {
	if len(html) == 0 {
		return Meta{}, errors.New("html is empty")
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		return Meta{}, fmt.Errorf("parse html: %w", err)
	}

	meta := Meta{
		Title:       firstContent(doc, "meta[property='og:title']", "meta[name='twitter:title']"),
		Description: firstContent(doc, "meta[property='og:description']", "meta[name='description']"),
		Image:       firstContent(doc, "meta[property='og:image']", "meta[name='twitter:image']", "meta[property='og:image:url']"),
	}
	if meta.Title == "" {
		meta.Title = normSpace(doc.Find("title").First().Text())
	}
	if meta.Image == "" {
		if href, ok := doc.Find("link[rel='image_src']").First().Attr("href"); ok {
			meta.Image = strings.TrimSpace(href)
		}
	}
	meta.Image = resolveURL(pageURL, meta.Image)
	return meta, nil
}

func firstContent(doc *goquery.Document, selectors ...string) string {
	for _, sel := range selectors {
		if content, ok := doc.Find(sel).First().Attr("content"); ok {
			if content = normSpace(content); content != "" {
				return content
			}
		}
	}
	return ""
}

func resolveURL(base, href string) string {
	href = strings.TrimSpace(href)
	if href == "" {
		return ""
	}
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	if ref.IsAbs() {
		return ref.String()
	}
	b, err := url.Parse(base)
	if err != nil || !b.IsAbs() {
		return ""
	}
	return b.ResolveReference(ref).String()
}

func normSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
