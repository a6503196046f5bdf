package catalog

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/brewbot/backend/internal/domain"
)

// Markup selectors for the retailer's current page version. Everything the
// extractor knows about the page structure lives here; a site redesign means
// changing these (or providing another domain.ProductExtractor), nothing else.
const (
	productSelector   = "div.product-item"
	titleLinkSelector = "div.tc-tile__title a"
	priceSelector     = "span.text-nowrap"
	descSelector      = "div.tc-tile__description"
	noteSelector      = "span.descriptor-badge"
	descParaMarker    = "text-[14px]" // class carried by the description paragraph
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// Extractor pulls product records out of one catalog page's markup. Fields
// degrade individually: a container without a title link is skipped, any
// other missing field becomes an empty or placeholder value. It never
// returns an error — unexpected markup just yields fewer or emptier records.
type Extractor struct {
	baseURL string
}

// NewExtractor creates an extractor that resolves relative product links
// against baseURL.
func NewExtractor(baseURL string) *Extractor {
	return &Extractor{baseURL: strings.TrimRight(baseURL, "/")}
}

// Extract returns the product records found in markup, in document order.
func (e *Extractor) Extract(markup string) []domain.ProductRecord {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil
	}

	var records []domain.ProductRecord
	doc.Find(productSelector).Each(func(i int, item *goquery.Selection) {
		title := item.Find(titleLinkSelector).First()
		if title.Length() == 0 {
			// No name, no record
			return
		}

		name := cleanText(title.Text())
		href := strings.TrimSpace(title.AttrOr("href", ""))
		link := href
		if !strings.HasPrefix(href, "http") {
			link = e.baseURL + href
		}

		price := "—"
		if p := item.Find(priceSelector).First(); p.Length() > 0 {
			price = cleanText(p.Text())
		}

		description, notes := e.extractDescription(item)

		records = append(records, domain.ProductRecord{
			Name:        name,
			Link:        link,
			Price:       price,
			Description: description,
			FlavorNotes: notes,
		})
	})

	return records
}

// extractDescription locates the marked paragraph inside the description
// container and pulls the free text plus the badge texts out of it. Both
// degrade to empty when the paragraph is missing.
func (e *Extractor) extractDescription(item *goquery.Selection) (string, []string) {
	container := item.Find(descSelector).First()
	if container.Length() == 0 {
		return "", nil
	}

	var para *goquery.Selection
	container.Find("p").EachWithBreak(func(i int, p *goquery.Selection) bool {
		if hasClassMarker(p, descParaMarker) {
			para = p
			return false
		}
		return true
	})
	if para == nil {
		return "", nil
	}

	description := cleanText(para.Text())

	var notes []string
	para.Find(noteSelector).Each(func(i int, badge *goquery.Selection) {
		if text := cleanText(badge.Text()); text != "" {
			notes = append(notes, text)
		}
	})

	return description, notes
}

// hasClassMarker reports whether the selection's class list contains marker.
// The marker class includes CSS-hostile characters ("text-[14px]"), so it is
// matched against the raw attribute instead of with a selector.
func hasClassMarker(s *goquery.Selection, marker string) bool {
	for _, class := range strings.Fields(s.AttrOr("class", "")) {
		if class == marker {
			return true
		}
	}
	return false
}

func cleanText(s string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}
