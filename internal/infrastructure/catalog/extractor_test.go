package catalog

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const baseURL = "https://shop.example.com"

func productHTML(items string) string {
	return `<html><body><div class="catalog">` + items + `</div></body></html>`
}

const fullProduct = `
<div class="product tc-tile-col product-item">
  <div class="tc-tile__title"><a href="/coffee/ethiopia-yirgacheffe">Ethiopia Yirgacheffe</a></div>
  <span class="text-nowrap">650 ₽</span>
  <div class="tc-tile__description">
    <p class="text-[14px] leading-[20px] m-0">
      Washed lot with notes of
      <span class="descriptor-badge">dark chocolate</span> and
      <span class="descriptor-badge">red apple</span>
    </p>
  </div>
</div>`

func TestExtract_FullProduct(t *testing.T) {
	e := NewExtractor(baseURL)

	records := e.Extract(productHTML(fullProduct))
	require.Len(t, records, 1)

	rec := records[0]
	assert.Equal(t, "Ethiopia Yirgacheffe", rec.Name)
	assert.Equal(t, baseURL+"/coffee/ethiopia-yirgacheffe", rec.Link)
	assert.Equal(t, "650 ₽", rec.Price)
	assert.Contains(t, rec.Description, "Washed lot with notes of")
	assert.Equal(t, []string{"dark chocolate", "red apple"}, rec.FlavorNotes)
}

func TestExtract_SkipsContainerWithoutTitleLink(t *testing.T) {
	e := NewExtractor(baseURL)

	html := productHTML(`
<div class="product-item">
  <span class="text-nowrap">500 ₽</span>
  <div class="tc-tile__description"><p class="text-[14px]">orphan</p></div>
</div>` + fullProduct)

	records := e.Extract(html)
	require.Len(t, records, 1, "container without title link must be omitted entirely")
	assert.Equal(t, "Ethiopia Yirgacheffe", records[0].Name)
}

func TestExtract_FieldsDegradeIndividually(t *testing.T) {
	e := NewExtractor(baseURL)

	t.Run("missing price gets placeholder", func(t *testing.T) {
		html := productHTML(`
<div class="product-item">
  <div class="tc-tile__title"><a href="/coffee/brazil">Brazil Santos</a></div>
  <div class="tc-tile__description">
    <p class="text-[14px]"><span class="descriptor-badge">nuts</span></p>
  </div>
</div>`)

		records := e.Extract(html)
		require.Len(t, records, 1)
		assert.Equal(t, "—", records[0].Price)
		assert.Equal(t, []string{"nuts"}, records[0].FlavorNotes)
	})

	t.Run("missing description container empties description and notes", func(t *testing.T) {
		html := productHTML(`
<div class="product-item">
  <div class="tc-tile__title"><a href="/coffee/brazil">Brazil Santos</a></div>
  <span class="text-nowrap">590 ₽</span>
</div>`)

		records := e.Extract(html)
		require.Len(t, records, 1)
		assert.Empty(t, records[0].Description)
		assert.Empty(t, records[0].FlavorNotes)
	})

	t.Run("paragraph without marker class is ignored", func(t *testing.T) {
		html := productHTML(`
<div class="product-item">
  <div class="tc-tile__title"><a href="/coffee/brazil">Brazil Santos</a></div>
  <div class="tc-tile__description">
    <p class="text-base">Notes of <span class="descriptor-badge">caramel</span></p>
  </div>
</div>`)

		records := e.Extract(html)
		require.Len(t, records, 1)
		assert.Empty(t, records[0].Description)
		assert.Empty(t, records[0].FlavorNotes)
	})
}

func TestExtract_AbsoluteLinksKeptAsIs(t *testing.T) {
	e := NewExtractor(baseURL)

	html := productHTML(`
<div class="product-item">
  <div class="tc-tile__title"><a href="https://other.example.com/p/1">Colombia Supremo</a></div>
</div>`)

	records := e.Extract(html)
	require.Len(t, records, 1)
	assert.Equal(t, "https://other.example.com/p/1", records[0].Link)
}

func TestExtract_EmptyPage(t *testing.T) {
	e := NewExtractor(baseURL)

	records := e.Extract(productHTML(`<p>nothing for sale</p>`))
	assert.Empty(t, records)
}

func TestExtract_Idempotent(t *testing.T) {
	e := NewExtractor(baseURL)
	html := productHTML(fullProduct + fullProduct)

	first := e.Extract(html)
	second := e.Extract(html)

	require.Len(t, first, 2)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Extract() not idempotent:\nfirst  = %#v\nsecond = %#v", first, second)
	}
}
