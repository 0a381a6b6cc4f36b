package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/akarasev/harvester/internal/types"
)

// builtins holds one extraction rule per configured publisher, keyed by
// the source's extractor slug. Each rule is a bespoke selector list for
// that site's markup; they share nothing beyond the helpers above.
var builtins = map[string]Func{

	"apa-az": func(doc *goquery.Document) (string, error) {
		return paragraphs(doc.Selection, "div", false, "content"), nil
	},

	"apsny": func(doc *goquery.Document) (string, error) {
		doc.Find("a, strong").Remove()
		div := doc.Find("div.txt-item-news").First()
		if div.Length() == 0 {
			return "", types.ErrContentGone
		}
		return div.Text(), nil
	},

	"camto": func(doc *goquery.Document) (string, error) {
		if strings.Contains(doc.Find("head title").Text(), "401") {
			return "ПЛАТНАЯ СТАТЬЯ", nil
		}
		body := doc.Find("div.content div.mainnews").First()
		if body.Length() == 0 {
			return "", types.ErrContentGone
		}
		var b strings.Builder
		body.Find("div").Each(func(_ int, d *goquery.Selection) {
			b.WriteString("\n")
			b.WriteString(d.Text())
		})
		return b.String(), nil
	},

	"irna": func(doc *goquery.Document) (string, error) {
		heading := doc.Find("h3#ctl00_ctl00_ContentPlaceHolder_ContentPlaceHolder_NewsContent1_H1").First()
		body := doc.Find("p#ctl00_ctl00_ContentPlaceHolder_ContentPlaceHolder_NewsContent1_BodyLabel").First()
		if heading.Length() == 0 || body.Length() == 0 {
			return "", types.ErrContentGone
		}
		return "\n" + heading.Text() + "\n" + body.Text(), nil
	},

	"kommersant": func(doc *goquery.Document) (string, error) {
		var b strings.Builder
		doc.Find("p.b-article__text").Each(func(_ int, p *goquery.Selection) {
			b.WriteString("\n")
			b.WriteString(p.Text())
		})
		return b.String(), nil
	},

	"mignews": func(doc *goquery.Document) (string, error) {
		doc.Find("noindex, iframe, ul, h5").Remove()
		doc.Find("div.addthis_toolbox.addthis_default_style.pad2").Remove()
		if div := doc.Find("div.textnews").First(); div.Length() > 0 {
			return div.Text() + "\n", nil
		}
		if div := doc.Find("div#leftc").First(); div.Length() > 0 {
			return div.Text() + "\n", nil
		}
		return "", nil
	},

	"news-asia": func(doc *goquery.Document) (string, error) {
		return paragraphs(doc.Selection, "div", false, "content"), nil
	},

	"rt": func(doc *goquery.Document) (string, error) {
		doc.Find("p.disclaimer").Remove()
		return paragraphs(doc.Selection, "div", false, "article__summary", "article__text"), nil
	},

	"korrespondent": func(doc *goquery.Document) (string, error) {
		div := doc.Find("div.post-item__text").First()
		if div.Length() == 0 {
			return "", types.ErrContentGone
		}
		return div.Text(), nil
	},

	"unian": func(doc *goquery.Document) (string, error) {
		body := doc.Find(`span[itemprop="articleBody"]`).First()
		if body.Length() == 0 {
			return "", nil
		}
		ads := []string{"Читайте также", "Читайте о самых важных", "Теги:"}
		var parts []string
		body.ChildrenFiltered("p").Each(func(_ int, p *goquery.Selection) {
			text := p.Text()
			for _, ad := range ads {
				if strings.Contains(text, ad) {
					return
				}
			}
			parts = append(parts, strings.TrimSpace(text))
		})
		return strings.Join(parts, "\n"), nil
	},

	"ukrinform": func(doc *goquery.Document) (string, error) {
		var b strings.Builder
		if div := firstByClass(doc.Selection, "div", "newsHeading"); div.Length() > 0 {
			b.WriteString("\n")
			b.WriteString(div.Text())
		}
		if div := firstByClass(doc.Selection, "div", "newsText"); div.Length() > 0 {
			div.Find("p").Each(func(_ int, p *goquery.Selection) {
				if strings.Contains(p.Text(), "Читайте также:") {
					return
				}
				b.WriteString("\n")
				b.WriteString(p.Text())
			})
		}
		return b.String(), nil
	},

	"rbc": func(doc *goquery.Document) (string, error) {
		return paragraphs(doc.Selection, "div", false, "article__text"), nil
	},

	"bbc": func(doc *goquery.Document) (string, error) {
		return paragraphs(doc.Selection, "div", false, "story-body__inner", "map-body", "story-body"), nil
	},

	"lenta": func(doc *goquery.Document) (string, error) {
		body := doc.Find(`div[itemprop="articleBody"]`).First()
		if body.Length() == 0 {
			return "", types.ErrContentGone
		}
		var b strings.Builder
		body.Find("p").Each(func(_ int, p *goquery.Selection) {
			b.WriteString("\n")
			b.WriteString(p.Text())
		})
		return b.String(), nil
	},

	"rian": func(doc *goquery.Document) (string, error) {
		doc.Find(`p[style="text-align: center;"]`).Remove()
		body := doc.Find(`div[itemprop="articleBody"]`).First()
		if body.Length() == 0 {
			return "", types.ErrContentGone
		}
		var b strings.Builder
		body.Find("p").Each(func(_ int, p *goquery.Selection) {
			b.WriteString("\n")
			b.WriteString(p.Text())
		})
		return b.String(), nil
	},

	"trend": func(doc *goquery.Document) (string, error) {
		body := doc.Find(`div[itemprop="articleBody"]`).First()
		if body.Length() == 0 {
			return "", types.ErrContentGone
		}
		var b strings.Builder
		body.Find("p").Each(func(_ int, p *goquery.Selection) {
			text := p.Text()
			if strings.Contains(text, "@www_Trend_Az") || strings.Contains(text, "agency@trend.az") {
				return
			}
			b.WriteString("\n")
			b.WriteString(text)
		})
		return b.String(), nil
	},

	"kavkaz-uzel": func(doc *goquery.Document) (string, error) {
		doc.Find("div.lt-feedback_banner.pull-right.hidden-phone").Remove()
		return paragraphs(doc.Selection, "div", false, "articles-body"), nil
	},

	"vedomosti": func(doc *goquery.Document) (string, error) {
		return paragraphs(doc.Selection, "div", false, "b-news-item__text b-news-item__text_one"), nil
	},

	"itar-tass": func(doc *goquery.Document) (string, error) {
		doc.Find("div.b-gallery-widget-item").Remove()
		doc.Find("div.b-links.printHidden").Remove()
		doc.Find("div.b-links.b-links_mini.b-links_right.printHidden").Remove()
		doc.Find(`a[target="_blank"]`).Remove()
		return paragraphs(doc.Selection, "div", false, "b-material-text__l"), nil
	},

	"rosbalt": func(doc *goquery.Document) (string, error) {
		text := paragraphs(doc.Selection, "div", false, "newstext")
		if text == "" {
			if div := firstByClass(doc.Selection, "div", "newstext"); div.Length() > 0 {
				text = "\n" + div.Text()
			}
		}
		return text, nil
	},

	"vpk": func(doc *goquery.Document) (string, error) {
		body := doc.Find("div.field-name-body").First()
		if body.Length() == 0 {
			return "", types.ErrContentGone
		}
		return paragraphs(body, "div", false, "field-item even"), nil
	},

	"fergana": func(doc *goquery.Document) (string, error) {
		var b strings.Builder
		doc.Find("div#text").Each(func(_ int, d *goquery.Selection) {
			b.WriteString("\n")
			b.WriteString(d.Text())
		})
		return b.String(), nil
	},

	"sputnik": func(doc *goquery.Document) (string, error) {
		doc.Find("div.b-inject").Remove()
		return paragraphs(doc.Selection, "div", false, "b-article__text"), nil
	},

	"apsny-press": func(doc *goquery.Document) (string, error) {
		div := doc.Find("div.detail_text").First()
		if div.Length() == 0 {
			return "", types.ErrContentGone
		}
		return div.Text(), nil
	},

	"sana": func(doc *goquery.Document) (string, error) {
		return paragraphs(doc.Selection, "div", false, "entry"), nil
	},

	"dan": func(doc *goquery.Document) (string, error) {
		return paragraphs(doc.Selection, "div", false, "entry"), nil
	},

	"anadolu": func(doc *goquery.Document) (string, error) {
		return paragraphs(doc.Selection, "div", false, "article-post-content"), nil
	},

	"armenpress": func(doc *goquery.Document) (string, error) {
		body := doc.Find(`span[itemprop="articleBody"]`).First()
		if body.Length() == 0 {
			return "", types.ErrContentGone
		}
		var b strings.Builder
		body.Find("p").Each(func(_ int, p *goquery.Selection) {
			b.WriteString("\n")
			b.WriteString(p.Text())
		})
		return b.String(), nil
	},
}
