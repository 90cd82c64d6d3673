package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fadilmartias/talent-fit/internal/config"
	"github.com/fadilmartias/talent-fit/internal/model"
	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

var ErrProfileUnrecognized = errors.New("profile page has no recognizable data")

// LinkedInService reads the public LinkedIn profile page. Nothing is cached;
// every call goes to the network.
type LinkedInService struct {
	client               *resty.Client
	limiter              *rate.Limiter
	logger               *zap.Logger
	placeholderOnFailure bool
}

func NewLinkedInService(cfg *config.EnrichmentConfig, log *zap.Logger) *LinkedInService {
	client := resty.New().
		SetTimeout(cfg.Timeout).
		SetHeader("User-Agent", cfg.UserAgent).
		SetHeader("Accept", "text/html,application/xhtml+xml").
		SetHeader("Accept-Language", "en-US,en;q=0.9")

	return &LinkedInService{
		client:               client,
		limiter:              rate.NewLimiter(rate.Limit(cfg.RatePerSec), 1),
		logger:               log,
		placeholderOnFailure: cfg.PlaceholderOnFailure,
	}
}

func (s *LinkedInService) Enrich(ctx context.Context, profileURL string) (*model.EnrichedProfile, error) {
	profile, err := s.fetch(ctx, profileURL)
	if err != nil && s.placeholderOnFailure {
		s.logger.Warn("linkedin fetch failed, returning placeholder",
			zap.String("url", profileURL), zap.Error(err))
		return PlaceholderProfile(profileURL), nil
	}
	return profile, err
}

func (s *LinkedInService) fetch(ctx context.Context, profileURL string) (*model.EnrichedProfile, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	resp, err := s.client.R().SetContext(ctx).Get(profileURL)
	if err != nil {
		return nil, fmt.Errorf("fetch profile: %w", err)
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("fetch profile: status %s", resp.Status())
	}

	return ParseLinkedInProfile(resp.Body(), profileURL)
}

// ParseLinkedInProfile reads the JSON-LD Person block first and fills the
// gaps from the rendered top card and sections.
func ParseLinkedInProfile(page []byte, profileURL string) (*model.EnrichedProfile, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page))
	if err != nil {
		return nil, fmt.Errorf("parse profile html: %w", err)
	}

	p := &model.EnrichedProfile{SourceURL: profileURL}

	doc.Find(`script[type="application/ld+json"]`).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		person, ok := findPerson(sel.Text())
		if !ok {
			return true
		}
		fillFromPerson(p, person)
		return false
	})

	fillFromHTML(p, doc)

	if p.Name == "" && p.Headline == "" && p.About == "" {
		return nil, ErrProfileUnrecognized
	}
	return p, nil
}

func findPerson(ld string) (gjson.Result, bool) {
	if !gjson.Valid(ld) {
		return gjson.Result{}, false
	}
	root := gjson.Parse(ld)
	nodes := []gjson.Result{root}
	if graph, ok := root.Map()["@graph"]; ok {
		nodes = append(nodes, graph.Array()...)
	}
	for _, n := range nodes {
		if n.Map()["@type"].String() == "Person" {
			return n, true
		}
	}
	return gjson.Result{}, false
}

func fillFromPerson(p *model.EnrichedProfile, person gjson.Result) {
	p.Name = clean(person.Get("name").String())
	p.About = clean(person.Get("description").String())

	if titles := person.Get("jobTitle"); titles.IsArray() {
		var parts []string
		for _, t := range titles.Array() {
			parts = append(parts, clean(t.String()))
		}
		p.Headline = strings.Join(parts, " | ")
	} else {
		p.Headline = clean(titles.String())
	}

	for _, org := range person.Get("worksFor").Array() {
		p.Experience = append(p.Experience, model.Experience{
			Company:     clean(org.Get("name").String()),
			Title:       clean(org.Get("member.roleName").String()),
			Duration:    dateRange(org.Get("member.startDate").String(), org.Get("member.endDate").String()),
			Description: clean(org.Get("member.description").String()),
		})
	}
	for _, school := range person.Get("alumniOf").Array() {
		p.Education = append(p.Education, model.Education{
			Institution: clean(school.Get("name").String()),
			Duration:    dateRange(school.Get("member.startDate").String(), school.Get("member.endDate").String()),
		})
	}
	for _, skill := range person.Get("knowsAbout").Array() {
		if s := clean(skill.String()); s != "" {
			p.Skills = append(p.Skills, s)
		}
	}
}

func fillFromHTML(p *model.EnrichedProfile, doc *goquery.Document) {
	ogTitle, _ := doc.Find(`meta[property="og:title"]`).Attr("content")
	ogName, ogHeadline, _ := strings.Cut(ogTitle, " - ")
	ogHeadline, _, _ = strings.Cut(ogHeadline, " | ")

	if p.Name == "" {
		p.Name = firstNonEmpty(clean(doc.Find("h1.top-card-layout__title").First().Text()), clean(ogName))
	}
	if p.Headline == "" {
		p.Headline = firstNonEmpty(clean(doc.Find("h2.top-card-layout__headline").First().Text()), clean(ogHeadline))
	}
	if p.About == "" {
		desc, _ := doc.Find(`meta[name="description"]`).Attr("content")
		ogDesc, _ := doc.Find(`meta[property="og:description"]`).Attr("content")
		p.About = firstNonEmpty(
			clean(doc.Find("section.summary p").First().Text()),
			clean(desc),
			clean(ogDesc),
		)
	}

	if len(p.Experience) == 0 {
		doc.Find("section.experience li.experience-item").Each(func(_ int, li *goquery.Selection) {
			p.Experience = append(p.Experience, model.Experience{
				Title:       clean(li.Find("h3").First().Text()),
				Company:     clean(li.Find("h4").First().Text()),
				Duration:    clean(li.Find("span.date-range").First().Text()),
				Description: clean(li.Find(".show-more-less-text__text--less").First().Text()),
			})
		})
	}

	if len(p.Education) == 0 {
		doc.Find("section.education li.education__list-item").Each(func(_ int, li *goquery.Selection) {
			ed := model.Education{
				Institution: clean(li.Find("h3").First().Text()),
				Duration:    clean(li.Find("span.date-range").First().Text()),
			}
			spans := li.Find("h4 span")
			ed.Degree = clean(spans.Eq(0).Text())
			ed.Field = clean(spans.Eq(1).Text())
			p.Education = append(p.Education, ed)
		})
	}

	if len(p.Skills) == 0 {
		doc.Find("section.skills li").Each(func(_ int, li *goquery.Selection) {
			if s := clean(li.Text()); s != "" {
				p.Skills = append(p.Skills, s)
			}
		})
	}
}

func clean(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func dateRange(start, end string) string {
	start, end = clean(start), clean(end)
	switch {
	case start == "" && end == "":
		return ""
	case end == "":
		return start + " - Present"
	default:
		return start + " - " + end
	}
}
