package service

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fadilmartias/talent-fit/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const jsonLDProfilePage = `<!doctype html>
<html><head>
<meta property="og:title" content="Jane Roe - Staff Engineer | LinkedIn">
<script type="application/ld+json">
{"@context":"http://schema.org","@graph":[
  {"@type":"WebPage","name":"ignored"},
  {"@type":"Person","name":"Jane Roe","jobTitle":["Staff Engineer","Tech Lead"],
   "description":"Builds distributed systems.",
   "worksFor":[{"@type":"Organization","name":"Acme","member":{"@type":"OrganizationRole","roleName":"Staff Engineer","startDate":"2021"}}],
   "alumniOf":[{"@type":"EducationalOrganization","name":"State University","member":{"startDate":"2010","endDate":"2014"}}],
   "knowsAbout":["Go","Kafka"]}
]}
</script>
</head><body></body></html>`

const htmlProfilePage = `<!doctype html>
<html><head>
<meta property="og:title" content="John Doe - Backend Developer | LinkedIn">
<meta name="description" content="Backend developer from Lisbon.">
</head><body>
<section class="top-card-layout"><h1 class="top-card-layout__title"> John   Doe </h1></section>
<section class="experience"><ul>
  <li class="experience-item"><h3>Backend Developer</h3><h4>Globex</h4><span class="date-range">2019 - Present</span></li>
</ul></section>
<section class="education"><ul>
  <li class="education__list-item"><h3>Tech Institute</h3><h4><span>BSc</span><span>Computer Science</span></h4><span class="date-range">2014 - 2018</span></li>
</ul></section>
<section class="skills"><ul><li>Go</li><li> SQL </li></ul></section>
</body></html>`

func testEnrichmentConfig() *config.EnrichmentConfig {
	return &config.EnrichmentConfig{
		Mode:       config.EnrichmentLinkedIn,
		Timeout:    time.Second,
		RatePerSec: 100,
		UserAgent:  "test-agent",
	}
}

func TestParseLinkedInProfileJSONLD(t *testing.T) {
	p, err := ParseLinkedInProfile([]byte(jsonLDProfilePage), "https://linkedin.com/in/jane-roe")
	require.NoError(t, err)
	assert.Equal(t, "Jane Roe", p.Name)
	assert.Equal(t, "Staff Engineer | Tech Lead", p.Headline)
	assert.Equal(t, "Builds distributed systems.", p.About)
	require.Len(t, p.Experience, 1)
	assert.Equal(t, "Acme", p.Experience[0].Company)
	assert.Equal(t, "Staff Engineer", p.Experience[0].Title)
	assert.Equal(t, "2021 - Present", p.Experience[0].Duration)
	require.Len(t, p.Education, 1)
	assert.Equal(t, "State University", p.Education[0].Institution)
	assert.Equal(t, "2010 - 2014", p.Education[0].Duration)
	assert.Equal(t, []string{"Go", "Kafka"}, p.Skills)
	assert.Equal(t, "https://linkedin.com/in/jane-roe", p.SourceURL)
}

func TestParseLinkedInProfileHTML(t *testing.T) {
	p, err := ParseLinkedInProfile([]byte(htmlProfilePage), "https://linkedin.com/in/john-doe")
	require.NoError(t, err)
	assert.Equal(t, "John Doe", p.Name)
	assert.Equal(t, "Backend Developer", p.Headline)
	assert.Equal(t, "Backend developer from Lisbon.", p.About)
	require.Len(t, p.Experience, 1)
	assert.Equal(t, "Globex", p.Experience[0].Company)
	require.Len(t, p.Education, 1)
	assert.Equal(t, "BSc", p.Education[0].Degree)
	assert.Equal(t, "Computer Science", p.Education[0].Field)
	assert.Equal(t, []string{"Go", "SQL"}, p.Skills)
}

func TestParseLinkedInProfileAuthWall(t *testing.T) {
	_, err := ParseLinkedInProfile([]byte(`<html><body><form>Sign in</form></body></html>`), "u")
	assert.True(t, errors.Is(err, ErrProfileUnrecognized))
}

func TestLinkedInServiceEnrich(t *testing.T) {
	var ua string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ua = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte(htmlProfilePage))
	}))
	defer srv.Close()

	svc := NewLinkedInService(testEnrichmentConfig(), zap.NewNop())
	p, err := svc.Enrich(context.Background(), srv.URL+"/in/john-doe")
	require.NoError(t, err)
	assert.Equal(t, "John Doe", p.Name)
	assert.True(t, p.Usable())
	assert.Equal(t, "test-agent", ua)
}

func TestLinkedInServiceFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	svc := NewLinkedInService(testEnrichmentConfig(), zap.NewNop())
	p, err := svc.Enrich(context.Background(), srv.URL+"/in/john-doe")
	assert.Error(t, err)
	assert.Nil(t, p)

	cfg := testEnrichmentConfig()
	cfg.PlaceholderOnFailure = true
	p, err = NewLinkedInService(cfg, zap.NewNop()).Enrich(context.Background(), srv.URL+"/in/john-doe")
	require.NoError(t, err)
	assert.True(t, p.Unavailable)
	assert.False(t, p.Usable())
}

func TestLinkedInServiceTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
		_, _ = w.Write([]byte(htmlProfilePage))
	}))
	defer srv.Close()

	cfg := testEnrichmentConfig()
	cfg.Timeout = 50 * time.Millisecond

	start := time.Now()
	p, err := NewLinkedInService(cfg, zap.NewNop()).Enrich(context.Background(), srv.URL+"/in/john-doe")
	assert.Error(t, err)
	assert.Nil(t, p)
	assert.Less(t, time.Since(start), time.Second)
}

func TestFixtureProfileService(t *testing.T) {
	p, err := NewFixtureProfileService().Enrich(context.Background(), "https://linkedin.com/in/ana-silva-dev")
	require.NoError(t, err)
	assert.Equal(t, "ana-silva-dev", p.Name)
	assert.NotEmpty(t, p.Experience)
	assert.True(t, p.Usable())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = NewFixtureProfileService().Enrich(ctx, "https://linkedin.com/in/x")
	assert.Error(t, err)
}
