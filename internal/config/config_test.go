package config

import "testing"

func TestLoadIncludesCrawlAndConsistencyDefaults(t *testing.T) {
	t.Setenv("CRAWL_MAX_PAGES", "")
	t.Setenv("CRAWL_REQUESTS_PER_SEC", "")
	t.Setenv("CONSISTENCY_CHECK_ENABLED", "")
	t.Setenv("CONSISTENCY_CHECK_CONCURRENCY", "")
	t.Setenv("NATS_SUBJECT", "")

	cfg := Load()
	if cfg.CrawlMaxPages != 10 {
		t.Fatalf("expected default crawl max pages 10, got %d", cfg.CrawlMaxPages)
	}
	if cfg.CrawlRequestsPerSec != 2 {
		t.Fatalf("expected default crawl rate 2, got %v", cfg.CrawlRequestsPerSec)
	}
	if !cfg.ConsistencyCheckEnabled {
		t.Fatal("expected consistency check enabled by default")
	}
	if cfg.ConsistencyCheckConcurrency != 4 {
		t.Fatalf("expected default consistency concurrency 4, got %d", cfg.ConsistencyCheckConcurrency)
	}
	if cfg.NATSSubject != "audits.requested" {
		t.Fatalf("expected default subject audits.requested, got %q", cfg.NATSSubject)
	}
}

func TestLoadParsesOverrides(t *testing.T) {
	t.Setenv("CRAWL_MAX_PAGES", "25")
	t.Setenv("CRAWL_REQUESTS_PER_SEC", "0.5")
	t.Setenv("CONSISTENCY_CHECK_ENABLED", "false")
	t.Setenv("LEXICON_PATH", "/etc/semantic-audit/lexicon.yaml")
	t.Setenv("MAX_UPLOAD_BYTES", "1048576")

	cfg := Load()
	if cfg.CrawlMaxPages != 25 {
		t.Fatalf("expected crawl max pages 25, got %d", cfg.CrawlMaxPages)
	}
	if cfg.CrawlRequestsPerSec != 0.5 {
		t.Fatalf("expected crawl rate 0.5, got %v", cfg.CrawlRequestsPerSec)
	}
	if cfg.ConsistencyCheckEnabled {
		t.Fatal("expected consistency check disabled")
	}
	if cfg.LexiconPath != "/etc/semantic-audit/lexicon.yaml" {
		t.Fatalf("expected lexicon path override, got %q", cfg.LexiconPath)
	}
	if cfg.MaxUploadBytes != 1048576 {
		t.Fatalf("expected max upload bytes 1048576, got %d", cfg.MaxUploadBytes)
	}
}

func TestLoadFallsBackOnMalformedValues(t *testing.T) {
	t.Setenv("CRAWL_MAX_PAGES", "lots")
	t.Setenv("CONSISTENCY_CHECK_ENABLED", "yep")

	cfg := Load()
	if cfg.CrawlMaxPages != 10 {
		t.Fatalf("expected fallback crawl max pages 10, got %d", cfg.CrawlMaxPages)
	}
	if !cfg.ConsistencyCheckEnabled {
		t.Fatal("expected fallback consistency check enabled")
	}
}
