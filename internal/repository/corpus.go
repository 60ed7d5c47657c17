package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/aliskhannn/gre-vocab-bot/internal/domain/entities"
)

var ErrInvalidCorpus = errors.New("vocabulary corpus must be a JSON array")

// RecordError describes a corpus record that was kept out of the corpus.
type RecordError struct {
	Index  int    // position in the source array
	Slug   string // may be empty when the record could not be decoded
	Reason string
}

func (e RecordError) Error() string {
	if e.Slug == "" {
		return fmt.Sprintf("record %d: %s", e.Index, e.Reason)
	}
	return fmt.Sprintf("record %d (%s): %s", e.Index, e.Slug, e.Reason)
}

// LoadOptions controls fetching the corpus over HTTP.
type LoadOptions struct {
	Timeout    time.Duration
	MaxRetries uint64
	Client     *http.Client

	newBackOff func() backoff.BackOff
}

// LoadWordRepository reads, validates and indexes the corpus at source.
// Source is a local path or an http(s) URL.
func LoadWordRepository(ctx context.Context, source string, opts LoadOptions, log *zap.Logger) (*WordRepository, error) {
	data, err := ReadSource(ctx, source, opts)
	if err != nil {
		return nil, err
	}

	words, quarantined, err := ParseCorpus(data)
	if err != nil {
		return nil, err
	}

	for _, q := range quarantined {
		log.Warn("corpus record quarantined",
			zap.Int("index", q.Index),
			zap.String("slug", q.Slug),
			zap.String("reason", q.Reason),
		)
	}

	repo, err := NewWordRepository(words, quarantined)
	if err != nil {
		return nil, fmt.Errorf("load corpus from %s: %w", source, err)
	}

	log.Info("corpus loaded",
		zap.String("source", source),
		zap.Int("words", len(words)),
		zap.Int("groups", len(repo.Groups())),
		zap.Int("quarantined", len(quarantined)),
	)

	return repo, nil
}

// ReadSource returns the raw corpus document.
func ReadSource(ctx context.Context, source string, opts LoadOptions) ([]byte, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		return fetch(ctx, source, opts)
	}

	data, err := os.ReadFile(source)
	if err != nil {
		return nil, fmt.Errorf("read corpus file: %w", err)
	}
	return data, nil
}

func fetch(ctx context.Context, url string, opts LoadOptions) ([]byte, error) {
	client := opts.Client
	if client == nil {
		client = &http.Client{Timeout: opts.Timeout}
	}

	var bo backoff.BackOff
	if opts.newBackOff != nil {
		bo = opts.newBackOff()
	} else {
		bo = backoff.NewExponentialBackOff()
	}
	bo = backoff.WithContext(backoff.WithMaxRetries(bo, opts.MaxRetries), ctx)

	var body []byte
	op := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("build request: %w", err))
		}

		resp, err := client.Do(req)
		if err != nil {
			return fmt.Errorf("fetch corpus: %w", err)
		}
		defer resp.Body.Close()

		switch {
		case resp.StatusCode >= 500:
			return fmt.Errorf("fetch corpus: unexpected status %d", resp.StatusCode)
		case resp.StatusCode < 200 || resp.StatusCode > 299:
			return backoff.Permanent(fmt.Errorf("fetch corpus: unexpected status %d", resp.StatusCode))
		}

		body, err = io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("read corpus body: %w", err)
		}
		return nil
	}

	if err := backoff.Retry(op, bo); err != nil {
		return nil, err
	}
	return body, nil
}

// ParseCorpus decodes the corpus array record by record.
// Invalid records are returned as RecordErrors instead of failing the load.
func ParseCorpus(data []byte) ([]*entities.Word, []RecordError, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidCorpus, err)
	}
	if raw == nil {
		return nil, nil, fmt.Errorf("%w: got null", ErrInvalidCorpus)
	}

	words := make([]*entities.Word, 0, len(raw))
	var quarantined []RecordError
	seen := make(map[string]struct{}, len(raw))

	for i, msg := range raw {
		var w entities.Word
		if err := json.Unmarshal(msg, &w); err != nil {
			quarantined = append(quarantined, RecordError{Index: i, Reason: "malformed record: " + err.Error()})
			continue
		}

		if reason := validateWord(&w); reason != "" {
			quarantined = append(quarantined, RecordError{Index: i, Slug: w.Slug, Reason: reason})
			continue
		}
		if _, dup := seen[w.Slug]; dup {
			quarantined = append(quarantined, RecordError{Index: i, Slug: w.Slug, Reason: "duplicate slug"})
			continue
		}
		seen[w.Slug] = struct{}{}

		normalize(&w)
		words = append(words, &w)
	}

	return words, quarantined, nil
}

func validateWord(w *entities.Word) string {
	switch {
	case strings.TrimSpace(w.Word) == "":
		return "empty word"
	case strings.TrimSpace(w.Slug) == "":
		return "empty slug"
	case w.Group < 1:
		return fmt.Sprintf("invalid group %d", w.Group)
	case len(w.Definitions) == 0:
		return "no definitions"
	}

	for i, d := range w.Definitions {
		if strings.TrimSpace(d.Definition) == "" {
			return fmt.Sprintf("definition %d is empty", i)
		}
	}
	return ""
}

func normalize(w *entities.Word) {
	for i := range w.Definitions {
		d := &w.Definitions[i]

		syns := make([]string, 0, len(d.Synonyms))
		for _, s := range d.Synonyms {
			if s = strings.TrimSpace(s); s != "" {
				syns = append(syns, s)
			}
		}
		d.Synonyms = syns

		if d.Example != nil && strings.TrimSpace(*d.Example) == "" {
			d.Example = nil
		}
	}
}
