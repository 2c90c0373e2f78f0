// Package batch handles batch phone number lookups from a reader.
package batch

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/hightemp/dialcc/internal/config"
	"github.com/hightemp/dialcc/internal/dialcode"
	"github.com/hightemp/dialcc/internal/output"
)

// Lookup failure messages.
const (
	ErrNotInternational = "not in international format (expected leading '+')"
	ErrNoMatch          = "no dialing code matches"
)

// Processor handles batch dialing-prefix lookups.
type Processor struct {
	engine      *dialcode.Engine
	raw         bool
	concurrency int
	log         logrus.FieldLogger
}

// NewProcessor creates a new batch processor. When raw is set, queries are
// matched as bare digit strings without the international-format check.
func NewProcessor(engine *dialcode.Engine, raw bool, concurrency int, log logrus.FieldLogger) *Processor {
	return &Processor{
		engine:      engine,
		raw:         raw,
		concurrency: config.ClampConcurrency(concurrency),
		log:         log,
	}
}

// Lookup resolves a single query.
func (p *Processor) Lookup(query string) *output.LookupResult {
	var (
		m  dialcode.Match
		ok bool
	)
	if p.raw {
		m, ok = p.engine.MatchLongestPrefix(query)
	} else {
		m, ok = p.engine.FindDialingPrefix(query)
	}

	if !ok {
		msg := ErrNoMatch
		if !p.raw && !dialcode.IsInternational(query) {
			msg = ErrNotInternational
		}
		p.log.WithField("query", query).Debug(msg)
		return &output.LookupResult{Query: query, Error: msg}
	}

	p.log.WithFields(logrus.Fields{
		"query": query,
		"iso":   m.Country.ISOCode,
		"code":  m.Code,
	}).Debug("matched")
	return output.NewResult(query, m.Country, m.Code)
}

// ProcessInput reads one query per line from r and writes results to w.
func (p *Processor) ProcessInput(r io.Reader, w io.Writer, jsonOutput bool) error {
	scanner := bufio.NewScanner(r)
	var results []*output.LookupResult

	if jsonOutput {
		// Collect all results for JSON array output
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			results = append(results, p.Lookup(line))
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("read input: %w", err)
		}
		return writeJSON(w, results)
	}

	// Stream output line by line
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fmt.Fprintln(w, p.Lookup(line).FormatText())
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return nil
}

// ProcessInputConcurrent processes queries concurrently, preserving input order.
func (p *Processor) ProcessInputConcurrent(r io.Reader, w io.Writer, jsonOutput bool) error {
	scanner := bufio.NewScanner(r)
	var lines []string

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			lines = append(lines, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	results := make([]*output.LookupResult, len(lines))
	var wg sync.WaitGroup
	sem := make(chan struct{}, p.concurrency)

	for i, line := range lines {
		wg.Add(1)
		go func(idx int, query string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			results[idx] = p.Lookup(query)
		}(i, line)
	}

	wg.Wait()

	if jsonOutput {
		return writeJSON(w, results)
	}
	if len(results) > 0 {
		fmt.Fprintln(w, (&output.BatchResult{Results: results}).FormatText())
	}
	return nil
}

func writeJSON(w io.Writer, results []*output.LookupResult) error {
	batch := &output.BatchResult{Results: results}
	jsonStr, err := batch.FormatJSON()
	if err != nil {
		return err
	}
	fmt.Fprintln(w, jsonStr)
	return nil
}
