package sentiment

import (
	"bufio"
	"context"
	"io"
	"strings"

	"golang.org/x/sync/errgroup"
)

// Item is one analyzed line of a batch.
type Item struct {
	Text    string
	Result  Result
	Outcome Outcome
}

// SplitLines reads r line by line and returns the trimmed, non-blank lines.
func SplitLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// AnalyzeBatch analyzes every non-blank text with the same context note and
// sarcasm flag. Results keep the input order. Items are analyzed one at a time
// unless WithConcurrency allows more.
func (i *Interpreter) AnalyzeBatch(ctx context.Context, texts []string, contextNote string, sarcasm bool) []Item {
	reqs := make([]Request, 0, len(texts))
	for _, t := range texts {
		if t = strings.TrimSpace(t); t != "" {
			reqs = append(reqs, Request{Text: t, Context: contextNote, Sarcasm: sarcasm})
		}
	}

	items := make([]Item, len(reqs))

	if i.concurrency <= 1 {
		for n, req := range reqs {
			res, outcome := i.analyze(ctx, req)
			items[n] = Item{Text: req.Text, Result: res, Outcome: outcome}
		}
		return items
	}

	// analyze never returns an error, so the group only bounds parallelism.
	var g errgroup.Group
	g.SetLimit(i.concurrency)
	for n, req := range reqs {
		g.Go(func() error {
			res, outcome := i.analyze(ctx, req)
			items[n] = Item{Text: req.Text, Result: res, Outcome: outcome}
			return nil
		})
	}
	_ = g.Wait()

	return items
}

// CategoryCount is one row of a batch distribution.
type CategoryCount struct {
	Category string
	Count    int
	Sample   string // first text that got this category
}

// Summary is the sentiment distribution of a batch.
type Summary struct {
	Categories []CategoryCount
	Failed     int
	Total      int
}

// Count returns how many items fell into category, compared case-insensitively.
func (s Summary) Count(category string) int {
	want := TitleCase(category)
	for _, c := range s.Categories {
		if c.Category == want {
			return c.Count
		}
	}
	return 0
}

// Summarize counts successful verdicts per title-cased category and keeps the
// first sample text for each. Failed items are only counted. Positive, Neutral
// and Negative come first, other categories follow in order of appearance.
func Summarize(items []Item) Summary {
	s := Summary{Total: len(items)}
	index := make(map[string]int)

	for _, want := range []string{CategoryPositive, CategoryNeutral, CategoryNegative} {
		index[want] = len(s.Categories)
		s.Categories = append(s.Categories, CategoryCount{Category: want})
	}

	for _, it := range items {
		if it.Result.Failed() {
			s.Failed++
			continue
		}
		cat := it.Result.DisplayCategory()
		n, ok := index[cat]
		if !ok {
			n = len(s.Categories)
			index[cat] = n
			s.Categories = append(s.Categories, CategoryCount{Category: cat})
		}
		if s.Categories[n].Count == 0 {
			s.Categories[n].Sample = it.Text
		}
		s.Categories[n].Count++
	}

	return s
}
