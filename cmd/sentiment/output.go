package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dmitrymomot/sentiment/pkg/sentiment"
)

type verdict struct {
	Text      string  `json:"text"`
	Sentiment string  `json:"sentiment"`
	Reason    string  `json:"reason"`
	Score     float64 `json:"score"`
	Failed    bool    `json:"failed,omitempty"`
}

type categoryRow struct {
	Sentiment string  `json:"sentiment"`
	Count     int     `json:"count"`
	Percent   float64 `json:"percent"`
	Example   string  `json:"example,omitempty"`
}

type batchReport struct {
	Results      []verdict     `json:"results"`
	Distribution []categoryRow `json:"distribution"`
	Failed       int           `json:"failed"`
	Total        int           `json:"total"`
}

func toVerdict(text string, r sentiment.Result) verdict {
	return verdict{
		Text:      text,
		Sentiment: r.DisplayCategory(),
		Reason:    r.Reason,
		Score:     r.Score,
		Failed:    r.Failed(),
	}
}

func toBatchReport(items []sentiment.Item, s sentiment.Summary) batchReport {
	rep := batchReport{Failed: s.Failed, Total: s.Total}
	for _, it := range items {
		rep.Results = append(rep.Results, toVerdict(it.Text, it.Result))
	}
	for _, c := range s.Categories {
		rep.Distribution = append(rep.Distribution, categoryRow{
			Sentiment: c.Category,
			Count:     c.Count,
			Percent:   percent(c.Count, s.Total-s.Failed),
			Example:   c.Sample,
		})
	}
	return rep
}

func percent(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(n) * 100 / float64(total)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeResult(w io.Writer, r sentiment.Result) error {
	_, err := fmt.Fprintf(w, "Sentiment: %s\nScore: %.2f\nReason: %s\n", r.DisplayCategory(), r.Score, r.Reason)
	return err
}

func writeTable(w io.Writer, items []sentiment.Item) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "TEXT\tSENTIMENT\tSCORE\tREASON")
	for _, it := range items {
		fmt.Fprintf(tw, "%s\t%s\t%.2f\t%s\n", truncate(it.Text, 60), it.Result.DisplayCategory(), it.Result.Score, it.Result.Reason)
	}
	return tw.Flush()
}

func writeSummary(w io.Writer, s sentiment.Summary) error {
	analyzed := s.Total - s.Failed

	fmt.Fprintf(w, "\nSentiment distribution (%d analyzed):\n", analyzed)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, c := range s.Categories {
		fmt.Fprintf(tw, "  %s\t%d\t%.1f%%\t%s\n", c.Category, c.Count, percent(c.Count, analyzed), truncate(c.Sample, 60))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if s.Failed > 0 {
		fmt.Fprintf(w, "Failed: %d of %d\n", s.Failed, s.Total)
	}
	return nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
