package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	apiclient "github.com/donaldgifford/deal-scanner/internal/api/client"
	domain "github.com/donaldgifford/deal-scanner/pkg/types"
)

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func printSearchTable(w io.Writer, searches []apiclient.Search) error {
	tw := newTabWriter(w)
	tw.writef("#\tNAME\tKEYWORDS\tMAX PRICE\tMARGIN\tMIN PROFIT\n")
	for i := range searches {
		s := &searches[i]
		tw.writef("%d\t%s\t%s\t%s\t%sx\t%s\n",
			s.Index,
			s.Name,
			truncate(s.Keywords, 40),
			s.MaxPrice,
			s.ProfitMargin,
			s.MinProfit,
		)
	}
	return tw.finish()
}

func printSearchDetail(w io.Writer, s *apiclient.Search) error {
	tw := newTabWriter(w)
	tw.writef("Position:\t%d\n", s.Index)
	tw.writef("ID:\t%s\n", s.ID)
	tw.writef("Name:\t%s\n", s.Name)
	tw.writef("Keywords:\t%s\n", s.Keywords)
	tw.writef("Max Price:\t%s\n", s.MaxPrice)
	tw.writef("Margin:\t%sx\n", s.ProfitMargin)
	tw.writef("Min Profit:\t%s\n", s.MinProfit)
	return tw.finish()
}

func printStats(w io.Writer, st *domain.Stats) error {
	tw := newTabWriter(w)
	tw.writef("Users:\t%d\n", st.Owners)
	tw.writef("Searches:\t%d\n", st.Searches)
	tw.writef("Scans:\t%d\n", st.Scans)
	tw.writef("Seen Items:\t%d\n", st.SeenItems)
	if st.LastCycleAt != nil {
		tw.writef("Last Cycle:\t%s (%d deals, %d delivered)\n",
			st.LastCycleAt.Format("2006-01-02 15:04:05"),
			st.DealsLastCycle,
			st.DeliveredLastCycle,
		)
	}
	return tw.finish()
}

func printScanResult(w io.Writer, r *apiclient.ScanResult) error {
	tw := newTabWriter(w)
	tw.writef("Status:\t%s\n", r.Status)
	if r.Report != nil {
		tw.writef("Scan:\t#%d\n", r.Report.Scan)
		tw.writef("Searches:\t%d\n", r.Report.Searches)
		tw.writef("Evaluated:\t%d\n", r.Report.Evaluated)
		tw.writef("Deals:\t%d\n", r.Report.Deals)
		tw.writef("Delivered:\t%d\n", r.Report.Delivered)
		tw.writef("Duration:\t%s\n", r.Report.Duration.Round(time.Millisecond))
	}
	return tw.finish()
}

func outputJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
