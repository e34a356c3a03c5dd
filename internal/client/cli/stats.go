package cli

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/dmitrijs2005/linkdash/internal/client/client"
	dto "github.com/prometheus/client_model/go"
)

// endpointStats aggregates the request metrics of one endpoint.
type endpointStats struct {
	Endpoint    string
	Success     uint64
	AppErrors   uint64
	NetErrors   uint64
	Calls       uint64
	TotalTimeMS float64
}

func (s endpointStats) Average() time.Duration {
	if s.Calls == 0 {
		return 0
	}
	return time.Duration(s.TotalTimeMS / float64(s.Calls) * float64(time.Millisecond))
}

func labelValue(m *dto.Metric, name string) string {
	for _, l := range m.GetLabel() {
		if l.GetName() == name {
			return l.GetValue()
		}
	}
	return ""
}

// collectStats folds the gathered families into per-endpoint rows sorted by
// endpoint name.
func collectStats(families []*dto.MetricFamily) []endpointStats {
	byEndpoint := map[string]*endpointStats{}
	row := func(ep string) *endpointStats {
		s, ok := byEndpoint[ep]
		if !ok {
			s = &endpointStats{Endpoint: ep}
			byEndpoint[ep] = s
		}
		return s
	}

	for _, mf := range families {
		switch mf.GetName() {
		case client.RequestsMetric:
			for _, m := range mf.GetMetric() {
				s := row(labelValue(m, "endpoint"))
				n := uint64(m.GetCounter().GetValue())
				switch labelValue(m, "outcome") {
				case client.OutcomeSuccess:
					s.Success += n
				case client.OutcomeApplicationError:
					s.AppErrors += n
				case client.OutcomeNetworkError:
					s.NetErrors += n
				}
			}
		case client.DurationMetric:
			for _, m := range mf.GetMetric() {
				s := row(labelValue(m, "endpoint"))
				h := m.GetHistogram()
				s.Calls += h.GetSampleCount()
				s.TotalTimeMS += h.GetSampleSum() * 1000
			}
		}
	}

	out := make([]endpointStats, 0, len(byEndpoint))
	for _, s := range byEndpoint {
		out = append(out, *s)
	}
	slices.SortFunc(out, func(a, b endpointStats) int { return cmp.Compare(a.Endpoint, b.Endpoint) })
	return out
}

// Stats prints API call counters recorded during this process.
func (a *App) Stats(ctx context.Context) error {
	if a.gatherer == nil {
		printlnFn("No API requests yet")
		return nil
	}
	families, err := a.gatherer.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}

	rows := collectStats(families)
	if len(rows) == 0 {
		printlnFn("No API requests yet")
		return nil
	}

	w := table(a.out)
	fmt.Fprintln(w, "ENDPOINT\tOK\tAPP ERR\tNET ERR\tAVG")
	for _, s := range rows {
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%s\n", s.Endpoint, s.Success, s.AppErrors, s.NetErrors, s.Average().Round(time.Microsecond))
	}
	return w.Flush()
}
