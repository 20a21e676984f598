// Package observe provides [formflat.Observer] implementations that report
// pipeline events as structured logs, Prometheus metrics and OpenTelemetry
// spans.
//
//	obs := observe.Multi(
//		observe.NewLogger(slog.Default()),
//		observe.NewMetrics(prometheus.DefaultRegisterer),
//	)
//	fd, err := formflat.ToFormData(v, formflat.Options{Observer: obs})
package observe
