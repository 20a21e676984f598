package observe_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/tomasbasham/formflat"
	"github.com/tomasbasham/formflat/observe"
)

// input flattens to two entries, one of which is removed by cleaning.
func input() formflat.Value {
	return formflat.Mapping(formflat.NewMap(
		formflat.Entry{Key: "a", Value: formflat.Mapping(formflat.NewMap(
			formflat.Entry{Key: "b", Value: formflat.Scalar(1)},
		))},
		formflat.Entry{Key: "c", Value: formflat.Null()},
	))
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := formflat.ToFormData(input(), formflat.Options{Observer: observe.NewLogger(l)})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)

	var records []map[string]interface{}
	for _, line := range lines {
		var rec map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(line), &rec))
		records = append(records, rec)
	}

	assert.Equal(t, "flatten", records[0]["stage"])
	assert.Equal(t, float64(2), records[0]["count"])
	assert.Equal(t, "clean", records[1]["stage"])
	assert.Equal(t, float64(1), records[1]["removed"])
	assert.Equal(t, "append", records[2]["stage"])
	assert.Equal(t, "a[b]", records[2]["key"])
	assert.Equal(t, "DEBUG", records[2]["level"])
}

func TestLogger_DefaultLogger(t *testing.T) {
	assert.NotNil(t, observe.NewLogger(nil))
}

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := observe.NewMetrics(reg)

	opts := formflat.Options{Observer: m}
	fd, err := formflat.ToFormData(input(), opts)
	require.NoError(t, err)
	_, err = formflat.ToFormData(fd, opts)
	require.NoError(t, err)

	families, err := reg.Gather()
	require.NoError(t, err)

	values := map[string]float64{}
	for _, mf := range families {
		for _, metric := range mf.GetMetric() {
			name := mf.GetName()
			for _, lp := range metric.GetLabel() {
				name += "/" + lp.GetValue()
			}
			values[name] = metric.GetCounter().GetValue()
		}
	}

	for _, stage := range []string{"pass_through", "flatten", "clean", "append"} {
		assert.Equal(t, float64(1), values["formflat_events_total/"+stage], stage)
	}
	assert.Equal(t, float64(1), values["formflat_fields_removed_total"])
	assert.Equal(t, float64(1), values["formflat_fields_appended_total"])
}

func TestMetrics_DuplicateRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	observe.NewMetrics(reg)
	assert.Panics(t, func() { observe.NewMetrics(reg) })
}

func TestTracer(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	defer func() { _ = tp.Shutdown(context.Background()) }()

	ctx, parent := tp.Tracer("test").Start(context.Background(), "request")
	tracer := observe.NewTracer(tp.Tracer("formflat")).WithContext(ctx)

	_, err := formflat.ToFormData(input(), formflat.Options{Observer: tracer})
	require.NoError(t, err)
	parent.End()

	spans := exporter.GetSpans()
	require.Len(t, spans, 4)

	names := make([]string, 0, 3)
	for _, s := range spans[:3] {
		names = append(names, s.Name)
		assert.Equal(t, parent.SpanContext().SpanID(), s.Parent.SpanID())
	}
	assert.Equal(t, []string{"formflat.flatten", "formflat.clean", "formflat.append"}, names)

	attrs := map[attribute.Key]attribute.Value{}
	for _, kv := range spans[2].Attributes {
		attrs[kv.Key] = kv.Value
	}
	assert.Equal(t, "a[b]", attrs["formflat.key"].AsString())
	assert.Equal(t, int64(1), attrs["formflat.count"].AsInt64())
}

func TestMulti(t *testing.T) {
	var a, b []formflat.Stage
	obs := observe.Multi(
		formflat.ObserverFunc(func(e formflat.Event) { a = append(a, e.Stage) }),
		nil,
		formflat.ObserverFunc(func(e formflat.Event) { b = append(b, e.Stage) }),
	)

	_, err := formflat.ToFormData(input(), formflat.Options{Observer: obs, SetNull: true})
	require.NoError(t, err)

	want := []formflat.Stage{formflat.StageFlatten, formflat.StageAppend, formflat.StageAppend}
	assert.Equal(t, want, a)
	assert.Equal(t, want, b)
}
