package instrumentation

import (
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Span names
const (
	SpanBeginLogin   = "emma.begin_login"
	SpanExchangeCode = "emma.exchange_code"
)

// RecordError records an error on a span with proper status codes (nil-safe)
func RecordError(span trace.Span, err error) {
	if span != nil && err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
}

// SetSpanSuccess marks a span as successful (nil-safe)
func SetSpanSuccess(span trace.Span) {
	if span != nil {
		span.SetStatus(codes.Ok, "")
	}
}

// SetOutcome sets the exchange outcome and provider status on a span (nil-safe)
func SetOutcome(span trace.Span, outcome string, statusCode int) {
	if span == nil {
		return
	}
	span.SetAttributes(attribute.String(AttrOutcome, outcome))
	if statusCode != 0 {
		span.SetAttributes(attribute.Int(AttrStatusCode, statusCode))
	}
}
