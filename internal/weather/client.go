package weather

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/specialistvlad/zipweather/internal/ctxlog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"resty.dev/v3"
)

// Client looks up current conditions. It is safe for concurrent use, though
// the CLI only ever makes one call.
type Client struct {
	endpoint string
	http     *resty.Client
	tracer   trace.Tracer
}

// NewClient returns a Client that queries endpoint, or DefaultEndpoint when
// endpoint is empty. The underlying HTTP client keeps its default timeout
// behavior.
func NewClient(endpoint string) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Client{
		endpoint: endpoint,
		http:     resty.New().SetHeader("Accept", "application/json"),
		tracer:   otel.GetTracerProvider().Tracer("zipweather/weather"),
	}
}

// Endpoint returns the URL the client sends requests to.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Close releases idle connections held by the client.
func (c *Client) Close() error {
	return c.http.Close()
}

// Current performs a single GET for q and decodes the body. It does not
// retry. Any failure is returned as a *FetchError.
func (c *Client) Current(ctx context.Context, q Query) (*Response, error) {
	ctx, span := c.tracer.Start(ctx, "weather.current")
	defer span.End()

	span.SetAttributes(
		attribute.Int("weather.postal_code", q.PostalCode),
		attribute.String("weather.country_code", q.CountryCode),
	)

	logger := ctxlog.FromContext(ctx).With("postal_code", q.PostalCode)
	logger.Debug("Requesting current weather.", "endpoint", c.endpoint)

	var body payload
	var apiErr apiError
	res, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("zip", fmt.Sprintf("%d,%s", q.PostalCode, q.CountryCode)).
		SetQueryParam("appid", q.APIKey).
		SetForceResponseContentType("application/json").
		SetResult(&body).
		SetError(&apiErr).
		Get(c.endpoint)
	if err != nil {
		fe := &FetchError{Op: "request", Err: redact(err, q.APIKey)}
		if res != nil && res.StatusCode() != 0 {
			// A response arrived, so the body is what failed to parse.
			fe.StatusCode = res.StatusCode()
			fe.Op = "decode"
			if !res.IsSuccess() {
				fe.Op = "status"
				fe.Err = fmt.Errorf("%s: %w", res.Status(), fe.Err)
			}
		}
		return nil, c.fail(ctx, span, fe)
	}

	span.SetAttributes(attribute.Int("http.response.status_code", res.StatusCode()))
	logger.Debug("Received weather response.", "status", res.Status())

	if !res.IsSuccess() {
		msg := apiErr.Message
		if msg == "" {
			msg = res.Status()
		}
		return nil, c.fail(ctx, span, &FetchError{
			Op:         "status",
			StatusCode: res.StatusCode(),
			Err:        errors.New(msg),
		})
	}

	out, err := body.toResponse()
	if err != nil {
		return nil, c.fail(ctx, span, &FetchError{Op: "decode", StatusCode: res.StatusCode(), Err: err})
	}

	logger.Info("Weather fetched.", "description", out.Description)
	return out, nil
}

func (c *Client) fail(ctx context.Context, span trace.Span, fe *FetchError) error {
	span.RecordError(fe)
	span.SetStatus(codes.Error, fe.Op)
	ctxlog.FromContext(ctx).Debug("Weather request failed.", "op", fe.Op, "status_code", fe.StatusCode, "error", fe.Err)
	return fe
}

// toResponse checks the decoded body has every field the report relies on.
func (p *payload) toResponse() (*Response, error) {
	if len(p.Weather) == 0 {
		return nil, errors.New("response has no weather conditions")
	}
	if p.Weather[0].Description == nil {
		return nil, errors.New("response has no weather description")
	}
	m := p.Main
	if m == nil {
		return nil, errors.New("response has no main readings")
	}
	var missing []string
	for _, f := range []struct {
		name    string
		present bool
	}{
		{"temp", m.Temp != nil},
		{"feels_like", m.FeelsLike != nil},
		{"temp_min", m.TempMin != nil},
		{"temp_max", m.TempMax != nil},
		{"humidity", m.Humidity != nil},
	} {
		if !f.present {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("response main readings missing %s", strings.Join(missing, ", "))
	}
	return &Response{
		Description: *p.Weather[0].Description,
		Temp:        *m.Temp,
		FeelsLike:   *m.FeelsLike,
		TempMin:     *m.TempMin,
		TempMax:     *m.TempMax,
		Humidity:    *m.Humidity,
	}, nil
}
