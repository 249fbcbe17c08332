package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/wheel/internal/common"
	"github.com/dmitrijs2005/wheel/internal/garage"
	"github.com/dmitrijs2005/wheel/internal/netx"
	"github.com/sethvargo/go-retry"
)

const (
	DefaultAutoDevBaseURL = "https://api.auto.dev/listings"
	DefaultAutoDevTimeout = 15 * time.Second
	DefaultAutoDevRadius  = 25

	autoDevMaxRetries   = 2
	autoDevBackoff      = 200 * time.Millisecond
	autoDevErrorBodyMax = 100
)

// AutoDevSource searches auto.dev for new-car listings and turns the
// results into a catalog. Listings carry no feature labels, so must-have
// filters exclude every one of them. Records missing make, model, year or
// a positive price are skipped; ids are assigned 1..n in response order.
type AutoDevSource struct {
	opts    AutoDevOptions
	client  *http.Client
	backoff func() retry.Backoff
}

// NewAutoDevSource validates opts and fills defaults. A nil client means
// netx.NewClient with no overall timeout; each attempt is bounded by
// opts.Timeout instead.
func NewAutoDevSource(opts AutoDevOptions, client *http.Client) (*AutoDevSource, error) {
	if opts.APIKey == "" {
		return nil, fmt.Errorf("%w: auto.dev api key not set", common.ErrorInvalidArgument)
	}
	if opts.Make == "" || opts.Model == "" {
		return nil, fmt.Errorf("%w: auto.dev search needs make and model", common.ErrorInvalidArgument)
	}
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultAutoDevBaseURL
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultAutoDevTimeout
	}
	if opts.Radius <= 0 {
		opts.Radius = DefaultAutoDevRadius
	}
	if client == nil {
		client = netx.NewClient(0)
	}

	return &AutoDevSource{
		opts:   opts,
		client: client,
		backoff: func() retry.Backoff {
			return retry.WithMaxRetries(autoDevMaxRetries, retry.NewExponential(autoDevBackoff))
		},
	}, nil
}

type autoDevResponse struct {
	Records []autoDevRecord `json:"records"`
}

type autoDevRecord struct {
	VIN              string  `json:"vin"`
	Year             int     `json:"year"`
	Make             string  `json:"make"`
	Model            string  `json:"model"`
	Trim             string  `json:"trim"`
	DisplayColor     string  `json:"displayColor"`
	Price            string  `json:"price"`
	PriceUnformatted float64 `json:"priceUnformatted"`
	PrimaryPhotoURL  string  `json:"primaryPhotoUrl"`
}

func (s *AutoDevSource) requestURL() (string, error) {
	u, err := url.Parse(s.opts.BaseURL)
	if err != nil {
		return "", fmt.Errorf("%w: auto.dev base url: %v", common.ErrorInvalidArgument, err)
	}

	q := u.Query()
	q.Set("make", s.opts.Make)
	q.Set("model", s.opts.Model)
	if s.opts.Year > 0 {
		q.Set("year", strconv.Itoa(s.opts.Year))
	}
	if s.opts.ZipCode != "" {
		q.Set("zipCode", s.opts.ZipCode)
	}
	q.Set("radius", strconv.Itoa(s.opts.Radius))
	q.Set("newAndUsed", "new")
	u.RawQuery = q.Encode()

	return u.String(), nil
}

func (s *AutoDevSource) Load(ctx context.Context) ([]garage.Vehicle, error) {
	target, err := s.requestURL()
	if err != nil {
		return nil, err
	}

	var body autoDevResponse
	err = retry.Do(ctx, s.backoff(), func(ctx context.Context) error {
		return s.fetch(ctx, target, &body)
	})
	if err != nil {
		return nil, err
	}

	cars := toVehicles(body.Records)
	if err := Validate(cars); err != nil {
		return nil, err
	}
	return cars, nil
}

// fetch performs one attempt. Transport errors, 429 and 5xx responses are
// retryable; anything else is final.
func (s *AutoDevSource) fetch(ctx context.Context, target string, into *autoDevResponse) error {
	ctx, cancel := context.WithTimeout(ctx, s.opts.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+s.opts.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return retry.RetryableError(fmt.Errorf("auto.dev request: %w", err))
	}
	defer resp.Body.Close()

	if err := netx.CheckResponse(resp, autoDevErrorBodyMax); err != nil {
		var se *netx.StatusError
		if errors.As(err, &se) && se.Temporary() {
			return retry.RetryableError(fmt.Errorf("auto.dev: %w", err))
		}
		return fmt.Errorf("auto.dev: %w", err)
	}

	if err := json.NewDecoder(resp.Body).Decode(into); err != nil {
		return fmt.Errorf("auto.dev: decode listings: %w", err)
	}
	return nil
}

func toVehicles(records []autoDevRecord) []garage.Vehicle {
	cars := make([]garage.Vehicle, 0, len(records))
	for _, r := range records {
		if r.Make == "" || r.Model == "" || r.Year < 1886 {
			continue
		}
		price := r.PriceUnformatted
		if price <= 0 {
			price = parsePrice(r.Price)
		}
		if price <= 0 {
			continue
		}

		image := r.PrimaryPhotoURL
		if _, err := url.ParseRequestURI(image); err != nil {
			image = ""
		}

		cars = append(cars, garage.Vehicle{
			ID:          garage.VehicleID(len(cars) + 1),
			Make:        r.Make,
			Model:       r.Model,
			Year:        r.Year,
			Price:       price,
			Description: describe(r),
			Image:       image,
		})
	}
	return cars
}

// parsePrice reads "$34,500" style strings; 0 means unparseable.
func parsePrice(s string) float64 {
	s = strings.NewReplacer("$", "", ",", "", " ", "").Replace(s)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

func describe(r autoDevRecord) string {
	parts := []string{strconv.Itoa(r.Year), r.Make, r.Model}
	if r.Trim != "" {
		parts = append(parts, r.Trim)
	}
	d := strings.Join(parts, " ")
	if r.DisplayColor != "" {
		d += ", " + r.DisplayColor
	}
	if r.VIN != "" {
		d += " (VIN " + r.VIN + ")"
	}
	return d
}
