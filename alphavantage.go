package stockfolio

import (
	"bufio"
	"bytes"
	"crypto/sha1"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httputil"
	"net/url"
	"os"
	"path/filepath"
	"strconv"

	"github.com/PaesslerAG/jsonpath"
	"github.com/kvasir-fin/stockfolio/date"
)

// Daily closing prices come from the Alphavantage TIME_SERIES_DAILY
// endpoint. Responses are cached on disk for a day, Alphavantage's free
// tier being heavily rate limited.

const alphavantageKeyEnv = "ALPHAVANTAGE_API_KEY"

var alphavantageKeyFlag = flag.String("alphavantage-api-key", "", "Alphavantage API key used to fetch daily prices.\n If missing it is read from the environment variable \""+alphavantageKeyEnv+"\". You can get one at https://www.alphavantage.co/")

func alphavantageKey() string {
	if *alphavantageKeyFlag == "" {
		*alphavantageKeyFlag = os.Getenv(alphavantageKeyEnv)
	}
	return *alphavantageKeyFlag
}

// diskCache is an http.RoundTripper caching responses on disk. The cache
// key includes today's date, so entries expire daily.
type diskCache struct {
	base http.RoundTripper
}

func (c *diskCache) RoundTrip(req *http.Request) (*http.Response, error) {
	key := fmt.Sprintf("%s %s %s", date.Today(), req.Method, req.URL)
	key = fmt.Sprintf("%x", sha1.Sum([]byte(key)))

	if cached, err := c.get(key, req); err == nil {
		return cached, nil
	}
	resp, err := c.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	log.Printf("%v %v%v %v", resp.Request.Method, resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	if resp.StatusCode >= 300 {
		return resp, nil
	}
	if err := c.put(key, resp); err != nil {
		log.Printf("cache write err (ignored): %v", err)
	}
	return resp, nil
}

func (c *diskCache) get(key string, req *http.Request) (*http.Response, error) {
	content, err := os.ReadFile(filepath.Join(os.TempDir(), key))
	if err != nil {
		return nil, err
	}
	return http.ReadResponse(bufio.NewReader(bytes.NewBuffer(content)), req)
}

func (c *diskCache) put(key string, resp *http.Response) error {
	content, err := httputil.DumpResponse(resp, true)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(os.TempDir(), key), content, 0644)
}

// NewCachedClient returns an HTTP client whose responses expire daily.
func NewCachedClient() *http.Client {
	return &http.Client{Transport: &diskCache{base: http.DefaultTransport}}
}

// jwget performs an HTTP GET and unmarshals the JSON response into data.
func jwget(client *http.Client, addr string, data any) error {
	resp, err := client.Get(addr)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("cannot http GET %v%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return err
	}
	return json.Unmarshal(buf.Bytes(), data)
}

// parseDailySeries extracts (date, close) pairs from an Alphavantage
// TIME_SERIES_DAILY response body.
func parseDailySeries(body []byte) (map[date.Date]float64, error) {
	var jobj any
	if err := json.Unmarshal(body, &jobj); err != nil {
		return nil, fmt.Errorf("cannot parse response: %w", err)
	}
	return extractDailySeries(jobj)
}

func extractDailySeries(jobj any) (map[date.Date]float64, error) {
	series, err := jsonpath.Get(`$["Time Series (Daily)"]`, jobj)
	if err != nil {
		// Alphavantage reports errors as 200 responses with a note.
		if note, noteErr := jsonpath.Get(`$["Note"]`, jobj); noteErr == nil {
			return nil, fmt.Errorf("alphavantage declined the request: %v", note)
		}
		return nil, fmt.Errorf("response has no daily series: %w", err)
	}
	days, ok := series.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("unexpected daily series shape %T", series)
	}
	out := make(map[date.Date]float64, len(days))
	for day, fields := range days {
		on, err := date.Parse(day)
		if err != nil {
			return nil, fmt.Errorf("invalid date in daily series: %w", err)
		}
		jclose, err := jsonpath.Get(`$["4. close"]`, fields)
		if err != nil {
			return nil, fmt.Errorf("no close price on %s: %w", day, err)
		}
		str, ok := jclose.(string)
		if !ok {
			return nil, fmt.Errorf("close price on %s is %T, not a string", day, jclose)
		}
		price, err := strconv.ParseFloat(str, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid close price %q on %s: %w", str, day, err)
		}
		out[on] = price
	}
	return out, nil
}

// FetchDaily downloads the full daily close history of a ticker and stores
// it in the market. Existing prices for already-known days are overwritten
// by the provider's values.
func (m *Market) FetchDaily(client *http.Client, ticker string) error {
	key := alphavantageKey()
	if key == "" {
		return fmt.Errorf("no Alphavantage API key, set -alphavantage-api-key or %s", alphavantageKeyEnv)
	}
	q := url.Values{}
	q.Set("function", "TIME_SERIES_DAILY")
	q.Set("symbol", ticker)
	q.Set("outputsize", "full")
	q.Set("apikey", key)
	addr := "https://www.alphavantage.co/query?" + q.Encode()

	var jobj any
	if err := jwget(client, addr, &jobj); err != nil {
		return fmt.Errorf("cannot fetch daily series for %q: %w", ticker, err)
	}
	series, err := extractDailySeries(jobj)
	if err != nil {
		return fmt.Errorf("cannot read daily series for %q: %w", ticker, err)
	}
	for on, price := range series {
		if err := m.SetPrice(ticker, on, price); err != nil {
			return err
		}
	}
	return nil
}
