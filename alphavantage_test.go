package brokerage

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestAlphaVantage_FetchParsesQuote(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"Global Quote": {
				"01. symbol": "CORNELL",
				"05. price": "18.6500",
				"07. latest trading day": "2025-06-02"
			}
		}`))
	}))
	defer server.Close()

	a := &AlphaVantage{apiKey: "k", client: server.Client()}
	price, err := a.fetch(server.URL, `$["Global Quote"]["05. price"]`)
	if err != nil {
		t.Fatalf("fetch() error = %v", err)
	}
	if price != 18.65 {
		t.Errorf("fetch() = %v, want 18.65", price)
	}
}

func TestAlphaVantage_FetchErrors(t *testing.T) {
	testCases := []struct {
		name string
		body string
		code int
	}{
		{name: "rate limited note", body: `{"Note": "please slow down"}`, code: 200},
		{name: "not json", body: `price: 18.65`, code: 200},
		{name: "price not a string", body: `{"Global Quote": {"05. price": 18.65}}`, code: 200},
		{name: "server error", body: `{}`, code: 500},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.code)
				w.Write([]byte(tc.body))
			}))
			defer server.Close()

			a := &AlphaVantage{apiKey: "k", client: server.Client()}
			if _, err := a.fetch(server.URL, `$["Global Quote"]["05. price"]`); err == nil {
				t.Error("fetch() error = nil, want an error")
			}
		})
	}
}

// The public price methods never fail: a dead feed degrades to a random
// price below 100.
func TestAlphaVantage_FallsBackOnFailure(t *testing.T) {
	// A bogus key cannot yield a real quote, whatever the network does.
	a := &AlphaVantage{apiKey: "k", client: &http.Client{}}
	price := a.StockPrice("CORNELL")
	if price < 0 || price >= 100 {
		t.Errorf("StockPrice() fallback = %v, want in [0, 100)", price)
	}
	btc := a.BTCPrice()
	if btc < 0 || btc >= 100 {
		t.Errorf("BTCPrice() fallback = %v, want in [0, 100)", btc)
	}
}
