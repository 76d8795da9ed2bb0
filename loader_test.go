package classfolio

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"
)

const (
	configDoc = `{"startDate": "2025-01-06", "initialInvestment": 10000, "sections": [
  {"id": "001", "name": "Section 001", "instructor": "Prof. A", "holdings": [{"ticker": "AAPL", "company": "Apple Inc.", "votes": 1}]}
]}`
	pricesDoc = `{"lastUpdated": "2025-01-06T21:30:00Z", "prices": {"2025-01-06": {"AAPL": 100, "SPY": 500}}}`
)

func TestLoad(t *testing.T) {
	testCases := []struct {
		name       string
		fsys       fstest.MapFS
		wantErr    bool
		wantPrices bool
	}{
		{
			name:       "both documents",
			fsys:       fstest.MapFS{ConfigFile: {Data: []byte(configDoc)}, PricesFile: {Data: []byte(pricesDoc)}},
			wantPrices: true,
		},
		{
			name: "prices not available yet",
			fsys: fstest.MapFS{ConfigFile: {Data: []byte(configDoc)}},
		},
		{
			name:    "missing configuration",
			fsys:    fstest.MapFS{PricesFile: {Data: []byte(pricesDoc)}},
			wantErr: true,
		},
		{
			name:    "invalid configuration",
			fsys:    fstest.MapFS{ConfigFile: {Data: []byte(`{"sections": 3}`)}},
			wantErr: true,
		},
		{
			name:    "corrupted prices",
			fsys:    fstest.MapFS{ConfigFile: {Data: []byte(configDoc)}, PricesFile: {Data: []byte(`{"prices": [`)}},
			wantErr: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			docs, err := Load(context.Background(), tc.fsys)
			if tc.wantErr {
				if err == nil {
					t.Errorf("Load() error = nil, want an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Load() unexpected error: %v", err)
			}
			if docs.Config == nil {
				t.Errorf("Load().Config = nil, want a configuration")
			}
			if got := docs.Prices != nil; got != tc.wantPrices {
				t.Errorf("Load().Prices != nil is %v, want %v", got, tc.wantPrices)
			}
		})
	}
}

func TestFetch(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/data/"+ConfigFile, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(configDoc))
	})
	ts := httptest.NewServer(mux)
	defer ts.Close()

	// prices.json is a 404.
	docs, err := Fetch(context.Background(), ts.Client(), ts.URL+"/data")
	if err != nil {
		t.Fatalf("Fetch() unexpected error: %v", err)
	}
	if docs.Prices != nil {
		t.Errorf("Fetch().Prices = %v, want nil", docs.Prices)
	}
	if got := docs.Config.Sections[0].ID; got != "001" {
		t.Errorf("Fetch().Config.Sections[0].ID = %q, want 001", got)
	}

	mux.HandleFunc("/data/"+PricesFile, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(pricesDoc))
	})
	docs, err = Fetch(context.Background(), ts.Client(), ts.URL+"/data/")
	if err != nil {
		t.Fatalf("Fetch() unexpected error: %v", err)
	}
	if got := len(docs.Prices.Table()); got != 1 {
		t.Errorf("len(Fetch().Prices.Table()) = %d, want 1", got)
	}
}

func TestFetchServerError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer ts.Close()
	if _, err := Fetch(context.Background(), ts.Client(), ts.URL); err == nil {
		t.Errorf("Fetch() error = nil, want an error")
	}
}
