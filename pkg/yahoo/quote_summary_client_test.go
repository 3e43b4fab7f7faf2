package yahoo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

const summaryPayload = `{
  "quoteSummary": {
    "result": [
      {
        "assetProfile": {
          "sector": "Energy",
          "industry": "Oil & Gas Refining",
          "website": "https://www.example.com",
          "longBusinessSummary": "A large conglomerate.",
          "fullTimeEmployees": 389414,
          "city": "Mumbai",
          "country": "India"
        },
        "financialData": {
          "returnOnEquity": {"raw": 0.0891, "fmt": "8.91%"},
          "debtToEquity": {"raw": 41.148, "fmt": "41.15"},
          "currentRatio": {"raw": 1.18, "fmt": "1.18"},
          "profitMargins": {"raw": 0.0753, "fmt": "7.53%"},
          "revenueGrowth": {"raw": 0.104, "fmt": "10.40%"}
        },
        "defaultKeyStatistics": {
          "beta": {"raw": 0.55, "fmt": "0.55"},
          "trailingEps": {"raw": 51.48, "fmt": "51.48"},
          "priceToBook": {"raw": 2.31, "fmt": "2.31"}
        },
        "summaryDetail": {
          "trailingPE": {"raw": 28.04, "fmt": "28.04"},
          "dividendYield": {"raw": 0.0038, "fmt": "0.38%"}
        }
      }
    ],
    "error": null
  }
}`

func TestClient_GetQuoteSummary(t *testing.T) {
	t.Run("decodes a full payload", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Contains(t, r.URL.Path, "/v10/finance/quoteSummary/RELIANCE.NS")
			require.Contains(t, r.URL.RawQuery, "assetProfile")
			w.Write([]byte(summaryPayload))
		}))
		defer srv.Close()

		c := Client{HttpClient: srv.Client(), BaseUrl: srv.URL}
		summary, err := c.GetQuoteSummary(context.Background(), "RELIANCE.NS")
		require.NoError(t, err)

		require.Equal(t, "Energy", summary.Profile.Sector)
		require.Equal(t, "Mumbai", summary.Profile.City)
		require.Equal(t, 389414, summary.Profile.FullTimeEmployees)

		require.NotNil(t, summary.ReturnOnEquity)
		require.InDelta(t, 0.0891, *summary.ReturnOnEquity, 1e-9)
		require.NotNil(t, summary.DebtToEquity)
		require.InDelta(t, 41.148, *summary.DebtToEquity, 1e-9)
		require.NotNil(t, summary.TrailingPE)
		require.InDelta(t, 28.04, *summary.TrailingPE, 1e-9)
		require.NotNil(t, summary.DividendYield)
	})

	t.Run("empty raw fields decode to nil", func(t *testing.T) {
		payload := `{"quoteSummary":{"result":[{"financialData":{"returnOnEquity":{},"currentRatio":{"fmt":"N/A"}}}],"error":null}}`
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(payload))
		}))
		defer srv.Close()

		c := Client{HttpClient: srv.Client(), BaseUrl: srv.URL}
		summary, err := c.GetQuoteSummary(context.Background(), "SPARSE.NS")
		require.NoError(t, err)
		require.Nil(t, summary.ReturnOnEquity)
		require.Nil(t, summary.CurrentRatio)
		require.Nil(t, summary.Beta)
	})

	t.Run("http 404 is not found", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		c := Client{HttpClient: srv.Client(), BaseUrl: srv.URL}
		_, err := c.GetQuoteSummary(context.Background(), "NOPE.NS")
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("body-level not found error", func(t *testing.T) {
		payload := `{"quoteSummary":{"result":null,"error":{"code":"Not Found","description":"Quote not found for ticker symbol: NOPE.NS"}}}`
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(payload))
		}))
		defer srv.Close()

		c := Client{HttpClient: srv.Client(), BaseUrl: srv.URL}
		_, err := c.GetQuoteSummary(context.Background(), "NOPE.NS")
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("rate limit is a plain error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer srv.Close()

		c := Client{HttpClient: srv.Client(), BaseUrl: srv.URL}
		_, err := c.GetQuoteSummary(context.Background(), "RELIANCE.NS")
		require.Error(t, err)
		require.NotErrorIs(t, err, ErrNotFound)
	})
}
