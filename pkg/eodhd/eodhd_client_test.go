package eodhd

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func Test_GetEOD(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/api/eod/AAPL", r.URL.Path)
			require.Equal(t, "test-token", r.URL.Query().Get("api_token"))
			require.Equal(t, "2021-01-01", r.URL.Query().Get("from"))
			require.Equal(t, "2021-01-31", r.URL.Query().Get("to"))
			require.Equal(t, "d", r.URL.Query().Get("period"))
			require.Equal(t, "json", r.URL.Query().Get("fmt"))

			fmt.Fprint(w, `[{"date":"2021-01-04","open":133.52,"high":133.61,"low":126.76,"close":129.41,"adjusted_close":128.0,"volume":143301900},{"date":"2021-01-05","open":128.89,"high":131.74,"low":128.43,"close":131.01,"adjusted_close":129.58,"volume":97664900}]`)
		}))
		defer server.Close()

		client := Client{HttpClient: server.Client(), ApiKey: "test-token", BaseUrl: server.URL}
		candles, err := client.GetEOD(
			context.Background(),
			"AAPL",
			time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2021, 1, 31, 0, 0, 0, 0, time.UTC),
		)
		require.NoError(t, err)

		expected := []Candle{
			{Date: time.Date(2021, 1, 4, 0, 0, 0, 0, time.UTC), Open: 133.52, High: 133.61, Low: 126.76, Close: 129.41, AdjustedClose: 128.0, Volume: 143301900},
			{Date: time.Date(2021, 1, 5, 0, 0, 0, 0, time.UTC), Open: 128.89, High: 131.74, Low: 128.43, Close: 131.01, AdjustedClose: 129.58, Volume: 97664900},
		}
		require.Equal(t, "", cmp.Diff(expected, candles))
	})

	t.Run("empty window returns no candles", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `[]`)
		}))
		defer server.Close()

		client := Client{HttpClient: server.Client(), ApiKey: "test-token", BaseUrl: server.URL}
		candles, err := client.GetEOD(
			context.Background(),
			"AAPL",
			time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2021, 1, 2, 0, 0, 0, 0, time.UTC),
		)
		require.NoError(t, err)
		require.Empty(t, candles)
	})

	t.Run("authentication failure surfaces the status code", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			fmt.Fprint(w, "Invalid API token")
		}))
		defer server.Close()

		client := Client{HttpClient: server.Client(), ApiKey: "bad-token", BaseUrl: server.URL}
		_, err := client.GetEOD(
			context.Background(),
			"AAPL",
			time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2021, 1, 2, 0, 0, 0, 0, time.UTC),
		)
		require.Error(t, err)

		apiErr := APIError{}
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, 401, apiErr.StatusCode)
	})
}
