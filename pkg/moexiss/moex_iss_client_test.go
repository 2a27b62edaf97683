package moexiss

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"capindex/internal/util"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func Test_GetBoardSecurities(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/iss/engines/stock/markets/shares/boards/TQBR/securities.json", r.URL.Path)
			require.Equal(t, "marketdata", r.URL.Query().Get("iss.only"))
			fmt.Fprint(w, `{"marketdata":{"columns":["SECID","BOARDID","ISSUECAPITALIZATION"],"data":[["SBER","TQBR",6500000000000],["GAZP","TQBR",null],["MGNT","TQBR",""],["LKOH","TQBR",123456789.25]]}}`)
		}))
		defer server.Close()

		client := Client{HttpClient: server.Client(), BaseUrl: server.URL}
		securities, err := client.GetBoardSecurities(context.Background())
		require.NoError(t, err)

		expected := []BoardSecurity{
			{Ticker: "SBER", Capitalization: util.FloatPointer(6500000000000)},
			{Ticker: "GAZP", Capitalization: nil},
			{Ticker: "MGNT", Capitalization: nil},
			{Ticker: "LKOH", Capitalization: util.FloatPointer(123456789.25)},
		}
		require.Equal(t, "", cmp.Diff(expected, securities))
	})

	t.Run("missing capitalization column fails", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"marketdata":{"columns":["SECID","BOARDID"],"data":[["SBER","TQBR"]]}}`)
		}))
		defer server.Close()

		client := Client{HttpClient: server.Client(), BaseUrl: server.URL}
		_, err := client.GetBoardSecurities(context.Background())
		require.ErrorContains(t, err, "ISSUECAPITALIZATION")
	})

	t.Run("non 200 response fails", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		client := Client{HttpClient: server.Client(), BaseUrl: server.URL}
		_, err := client.GetBoardSecurities(context.Background())
		require.ErrorContains(t, err, "status code 500")
	})
}

func Test_GetCandles(t *testing.T) {
	t.Run("pages until the endpoint runs dry", func(t *testing.T) {
		requests := 0
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requests++
			require.Equal(t, "/iss/engines/stock/markets/shares/boards/TQBR/securities/SBER/candles.json", r.URL.Path)
			require.Equal(t, "24", r.URL.Query().Get("interval"))
			require.Equal(t, "2021-01-01", r.URL.Query().Get("from"))
			require.Equal(t, "2021-01-31", r.URL.Query().Get("till"))

			switch r.URL.Query().Get("start") {
			case "0":
				fmt.Fprint(w, `{"candles":{"columns":["open","close","high","low","value","volume","begin","end"],"data":[[270.1,275.6,276.0,269.8,1000000.0,35000,"2021-01-04 00:00:00","2021-01-04 23:59:59"],[275.5,280.2,281.4,275.0,1200000.0,41000,"2021-01-05 00:00:00","2021-01-05 23:59:59"]]}}`)
			default:
				fmt.Fprint(w, `{"candles":{"columns":["open","close","high","low","value","volume","begin","end"],"data":[]}}`)
			}
		}))
		defer server.Close()

		client := Client{HttpClient: server.Client(), BaseUrl: server.URL}
		candles, err := client.GetCandles(
			context.Background(),
			"SBER",
			time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2021, 1, 31, 0, 0, 0, 0, time.UTC),
		)
		require.NoError(t, err)
		require.Equal(t, 2, requests)

		expected := []Candle{
			{Begin: time.Date(2021, 1, 4, 0, 0, 0, 0, time.UTC), Open: 270.1, High: 276.0, Low: 269.8, Close: 275.6, Volume: 35000},
			{Begin: time.Date(2021, 1, 5, 0, 0, 0, 0, time.UTC), Open: 275.5, High: 281.4, Low: 275.0, Close: 280.2, Volume: 41000},
		}
		require.Equal(t, "", cmp.Diff(expected, candles))
	})

	t.Run("skips rows without a close price", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Query().Get("start") != "0" {
				fmt.Fprint(w, `{"candles":{"columns":["open","close","high","low","value","volume","begin","end"],"data":[]}}`)
				return
			}
			fmt.Fprint(w, `{"candles":{"columns":["open","close","high","low","value","volume","begin","end"],"data":[[270.1,null,276.0,269.8,0,0,"2021-01-04 00:00:00","2021-01-04 23:59:59"],[275.5,280.2,281.4,275.0,1200000.0,41000,"2021-01-05 00:00:00","2021-01-05 23:59:59"]]}}`)
		}))
		defer server.Close()

		client := Client{HttpClient: server.Client(), BaseUrl: server.URL}
		candles, err := client.GetCandles(
			context.Background(),
			"SBER",
			time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2021, 1, 31, 0, 0, 0, 0, time.UTC),
		)
		require.NoError(t, err)
		require.Len(t, candles, 1)
		require.Equal(t, 280.2, candles[0].Close)
	})
}

func Test_GetSecurityHistory(t *testing.T) {
	t.Run("follows the history cursor", func(t *testing.T) {
		requests := 0
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requests++
			require.Equal(t, "/iss/history/engines/stock/markets/shares/boards/TQBR/securities/GAZP.json", r.URL.Path)

			switch r.URL.Query().Get("start") {
			case "0":
				fmt.Fprint(w, `{"history":{"columns":["BOARDID","TRADEDATE","SECID","OPEN","LOW","HIGH","CLOSE","VOLUME"],"data":[["TQBR","2021-01-04","GAZP",212.5,211.0,215.3,214.8,900000],["TQBR","2021-01-05","GAZP",214.9,213.2,218.0,217.5,880000]]},"history.cursor":{"columns":["INDEX","TOTAL","PAGESIZE"],"data":[[0,3,2]]}}`)
			case "2":
				fmt.Fprint(w, `{"history":{"columns":["BOARDID","TRADEDATE","SECID","OPEN","LOW","HIGH","CLOSE","VOLUME"],"data":[["TQBR","2021-01-06","GAZP",217.6,216.1,219.9,218.2,750000]]},"history.cursor":{"columns":["INDEX","TOTAL","PAGESIZE"],"data":[[2,3,2]]}}`)
			default:
				t.Errorf("unexpected start offset %s", r.URL.Query().Get("start"))
			}
		}))
		defer server.Close()

		client := Client{HttpClient: server.Client(), BaseUrl: server.URL}
		records, err := client.GetSecurityHistory(
			context.Background(),
			"GAZP",
			time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2021, 1, 31, 0, 0, 0, 0, time.UTC),
		)
		require.NoError(t, err)
		require.Equal(t, 2, requests)

		expected := []HistoryRecord{
			{TradeDate: time.Date(2021, 1, 4, 0, 0, 0, 0, time.UTC), Open: 212.5, Low: 211.0, High: 215.3, Close: 214.8, Volume: 900000},
			{TradeDate: time.Date(2021, 1, 5, 0, 0, 0, 0, time.UTC), Open: 214.9, Low: 213.2, High: 218.0, Close: 217.5, Volume: 880000},
			{TradeDate: time.Date(2021, 1, 6, 0, 0, 0, 0, time.UTC), Open: 217.6, Low: 216.1, High: 219.9, Close: 218.2, Volume: 750000},
		}
		require.Equal(t, "", cmp.Diff(expected, records))
	})
}

func Test_GetIndices(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/iss/engines/stock/markets/index/securities.json", r.URL.Path)
			require.Equal(t, "off", r.URL.Query().Get("iss.meta"))
			require.Equal(t, "securities", r.URL.Query().Get("iss.only"))
			fmt.Fprint(w, `{"securities":{"columns":["SECID","BOARDID","SHORTNAME"],"data":[["IMOEX","SNDX","Индекс МосБиржи"],["RTSI","RTSI","Индекс РТС"]]}}`)
		}))
		defer server.Close()

		client := Client{HttpClient: server.Client(), BaseUrl: server.URL}
		indices, err := client.GetIndices(context.Background())
		require.NoError(t, err)
		require.Equal(t, []string{"IMOEX", "RTSI"}, indices)
	})
}
