//go:build integration

package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-petr/cashcard/internal/domain"
	"github.com/go-petr/cashcard/internal/integrationtest"

	_ "github.com/lib/pq"
)

func doRequest(t *testing.T, handler http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req, err := http.NewRequest(method, path, bytes.NewReader([]byte(body)))
	require.NoError(t, err)

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, req)

	return recorder
}

func TestCardLifecycle(t *testing.T) {
	server := integrationtest.SetupServer(t)

	created := doRequest(t, server, http.MethodPost, "/cashcards", `{"amount":250.00}`)
	require.Equal(t, http.StatusCreated, created.Code)
	require.Empty(t, created.Body.String())

	location := created.Header().Get("Location")
	require.NotEmpty(t, location)

	got := doRequest(t, server, http.MethodGet, location, "")
	require.Equal(t, http.StatusOK, got.Code)

	var card domain.CashCard
	require.NoError(t, json.Unmarshal(got.Body.Bytes(), &card))
	require.Equal(t, "250.00", domain.AmountString(card.Amount))

	missing := doRequest(t, server, http.MethodGet, "/cashcards/1000000000", "")
	require.Equal(t, http.StatusNotFound, missing.Code)
	require.Empty(t, missing.Body.String())
}

func TestCardListPages(t *testing.T) {
	server := integrationtest.SetupServer(t)

	for _, amount := range []string{"150.00", "1.00", "123.45"} {
		created := doRequest(t, server, http.MethodPost, "/cashcards", `{"amount":`+amount+`}`)
		require.Equal(t, http.StatusCreated, created.Code)
	}

	listAmounts := func(query string) []string {
		res := doRequest(t, server, http.MethodGet, "/cashcards"+query, "")
		require.Equal(t, http.StatusOK, res.Code)

		var cards []domain.CashCard
		require.NoError(t, json.Unmarshal(res.Body.Bytes(), &cards))

		out := make([]string, 0, len(cards))
		for _, c := range cards {
			out = append(out, domain.AmountString(c.Amount))
		}

		return out
	}

	require.Equal(t, []string{"1.00", "123.45", "150.00"}, listAmounts(""))
	require.Equal(t, []string{"150.00"}, listAmounts("?page=0&size=1&sort=amount,desc"))
	require.Equal(t, []string{"123.45"}, listAmounts("?page=1&size=1&sort=amount,desc"))
	require.Equal(t, []string{}, listAmounts("?page=10&size=1"))

	malformed := doRequest(t, server, http.MethodGet, "/cashcards?sort=owner", "")
	require.Equal(t, http.StatusBadRequest, malformed.Code)
}
