package locations

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchFollowsPagination(t *testing.T) {
	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "secret", r.URL.Query().Get("api_key"))

		switch r.URL.Query().Get("start") {
		case "0":
			assert.Equal(t, "Netto", r.URL.Query().Get("q"))
			fmt.Fprintf(w, `{
				"local_results": [
					{"position": 1, "title": "Netto Berlin", "place_id": "p1",
					 "address": "Hauptstr. 1", "gps_coordinates": {"latitude": 52.5, "longitude": 13.4}}
				],
				"serpapi_pagination": {"next_link": "%s/search?start=100&q=Netto"}
			}`, srv.URL)
		case "100":
			fmt.Fprint(w, `{
				"local_results": [
					{"position": 2, "title": "Netto Hamburg", "place_id": "p2",
					 "address": "Hafenstr. 2", "gps_coordinates": {"latitude": 53.5, "longitude": 10.0}}
				],
				"serpapi_pagination": {}
			}`)
		default:
			http.Error(w, "unexpected page", http.StatusBadRequest)
		}
	}))
	defer srv.Close()

	client := NewClient("secret")
	client.BaseURL = srv.URL

	locs, err := client.Search(context.Background(), "Netto")
	require.NoError(t, err)

	assert.Equal(t, []Location{
		{Position: 1, Title: "Netto Berlin", PlaceID: "p1", Address: "Hauptstr. 1", Latitude: 52.5, Longitude: 13.4},
		{Position: 2, Title: "Netto Hamburg", PlaceID: "p2", Address: "Hafenstr. 2", Latitude: 53.5, Longitude: 10.0},
	}, locs)
}

func TestSearchErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "over quota", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := NewClient("secret")
	client.BaseURL = srv.URL

	_, err := client.Search(context.Background(), "Netto")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 429")
}

func TestSearchMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, "not json")
	}))
	defer srv.Close()

	client := NewClient("secret")
	client.BaseURL = srv.URL

	_, err := client.Search(context.Background(), "Netto")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode")
}
