package housing

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFeedURL_DefaultsAndNormalizes(t *testing.T) {
	u, err := parseFeedURL("")
	require.NoError(t, err)
	assert.Equal(t, DefaultFeedURL, u.String())

	u, err = parseFeedURL("  example.com/rooms#frag ")
	require.NoError(t, err)
	assert.Equal(t, "https", u.Scheme)
	assert.Equal(t, "example.com", u.Host)
	assert.Equal(t, "/rooms", u.Path)
	assert.Empty(t, u.Fragment)

	_, err = parseFeedURL("http://")
	require.Error(t, err)
}

func TestClient_FetchRoomsDecodesFeed(t *testing.T) {
	t.Parallel()

	var gotUserAgent, gotAccept, gotMethod string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		gotAccept = r.Header.Get("Accept")
		gotMethod = r.Method
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"BuildingName":"Glenn","RoomNumber":"101A","Gender":"Male","Capacity":"Double","Term":"Fall","LastUpdated":"2026-10-16T12:00:00Z"},
			{"BuildingName":"Glenn","RoomNumber":"101B","Gender":"Male","Capacity":"Double","Term":"Fall","LastUpdated":"2026-10-16T12:05:00Z"}
		]`))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, time.Second, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	rooms, err := c.FetchRooms(ctx)
	require.NoError(t, err)
	require.Len(t, rooms, 2)
	assert.Equal(t, "101B", rooms[1].RoomNumber)
	assert.Equal(t, "Double", rooms[0].Capacity)

	assert.Equal(t, http.MethodGet, gotMethod)
	assert.Equal(t, "application/json", gotAccept)
	assert.True(t, strings.HasPrefix(gotUserAgent, "bedboard/"), "User-Agent = %q", gotUserAgent)
}

func TestClient_FetchRoomsErrors(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/broken":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte("{not-json"))
		case "/object":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"rooms":[]}`))
		case "/null":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(" null "))
		case "/null-record":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[{"BuildingName":"Glenn"},null]`))
		case "/scalar-record":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`["Glenn"]`))
		case "/down":
			http.Error(w, "nope", http.StatusBadGateway)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	cases := []struct {
		path string
		want string
	}{
		{"/broken", "decode response"},
		{"/object", "decode response"},
		{"/null", "decode response: feed body is null"},
		{"/null-record", "decode response: record 1"},
		{"/scalar-record", "decode response: record 0"},
		{"/down", "returned status 502"},
		{"/missing", "returned status 404"},
	}
	for _, tc := range cases {
		c, err := NewClient(server.URL+tc.path, time.Second, nil)
		require.NoError(t, err)
		_, err = c.FetchRooms(context.Background())
		require.Error(t, err, tc.path)
		assert.Contains(t, err.Error(), tc.want, tc.path)
	}
}

func TestClient_FetchRoomsEmptyArray(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("[]"))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, time.Second, nil)
	require.NoError(t, err)
	rooms, err := c.FetchRooms(context.Background())
	require.NoError(t, err)
	assert.Empty(t, rooms)
}

func TestClient_FetchRoomsTransportError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	addr := server.URL
	server.Close()

	c, err := NewClient(addr, 500*time.Millisecond, nil)
	require.NoError(t, err)
	_, err = c.FetchRooms(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "execute request")
}

func TestClient_NilReceiver(t *testing.T) {
	var c *Client
	_, err := c.FetchRooms(context.Background())
	require.Error(t, err)
	assert.Empty(t, c.FeedURL())
}
