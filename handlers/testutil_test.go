package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/ariel-ams/photos-api-back/auth"
	"github.com/ariel-ams/photos-api-back/handlers"
	"github.com/ariel-ams/photos-api-back/models"
	"github.com/ariel-ams/photos-api-back/photos"
	"github.com/ariel-ams/photos-api-back/store"
)

const testOrigin = "http://localhost:8080"

func makePhotos(n int) []models.Photo {
	items := make([]models.Photo, n)
	for i := range items {
		items[i] = models.Photo{
			AlbumID: i/10 + 1,
			ID:      i + 1,
			Title:   fmt.Sprintf("photo %d", i+1),
		}
	}
	return items
}

// newTestApp wires the full route table the way main does, with an
// in-memory user store, a miniredis cache, and a fake photos upstream.
func newTestApp(t *testing.T, photoItems []models.Photo) (*httptest.Server, *store.MemoryUserStore) {
	t.Helper()

	userStore := store.NewMemoryUserStore()
	manager := auth.NewManager(userStore)

	mr := miniredis.RunT(t)
	cache := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(photoItems); err != nil {
			t.Errorf("encoding upstream response: %v", err)
		}
	}))
	t.Cleanup(upstream.Close)

	photoClient := photos.NewClient(nil, cache, upstream.URL, time.Minute)

	authHandler := handlers.NewAuthHandler(manager)
	photosHandler := handlers.NewPhotosHandler(photoClient)

	mux := http.NewServeMux()
	mux.HandleFunc("/", handlers.Home)
	mux.HandleFunc("/api/register", authHandler.Register)
	mux.HandleFunc("/api/login", authHandler.Login)
	mux.HandleFunc("/api/logout", manager.RequireAuth(authHandler.Logout))
	mux.HandleFunc("/api/photos", manager.RequireAuth(photosHandler.List))

	srv := httptest.NewServer(handlers.CORS(testOrigin, mux))
	t.Cleanup(srv.Close)

	return srv, userStore
}

func postJSON(t *testing.T, url string, body any, cookies ...*http.Cookie) *http.Response {
	t.Helper()

	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshaling request body: %v", err)
	}

	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		t.Fatalf("building request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("sending request: %v", err)
	}
	return resp
}

func get(t *testing.T, url string, cookies ...*http.Cookie) *http.Response {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		t.Fatalf("building request: %v", err)
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("sending request: %v", err)
	}
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()

	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decoding response body: %v", err)
	}
	return body
}

func authCookie(t *testing.T, resp *http.Response) *http.Cookie {
	t.Helper()
	for _, c := range resp.Cookies() {
		if c.Name == auth.CookieName {
			return c
		}
	}
	t.Fatal("no auth cookie in response")
	return nil
}

// registerAndLogin creates an account and logs it in, returning the
// session cookie.
func registerAndLogin(t *testing.T, baseURL, email, password string) *http.Cookie {
	t.Helper()

	resp := postJSON(t, baseURL+"/api/register", map[string]string{
		"email":     email,
		"password":  password,
		"password2": password,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("register status = %d, want 200", resp.StatusCode)
	}
	resp.Body.Close()

	resp = postJSON(t, baseURL+"/api/login", map[string]string{
		"email":    email,
		"password": password,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login status = %d, want 200", resp.StatusCode)
	}
	cookie := authCookie(t, resp)
	resp.Body.Close()
	return cookie
}
