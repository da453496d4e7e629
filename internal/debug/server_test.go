package debug

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-treehouse/internal/app"
	"go-treehouse/internal/event"
	"go-treehouse/internal/utils"
)

func TestDesignBeforePublish(t *testing.T) {
	srv := httptest.NewServer(NewRouter(NewStore()))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/design")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", resp.StatusCode)
	}
}

func TestDesignAfterPublish(t *testing.T) {
	store := NewStore()
	dispatcher := event.NewDispatcher()
	dispatcher.Subscribe(event.DesignChanged, store)

	designer := app.NewDesigner(app.NewScene(800, 600, utils.NewPRNGService(5)), dispatcher, t.TempDir())
	designer.AddPlatform()
	designer.AddGem()
	designer.AddGem()

	srv := httptest.NewServer(NewRouter(store))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/design")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
		t.Errorf("content type = %q", ct)
	}
	var d app.Design
	if err := json.NewDecoder(resp.Body).Decode(&d); err != nil {
		t.Fatal(err)
	}
	if d.Platforms != 1 || len(d.Gems) != 2 || d.RoofColor == nil {
		t.Errorf("design = %+v", d)
	}
}

func TestStoreIgnoresOtherPayloads(t *testing.T) {
	store := NewStore()
	store.OnEvent(event.Event{Type: event.DesignChanged, Data: "not a design"})
	if _, ok := store.Design(); ok {
		t.Error("store accepted a non-design payload")
	}
}

func TestHealthz(t *testing.T) {
	rec := httptest.NewRecorder()
	NewRouter(NewStore()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusOK || rec.Body.String() != "ok\n" {
		t.Errorf("healthz = %d %q", rec.Code, rec.Body.String())
	}
}
