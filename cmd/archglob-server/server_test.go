package main

import (
	"context"
	"encoding/json"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/retro-framework/go-archglob/framework"
	"github.com/retro-framework/go-archglob/framework/archglob"
	"github.com/retro-framework/go-archglob/framework/archive"
	"github.com/retro-framework/go-archglob/framework/once"
	test "github.com/retro-framework/go-archglob/framework/test_helper"
)

type recordingObserver struct {
	results []archglob.Result
}

func (r *recordingObserver) Observe(_ context.Context, res archglob.Result) {
	r.results = append(r.results, res)
}

func fixtureServer(obs *recordingObserver) *httptest.Server {
	var (
		file = func(s string) *fstest.MapFile { return &fstest.MapFile{Data: []byte(s)} }
		srv  = server{
			glob: archglob.New(archglob.Options{
				Scheme:    "archive://",
				Extension: ".ext",
				Opener: archive.Mounts{
					"bundle.ext": fstest.MapFS{
						"plugins/calendar/plugin.json": file("{}"),
						"plugins/wiki/plugin.json":     file("{}"),
						"plugins/wiki/plugin.json.bak": file("{}"),
						"plugins/zoo/plugin.json":      file("{}"),
					},
					"broken.ext": nil,
				},
			}),
			once:     once.New(once.NewMemoryStore()),
			observer: obs,
			log:      framework.Noop{},
		}
	)
	return httptest.NewServer(newRouter(srv, ioutil.Discard))
}

func getGlob(t *testing.T, base string, params url.Values) (int, globResponse, http.Header) {
	t.Helper()
	res, err := http.Get(base + "/glob?" + params.Encode())
	if err != nil {
		t.Fatal(err)
	}
	defer res.Body.Close()
	var body globResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatalf("can't decode response: %s", err)
	}
	return res.StatusCode, body, res.Header
}

func Test_GlobServer(t *testing.T) {

	var (
		obs = &recordingObserver{}
		ts  = fixtureServer(obs)
	)
	defer ts.Close()

	t.Run("matches", func(t *testing.T) {
		var h = test.H(t)
		status, body, hdr := getGlob(t, ts.URL, url.Values{"pattern": {"archive://bundle.ext/plugins/*/plugin.json"}})
		h.IntEql(status, http.StatusOK)
		h.StringEql(body.Outcome, "matched")
		h.StringsEql(body.Matches, []string{
			"archive://bundle.ext/plugins/calendar/plugin.json",
			"archive://bundle.ext/plugins/wiki/plugin.json",
			"archive://bundle.ext/plugins/zoo/plugin.json",
		})
		h.BoolEql(hdr.Get(requestIDHeader) != "", true)
	})

	t.Run("excludes and limit", func(t *testing.T) {
		var h = test.H(t)
		status, body, _ := getGlob(t, ts.URL, url.Values{
			"pattern": {"archive://bundle.ext/plugins/*/*"},
			"exclude": {"*.bak", "*/calendar/*"},
			"limit":   {"1"},
		})
		h.IntEql(status, http.StatusOK)
		h.StringsEql(body.Matches, []string{"archive://bundle.ext/plugins/wiki/plugin.json"})
	})

	t.Run("degraded outcome is reported, not failed", func(t *testing.T) {
		var h = test.H(t)
		status, body, _ := getGlob(t, ts.URL, url.Values{"pattern": {"archive://broken.ext/*"}})
		h.IntEql(status, http.StatusOK)
		h.StringEql(body.Outcome, "traversal-failed")
		h.StringsEql(body.Matches, nil)
		h.BoolEql(body.Error != "", true)
	})

	t.Run("missing archive", func(t *testing.T) {
		var h = test.H(t)
		status, body, _ := getGlob(t, ts.URL, url.Values{"pattern": {"archive://gone.ext/*"}})
		h.IntEql(status, http.StatusOK)
		h.StringEql(body.Outcome, "missing-archive")
		h.StringEql(body.Error, "")
	})

	t.Run("invalid pattern", func(t *testing.T) {
		var h = test.H(t)
		status, body, _ := getGlob(t, ts.URL, url.Values{"pattern": {"bundle.ext/*"}})
		h.IntEql(status, http.StatusBadRequest)
		h.BoolEql(body.Error != "", true)
	})

	t.Run("missing pattern", func(t *testing.T) {
		status, _, _ := getGlob(t, ts.URL, url.Values{})
		test.H(t).IntEql(status, http.StatusBadRequest)
	})

	t.Run("bad limit", func(t *testing.T) {
		var h = test.H(t)
		for _, limit := range []string{"lots", "9223372036854775808"} {
			status, body, _ := getGlob(t, ts.URL, url.Values{"pattern": {"archive://bundle.ext/*"}, "limit": {limit}})
			h.IntEql(status, http.StatusBadRequest)
			h.BoolEql(strings.HasPrefix(body.Error, "limit: cast: can't cast"), true)
		}
		status, body, _ := getGlob(t, ts.URL, url.Values{"pattern": {"archive://bundle.ext/*"}, "limit": {"-1"}})
		h.IntEql(status, http.StatusBadRequest)
		h.StringEql(body.Error, "limit must not be negative")
	})

	// matches, excludes, broken, missing
	test.H(t).IntEql(len(obs.results), 4)
}

func postOnce(t *testing.T, base, key, session, across string) (int, onceResponse) {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, base+"/once/"+key+"?across="+across, nil)
	if err != nil {
		t.Fatal(err)
	}
	if session != "" {
		req.Header.Set(sessionHeader, session)
	}
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer res.Body.Close()
	var body onceResponse
	if res.StatusCode == http.StatusOK {
		if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
			t.Fatalf("can't decode response: %s", err)
		}
	}
	return res.StatusCode, body
}

func Test_OnceServer(t *testing.T) {

	var ts = fixtureServer(&recordingObserver{})
	defer ts.Close()

	t.Run("per process", func(t *testing.T) {
		var h = test.H(t)
		_, first := postOnce(t, ts.URL, "migrate", "alice", "")
		_, second := postOnce(t, ts.URL, "migrate", "bob", "")
		h.BoolEql(first.Ran, true)
		h.BoolEql(second.Ran, false)
	})

	t.Run("across requests is per session", func(t *testing.T) {
		var h = test.H(t)
		_, alice := postOnce(t, ts.URL, "welcome", "alice", "true")
		_, aliceAgain := postOnce(t, ts.URL, "welcome", "alice", "yes")
		_, bob := postOnce(t, ts.URL, "welcome", "bob", "1")
		_, anon := postOnce(t, ts.URL, "welcome", "", "on")
		h.BoolEql(alice.Ran, true)
		h.BoolEql(aliceAgain.Ran, false)
		h.BoolEql(bob.Ran, true)
		h.BoolEql(anon.Ran, true)
		h.StringEql(bob.Session, "bob")
		h.StringEql(anon.Session, "anonymous")
	})

	t.Run("across must be a boolean", func(t *testing.T) {
		status, _ := postOnce(t, ts.URL, "welcome", "alice", "maybe")
		test.H(t).IntEql(status, http.StatusBadRequest)
	})
}

func Test_Healthz(t *testing.T) {
	var ts = fixtureServer(&recordingObserver{})
	defer ts.Close()

	res, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatal(err)
	}
	defer res.Body.Close()
	body, _ := ioutil.ReadAll(res.Body)
	test.H(t).IntEql(res.StatusCode, http.StatusOK)
	test.H(t).StringEql(string(body), "ok\n")
}

func Test_RequestIDIsKept(t *testing.T) {
	var ts = fixtureServer(&recordingObserver{})
	defer ts.Close()

	req, _ := http.NewRequest(http.MethodGet, ts.URL+"/healthz", nil)
	req.Header.Set(requestIDHeader, "abc123")
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	res.Body.Close()
	test.H(t).StringEql(res.Header.Get(requestIDHeader), "abc123")
}
