package handlers

import (
	"fmt"
	"net/http"
)

func (s *E2ETestSuite) seedLogUser(prefix string) (string, string) {
	username := uniqueUsername(prefix)
	id := s.createUser(username)
	for _, e := range []struct {
		desc, date string
		duration   int
	}{
		{"january run", "2023-01-15", 30},
		{"spring swim", "2023-04-20", 45},
		{"summer hike", "2023-07-04", 120},
		{"new year walk", "2024-01-01", 20},
	} {
		s.addExercise(id, map[string]any{
			"description": e.desc,
			"duration":    e.duration,
			"date":        e.date,
		})
	}
	return id, username
}

func logEntries(body map[string]any) []map[string]any {
	raw, _ := body["log"].([]any)
	entries := make([]map[string]any, 0, len(raw))
	for _, r := range raw {
		if m, ok := r.(map[string]any); ok {
			entries = append(entries, m)
		}
	}
	return entries
}

func (s *E2ETestSuite) TestLogsFullHistory() {
	id, username := s.seedLogUser("log_all")
	resp, body := s.getJSON(fmt.Sprintf("/api/users/%s/logs", id))
	s.Equal(http.StatusOK, resp.StatusCode)
	s.Equal(username, body["username"])
	s.Equal(id, body["_id"])
	s.Equal(float64(4), body["count"])

	entries := logEntries(body)
	s.Require().Len(entries, 4)
	// Insertion order is preserved.
	s.Equal("january run", entries[0]["description"])
	s.Equal("new year walk", entries[3]["description"])
	s.Equal("Sun Jan 15 2023", entries[0]["date"])
	s.Equal(float64(30), entries[0]["duration"])
}

func (s *E2ETestSuite) TestLogsDateWindowInclusive() {
	id, _ := s.seedLogUser("log_window")
	resp, body := s.getJSON(fmt.Sprintf("/api/users/%s/logs?from=2023-01-01&to=2023-12-31", id))
	s.Equal(http.StatusOK, resp.StatusCode)
	s.Equal(float64(3), body["count"])
	for _, e := range logEntries(body) {
		s.NotEqual("new year walk", e["description"])
	}

	// Bounds are inclusive: a window that starts and ends on an exercise's
	// date still matches it.
	resp, body = s.getJSON(fmt.Sprintf("/api/users/%s/logs?from=2023-07-04&to=2023-07-04", id))
	s.Equal(http.StatusOK, resp.StatusCode)
	s.Equal(float64(1), body["count"])
	s.Equal("summer hike", logEntries(body)[0]["description"])
}

func (s *E2ETestSuite) TestLogsSingleBound() {
	id, _ := s.seedLogUser("log_bound")
	_, body := s.getJSON(fmt.Sprintf("/api/users/%s/logs?from=2023-07-01", id))
	s.Equal(float64(2), body["count"])

	_, body = s.getJSON(fmt.Sprintf("/api/users/%s/logs?to=2023-06-30", id))
	s.Equal(float64(2), body["count"])
}

func (s *E2ETestSuite) TestLogsLimit() {
	id, _ := s.seedLogUser("log_limit")
	_, body := s.getJSON(fmt.Sprintf("/api/users/%s/logs?limit=1", id))
	s.Equal(float64(1), body["count"])
	s.Len(logEntries(body), 1)

	// limit=0 and a missing limit both mean "no cap".
	_, body = s.getJSON(fmt.Sprintf("/api/users/%s/logs?limit=0", id))
	s.Equal(float64(4), body["count"])

	_, body = s.getJSON(fmt.Sprintf("/api/users/%s/logs?limit=notanumber", id))
	s.Equal(float64(4), body["count"])
}

func (s *E2ETestSuite) TestLogsCountMatchesLimitedEntries() {
	id, _ := s.seedLogUser("log_count")
	_, body := s.getJSON(fmt.Sprintf("/api/users/%s/logs?limit=2", id))
	s.Equal(float64(2), body["count"])
	s.Len(logEntries(body), 2)
}

func (s *E2ETestSuite) TestLogsUnknownUser() {
	resp, body := s.getJSON("/api/users/00000000-0000-0000-0000-000000000000/logs")
	s.Equal(http.StatusNotFound, resp.StatusCode)
	s.Equal("NOT_FOUND", errorCode(body))
}

func (s *E2ETestSuite) TestLogsInvalidDateParam() {
	id, _ := s.seedLogUser("log_baddate")
	resp, body := s.getJSON(fmt.Sprintf("/api/users/%s/logs?from=banana", id))
	s.Equal(http.StatusBadRequest, resp.StatusCode)
	s.Equal("VALIDATION_ERROR", errorCode(body))
}

func (s *E2ETestSuite) TestLogsEmptyForFreshUser() {
	id := s.createUser(uniqueUsername("log_empty"))
	resp, body := s.getJSON(fmt.Sprintf("/api/users/%s/logs", id))
	s.Equal(http.StatusOK, resp.StatusCode)
	s.Equal(float64(0), body["count"])
	s.Len(logEntries(body), 0)
}

func (s *E2ETestSuite) TestEndToEndScenario() {
	username := uniqueUsername("fcc_test")
	id := s.createUser(username)

	out := s.addExercise(id, map[string]any{
		"description": "run",
		"duration":    "30",
		"date":        "2023-01-15",
	})
	s.Equal(username, out["username"])
	s.Equal("run", out["description"])
	s.Equal(float64(30), out["duration"])
	s.Equal("Sun Jan 15 2023", out["date"])
	s.Equal(id, out["_id"])

	resp, body := s.getJSON(fmt.Sprintf("/api/users/%s/logs", id))
	s.Equal(http.StatusOK, resp.StatusCode)
	s.Equal(username, body["username"])
	s.Equal(float64(1), body["count"])
	s.Equal(id, body["_id"])

	entries := logEntries(body)
	s.Require().Len(entries, 1)
	s.Equal("run", entries[0]["description"])
	s.Equal(float64(30), entries[0]["duration"])
	s.Equal("Sun Jan 15 2023", entries[0]["date"])
}
