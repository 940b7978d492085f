package handlers

import (
	"encoding/json"
	"net/http"
)

func (s *E2ETestSuite) TestHealthCheck() {
	resp, body := s.getJSON("/health")
	s.Equal(http.StatusOK, resp.StatusCode)
	s.Equal("ok", body["status"])
}

func (s *E2ETestSuite) TestListUsersContainsCreatedUser() {
	username := uniqueUsername("lister")
	id := s.createUser(username)

	resp, err := s.client.Get(s.baseURL + "/api/users")
	s.Require().NoError(err)
	defer resp.Body.Close()
	s.Equal(http.StatusOK, resp.StatusCode)

	var users []map[string]any
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&users))

	found := false
	for _, u := range users {
		if u["_id"] == id {
			found = true
			s.Equal(username, u["username"])
		}
	}
	s.True(found, "created user missing from user list")
}

func (s *E2ETestSuite) TestLandingPage() {
	resp, err := s.client.Get(s.baseURL + "/")
	s.Require().NoError(err)
	defer resp.Body.Close()
	s.Equal(http.StatusOK, resp.StatusCode)
	s.Contains(resp.Header.Get("Content-Type"), "text/html")
}
