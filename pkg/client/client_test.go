package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"dazuai_backend/pkg/catalog"
)

func testServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/courses", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(catalog.Courses)
	})
	mux.HandleFunc("/register", func(w http.ResponseWriter, r *http.Request) {
		var payload RegistrationRequest
		json.NewDecoder(r.Body).Decode(&payload)
		if payload.Name == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]interface{}{"message": "All fields are required"})
			return
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]interface{}{"message": "Registration successful!", "id": 42})
	})
	mux.HandleFunc("/subscribe", func(w http.ResponseWriter, r *http.Request) {
		var payload struct {
			Email string `json:"email"`
		}
		json.NewDecoder(r.Body).Decode(&payload)
		if payload.Email == "taken@example.com" {
			w.WriteHeader(http.StatusConflict)
			json.NewEncoder(w).Encode(map[string]interface{}{"message": "This email is already subscribed."})
			return
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]interface{}{"message": "Subscription successful! Thank you."})
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestRegister(t *testing.T) {
	server := testServer(t)
	c := New(server.URL)

	t.Run("returns the created id", func(t *testing.T) {
		id, err := c.Register(context.Background(), RegistrationRequest{
			Name:   "Wanjiku Kamau",
			Email:  "wanjiku@example.com",
			Phone:  "0712345678",
			County: "Nairobi",
			Course: "AI Masterclass (5 sessions)",
			Level:  "Beginner",
			Goals:  "Build my own AI projects",
		})
		if err != nil {
			t.Fatalf("\nwanted:\nnil\ngot:\n%v", err)
		}
		if id != 42 {
			t.Fatalf("\nwanted:\n42\ngot:\n%d", id)
		}
	})

	t.Run("surfaces the server message", func(t *testing.T) {
		_, err := c.Register(context.Background(), RegistrationRequest{})
		apiErr, ok := err.(*APIError)
		if !ok {
			t.Fatalf("\nwanted:\n*APIError\ngot:\n%v", err)
		}
		if apiErr.StatusCode != http.StatusBadRequest {
			t.Fatalf("\nwanted:\n400\ngot:\n%d", apiErr.StatusCode)
		}
		if apiErr.Message != "All fields are required" {
			t.Fatalf("\nwanted:\nserver message\ngot:\n%q", apiErr.Message)
		}
	})
}

func TestSubscribe(t *testing.T) {
	server := testServer(t)
	c := New(server.URL)

	t.Run("returns the success message", func(t *testing.T) {
		message, err := c.Subscribe(context.Background(), "reader@example.com")
		if err != nil {
			t.Fatalf("\nwanted:\nnil\ngot:\n%v", err)
		}
		if message != "Subscription successful! Thank you." {
			t.Fatalf("\nwanted:\nsuccess message\ngot:\n%q", message)
		}
	})

	t.Run("conflict surfaces as an APIError", func(t *testing.T) {
		_, err := c.Subscribe(context.Background(), "taken@example.com")
		apiErr, ok := err.(*APIError)
		if !ok {
			t.Fatalf("\nwanted:\n*APIError\ngot:\n%v", err)
		}
		if apiErr.StatusCode != http.StatusConflict {
			t.Fatalf("\nwanted:\n409\ngot:\n%d", apiErr.StatusCode)
		}
	})
}

func TestCourses(t *testing.T) {
	server := testServer(t)
	c := New(server.URL)

	courses, err := c.Courses(context.Background())
	if err != nil {
		t.Fatalf("\nwanted:\nnil\ngot:\n%v", err)
	}
	if len(courses) != len(catalog.Courses) {
		t.Fatalf("\nwanted:\n%d courses\ngot:\n%d", len(catalog.Courses), len(courses))
	}
}
