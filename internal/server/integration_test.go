//go:build integration
// +build integration

package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"testing"
)

func envOrDefault(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func postJSON(t *testing.T, url string, payload interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	resp, err := http.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	var out map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp, out
}

func TestLiveHealthz(t *testing.T) {
	baseURL := envOrDefault("INTEGRATION_BASE_URL", "http://localhost:8080")
	resp, err := http.Get(fmt.Sprintf("%s/healthz", baseURL))
	if err != nil {
		t.Fatalf("health check request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status code: %d", resp.StatusCode)
	}
}

func TestLiveCreateSearchDelete(t *testing.T) {
	baseURL := envOrDefault("INTEGRATION_BASE_URL", "http://localhost:8080")

	resp, created := postJSON(t, baseURL+"/questions", map[string]interface{}{
		"question":   "integration question about zeppelins",
		"answer":     "yes",
		"difficulty": 2,
		"category":   1,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("create failed: %d %v", resp.StatusCode, created)
	}
	id := int(created["created"].(float64))

	resp, found := postJSON(t, baseURL+"/questions", map[string]interface{}{"searchTerm": "ZEPPELINS"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("search failed: %d", resp.StatusCode)
	}
	if len(found["questions"].([]interface{})) == 0 {
		t.Fatal("search did not return the created question")
	}

	req, _ := http.NewRequest(http.MethodDelete, fmt.Sprintf("%s/questions/%d", baseURL, id), nil)
	delResp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("delete request failed: %v", err)
	}
	delResp.Body.Close()
	if delResp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected delete status: %d", delResp.StatusCode)
	}
}

func TestLiveQuizMissingFields(t *testing.T) {
	baseURL := envOrDefault("INTEGRATION_BASE_URL", "http://localhost:8080")

	resp, out := postJSON(t, baseURL+"/quizzes", map[string]interface{}{"quiz_category": map[string]int{"id": 0}})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %v", resp.StatusCode, out)
	}
	if out["success"] != false {
		t.Fatalf("expected success=false, got %v", out["success"])
	}
}
