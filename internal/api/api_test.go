package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/tomazk/holdings/internal/db"
	"github.com/tomazk/holdings/internal/model"
)

const testJWTSecret = "test-secret"

func setupTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	database := db.NewTestDB(t)
	router := NewRouter(database, testJWTSecret)
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server
}

// registerUser creates an account through the API and returns its token.
func registerUser(t *testing.T, server *httptest.Server, email string) string {
	t.Helper()
	body, _ := json.Marshal(map[string]string{
		"email":    email,
		"password": "password123",
		"name":     "Test User",
	})
	resp, err := http.Post(server.URL+"/api/auth/register", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("register request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("register failed: %d", resp.StatusCode)
	}

	var registerResp map[string]any
	json.NewDecoder(resp.Body).Decode(&registerResp)
	token, _ := registerResp["token"].(string)
	if token == "" {
		t.Fatal("empty token from register")
	}
	return token
}

func authRequest(method, url, token string, body any) (*http.Request, error) {
	var bodyReader *bytes.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		bodyReader = bytes.NewReader(data)
	} else {
		bodyReader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, url, bodyReader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

func doJSON(t *testing.T, req *http.Request, out any) int {
	t.Helper()
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request %s %s: %v", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()
	if out != nil {
		json.NewDecoder(resp.Body).Decode(out)
	}
	return resp.StatusCode
}

func validLand(name string) map[string]any {
	return map[string]any{
		"name":            name,
		"location":        "North Field",
		"area":            12.5,
		"value":           150000.0,
		"acquisitionDate": "2023-04-01",
	}
}

func TestRegisterAndLogin(t *testing.T) {
	server := setupTestServer(t)
	registerUser(t, server, "alice@example.com")

	// Duplicate email is rejected.
	body, _ := json.Marshal(map[string]string{
		"email":    "alice@example.com",
		"password": "password123",
	})
	resp, _ := http.Post(server.URL+"/api/auth/register", "application/json", bytes.NewReader(body))
	if resp.StatusCode != http.StatusConflict {
		t.Errorf("expected 409 for duplicate email, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	// Valid login.
	body, _ = json.Marshal(map[string]string{"email": "alice@example.com", "password": "password123"})
	resp, _ = http.Post(server.URL+"/api/auth/login", "application/json", bytes.NewReader(body))
	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected 200 for login, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	// Wrong password.
	body, _ = json.Marshal(map[string]string{"email": "alice@example.com", "password": "wrong-password"})
	resp, _ = http.Post(server.URL+"/api/auth/login", "application/json", bytes.NewReader(body))
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("expected 401 for bad password, got %d", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestRegisterValidation(t *testing.T) {
	server := setupTestServer(t)

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"missing email", "", "password123"},
		{"malformed email", "not-an-email", "password123"},
		{"short password", "bob@example.com", "short"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, _ := json.Marshal(map[string]string{"email": tt.email, "password": tt.password})
			resp, err := http.Post(server.URL+"/api/auth/register", "application/json", bytes.NewReader(body))
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}
			defer resp.Body.Close()
			if resp.StatusCode != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", resp.StatusCode)
			}
		})
	}
}

func TestLandCRUDFlow(t *testing.T) {
	server := setupTestServer(t)
	token := registerUser(t, server, "alice@example.com")

	// Create with omitted optional fields.
	req, _ := authRequest("POST", server.URL+"/api/land", token, validLand("North Field"))
	var created model.Land
	if status := doJSON(t, req, &created); status != http.StatusCreated {
		t.Fatalf("expected 201, got %d", status)
	}
	if created.ID == "" {
		t.Fatal("created land has no id")
	}
	if created.Status != model.LandStatusActive {
		t.Errorf("expected default status %q, got %q", model.LandStatusActive, created.Status)
	}
	if created.AreaUnit != model.AreaUnitAcres {
		t.Errorf("expected default area unit %q, got %q", model.AreaUnitAcres, created.AreaUnit)
	}
	if created.OwnerID == "" {
		t.Error("created land has no owner")
	}

	// List shows the row.
	req, _ = authRequest("GET", server.URL+"/api/land", token, nil)
	var lands []model.Land
	if status := doJSON(t, req, &lands); status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if len(lands) != 1 {
		t.Fatalf("expected 1 land, got %d", len(lands))
	}

	// Update replaces all fields.
	update := validLand("Renamed Field")
	update["value"] = 200000.0
	req, _ = authRequest("PUT", server.URL+"/api/land?id="+created.ID, token, update)
	var updated model.Land
	if status := doJSON(t, req, &updated); status != http.StatusOK {
		t.Fatalf("expected 200 for update, got %d", status)
	}
	if updated.Name != "Renamed Field" || updated.Value != 200000 {
		t.Errorf("update not applied: %+v", updated)
	}

	// Delete removes it.
	req, _ = authRequest("DELETE", server.URL+"/api/land?id="+created.ID, token, nil)
	if status := doJSON(t, req, nil); status != http.StatusOK {
		t.Fatalf("expected 200 for delete, got %d", status)
	}

	req, _ = authRequest("GET", server.URL+"/api/land", token, nil)
	lands = nil
	doJSON(t, req, &lands)
	if len(lands) != 0 {
		t.Errorf("expected 0 lands after delete, got %d", len(lands))
	}
}

func TestOwnerFromTokenNotBody(t *testing.T) {
	server := setupTestServer(t)
	tokenA := registerUser(t, server, "alice@example.com")
	registerUser(t, server, "bob@example.com")

	// A body-supplied ownerId is ignored; the row belongs to the caller.
	payload := validLand("Spoofed Field")
	payload["ownerId"] = "someone-else"
	req, _ := authRequest("POST", server.URL+"/api/land", tokenA, payload)
	var created model.Land
	if status := doJSON(t, req, &created); status != http.StatusCreated {
		t.Fatalf("expected 201, got %d", status)
	}
	if created.OwnerID == "someone-else" {
		t.Error("body ownerId was trusted")
	}

	req, _ = authRequest("GET", server.URL+"/api/land", tokenA, nil)
	var lands []model.Land
	doJSON(t, req, &lands)
	if len(lands) != 1 {
		t.Errorf("expected creator to see the row, got %d rows", len(lands))
	}
}

func TestCrossUserIsolation(t *testing.T) {
	server := setupTestServer(t)
	tokenA := registerUser(t, server, "alice@example.com")
	tokenB := registerUser(t, server, "bob@example.com")

	// Alice creates two lands, Bob creates one.
	for i := range 2 {
		req, _ := authRequest("POST", server.URL+"/api/land", tokenA, validLand(fmt.Sprintf("Alice %d", i)))
		var created model.Land
		if status := doJSON(t, req, &created); status != http.StatusCreated {
			t.Fatalf("expected 201, got %d", status)
		}
	}
	req, _ := authRequest("POST", server.URL+"/api/land", tokenB, validLand("Bob Field"))
	var bobLand model.Land
	if status := doJSON(t, req, &bobLand); status != http.StatusCreated {
		t.Fatalf("expected 201, got %d", status)
	}

	// Each sees only their own rows.
	req, _ = authRequest("GET", server.URL+"/api/land", tokenA, nil)
	var aliceLands []model.Land
	doJSON(t, req, &aliceLands)
	if len(aliceLands) != 2 {
		t.Errorf("expected alice to see 2 lands, got %d", len(aliceLands))
	}

	req, _ = authRequest("GET", server.URL+"/api/land", tokenB, nil)
	var bobLands []model.Land
	doJSON(t, req, &bobLands)
	if len(bobLands) != 1 {
		t.Errorf("expected bob to see 1 land, got %d", len(bobLands))
	}

	// Alice cannot update or delete Bob's row; the response is 404, not 403.
	req, _ = authRequest("PUT", server.URL+"/api/land?id="+bobLand.ID, tokenA, validLand("Hijacked"))
	if status := doJSON(t, req, nil); status != http.StatusNotFound {
		t.Errorf("expected 404 for cross-user update, got %d", status)
	}

	req, _ = authRequest("DELETE", server.URL+"/api/land?id="+bobLand.ID, tokenA, nil)
	if status := doJSON(t, req, nil); status != http.StatusNotFound {
		t.Errorf("expected 404 for cross-user delete, got %d", status)
	}

	// Bob's row survived.
	req, _ = authRequest("GET", server.URL+"/api/land", tokenB, nil)
	bobLands = nil
	doJSON(t, req, &bobLands)
	if len(bobLands) != 1 {
		t.Errorf("expected bob's land to survive, got %d rows", len(bobLands))
	}
}

func TestCreateValidationErrors(t *testing.T) {
	server := setupTestServer(t)
	token := registerUser(t, server, "alice@example.com")

	// All missing fields are reported at once.
	req, _ := authRequest("POST", server.URL+"/api/land", token, map[string]any{})
	var errResp struct {
		Error   string `json:"error"`
		Details []struct {
			Field   string `json:"field"`
			Message string `json:"message"`
		} `json:"details"`
	}
	if status := doJSON(t, req, &errResp); status != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", status)
	}
	if len(errResp.Details) < 4 {
		t.Errorf("expected errors for every missing field, got %d: %+v", len(errResp.Details), errResp.Details)
	}

	// Negative area fails the positive constraint.
	payload := validLand("Bad Field")
	payload["area"] = -1.0
	req, _ = authRequest("POST", server.URL+"/api/land", token, payload)
	if status := doJSON(t, req, nil); status != http.StatusBadRequest {
		t.Errorf("expected 400 for negative area, got %d", status)
	}

	// Malformed JSON body.
	req, _ = http.NewRequest("POST", server.URL+"/api/land", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Authorization", "Bearer "+token)
	if status := doJSON(t, req, nil); status != http.StatusBadRequest {
		t.Errorf("expected 400 for malformed body, got %d", status)
	}
}

func TestMissingIDParam(t *testing.T) {
	server := setupTestServer(t)
	token := registerUser(t, server, "alice@example.com")

	req, _ := authRequest("PUT", server.URL+"/api/land", token, validLand("No ID"))
	if status := doJSON(t, req, nil); status != http.StatusBadRequest {
		t.Errorf("expected 400 for update without id, got %d", status)
	}

	req, _ = authRequest("DELETE", server.URL+"/api/land", token, nil)
	if status := doJSON(t, req, nil); status != http.StatusBadRequest {
		t.Errorf("expected 400 for delete without id, got %d", status)
	}
}

func TestUnauthenticatedAccess(t *testing.T) {
	server := setupTestServer(t)

	paths := []string{
		"/api/land", "/api/labour", "/api/capital", "/api/technology",
		"/api/information", "/api/businesses", "/api/content",
		"/api/stats", "/api/analytics",
	}
	for _, path := range paths {
		resp, err := http.Get(server.URL + path)
		if err != nil {
			t.Fatalf("request %s: %v", path, err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusUnauthorized {
			t.Errorf("%s: expected 401 without token, got %d", path, resp.StatusCode)
		}
	}

	// Garbage token is also rejected.
	req, _ := authRequest("GET", server.URL+"/api/land", "not-a-token", nil)
	if status := doJSON(t, req, nil); status != http.StatusUnauthorized {
		t.Errorf("expected 401 for garbage token, got %d", status)
	}
}

func TestLogoutRevokesToken(t *testing.T) {
	server := setupTestServer(t)
	token := registerUser(t, server, "alice@example.com")

	req, _ := authRequest("POST", server.URL+"/api/auth/logout", token, nil)
	if status := doJSON(t, req, nil); status != http.StatusOK {
		t.Fatalf("expected 200 for logout, got %d", status)
	}

	// The token no longer works.
	req, _ = authRequest("GET", server.URL+"/api/land", token, nil)
	if status := doJSON(t, req, nil); status != http.StatusUnauthorized {
		t.Errorf("expected 401 after logout, got %d", status)
	}
}

func TestChangePassword(t *testing.T) {
	server := setupTestServer(t)
	token := registerUser(t, server, "alice@example.com")

	// Wrong current password.
	req, _ := authRequest("PUT", server.URL+"/api/auth/password", token, map[string]string{
		"currentPassword": "wrong-password",
		"newPassword":     "newpassword456",
	})
	if status := doJSON(t, req, nil); status != http.StatusUnauthorized {
		t.Errorf("expected 401 for wrong current password, got %d", status)
	}

	req, _ = authRequest("PUT", server.URL+"/api/auth/password", token, map[string]string{
		"currentPassword": "password123",
		"newPassword":     "newpassword456",
	})
	if status := doJSON(t, req, nil); status != http.StatusOK {
		t.Fatalf("expected 200 for password change, got %d", status)
	}

	// Old password stops working, new one logs in.
	body, _ := json.Marshal(map[string]string{"email": "alice@example.com", "password": "password123"})
	resp, _ := http.Post(server.URL+"/api/auth/login", "application/json", bytes.NewReader(body))
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("expected 401 for old password, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	body, _ = json.Marshal(map[string]string{"email": "alice@example.com", "password": "newpassword456"})
	resp, _ = http.Post(server.URL+"/api/auth/login", "application/json", bytes.NewReader(body))
	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected 200 for new password, got %d", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestStatsEndpoint(t *testing.T) {
	server := setupTestServer(t)
	tokenA := registerUser(t, server, "alice@example.com")
	tokenB := registerUser(t, server, "bob@example.com")

	req, _ := authRequest("POST", server.URL+"/api/land", tokenA, validLand("Alice Field"))
	if status := doJSON(t, req, nil); status != http.StatusCreated {
		t.Fatalf("expected 201, got %d", status)
	}
	req, _ = authRequest("POST", server.URL+"/api/capital", tokenA, map[string]any{
		"name":            "Savings",
		"type":            "cash",
		"category":        "liquid",
		"amount":          5000.0,
		"acquisitionDate": "2024-01-15",
	})
	if status := doJSON(t, req, nil); status != http.StatusCreated {
		t.Fatalf("expected 201, got %d", status)
	}

	req, _ = authRequest("GET", server.URL+"/api/stats", tokenA, nil)
	var stats map[string]int
	if status := doJSON(t, req, &stats); status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if stats["lands"] != 1 || stats["capitals"] != 1 || stats["businesses"] != 0 {
		t.Errorf("unexpected stats: %v", stats)
	}

	// Counts are owner-scoped.
	req, _ = authRequest("GET", server.URL+"/api/stats", tokenB, nil)
	stats = nil
	doJSON(t, req, &stats)
	if stats["lands"] != 0 || stats["capitals"] != 0 {
		t.Errorf("expected empty stats for other user, got %v", stats)
	}
}

func TestAnalyticsEndpoint(t *testing.T) {
	server := setupTestServer(t)
	token := registerUser(t, server, "alice@example.com")

	req, _ := authRequest("POST", server.URL+"/api/land", token, validLand("Field"))
	if status := doJSON(t, req, nil); status != http.StatusCreated {
		t.Fatalf("expected 201, got %d", status)
	}
	req, _ = authRequest("POST", server.URL+"/api/businesses", token, map[string]any{
		"name":                "Acme Corp",
		"industry":            "manufacturing",
		"establishedDate":     "2020-06-01",
		"ownershipPercentage": 100.0,
		"investmentAmount":    10000.0,
		"currentValue":        15000.0,
	})
	if status := doJSON(t, req, nil); status != http.StatusCreated {
		t.Fatalf("expected 201, got %d", status)
	}

	req, _ = authRequest("GET", server.URL+"/api/analytics", token, nil)
	var report struct {
		TotalValue           float64          `json:"totalValue"`
		ResourceDistribution []map[string]any `json:"resourceDistribution"`
		BusinessPerformance  []struct {
			Name string  `json:"name"`
			ROI  float64 `json:"roi"`
		} `json:"businessPerformance"`
		Summary struct {
			TotalResources int     `json:"totalResources"`
			AverageROI     float64 `json:"averageROI"`
		} `json:"summary"`
	}
	if status := doJSON(t, req, &report); status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}

	// Land 150000 + business current value 15000.
	if report.TotalValue != 165000 {
		t.Errorf("expected total value 165000, got %v", report.TotalValue)
	}
	if report.Summary.TotalResources != 2 {
		t.Errorf("expected 2 resources, got %d", report.Summary.TotalResources)
	}
	if len(report.BusinessPerformance) != 1 {
		t.Fatalf("expected 1 business entry, got %d", len(report.BusinessPerformance))
	}
	if roi := report.BusinessPerformance[0].ROI; roi != 50 {
		t.Errorf("expected ROI 50, got %v", roi)
	}
	if report.Summary.AverageROI != 50 {
		t.Errorf("expected average ROI 50, got %v", report.Summary.AverageROI)
	}
}

func TestAllResourceEndpointsRegistered(t *testing.T) {
	server := setupTestServer(t)
	token := registerUser(t, server, "alice@example.com")

	payloads := map[string]map[string]any{
		"/api/labour": {
			"employeeName": "Jane Smith",
			"position":     "Engineer",
			"department":   "R&D",
			"salary":       85000.0,
			"hireDate":     "2022-03-01",
		},
		"/api/technology": {
			"name":          "CNC Mill",
			"type":          "machinery",
			"category":      "production",
			"purchaseDate":  "2021-09-15",
			"purchasePrice": 40000.0,
		},
		"/api/information": {
			"title":           "Market Survey 2025",
			"category":        "research",
			"type":            "report",
			"acquisitionDate": "2025-02-10",
		},
		"/api/content": {
			"title":           "Product Launch Video",
			"contentType":     "video",
			"platform":        "youtube",
			"publicationDate": "2025-05-01T10:00:00Z",
		},
	}

	for path, payload := range payloads {
		req, _ := authRequest("POST", server.URL+path, token, payload)
		if status := doJSON(t, req, nil); status != http.StatusCreated {
			t.Errorf("%s: expected 201, got %d", path, status)
		}

		req, _ = authRequest("GET", server.URL+path, token, nil)
		var rows []map[string]any
		if status := doJSON(t, req, &rows); status != http.StatusOK {
			t.Errorf("%s: expected 200 for list, got %d", path, status)
		}
		if len(rows) != 1 {
			t.Errorf("%s: expected 1 row, got %d", path, len(rows))
		}
	}
}
