package pkgrouter

import (
	"encoding/json"
	"net/http"
	"reflect"
	"testing"
)

func TestMaskHeaders(t *testing.T) {
	headers := http.Header{}
	headers.Set("Authorization", "secret")
	headers.Set("X-Trace", "ok")

	masked := maskHeaders(headers)
	if got := masked.Get("Authorization"); got != "***" {
		t.Fatalf("expected masked authorization, got %q", got)
	}
	if got := masked.Get("X-Trace"); got != "ok" {
		t.Fatalf("expected X-Trace to stay, got %q", got)
	}
	if got := headers.Get("Authorization"); got != "secret" {
		t.Fatalf("expected original headers unchanged, got %q", got)
	}
}

func TestMaskDataHidesCustomerContact(t *testing.T) {
	input := map[string]any{
		"data": []any{
			map[string]any{
				"id":            "txn_1234567890",
				"customerEmail": "customer@example.com",
			},
		},
		"ticket": map[string]any{
			"id":       "TKT-001",
			"customer": "merchant@store.com",
		},
	}

	masked := maskData(input).(map[string]any)
	txn := masked["data"].([]any)[0].(map[string]any)
	if txn["customerEmail"] != "***" {
		t.Fatalf("expected masked customerEmail, got %v", txn["customerEmail"])
	}
	if txn["id"] != "txn_1234567890" {
		t.Fatalf("expected id to remain, got %v", txn["id"])
	}
	if masked["ticket"].(map[string]any)["customer"] != "***" {
		t.Fatalf("expected masked ticket customer")
	}
}

func TestParseAndMaskBodyJSON(t *testing.T) {
	body := []byte(`{"api_key":"secret","endpoint":"/v1/payments"}`)
	parsed := parseAndMaskBody("application/json", body)

	m, ok := parsed.(map[string]any)
	if !ok {
		encoded, _ := json.Marshal(parsed)
		t.Fatalf("expected map, got %s", string(encoded))
	}
	if m["api_key"] != "***" {
		t.Fatalf("expected masked api_key")
	}
	if m["endpoint"] != "/v1/payments" {
		t.Fatalf("expected endpoint to remain")
	}
}

func TestParseAndMaskBodyForm(t *testing.T) {
	body := []byte("cvv=123&method=UPI")
	parsed := parseAndMaskBody("application/x-www-form-urlencoded", body)

	m, ok := parsed.(map[string]any)
	if !ok {
		t.Fatalf("expected map, got %T", parsed)
	}
	if m["cvv"] != "***" {
		t.Fatalf("expected masked cvv")
	}
	if m["method"] != "UPI" {
		t.Fatalf("expected method to remain")
	}
}

func TestParseAndMaskBodyBinary(t *testing.T) {
	body := []byte{0xff, 0xfe, 0xfd}
	parsed := parseAndMaskBody("text/plain", body)
	if !reflect.DeepEqual(parsed, "<binary body omitted>") {
		t.Fatalf("expected binary body omission, got %v", parsed)
	}
}
