package main

import (
	"encoding/json"
	"testing"
)

func TestStationsCommand(t *testing.T) {
	out, _, err := runCLI(t, []string{"stations"}, "")
	if err != nil {
		t.Fatalf("stations: %v", err)
	}
	requireContains(t, out, "CNNW")
	requireContains(t, out, "CNN")
}

func TestStationsCommandJSON(t *testing.T) {
	out, _, err := runCLI(t, []string{"stations", "--json"}, "")
	if err != nil {
		t.Fatalf("stations --json: %v", err)
	}
	var stations map[string]string
	if err := json.Unmarshal([]byte(out), &stations); err != nil {
		t.Fatalf("decode stations JSON: %v", err)
	}
	if stations["FOXNEWSW"] != "FOX News" {
		t.Fatalf("unexpected FOXNEWSW mapping: %q", stations["FOXNEWSW"])
	}
}
