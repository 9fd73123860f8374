package convert

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

const doc = "Trip:\n" +
	"\tGather what is needed.\n" +
	"\t- Book hotel @due(2019-05-01 + 7)\n" +
	"\t- Pack\n" +
	"\t\t- Passport\n" +
	"\tBefore leaving:\n" +
	"\t- Water the plants"

func TestDocument(t *testing.T) {
	res, err := Document(doc)
	if err != nil {
		t.Fatal(err)
	}

	projects, todos := res.Counts()
	if projects != 1 || todos != 3 {
		t.Errorf("counts = %d projects %d todos, want 1/3", projects, todos)
	}

	var payload []struct {
		Type       string `json:"type"`
		Attributes struct {
			Title string `json:"title"`
			Items []struct {
				Type       string `json:"type"`
				Attributes struct {
					Title    string `json:"title"`
					Deadline string `json:"deadline"`
				} `json:"attributes"`
			} `json:"items"`
		} `json:"attributes"`
	}
	if err := json.Unmarshal(res.JSON, &payload); err != nil {
		t.Fatal(err)
	}
	if len(payload) != 1 || payload[0].Type != "project" {
		t.Fatalf("payload = %+v", payload)
	}
	items := payload[0].Attributes.Items
	if len(items) != 4 {
		t.Fatalf("items = %d, want 4", len(items))
	}
	if items[0].Attributes.Deadline != "2019-05-08" {
		t.Errorf("deadline = %q, want 2019-05-08", items[0].Attributes.Deadline)
	}
	if items[2].Type != "heading" {
		t.Errorf("items[2].type = %q, want heading", items[2].Type)
	}

	if !strings.HasPrefix(res.URL, "things:///json?data=") {
		t.Errorf("url = %q", res.URL)
	}
}

// Identical input text yields identical serialized bytes.
func TestDocument_Deterministic(t *testing.T) {
	a, err := Document(doc)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Document(doc)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a.JSON, b.JSON) {
		t.Errorf("payloads differ:\n%s\n%s", a.JSON, b.JSON)
	}
	if a.URL != b.URL {
		t.Errorf("urls differ")
	}
}

func TestDocument_StructuralErrorAborts(t *testing.T) {
	if _, err := Document("- task before any project"); err == nil {
		t.Fatal("expected error, got nil")
	}
}
