package placeholder

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/villert/popthings/internal/apperr"
)

const template = "Prepare luggage for $Destination:\n" +
	"\t$Destination $date\n" +
	"\t- Pack @due($date)"

func TestNames(t *testing.T) {
	names := Names(template, DefaultSymbol)
	if len(names) != 2 || names[0] != "Destination" || names[1] != "date" {
		t.Errorf("names = %v", names)
	}
}

func TestNames_NoDeclarationLine(t *testing.T) {
	if names := Names("Project:\n\t- task", DefaultSymbol); names != nil {
		t.Errorf("names = %v, want nil", names)
	}
	if names := Names("one line only", DefaultSymbol); names != nil {
		t.Errorf("single-line names = %v, want nil", names)
	}
}

func TestApply(t *testing.T) {
	out, err := Apply(template, DefaultSymbol, map[string]string{
		"Destination": "Paris",
		"date":        "2019-06-01",
	})
	if err != nil {
		t.Fatal(err)
	}
	want := "Prepare luggage for Paris:\n\t- Pack @due(2019-06-01)"
	if out != want {
		t.Errorf("out = %q, want %q", out, want)
	}
}

func TestApply_PassThroughWithoutDeclaration(t *testing.T) {
	doc := "Project:\n\t- task with $literal"
	out, err := Apply(doc, DefaultSymbol, nil)
	if err != nil {
		t.Fatal(err)
	}
	if out != doc {
		t.Errorf("out = %q, want unchanged input", out)
	}
}

func TestApply_MissingValue(t *testing.T) {
	_, err := Apply(template, DefaultSymbol, map[string]string{"date": "2019-06-01"})
	if !errors.Is(err, apperr.ErrPlaceholder) {
		t.Fatalf("err = %v, want ErrPlaceholder", err)
	}
	if !strings.Contains(err.Error(), "$Destination") {
		t.Errorf("err = %q, want it to name $Destination", err)
	}
}

func TestPrompt(t *testing.T) {
	in := strings.NewReader("Paris\n2019-06-01\n")
	var out bytes.Buffer
	values, err := Prompt([]string{"Destination", "date"}, in, &out)
	if err != nil {
		t.Fatal(err)
	}
	if values["Destination"] != "Paris" || values["date"] != "2019-06-01" {
		t.Errorf("values = %v", values)
	}
	if !strings.Contains(out.String(), "Destination value?") {
		t.Errorf("prompt output = %q", out.String())
	}
	// Prompts capitalize the name like the interactive flow always has.
	if !strings.Contains(out.String(), "Date value?") {
		t.Errorf("prompt output = %q", out.String())
	}
}
