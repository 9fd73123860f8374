package mcpserver

// TemplateFormatContract is the canonical TaskPaper template format served
// to MCP clients so they can author convertible documents.
const TemplateFormatContract = `# TaskPaper Template Format

popthings converts tab-indented TaskPaper templates into the Things JSON
import schema. Indentation MUST use tab characters, not spaces.

## Line types

- "Title:"            a line ending in a colon is a project; nested under
                      another project it becomes a heading.
- "- Title"           a line starting with "- " is a to-do; nested under
                      another to-do it becomes a checklist item, at any depth.
- anything else       free text is a note, appended to the notes of the
                      nearest preceding project or to-do.

## Tags

Trailing "@name" and "@name(value)" annotations attach to the line. Two tag
names are special: "@start(date)" sets the Things "when" attribute and
"@due(date)" sets "deadline". Values of all other tags are discarded; the
names pass through as Things tags.

Date values may be an ISO date with an optional day offset ("2024-06-01 + 7")
or any free-form value Things understands ("today", "next month").

## Placeholders

Placeholders are declared on the second line, prefixed with "$" and
space-separated. Every "$name" occurrence in the document is substituted
before conversion.

## Example

The indentation below is tab characters:

` + "```" + `
Prepare trip to $where:
	$where $date
	Gather what is needed.
	- Book hotel @due($date)
	- Pack @start($date - 1)
		- Passport
		- Chargers
	Before leaving:
	- Water the plants
` + "```" + `
`
