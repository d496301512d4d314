package logseqcli

import (
	"fmt"
	"os/exec"
	"regexp"
	"strings"

	"zotsync/internal/application"
	"zotsync/internal/domain"
)

// keyPattern matches the select links the Logseq Zotero integration stores:
// zotero://select/library/items/ABC123. The capture group is the item key.
var keyPattern = regexp.MustCompile(`zotero://select/library/items/([A-Z0-9]+)`)

// graphListHeader precedes the database-graph section in `logseq list`
// output. The line after it is taken as the graph name.
const graphListHeader = "DB Graphs:"

// Graph implements ports.GraphSource using the Logseq CLI.
type Graph struct {
	bin      string
	property string
}

// Option configures the Graph
type Option func(*Graph)

// WithBinary sets the Logseq CLI binary to invoke
func WithBinary(bin string) Option {
	return func(g *Graph) {
		g.bin = bin
	}
}

// WithProperty sets the user property holding Zotero select links
func WithProperty(id string) Option {
	return func(g *Graph) {
		g.property = id
	}
}

// NewGraph creates a new Logseq CLI graph source
func NewGraph(opts ...Option) *Graph {
	g := &Graph{
		bin:      "logseq",
		property: "ZoteroURL-om1JHnZv",
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// query returns the datalog query pulling every block that carries the
// Zotero URL property, with the property value flattened into the output.
func (g *Graph) query() string {
	return fmt.Sprintf(
		"[:find (pull ?b [:block/title {:user.property/%[1]s [:block/title]}]) :where [?b :user.property/%[1]s]]",
		g.property,
	)
}

// ItemKeys queries the named graph and returns the deduplicated set of
// Zotero item keys referenced in it.
func (g *Graph) ItemKeys(graphName string) (domain.KeySet, error) {
	cmd := exec.Command(g.bin, "query", graphName, g.query())
	output, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return nil, fmt.Errorf("logseq query failed: %w\nstderr: %s", err, string(exitErr.Stderr))
		}
		return nil, fmt.Errorf("logseq query failed: %w", err)
	}

	return ExtractItemKeys(string(output)), nil
}

// ExtractItemKeys scans text for Zotero select links and returns the set of
// item keys found. Duplicate links collapse; no matches yields an empty set.
func ExtractItemKeys(text string) domain.KeySet {
	keys := domain.NewKeySet()
	for _, m := range keyPattern.FindAllStringSubmatch(text, -1) {
		keys.Add(m[1])
	}
	return keys
}

// DefaultGraph runs `logseq list` and picks the first database graph.
func (g *Graph) DefaultGraph() (string, error) {
	cmd := exec.Command(g.bin, "list")
	output, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return "", fmt.Errorf("logseq list failed: %w\nstderr: %s", err, string(exitErr.Stderr))
		}
		return "", fmt.Errorf("logseq list failed: %w", err)
	}

	return ParseGraphList(string(output))
}

// ParseGraphList extracts the first database graph name from `logseq list`
// output: the line right after the "DB Graphs:" header, trimmed.
// This tracks the CLI's human-readable output and is fragile by nature; when
// the header is missing the caller should pass a graph name explicitly.
func ParseGraphList(text string) (string, error) {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	for i, line := range lines {
		if !strings.Contains(line, graphListHeader) {
			continue
		}
		if i+1 < len(lines) {
			if name := strings.TrimSpace(lines[i+1]); name != "" {
				return name, nil
			}
		}
		break
	}
	return "", application.ErrNoGraph
}
